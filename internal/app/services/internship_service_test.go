package services

import (
	"context"
	"testing"
	"time"

	"github.com/interntrack/server/internal/app/models"
	"github.com/interntrack/server/internal/app/models/dto"
	"github.com/interntrack/server/internal/app/repositories"
	"github.com/interntrack/server/internal/pkg/apperrors"
	"github.com/interntrack/server/internal/pkg/auth"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeInternshipStore is an in-memory InternshipStore
type fakeInternshipStore struct {
	records map[int64]*models.Internship
	nextID  int64
}

func newFakeInternshipStore() *fakeInternshipStore {
	return &fakeInternshipStore{records: map[int64]*models.Internship{}, nextID: 1}
}

func (f *fakeInternshipStore) Create(_ context.Context, in *models.Internship) error {
	for _, r := range f.records {
		if r.RollNumber == in.RollNumber {
			return repositories.ErrInternshipAlreadyExists
		}
	}
	in.ID = f.nextID
	in.CreatedAt = time.Now()
	in.UpdatedAt = in.CreatedAt
	f.nextID++
	copied := *in
	f.records[in.ID] = &copied
	return nil
}

func (f *fakeInternshipStore) GetAll(_ context.Context, filter models.InternshipFilter) ([]*models.Internship, error) {
	var out []*models.Internship
	for _, r := range f.records {
		if filter.Department != "" && r.Department != filter.Department {
			continue
		}
		if filter.Status != "" && r.Status != filter.Status {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func (f *fakeInternshipStore) GetByRollNumber(_ context.Context, roll string) (*models.Internship, error) {
	for _, r := range f.records {
		if r.RollNumber == roll {
			copied := *r
			return &copied, nil
		}
	}
	return nil, repositories.ErrInternshipNotFound
}

func (f *fakeInternshipStore) GetByID(_ context.Context, id int64) (*models.Internship, error) {
	r, ok := f.records[id]
	if !ok {
		return nil, repositories.ErrInternshipNotFound
	}
	copied := *r
	return &copied, nil
}

func (f *fakeInternshipStore) Update(_ context.Context, id int64, fields map[string]interface{}) (*models.Internship, error) {
	r, ok := f.records[id]
	if !ok {
		return nil, repositories.ErrInternshipNotFound
	}
	for column, value := range fields {
		switch column {
		case "student_name":
			r.StudentName = value.(string)
		case "roll_number":
			r.RollNumber = value.(string)
		case "department":
			r.Department = value.(string)
		case "email":
			r.Email = value.(string)
		case "company_name":
			r.CompanyName = value.(string)
		case "location":
			r.Location = value.(string)
		case "start_date":
			r.StartDate = value.(time.Time)
		case "end_date":
			r.EndDate = value.(time.Time)
		case "duration":
			r.Duration = value.(string)
		case "stipend":
			r.Stipend = value.(float64)
		case "mentor_name":
			r.MentorName = value.(string)
		case "mentor_contact":
			r.MentorContact = value.(string)
		case "mentor_role":
			r.MentorRole = value.(string)
		case "status":
			r.Status = models.Status(value.(string))
		}
	}
	r.UpdatedAt = time.Now()
	copied := *r
	return &copied, nil
}

func (f *fakeInternshipStore) Delete(_ context.Context, id int64) error {
	if _, ok := f.records[id]; !ok {
		return repositories.ErrInternshipNotFound
	}
	delete(f.records, id)
	return nil
}

func (f *fakeInternshipStore) RollNumberExists(ctx context.Context, roll string) (bool, error) {
	_, err := f.GetByRollNumber(ctx, roll)
	return err == nil, nil
}

func newTestInternshipService(store InternshipStore) *InternshipService {
	return NewInternshipService(store, zerolog.Nop())
}

func validCreateRequest() *dto.CreateInternshipRequest {
	return &dto.CreateInternshipRequest{
		StudentName:   "John Doe",
		RollNumber:    "21CS045",
		Department:    "Computer Science",
		Email:         "john@college.edu",
		CompanyName:   "Acme Corp",
		Location:      "Bengaluru",
		StartDate:     "2024-01-01",
		EndDate:       "2024-03-01",
		Stipend:       15000,
		MentorName:    "Jane Smith",
		MentorContact: "+91-9876543210",
		MentorRole:    "Engineering Manager",
	}
}

func studentClaims(roll string) *auth.Claims {
	return &auth.Claims{UserID: 1, Identifier: roll, Role: "student"}
}

func facultyClaims() *auth.Claims {
	return &auth.Claims{UserID: 2, Identifier: "jane@college.edu", Role: "faculty"}
}

func TestCreateInternship(t *testing.T) {
	svc := newTestInternshipService(newFakeInternshipStore())

	record, err := svc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, record.Status)
	assert.Equal(t, "2 months", record.Duration)
	assert.NotZero(t, record.ID)
}

func TestCreateInternshipKeepsClientDuration(t *testing.T) {
	svc := newTestInternshipService(newFakeInternshipStore())

	req := validCreateRequest()
	req.Duration = "one semester"
	record, err := svc.Create(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "one semester", record.Duration)
}

func TestCreateInternshipDuplicateRoll(t *testing.T) {
	svc := newTestInternshipService(newFakeInternshipStore())
	ctx := context.Background()

	_, err := svc.Create(ctx, validCreateRequest())
	require.NoError(t, err)

	_, err = svc.Create(ctx, validCreateRequest())
	assert.ErrorIs(t, err, apperrors.ErrInternshipExists)
}

func TestCreateInternshipValidation(t *testing.T) {
	svc := newTestInternshipService(newFakeInternshipStore())
	ctx := context.Background()

	missing := validCreateRequest()
	missing.CompanyName = ""
	_, err := svc.Create(ctx, missing)
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	badEmail := validCreateRequest()
	badEmail.Email = "not-an-email"
	_, err = svc.Create(ctx, badEmail)
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	badDate := validCreateRequest()
	badDate.StartDate = "01/01/2024"
	_, err = svc.Create(ctx, badDate)
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	negativeStipend := validCreateRequest()
	negativeStipend.Stipend = -100
	_, err = svc.Create(ctx, negativeStipend)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestCreateInternshipInvertedDates(t *testing.T) {
	// An inverted range is stored, flagged through the duration label
	svc := newTestInternshipService(newFakeInternshipStore())

	req := validCreateRequest()
	req.StartDate = "2024-03-01"
	req.EndDate = "2024-01-01"
	record, err := svc.Create(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "invalid", record.Duration)
}

func TestGetByRollNumber(t *testing.T) {
	svc := newTestInternshipService(newFakeInternshipStore())
	ctx := context.Background()

	created, err := svc.Create(ctx, validCreateRequest())
	require.NoError(t, err)

	found, err := svc.GetByRollNumber(ctx, "21CS045")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)

	_, err = svc.GetByRollNumber(ctx, "99XX000")
	assert.ErrorIs(t, err, apperrors.ErrInternshipNotFound)
}

func TestGetAllStatusFilter(t *testing.T) {
	svc := newTestInternshipService(newFakeInternshipStore())
	ctx := context.Background()

	_, err := svc.Create(ctx, validCreateRequest())
	require.NoError(t, err)

	records, err := svc.GetAll(ctx, models.InternshipFilter{Status: models.StatusPending})
	require.NoError(t, err)
	assert.Len(t, records, 1)

	_, err = svc.GetAll(ctx, models.InternshipFilter{Status: "bogus"})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestStudentUpdateResetsStatus(t *testing.T) {
	svc := newTestInternshipService(newFakeInternshipStore())
	ctx := context.Background()

	record, err := svc.Create(ctx, validCreateRequest())
	require.NoError(t, err)

	// Faculty approves
	approved := "approved"
	record, err = svc.Update(ctx, record.ID, &dto.UpdateInternshipRequest{Status: &approved}, facultyClaims())
	require.NoError(t, err)
	require.Equal(t, models.StatusApproved, record.Status)

	// Student edits content: back to pending
	company := "New Corp"
	record, err = svc.Update(ctx, record.ID, &dto.UpdateInternshipRequest{CompanyName: &company}, studentClaims("21CS045"))
	require.NoError(t, err)
	assert.Equal(t, "New Corp", record.CompanyName)
	assert.Equal(t, models.StatusPending, record.Status)
}

func TestFacultyStatusChangeKeepsContent(t *testing.T) {
	svc := newTestInternshipService(newFakeInternshipStore())
	ctx := context.Background()

	record, err := svc.Create(ctx, validCreateRequest())
	require.NoError(t, err)

	rejected := "rejected"
	updated, err := svc.Update(ctx, record.ID, &dto.UpdateInternshipRequest{Status: &rejected}, facultyClaims())
	require.NoError(t, err)
	assert.Equal(t, models.StatusRejected, updated.Status)
	assert.Equal(t, record.CompanyName, updated.CompanyName)
}

func TestStudentCannotSetStatus(t *testing.T) {
	svc := newTestInternshipService(newFakeInternshipStore())
	ctx := context.Background()

	record, err := svc.Create(ctx, validCreateRequest())
	require.NoError(t, err)

	approved := "approved"
	_, err = svc.Update(ctx, record.ID, &dto.UpdateInternshipRequest{Status: &approved}, studentClaims("21CS045"))
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
}

func TestStudentCannotTouchOthersRecord(t *testing.T) {
	svc := newTestInternshipService(newFakeInternshipStore())
	ctx := context.Background()

	record, err := svc.Create(ctx, validCreateRequest())
	require.NoError(t, err)

	company := "New Corp"
	_, err = svc.Update(ctx, record.ID, &dto.UpdateInternshipRequest{CompanyName: &company}, studentClaims("22EE001"))
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

	err = svc.Delete(ctx, record.ID, studentClaims("22EE001"))
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
}

func TestUpdateInvalidStatusValue(t *testing.T) {
	svc := newTestInternshipService(newFakeInternshipStore())
	ctx := context.Background()

	record, err := svc.Create(ctx, validCreateRequest())
	require.NoError(t, err)

	bogus := "bogus"
	_, err = svc.Update(ctx, record.ID, &dto.UpdateInternshipRequest{Status: &bogus}, facultyClaims())
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestUpdateNoFields(t *testing.T) {
	svc := newTestInternshipService(newFakeInternshipStore())
	ctx := context.Background()

	record, err := svc.Create(ctx, validCreateRequest())
	require.NoError(t, err)

	_, err = svc.Update(ctx, record.ID, &dto.UpdateInternshipRequest{}, facultyClaims())
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestUpdateMissingRecord(t *testing.T) {
	svc := newTestInternshipService(newFakeInternshipStore())

	company := "New Corp"
	_, err := svc.Update(context.Background(), 42, &dto.UpdateInternshipRequest{CompanyName: &company}, facultyClaims())
	assert.ErrorIs(t, err, apperrors.ErrInternshipNotFound)
}

func TestDeleteInternship(t *testing.T) {
	svc := newTestInternshipService(newFakeInternshipStore())
	ctx := context.Background()

	record, err := svc.Create(ctx, validCreateRequest())
	require.NoError(t, err)

	// Owner may delete
	require.NoError(t, svc.Delete(ctx, record.ID, studentClaims("21CS045")))

	_, err = svc.GetByRollNumber(ctx, "21CS045")
	assert.ErrorIs(t, err, apperrors.ErrInternshipNotFound)

	err = svc.Delete(ctx, record.ID, facultyClaims())
	assert.ErrorIs(t, err, apperrors.ErrInternshipNotFound)
}

func TestRecordLifecycle(t *testing.T) {
	// Full state machine walk: pending -> approved -> pending (student
	// edit) -> rejected -> approved
	svc := newTestInternshipService(newFakeInternshipStore())
	ctx := context.Background()

	record, err := svc.Create(ctx, validCreateRequest())
	require.NoError(t, err)
	require.Equal(t, models.StatusPending, record.Status)

	setStatus := func(status string) *models.Internship {
		updated, err := svc.Update(ctx, record.ID, &dto.UpdateInternshipRequest{Status: &status}, facultyClaims())
		require.NoError(t, err)
		return updated
	}

	assert.Equal(t, models.StatusApproved, setStatus("approved").Status)

	location := "Remote"
	updated, err := svc.Update(ctx, record.ID, &dto.UpdateInternshipRequest{Location: &location}, studentClaims("21CS045"))
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, updated.Status)

	assert.Equal(t, models.StatusRejected, setStatus("rejected").Status)
	assert.Equal(t, models.StatusApproved, setStatus("approved").Status)
}
