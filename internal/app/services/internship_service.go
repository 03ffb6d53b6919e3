package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/interntrack/server/internal/app/models"
	"github.com/interntrack/server/internal/app/models/dto"
	"github.com/interntrack/server/internal/app/repositories"
	"github.com/interntrack/server/internal/pkg/apperrors"
	"github.com/interntrack/server/internal/pkg/auth"
	"github.com/interntrack/server/internal/pkg/helpers"
	"github.com/interntrack/server/internal/pkg/validation"
	"github.com/rs/zerolog"
)

const dateLayout = "2006-01-02"

// InternshipService owns the internship record lifecycle: submission starts
// at pending, faculty move records between statuses, and any student content
// edit sends the record back to pending for re-review.
type InternshipService struct {
	internshipRepo InternshipStore
	logger         zerolog.Logger
}

// NewInternshipService creates a new InternshipService
func NewInternshipService(internshipRepo InternshipStore, logger zerolog.Logger) *InternshipService {
	return &InternshipService{
		internshipRepo: internshipRepo,
		logger:         logger,
	}
}

// parseDate accepts calendar dates and falls back to RFC3339 timestamps
// for legacy clients.
func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse(dateLayout, value); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, apperrors.NewValidationError(fmt.Sprintf("invalid date %q, expected YYYY-MM-DD", value))
	}
	return t, nil
}

// Create submits a new internship record for a student. The record always
// enters the pending state regardless of client input.
func (s *InternshipService) Create(ctx context.Context, req *dto.CreateInternshipRequest) (*models.Internship, error) {
	required := []string{
		req.StudentName, req.RollNumber, req.Department, req.Email,
		req.CompanyName, req.Location, req.StartDate, req.EndDate,
		req.MentorName, req.MentorContact, req.MentorRole,
	}
	for _, field := range required {
		if strings.TrimSpace(field) == "" {
			return nil, apperrors.NewValidationError("all required fields are mandatory")
		}
	}
	if !validation.CompiledPatterns.Email.MatchString(req.Email) {
		return nil, apperrors.NewValidationError("invalid email format")
	}
	if req.Stipend < 0 {
		return nil, apperrors.NewValidationError("stipend cannot be negative")
	}

	startDate, err := parseDate(req.StartDate)
	if err != nil {
		return nil, err
	}
	endDate, err := parseDate(req.EndDate)
	if err != nil {
		return nil, err
	}

	exists, err := s.internshipRepo.RollNumberExists(ctx, req.RollNumber)
	if err != nil {
		return nil, fmt.Errorf("error checking for existing record: %w", err)
	}
	if exists {
		return nil, apperrors.ErrInternshipExists
	}

	duration := strings.TrimSpace(req.Duration)
	if duration == "" {
		duration = helpers.DescribeSpan(startDate, endDate)
	}

	internship := &models.Internship{
		StudentName:   req.StudentName,
		RollNumber:    req.RollNumber,
		Department:    req.Department,
		Email:         req.Email,
		CompanyName:   req.CompanyName,
		Location:      req.Location,
		StartDate:     startDate,
		EndDate:       endDate,
		Duration:      duration,
		Stipend:       req.Stipend,
		MentorName:    req.MentorName,
		MentorContact: req.MentorContact,
		MentorRole:    req.MentorRole,
		Status:        models.StatusPending,
	}

	if err := s.internshipRepo.Create(ctx, internship); err != nil {
		if errors.Is(err, repositories.ErrInternshipAlreadyExists) {
			return nil, apperrors.ErrInternshipExists
		}
		return nil, fmt.Errorf("internship creation error: %w", err)
	}

	s.logger.Info().Str("roll", internship.RollNumber).Int64("id", internship.ID).Msg("Internship record created")

	return internship, nil
}

// GetAll lists internship records, optionally filtered by department, status
// and a free-text search term.
func (s *InternshipService) GetAll(ctx context.Context, filter models.InternshipFilter) ([]*models.Internship, error) {
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, apperrors.NewValidationError("invalid status filter")
	}

	internships, err := s.internshipRepo.GetAll(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error listing internships: %w", err)
	}
	return internships, nil
}

// GetByRollNumber retrieves the single record belonging to a roll number
func (s *InternshipService) GetByRollNumber(ctx context.Context, roll string) (*models.Internship, error) {
	if strings.TrimSpace(roll) == "" {
		return nil, apperrors.NewValidationError("roll number cannot be empty")
	}

	internship, err := s.internshipRepo.GetByRollNumber(ctx, roll)
	if err != nil {
		if errors.Is(err, repositories.ErrInternshipNotFound) {
			return nil, apperrors.ErrInternshipNotFound
		}
		return nil, fmt.Errorf("error fetching internship: %w", err)
	}
	return internship, nil
}

// Update applies a partial update to a record. Students may only touch their
// own record and never its status; any content change they make resets the
// status to pending. Faculty may set the status directly, and a pure status
// change leaves the content untouched.
func (s *InternshipService) Update(ctx context.Context, id int64, req *dto.UpdateInternshipRequest, claims *auth.Claims) (*models.Internship, error) {
	current, err := s.internshipRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrInternshipNotFound) {
			return nil, apperrors.ErrInternshipNotFound
		}
		return nil, fmt.Errorf("error fetching internship: %w", err)
	}

	isStudent := claims.Role == string(models.RoleStudent)
	if isStudent {
		if claims.Identifier != current.RollNumber {
			return nil, apperrors.NewForbiddenError("students may only modify their own record")
		}
		if req.Status != nil {
			return nil, apperrors.NewForbiddenError("students cannot change the record status")
		}
	}

	fields, err := s.buildUpdateFields(req)
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 && req.Status == nil {
		return nil, apperrors.NewValidationError("no fields to update")
	}

	// Content edits by a student send the record back for re-review
	if isStudent && len(fields) > 0 {
		fields["status"] = string(models.StatusPending)
	}

	if req.Status != nil {
		status := models.Status(*req.Status)
		if !status.Valid() {
			return nil, apperrors.NewValidationError("invalid status value")
		}
		fields["status"] = string(status)
	}

	updated, err := s.internshipRepo.Update(ctx, id, fields)
	if err != nil {
		if errors.Is(err, repositories.ErrInternshipNotFound) {
			return nil, apperrors.ErrInternshipNotFound
		}
		if errors.Is(err, repositories.ErrInternshipAlreadyExists) {
			return nil, apperrors.ErrInternshipExists
		}
		return nil, fmt.Errorf("internship update error: %w", err)
	}

	s.logger.Info().Int64("id", id).Str("role", claims.Role).Msg("Internship record updated")

	return updated, nil
}

// Delete removes a record. Students may only delete their own record.
func (s *InternshipService) Delete(ctx context.Context, id int64, claims *auth.Claims) error {
	if claims.Role == string(models.RoleStudent) {
		current, err := s.internshipRepo.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, repositories.ErrInternshipNotFound) {
				return apperrors.ErrInternshipNotFound
			}
			return fmt.Errorf("error fetching internship: %w", err)
		}
		if claims.Identifier != current.RollNumber {
			return apperrors.NewForbiddenError("students may only delete their own record")
		}
	}

	if err := s.internshipRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrInternshipNotFound) {
			return apperrors.ErrInternshipNotFound
		}
		return fmt.Errorf("internship deletion error: %w", err)
	}

	s.logger.Info().Int64("id", id).Str("role", claims.Role).Msg("Internship record deleted")

	return nil
}

// buildUpdateFields maps non-nil request fields to their database columns.
// Date fields are re-parsed; duration is recomputed when a date moves and
// the client did not supply its own label.
func (s *InternshipService) buildUpdateFields(req *dto.UpdateInternshipRequest) (map[string]interface{}, error) {
	fields := map[string]interface{}{}

	setString := func(column string, value *string) error {
		if value == nil {
			return nil
		}
		if strings.TrimSpace(*value) == "" {
			return apperrors.NewValidationError(column + " cannot be empty")
		}
		fields[column] = *value
		return nil
	}

	if err := setString("student_name", req.StudentName); err != nil {
		return nil, err
	}
	if err := setString("roll_number", req.RollNumber); err != nil {
		return nil, err
	}
	if err := setString("department", req.Department); err != nil {
		return nil, err
	}
	if req.Email != nil {
		if !validation.CompiledPatterns.Email.MatchString(*req.Email) {
			return nil, apperrors.NewValidationError("invalid email format")
		}
		fields["email"] = *req.Email
	}
	if err := setString("company_name", req.CompanyName); err != nil {
		return nil, err
	}
	if err := setString("location", req.Location); err != nil {
		return nil, err
	}
	if req.StartDate != nil {
		t, err := parseDate(*req.StartDate)
		if err != nil {
			return nil, err
		}
		fields["start_date"] = t
	}
	if req.EndDate != nil {
		t, err := parseDate(*req.EndDate)
		if err != nil {
			return nil, err
		}
		fields["end_date"] = t
	}
	if req.Duration != nil {
		fields["duration"] = *req.Duration
	}
	if req.Stipend != nil {
		if *req.Stipend < 0 {
			return nil, apperrors.NewValidationError("stipend cannot be negative")
		}
		fields["stipend"] = *req.Stipend
	}
	if err := setString("mentor_name", req.MentorName); err != nil {
		return nil, err
	}
	if err := setString("mentor_contact", req.MentorContact); err != nil {
		return nil, err
	}
	if err := setString("mentor_role", req.MentorRole); err != nil {
		return nil, err
	}

	return fields, nil
}
