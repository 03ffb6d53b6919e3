package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/interntrack/server/internal/app/models"
	"github.com/interntrack/server/internal/pkg/dberrors"
	"github.com/interntrack/server/internal/pkg/logger"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Internship error types
var (
	// ErrInternshipNotFound is returned when no record matches the lookup.
	ErrInternshipNotFound = ErrNotFound
	// ErrInternshipAlreadyExists is returned when a record already exists for
	// the roll number.
	ErrInternshipAlreadyExists = errors.New("internship already exists for this roll number")
)

const internshipColumns = "id, student_name, roll_number, department, email, company_name, location, " +
	"start_date, end_date, duration, stipend, mentor_name, mentor_contact, mentor_role, status, created_at, updated_at"

// InternshipRepository handles internship record database operations
type InternshipRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewInternshipRepository creates a new InternshipRepository
func NewInternshipRepository(db *pgxpool.Pool) *InternshipRepository {
	return &InternshipRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanInternship(row pgx.Row) (*models.Internship, error) {
	in := &models.Internship{}
	err := row.Scan(
		&in.ID, &in.StudentName, &in.RollNumber, &in.Department, &in.Email,
		&in.CompanyName, &in.Location, &in.StartDate, &in.EndDate, &in.Duration,
		&in.Stipend, &in.MentorName, &in.MentorContact, &in.MentorRole,
		&in.Status, &in.CreatedAt, &in.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return in, nil
}

// Create inserts a new internship record and fills in the generated id and
// timestamps. The unique index on roll_number is the final arbiter of the
// one-record-per-roll invariant; the service layer's existence pre-check is
// advisory only.
func (r *InternshipRepository) Create(ctx context.Context, in *models.Internship) error {
	sql, args, err := r.sb.Insert("internships").
		Columns("student_name", "roll_number", "department", "email", "company_name", "location",
			"start_date", "end_date", "duration", "stipend", "mentor_name", "mentor_contact", "mentor_role", "status").
		Values(in.StudentName, in.RollNumber, in.Department, in.Email, in.CompanyName, in.Location,
			in.StartDate, in.EndDate, in.Duration, in.Stipend, in.MentorName, in.MentorContact, in.MentorRole, in.Status).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building create internship SQL")
		return fmt.Errorf("failed to build create internship query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&in.ID, &in.CreatedAt, &in.UpdatedAt)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "internships_roll_number_key") {
			return ErrInternshipAlreadyExists
		}
		logger.Error().Err(err).Str("rollNumber", in.RollNumber).Msg("Error executing create internship query")
		return fmt.Errorf("error creating internship: %w", err)
	}

	return nil
}

// GetAll retrieves all internship records, newest first, optionally narrowed
// by department, status and a case-insensitive search over student name,
// roll number and company name.
func (r *InternshipRepository) GetAll(ctx context.Context, filter models.InternshipFilter) ([]*models.Internship, error) {
	builder := r.sb.Select(internshipColumns).
		From("internships").
		OrderBy("created_at DESC")

	if filter.Department != "" {
		builder = builder.Where(squirrel.Eq{"department": filter.Department})
	}
	if filter.Status != "" {
		builder = builder.Where(squirrel.Eq{"status": filter.Status})
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		builder = builder.Where(squirrel.Or{
			squirrel.ILike{"student_name": pattern},
			squirrel.ILike{"roll_number": pattern},
			squirrel.ILike{"company_name": pattern},
		})
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get all internships SQL")
		return nil, fmt.Errorf("failed to build get all internships query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all internships query")
		return nil, fmt.Errorf("error querying internships: %w", err)
	}
	defer rows.Close()

	internships := []*models.Internship{}
	for rows.Next() {
		in, err := scanInternship(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning internship row during get all")
			return nil, fmt.Errorf("error scanning internship row: %w", err)
		}
		internships = append(internships, in)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating internship rows")
		return nil, fmt.Errorf("error iterating internship rows: %w", err)
	}

	return internships, nil
}

// GetByRollNumber retrieves the internship record for a roll number
func (r *InternshipRepository) GetByRollNumber(ctx context.Context, roll string) (*models.Internship, error) {
	return r.getOne(ctx, squirrel.Eq{"roll_number": roll})
}

// GetByID retrieves an internship record by ID
func (r *InternshipRepository) GetByID(ctx context.Context, id int64) (*models.Internship, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id})
}

func (r *InternshipRepository) getOne(ctx context.Context, cond squirrel.Eq) (*models.Internship, error) {
	sql, args, err := r.sb.Select(internshipColumns).
		From("internships").
		Where(cond).
		Limit(1).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building get internship SQL")
		return nil, fmt.Errorf("failed to build get internship query: %w", err)
	}

	in, err := scanInternship(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrInternshipNotFound
		}
		logger.Error().Err(err).Msg("Error scanning internship row")
		return nil, fmt.Errorf("error getting internship: %w", err)
	}

	return in, nil
}

// Update applies a partial field update to the record and returns the
// updated row. The fields map uses column names as keys.
func (r *InternshipRepository) Update(ctx context.Context, id int64, fields map[string]interface{}) (*models.Internship, error) {
	setMap := make(map[string]interface{}, len(fields)+1)
	for k, v := range fields {
		setMap[k] = v
	}
	setMap["updated_at"] = time.Now()

	sql, args, err := r.sb.Update("internships").
		SetMap(setMap).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + internshipColumns).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building update internship SQL")
		return nil, fmt.Errorf("failed to build update internship query: %w", err)
	}

	in, err := scanInternship(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrInternshipNotFound
		}
		if dberrors.IsDuplicateConstraintError(err, "internships_roll_number_key") {
			return nil, ErrInternshipAlreadyExists
		}
		logger.Error().Err(err).Int64("internshipID", id).Msg("Error executing update internship query")
		return nil, fmt.Errorf("error updating internship: %w", err)
	}

	return in, nil
}

// Delete permanently removes an internship record
func (r *InternshipRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("internships").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building delete internship SQL")
		return fmt.Errorf("failed to build delete internship query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("internshipID", id).Msg("Error executing delete internship query")
		return fmt.Errorf("error deleting internship: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrInternshipNotFound
	}

	return nil
}

// RollNumberExists checks if a record exists for the roll number
func (r *InternshipRepository) RollNumberExists(ctx context.Context, roll string) (bool, error) {
	sql, args, err := r.sb.Select("1").
		From("internships").
		Where(squirrel.Eq{"roll_number": roll}).
		Prefix("SELECT EXISTS (").Suffix(")").
		Limit(1).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building internship exists SQL")
		return false, fmt.Errorf("failed to build internship existence query: %w", err)
	}

	var exists bool
	err = r.db.QueryRow(ctx, sql, args...).Scan(&exists)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		logger.Error().Err(err).Str("rollNumber", roll).Msg("Error checking internship existence")
		return false, fmt.Errorf("error checking internship existence: %w", err)
	}

	return exists, nil
}
