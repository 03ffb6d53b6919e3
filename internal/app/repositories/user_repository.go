package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/interntrack/server/internal/app/models"
	"github.com/interntrack/server/internal/pkg/dberrors"
	"github.com/interntrack/server/internal/pkg/logger"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// User error types
var (
	// ErrUserNotFound is returned when no account matches the lookup.
	ErrUserNotFound = ErrNotFound
	// ErrUserAlreadyExists is returned when the (role, identifier) pair is taken.
	ErrUserAlreadyExists = errors.New("user already exists")
)

// UserRepository handles account database operations
type UserRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// CreateUser inserts a new account and returns its id. The partial unique
// indexes on (roll) and (email) are the final arbiter of the
// one-account-per-(role, identifier) invariant; a race past the service
// layer's advisory pre-check surfaces here as ErrUserAlreadyExists.
func (r *UserRepository) CreateUser(ctx context.Context, user *models.User) (int64, error) {
	sql, args, err := r.sb.Insert("users").
		Columns("name", "roll", "email", "password", "role").
		Values(user.Name, user.Roll, user.Email, user.Password, user.Role).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building create user SQL")
		return 0, fmt.Errorf("failed to build create user query: %w", err)
	}

	var id int64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return 0, ErrUserAlreadyExists
		}
		logger.Error().Err(err).Msg("Error executing create user query")
		return 0, fmt.Errorf("error creating user: %w", err)
	}

	return id, nil
}

// GetStudentByRoll retrieves a student account by roll number
func (r *UserRepository) GetStudentByRoll(ctx context.Context, roll string) (*models.User, error) {
	return r.getByRoleIdentifier(ctx, models.RoleStudent, squirrel.Eq{"roll": roll})
}

// GetFacultyByEmail retrieves a faculty account by email
func (r *UserRepository) GetFacultyByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.getByRoleIdentifier(ctx, models.RoleFaculty, squirrel.Eq{"email": email})
}

func (r *UserRepository) getByRoleIdentifier(ctx context.Context, role models.RoleType, cond squirrel.Eq) (*models.User, error) {
	cond["role"] = role

	sql, args, err := r.sb.Select("id", "name", "roll", "email", "password", "role", "created_at", "updated_at").
		From("users").
		Where(cond).
		Limit(1).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building get user SQL")
		return nil, fmt.Errorf("failed to build get user query: %w", err)
	}

	user := &models.User{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&user.ID, &user.Name, &user.Roll, &user.Email, &user.Password,
		&user.Role, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		logger.Error().Err(err).Str("role", string(role)).Msg("Error scanning user row")
		return nil, fmt.Errorf("error getting user: %w", err)
	}

	return user, nil
}

// StudentRollExists checks if a student account exists for the roll number
func (r *UserRepository) StudentRollExists(ctx context.Context, roll string) (bool, error) {
	return r.identifierExists(ctx, squirrel.Eq{"role": models.RoleStudent, "roll": roll})
}

// FacultyEmailExists checks if a faculty account exists for the email
func (r *UserRepository) FacultyEmailExists(ctx context.Context, email string) (bool, error) {
	return r.identifierExists(ctx, squirrel.Eq{"role": models.RoleFaculty, "email": email})
}

func (r *UserRepository) identifierExists(ctx context.Context, cond squirrel.Eq) (bool, error) {
	sql, args, err := r.sb.Select("1").
		From("users").
		Where(cond).
		Prefix("SELECT EXISTS (").Suffix(")").
		Limit(1).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building user exists SQL")
		return false, fmt.Errorf("failed to build user existence query: %w", err)
	}

	var exists bool
	err = r.db.QueryRow(ctx, sql, args...).Scan(&exists)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		logger.Error().Err(err).Msg("Error checking user existence")
		return false, fmt.Errorf("error checking user existence: %w", err)
	}

	return exists, nil
}
