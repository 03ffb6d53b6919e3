package services

import (
	"context"

	"github.com/interntrack/server/internal/app/models"
)

// UserStore is the account persistence surface the auth service depends on.
// Implemented by repositories.UserRepository.
type UserStore interface {
	CreateUser(ctx context.Context, user *models.User) (int64, error)
	GetStudentByRoll(ctx context.Context, roll string) (*models.User, error)
	GetFacultyByEmail(ctx context.Context, email string) (*models.User, error)
	StudentRollExists(ctx context.Context, roll string) (bool, error)
	FacultyEmailExists(ctx context.Context, email string) (bool, error)
}

// InternshipStore is the record persistence surface the internship service
// depends on. Implemented by repositories.InternshipRepository.
type InternshipStore interface {
	Create(ctx context.Context, in *models.Internship) error
	GetAll(ctx context.Context, filter models.InternshipFilter) ([]*models.Internship, error)
	GetByRollNumber(ctx context.Context, roll string) (*models.Internship, error)
	GetByID(ctx context.Context, id int64) (*models.Internship, error)
	Update(ctx context.Context, id int64, fields map[string]interface{}) (*models.Internship, error)
	Delete(ctx context.Context, id int64) error
	RollNumberExists(ctx context.Context, roll string) (bool, error)
}
