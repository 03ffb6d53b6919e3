package repositories

import (
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotFound is the shared lookup-miss error for all repositories.
var ErrNotFound = errors.New("resource not found")

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository       *UserRepository
	InternshipRepository *InternshipRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:       NewUserRepository(db),
		InternshipRepository: NewInternshipRepository(db),
	}
}
