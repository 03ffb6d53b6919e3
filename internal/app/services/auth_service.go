package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/interntrack/server/internal/app/models"
	"github.com/interntrack/server/internal/app/models/dto"
	"github.com/interntrack/server/internal/app/repositories"
	"github.com/interntrack/server/internal/pkg/apperrors"
	"github.com/interntrack/server/internal/pkg/auth"
	"github.com/interntrack/server/internal/pkg/validation"
	"github.com/rs/zerolog"
)

// AuthService handles registration, login and token validation for the two
// account roles.
type AuthService struct {
	userRepo   UserStore
	jwtService *auth.JWTService
	logger     zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo UserStore, jwtService *auth.JWTService, logger zerolog.Logger) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtService: jwtService,
		logger:     logger,
	}
}

// validateName validates a display name
func (s *AuthService) validateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return apperrors.NewValidationError("name cannot be empty")
	}
	return nil
}

// validateRoll validates a student roll number
func (s *AuthService) validateRoll(roll string) error {
	if strings.TrimSpace(roll) == "" {
		return apperrors.NewValidationError("roll number cannot be empty")
	}
	if !validation.CompiledPatterns.Roll.MatchString(roll) {
		return apperrors.NewValidationError("invalid roll number format")
	}
	return nil
}

// validateEmail validates a faculty email address
func (s *AuthService) validateEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return apperrors.NewValidationError("email cannot be empty")
	}
	if !validation.CompiledPatterns.Email.MatchString(email) {
		return apperrors.NewValidationError("invalid email format")
	}
	return nil
}

// validatePassword validates a plaintext password
func (s *AuthService) validatePassword(password string) error {
	if password == "" {
		return apperrors.NewValidationError("password cannot be empty")
	}
	return nil
}

// RegisterStudent registers a new student account. No token is issued;
// login is a separate explicit step.
func (s *AuthService) RegisterStudent(ctx context.Context, req *dto.RegisterStudentRequest) (*dto.SuccessResponse, error) {
	if err := s.validateName(req.Name); err != nil {
		return nil, err
	}
	if err := s.validateRoll(req.Roll); err != nil {
		return nil, err
	}
	if err := s.validatePassword(req.Password); err != nil {
		return nil, err
	}

	// Advisory pre-check; the store constraint decides under races
	exists, err := s.userRepo.StudentRollExists(ctx, req.Roll)
	if err != nil {
		return nil, fmt.Errorf("error checking if roll number exists: %w", err)
	}
	if exists {
		return nil, apperrors.ErrStudentAlreadyExists
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	roll := req.Roll
	user := &models.User{
		Name:     req.Name,
		Roll:     &roll,
		Password: hashedPassword,
		Role:     models.RoleStudent,
	}

	if _, err := s.userRepo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrStudentAlreadyExists
		}
		return nil, fmt.Errorf("user creation error: %w", err)
	}

	s.logger.Info().Str("roll", req.Roll).Msg("Student registered")

	return &dto.SuccessResponse{Message: "Student registered successfully"}, nil
}

// RegisterFaculty registers a new faculty account
func (s *AuthService) RegisterFaculty(ctx context.Context, req *dto.RegisterFacultyRequest) (*dto.SuccessResponse, error) {
	if err := s.validateName(req.Name); err != nil {
		return nil, err
	}
	if err := s.validateEmail(req.Email); err != nil {
		return nil, err
	}
	if err := s.validatePassword(req.Password); err != nil {
		return nil, err
	}

	exists, err := s.userRepo.FacultyEmailExists(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("error checking if email exists: %w", err)
	}
	if exists {
		return nil, apperrors.ErrFacultyAlreadyExists
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	email := req.Email
	user := &models.User{
		Name:     req.Name,
		Email:    &email,
		Password: hashedPassword,
		Role:     models.RoleFaculty,
	}

	if _, err := s.userRepo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrFacultyAlreadyExists
		}
		return nil, fmt.Errorf("user creation error: %w", err)
	}

	s.logger.Info().Str("email", req.Email).Msg("Faculty registered")

	return &dto.SuccessResponse{Message: "Faculty registered successfully"}, nil
}

// LoginStudent authenticates a student by roll number and password
func (s *AuthService) LoginStudent(ctx context.Context, req *dto.StudentLoginRequest) (*dto.TokenResponse, error) {
	if strings.TrimSpace(req.Roll) == "" {
		return nil, apperrors.NewValidationError("roll number cannot be empty")
	}
	if err := s.validatePassword(req.Password); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetStudentByRoll(ctx, req.Roll)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error looking up student: %w", err)
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		return nil, apperrors.ErrInvalidPassword
	}

	resp, err := s.generateTokenResponse(user)
	if err != nil {
		return nil, err
	}
	resp.RollNumber = user.Identifier()

	return resp, nil
}

// LoginFaculty authenticates a faculty member by email and password
func (s *AuthService) LoginFaculty(ctx context.Context, req *dto.FacultyLoginRequest) (*dto.TokenResponse, error) {
	if strings.TrimSpace(req.Email) == "" {
		return nil, apperrors.NewValidationError("email cannot be empty")
	}
	if err := s.validatePassword(req.Password); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetFacultyByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrFacultyNotFound
		}
		return nil, fmt.Errorf("error looking up faculty: %w", err)
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		return nil, apperrors.ErrInvalidPassword
	}

	return s.generateTokenResponse(user)
}

// ValidateToken pre-flights session validity for the client. It is a query,
// not a gate: an invalid token yields Valid=false, never an error.
func (s *AuthService) ValidateToken(token string) *dto.ValidateTokenResponse {
	claims, err := s.jwtService.ValidateAndExtractClaims(token)
	if err != nil {
		return &dto.ValidateTokenResponse{Valid: false}
	}

	return &dto.ValidateTokenResponse{
		Valid:      true,
		UserID:     claims.UserID,
		Identifier: claims.Identifier,
		Role:       claims.Role,
	}
}

// generateTokenResponse creates the token response for an authenticated user
func (s *AuthService) generateTokenResponse(user *models.User) (*dto.TokenResponse, error) {
	token, expiresIn, err := s.jwtService.GenerateToken(user)
	if err != nil {
		return nil, fmt.Errorf("token generation error: %w", err)
	}

	return &dto.TokenResponse{
		Token:     token,
		TokenType: "Bearer",
		ExpiresIn: int64(expiresIn),
	}, nil
}
