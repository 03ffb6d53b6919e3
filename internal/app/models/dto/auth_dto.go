package dto

// RegisterStudentRequest represents a student registration request
type RegisterStudentRequest struct {
	Name     string `json:"name" binding:"required"`
	Roll     string `json:"roll" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RegisterFacultyRequest represents a faculty registration request
type RegisterFacultyRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// StudentLoginRequest represents student login credentials
type StudentLoginRequest struct {
	Roll     string `json:"roll" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// FacultyLoginRequest represents faculty login credentials
type FacultyLoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// TokenResponse represents JWT token information. RollNumber is only set
// for student logins.
type TokenResponse struct {
	Token      string `json:"token"`
	TokenType  string `json:"tokenType" example:"Bearer"`
	ExpiresIn  int64  `json:"expiresIn"`
	RollNumber string `json:"rollNumber,omitempty"`
}

// ValidateTokenRequest carries a token to pre-flight session validity
type ValidateTokenRequest struct {
	Token string `json:"token" binding:"required"`
}

// ValidateTokenResponse reports token validity and the decoded claims
type ValidateTokenResponse struct {
	Valid      bool   `json:"valid"`
	UserID     int64  `json:"userId,omitempty"`
	Identifier string `json:"identifier,omitempty"`
	Role       string `json:"role,omitempty"`
}

// MeResponse echoes the authenticated identity
type MeResponse struct {
	UserID     int64  `json:"userId"`
	Identifier string `json:"identifier"`
	Role       string `json:"role"`
}
