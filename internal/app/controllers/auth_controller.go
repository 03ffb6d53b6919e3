package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/interntrack/server/internal/app/models/dto"
	"github.com/interntrack/server/internal/app/services"
	"github.com/interntrack/server/internal/middleware"
)

// AuthController handles authentication endpoints
type AuthController struct {
	authService *services.AuthService
}

// NewAuthController creates a new AuthController
func NewAuthController(authService *services.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

// RegisterStudent handles POST /auth/register/student
func (c *AuthController) RegisterStudent(ctx *gin.Context) {
	var req dto.RegisterStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	resp, err := c.authService.RegisterStudent(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(resp))
}

// RegisterFaculty handles POST /auth/register/faculty
func (c *AuthController) RegisterFaculty(ctx *gin.Context) {
	var req dto.RegisterFacultyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	resp, err := c.authService.RegisterFaculty(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(resp))
}

// LoginStudent handles POST /auth/login/student
func (c *AuthController) LoginStudent(ctx *gin.Context) {
	var req dto.StudentLoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	resp, err := c.authService.LoginStudent(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(resp))
}

// LoginFaculty handles POST /auth/login/faculty
func (c *AuthController) LoginFaculty(ctx *gin.Context) {
	var req dto.FacultyLoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	resp, err := c.authService.LoginFaculty(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(resp))
}

// ValidateToken handles POST /auth/validate. Validity is reported in the
// body; an invalid or expired token answers 401 with valid=false rather
// than an error shape, so clients can pre-flight a stored token.
func (c *AuthController) ValidateToken(ctx *gin.Context) {
	var req dto.ValidateTokenRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	resp := c.authService.ValidateToken(req.Token)
	status := http.StatusOK
	if !resp.Valid {
		status = http.StatusUnauthorized
	}
	ctx.JSON(status, dto.NewAPIResponse(resp))
}

// Me handles GET /auth/me and echoes the authenticated identity
func (c *AuthController) Me(ctx *gin.Context) {
	claims, ok := middleware.GetClaims(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(&dto.MeResponse{
		UserID:     claims.UserID,
		Identifier: claims.Identifier,
		Role:       claims.Role,
	}))
}
