package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/interntrack/server/internal/app/models"
	"github.com/interntrack/server/internal/app/models/dto"
	"github.com/interntrack/server/internal/app/services"
	"github.com/interntrack/server/internal/middleware"
)

// InternshipController handles internship record endpoints
type InternshipController struct {
	internshipService *services.InternshipService
}

// NewInternshipController creates a new InternshipController
func NewInternshipController(internshipService *services.InternshipService) *InternshipController {
	return &InternshipController{internshipService: internshipService}
}

// Create handles POST /internships
func (c *InternshipController) Create(ctx *gin.Context) {
	var req dto.CreateInternshipRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	internship, err := c.internshipService.Create(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(internship))
}

// GetAll handles GET /internships with optional department, status and
// search query filters.
func (c *InternshipController) GetAll(ctx *gin.Context) {
	filter := models.InternshipFilter{
		Department: ctx.Query("department"),
		Status:     models.Status(ctx.Query("status")),
		Search:     ctx.Query("search"),
	}

	internships, err := c.internshipService.GetAll(ctx, filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(internships))
}

// GetByRollNumber handles GET /internships/:rollNumber
func (c *InternshipController) GetByRollNumber(ctx *gin.Context) {
	internship, err := c.internshipService.GetByRollNumber(ctx, ctx.Param("rollNumber"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(internship))
}

// Update handles PUT /internships/:id
func (c *InternshipController) Update(ctx *gin.Context) {
	id, err := parseID(ctx)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid record id").WithField("id")))
		return
	}

	var req dto.UpdateInternshipRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	claims, ok := middleware.GetClaims(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
		return
	}

	internship, err := c.internshipService.Update(ctx, id, &req, claims)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(internship))
}

// Delete handles DELETE /internships/:id
func (c *InternshipController) Delete(ctx *gin.Context) {
	id, err := parseID(ctx)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid record id").WithField("id")))
		return
	}

	claims, ok := middleware.GetClaims(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
		return
	}

	if err := c.internshipService.Delete(ctx, id, claims); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(&dto.SuccessResponse{Message: "Internship record deleted"}))
}

func parseID(ctx *gin.Context) (int64, error) {
	return strconv.ParseInt(ctx.Param("id"), 10, 64)
}
