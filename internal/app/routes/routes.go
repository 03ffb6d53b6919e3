package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/interntrack/server/internal/app/controllers"
	"github.com/interntrack/server/internal/app/models"
	"github.com/interntrack/server/internal/middleware"
	"github.com/interntrack/server/internal/pkg/auth"
)

// Controllers bundles the handler sets the router mounts
type Controllers struct {
	Auth       *controllers.AuthController
	Internship *controllers.InternshipController
}

// SetupRoutes mounts the API under /api/v1 and keeps the unversioned /auth
// and /internships mounts for existing clients.
func SetupRoutes(router *gin.Engine, jwtService *auth.JWTService, ctrl *Controllers) {
	v1 := router.Group("/api/v1")
	registerAPI(v1, jwtService, ctrl)

	// Legacy mounts, same handlers
	registerAPI(&router.RouterGroup, jwtService, ctrl)
}

func registerAPI(g *gin.RouterGroup, jwtService *auth.JWTService, ctrl *Controllers) {
	student := string(models.RoleStudent)
	faculty := string(models.RoleFaculty)

	authGroup := g.Group("/auth")
	{
		authGroup.POST("/register/student", ctrl.Auth.RegisterStudent)
		authGroup.POST("/register/faculty", ctrl.Auth.RegisterFaculty)
		authGroup.POST("/login/student", ctrl.Auth.LoginStudent)
		authGroup.POST("/login/faculty", ctrl.Auth.LoginFaculty)
		authGroup.POST("/validate", ctrl.Auth.ValidateToken)
		authGroup.GET("/me", middleware.JWTAuth(jwtService), ctrl.Auth.Me)
	}

	internships := g.Group("/internships")
	internships.Use(middleware.JWTAuth(jwtService))
	{
		internships.GET("", middleware.RoleRequired(faculty), ctrl.Internship.GetAll)
		internships.POST("", middleware.RoleRequired(student), ctrl.Internship.Create)
		internships.GET("/:rollNumber", middleware.RoleRequired(student, faculty), ctrl.Internship.GetByRollNumber)
		internships.PUT("/:id", middleware.RoleRequired(student, faculty), ctrl.Internship.Update)
		internships.DELETE("/:id", middleware.RoleRequired(student, faculty), ctrl.Internship.Delete)
	}

	g.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
