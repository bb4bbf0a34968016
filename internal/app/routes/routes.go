package routes

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/adityavkr/hostelhub/internal/app/controllers"
	"github.com/adityavkr/hostelhub/internal/app/models"
	"github.com/adityavkr/hostelhub/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	roomController *controllers.RoomController,
	studentController *controllers.StudentController,
	wardenController *controllers.WardenController,
	foodMenuController *controllers.FoodMenuController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api")

	// --- Public routes ---
	api.POST("/login", authController.Login)
	api.GET("/health", authController.HealthCheck)

	// --- Authenticated routes (any role) ---
	authenticated := api.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.GET("/profile", authController.GetProfile)
		authenticated.POST("/change-password", authController.ChangePassword)

		authenticated.GET("/rooms", roomController.ListRooms)
		authenticated.GET("/rooms/:roomId", roomController.GetRoomDetails)

		authenticated.GET("/food-menu", foodMenuController.GetWeeklyMenu)
	}

	// --- Student-only routes ---
	student := authenticated.Group("/student")
	student.Use(authMiddleware.RoleRequired(string(models.RoleStudent)))
	{
		student.GET("/my-room", studentController.GetMyRoom)
		student.POST("/room-change-request", studentController.SubmitRoomChangeRequest)
		student.GET("/warden-contact", studentController.GetWardenContact)
		student.POST("/personal-details-update-request", studentController.SubmitPersonalDetailsRequest)
	}

	// --- Warden-only routes ---
	warden := authenticated.Group("/warden")
	warden.Use(authMiddleware.RoleRequired(string(models.RoleWarden)))
	{
		warden.POST("/create-student", wardenController.CreateStudent)
		warden.POST("/assign-room", wardenController.AssignRoom)
		warden.POST("/rooms", roomController.CreateRoom)

		warden.GET("/students", wardenController.ListStudents)
		warden.GET("/students/export", wardenController.ExportStudents)
		warden.GET("/students/:id", wardenController.GetStudent)
		warden.PUT("/students/:id", wardenController.UpdateStudent)
		warden.DELETE("/students/:id", wardenController.DeleteStudent)

		warden.GET("/room-change-requests", wardenController.ListRoomChangeRequests)
		warden.PUT("/room-change-requests/:id/approve", wardenController.ApproveRoomChange)
		warden.PUT("/room-change-requests/:id/reject", wardenController.RejectRoomChange)

		warden.GET("/personal-details-update-requests", wardenController.ListPersonalDetailsRequests)
		warden.PUT("/personal-details-update-requests/:id/approve", wardenController.ApprovePersonalDetails)
		warden.PUT("/personal-details-update-requests/:id/reject", wardenController.RejectPersonalDetails)

		warden.POST("/food-menu", foodMenuController.CreateEntry)
		warden.PUT("/food-menu/:id", foodMenuController.UpdateEntry)
		warden.DELETE("/food-menu/:id", foodMenuController.DeleteEntry)
	}
}
