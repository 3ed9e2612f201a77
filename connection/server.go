package connection

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"tasktracker/config"
	authcontroller "tasktracker/controller/auth"
	taskcontroller "tasktracker/controller/task"
	usercontroller "tasktracker/controller/user"
	"tasktracker/repository"
	"tasktracker/services"
)

func StartServer() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg := config.Load()
	if cfg.IsDevelopment() {
		gin.SetMode(gin.DebugMode)
	}

	fb, err := FBConnection(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize Firestore client: %v", err)
	}

	taskRepo := repository.NewFirestoreTaskRepository(fb)
	userRepo := repository.NewFirestoreUserRepository(fb)
	tokenRepo := repository.NewFirestoreRefreshTokenRepository(fb)

	tokenService := services.NewTokenService(cfg.JWT)
	taskService := services.NewTaskService(taskRepo, services.SystemClock{})

	router := gin.Default()
	router.Use(cors.Default())

	router.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "Api is running!"})
	})

	authcontroller.SignUpController(router, userRepo)
	authcontroller.SignInController(router, userRepo, tokenRepo, tokenService)
	authcontroller.RefreshTokenController(router, userRepo, tokenRepo, tokenService)
	taskcontroller.TaskController(router, taskService)
	usercontroller.UserController(router, userRepo)

	if err := router.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
