package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"main/handler"
	"main/middleware"
	"main/repository"
	"main/services"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func init() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil && os.Getenv("GO_ENV") != "test" {
		log.Fatalf("Error loading .env file: %v", err)
	}

	requiredEnvVars := []string{
		"MONGO_URI",
		"MONGO_DB",
		"JWT_SECRET_KEY",
		"JWT_EXPIRATION_TIME",
		"REFRESH_TOKEN_EXPIRATION_TIME",
		"PORT",
	}

	for _, envVar := range requiredEnvVars {
		if os.Getenv(envVar) == "" && os.Getenv("GO_ENV") != "test" {
			log.Fatalf("Required environment variable %s is not set", envVar)
		}
	}

	utils.InitValidator()
	utils.InitJWT()
	utils.InitMongoClient()

	// Redis-backed pieces are optional; without them logout invalidation
	// and report caching degrade gracefully.
	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		blacklist, err := services.NewTokenBlacklist(redisURL)
		if err != nil {
			log.Printf("Token blacklist disabled: %v", err)
		} else {
			services.TokenBlacklist = blacklist
		}

		cache, err := services.NewReportCache(redisURL, 15*time.Minute)
		if err != nil {
			log.Printf("Report cache disabled: %v", err)
		} else {
			services.GlobalReportCache = cache
		}
	}

	dbName := utils.GetEnvAsString("MONGO_DB", "planner")
	if err := repository.SetupIndexes(utils.MongoClient.Database(dbName)); err != nil {
		log.Printf("Index setup failed: %v", err)
	}
}

func setupRouter() *gin.Engine {
	router := gin.Default()

	// Repositories
	sessionRepo := repository.GetSessionRepo(utils.MongoClient)
	userRepo := repository.GetUserRepo(utils.MongoClient)
	classesRepo := repository.GetClassesRepo(utils.MongoClient)
	assignmentsRepo := repository.GetAssignmentsRepo(utils.MongoClient)
	studyRepo := repository.GetStudySessionsRepo(utils.MongoClient)
	settingsRepo := repository.GetSettingsRepo(utils.MongoClient)
	streaksRepo := repository.GetStreaksRepo(utils.MongoClient)
	warningsRepo := repository.GetWarningsRepo(utils.MongoClient)
	goalsRepo := repository.GetGoalsRepo(utils.MongoClient)
	reflectionsRepo := repository.GetReflectionsRepo(utils.MongoClient)

	// Services
	streakService := usecase.NewStreakService(streaksRepo)
	assignmentsService := usecase.NewAssignmentsService(assignmentsRepo, classesRepo)
	studyService := usecase.NewStudySessionsService(studyRepo, streakService)
	workloadService := usecase.NewWorkloadService(assignmentsRepo, studyRepo, settingsRepo)
	riskService := usecase.NewRiskService(assignmentsRepo, studyRepo, warningsRepo, streaksRepo)
	goalsService := usecase.NewGoalsService(goalsRepo)
	reflectionsService := usecase.NewReflectionsService(reflectionsRepo)

	// Handlers
	workloadHandler := handler.NewWorkloadHandler(workloadService, services.GlobalReportCache)
	riskHandler := handler.NewRiskHandler(riskService)
	warningsHandler := handler.NewWarningsHandler(warningsRepo)
	assignmentsHandler := handler.NewAssignmentsHandler(assignmentsService)
	classesHandler := handler.NewClassesHandler(classesRepo)
	studyHandler := handler.NewStudySessionsHandler(studyService)
	settingsHandler := handler.NewSettingsHandler(settingsRepo)
	streakHandler := handler.NewStreakHandler(streakService)
	goalsHandler := handler.NewGoalsHandler(goalsService)
	reflectionsHandler := handler.NewReflectionsHandler(reflectionsService)
	sessionHandler := handler.NewSessionHandler(sessionRepo)
	statsHandler := handler.NewStatsHandler(userRepo, classesRepo, assignmentsRepo, studyRepo, streaksRepo, warningsRepo, sessionRepo)

	// Global middleware
	router.Use(middleware.EnhancedRecoveryMiddleware())
	router.Use(middleware.RequestTracingMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.MetricsMiddleware())
	router.Use(middleware.RequestSizeLimiter(1 << 20))
	router.Use(middleware.SessionMiddleware(sessionRepo))

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Public routes
	public := router.Group("/api")
	{
		auth := public.Group("/auth")
		{
			auth.POST("/register", handler.RegistrationHandler)
			auth.POST("/login", func(c *gin.Context) {
				handler.LoginHandler(c, sessionRepo)
			})
			auth.POST("/refresh", handler.RefreshHandler)
		}
	}

	// Protected routes
	protected := router.Group("/api")
	protected.Use(middleware.AuthMiddleware())
	{
		user := protected.Group("/user")
		{
			user.GET("/profile", handler.ProfileHandler)
			user.POST("/change-email", handler.ChangeEmailHandler)
			user.POST("/change-password", handler.ChangePasswordHandler)
			user.POST("/logout", func(c *gin.Context) {
				handler.LogoutHandler(c, sessionRepo)
			})
			user.DELETE("/delete", func(c *gin.Context) {
				handler.DeleteUserHandler(c, sessionRepo)
			})
		}

		twoFactor := protected.Group("/2fa")
		{
			twoFactor.POST("/generate", handler.Generate2FASecretHandler)
			twoFactor.POST("/enable", handler.Enable2FAHandler)
			twoFactor.POST("/disable", handler.Disable2FAHandler)
			twoFactor.POST("/recovery", handler.UseRecoveryCodeHandler)
		}

		sessions := protected.Group("/sessions")
		{
			sessions.GET("/active", sessionHandler.ListActiveSessions)
			sessions.POST("/logout-all", sessionHandler.LogoutAll)
		}

		classes := protected.Group("/classes")
		{
			classes.GET("/", classesHandler.ListClasses)
			classes.POST("/", classesHandler.CreateClass)
			classes.PUT("/:id", classesHandler.UpdateClass)
			classes.DELETE("/:id", classesHandler.DeleteClass)
		}

		assignments := protected.Group("/assignments")
		{
			assignments.GET("/", assignmentsHandler.ListAssignments)
			assignments.POST("/", assignmentsHandler.CreateAssignment)
			assignments.PUT("/:id", assignmentsHandler.UpdateAssignment)
			assignments.POST("/:id/grade", assignmentsHandler.RecordGrade)
			assignments.DELETE("/:id", assignmentsHandler.DeleteAssignment)
		}

		study := protected.Group("/study-sessions")
		{
			study.GET("/", studyHandler.ListSessions)
			study.POST("/", studyHandler.LogSession)
			study.GET("/weekly-summary", studyHandler.WeeklySummary)
			study.DELETE("/:id", studyHandler.DeleteSession)
		}

		workload := protected.Group("/workload")
		{
			workload.GET("/report", workloadHandler.GetWorkloadReport)
		}

		risks := protected.Group("/risks")
		{
			risks.GET("/", riskHandler.GetRisks)
			risks.POST("/warnings/generate", riskHandler.GenerateWarnings)
		}

		warnings := protected.Group("/warnings")
		{
			warnings.GET("/", warningsHandler.ListWarnings)
			warnings.POST("/:id/read", warningsHandler.MarkRead)
		}

		settings := protected.Group("/settings")
		{
			settings.GET("/", settingsHandler.GetSettings)
			settings.PUT("/", settingsHandler.UpdateSettings)
		}

		protected.GET("/streaks", streakHandler.GetStreaks)

		goals := protected.Group("/goals")
		{
			goals.GET("/", goalsHandler.ListGoals)
			goals.POST("/", goalsHandler.CreateGoal)
			goals.PUT("/:id", goalsHandler.UpdateGoal)
			goals.POST("/:id/toggle", goalsHandler.ToggleComplete)
			goals.DELETE("/:id", goalsHandler.DeleteGoal)
		}

		reflections := protected.Group("/reflections")
		{
			reflections.GET("/", reflectionsHandler.ListReflections)
			reflections.POST("/", reflectionsHandler.CreateReflection)
			reflections.PUT("/:id", reflectionsHandler.UpdateReflection)
			reflections.DELETE("/:id", reflectionsHandler.DeleteReflection)
		}

		stats := protected.Group("/stats")
		{
			stats.GET("/", statsHandler.GetUserStats)
			stats.GET("/system", statsHandler.GetSystemStats)
		}
	}

	return router
}

func main() {
	router := setupRouter()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	serverAddr := fmt.Sprintf(":%s", port)
	log.Printf("Server starting on %s", serverAddr)
	if err := router.Run(serverAddr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
