package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/quizmakerhq/quizmaker/config"
	"github.com/quizmakerhq/quizmaker/database"
	"github.com/quizmakerhq/quizmaker/internal/controller"
	"github.com/quizmakerhq/quizmaker/internal/email"
	"github.com/quizmakerhq/quizmaker/internal/event"
	"github.com/quizmakerhq/quizmaker/internal/logger"
	"github.com/quizmakerhq/quizmaker/internal/model"
	"github.com/quizmakerhq/quizmaker/internal/repository"
	"github.com/quizmakerhq/quizmaker/internal/service"
)

// @title QuizMaker API
// @version 1.0
// @description Quiz management service for instructors and students: courses, timed quizzes, submissions and grading.
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	logger.Init()

	app := fx.New(
		fx.Provide(
			config.NewConfig,
			database.NewDatabase,
			NewGinEngine,
			event.NewBus,
			NewEmailService,
		),

		fx.Provide(
			repository.NewUserRepository,
			repository.NewCourseRepository,
			repository.NewQuizRepository,
			repository.NewQuestionRepository,
			repository.NewQuizParticipantRepository,
			repository.NewParticipantAnswerRepository,
		),

		fx.Provide(
			service.NewAuthService,
			service.NewUserService,
			service.NewCourseService,
			service.NewQuizService,
			service.NewQuestionService,
			service.NewSubmissionService,
			service.NewNotifier,
		),

		fx.Provide(controller.NewController),

		fx.Invoke(AutoMigrateDB),
		fx.Invoke(RegisterNotifier),
		fx.Invoke(RegisterRoutesAndStartServer),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down")
}

func NewGinEngine() *gin.Engine {
	r := gin.New()

	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// URL: http://localhost:PORT/swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// NewEmailService picks the Sendgrid sender when an API key is configured and
// falls back to console logging otherwise.
func NewEmailService(cfg *config.Config) email.Service {
	if cfg.Email.SendgridAPIKey != "" {
		return email.NewSendgridService(cfg)
	}
	log.Warn().Msg("No Sendgrid API key configured, emails are logged to the console")
	return email.NewConsoleService()
}

func RegisterNotifier(bus *event.Bus, notifier *service.Notifier) {
	notifier.Register(bus)
}

func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	ctrl *controller.Controller,
) {
	ctrl.RegisterRoutes(router)

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("QuizMaker API server starting on port %s", cfg.Server.Port)
			log.Info().Msgf("Swagger UI available at http://localhost:%s/swagger/index.html", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations")
	err := db.AutoMigrate(
		&model.User{},
		&model.Instructor{},
		&model.Student{},
		&model.Course{},
		&model.Quiz{},
		&model.Question{},
		&model.QuizParticipant{},
		&model.ParticipantAnswer{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed")
	return nil
}
