package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/quizmakerhq/quizmaker/config"
	"github.com/quizmakerhq/quizmaker/internal/apperr"
	"github.com/quizmakerhq/quizmaker/internal/dto"
	"github.com/quizmakerhq/quizmaker/internal/middleware"
	"github.com/quizmakerhq/quizmaker/internal/repository"
	"github.com/quizmakerhq/quizmaker/internal/service"
)

type Controller struct {
	cfg           *config.Config
	userRepo      repository.UserRepository
	authSvc       service.AuthService
	userSvc       service.UserService
	courseSvc     service.CourseService
	quizSvc       service.QuizService
	questionSvc   service.QuestionService
	submissionSvc service.SubmissionService
}

func NewController(
	cfg *config.Config,
	userRepo repository.UserRepository,
	authSvc service.AuthService,
	userSvc service.UserService,
	courseSvc service.CourseService,
	quizSvc service.QuizService,
	questionSvc service.QuestionService,
	submissionSvc service.SubmissionService,
) *Controller {
	return &Controller{
		cfg:           cfg,
		userRepo:      userRepo,
		authSvc:       authSvc,
		userSvc:       userSvc,
		courseSvc:     courseSvc,
		quizSvc:       quizSvc,
		questionSvc:   questionSvc,
		submissionSvc: submissionSvc,
	}
}

func (ctrl *Controller) RegisterRoutes(router *gin.Engine) {
	apiV1 := router.Group("/api/v1")
	{
		apiV1.POST("/register", ctrl.RegisterHandler)
		apiV1.POST("/login", ctrl.LoginHandler)
		apiV1.POST("/password-reset", ctrl.PasswordResetHandler)

		authed := apiV1.Group("")
		authed.Use(middleware.Authenticate(ctrl.cfg, ctrl.userRepo))
		{
			users := authed.Group("/users")
			users.GET("/me", ctrl.GetMeHandler)
			users.PUT("/update", ctrl.UpdateUserHandler)
			users.DELETE("/delete", ctrl.DeactivateUserHandler)
			users.PUT("/change-password", ctrl.ChangePasswordHandler)
			users.GET("/students", ctrl.ListStudentsHandler)

			courses := authed.Group("/courses")
			courses.POST("", ctrl.CreateCourseHandler)
			courses.GET("", ctrl.ListCoursesHandler)
			courses.GET("/owned", ctrl.ListOwnedCoursesHandler)
			courses.GET("/enrolled", ctrl.ListEnrolledCoursesHandler)
			courses.GET("/:id", ctrl.GetCourseHandler)
			courses.PUT("/:id", ctrl.UpdateCourseHandler)
			courses.DELETE("/:id", ctrl.DeleteCourseHandler)
			courses.POST("/:id/students/add", ctrl.AddCourseStudentHandler)
			courses.POST("/:id/students/remove", ctrl.RemoveCourseStudentHandler)

			quizzes := authed.Group("/quizzes")
			quizzes.POST("", ctrl.CreateQuizHandler)
			quizzes.GET("", ctrl.ListPublicQuizzesHandler)
			quizzes.GET("/owner", ctrl.ListOwnedQuizzesHandler)
			quizzes.GET("/participator/end", ctrl.ListEndedQuizzesHandler)
			quizzes.GET("/participator/waiting", ctrl.ListWaitingQuizzesHandler)
			quizzes.GET("/:id", ctrl.GetQuizHandler)
			quizzes.PUT("/:id", ctrl.UpdateQuizHandler)
			quizzes.DELETE("/:id", ctrl.DeleteQuizHandler)
			quizzes.POST("/:id/append", ctrl.AppendQuizHandler)
			quizzes.GET("/:id/participants", ctrl.QuizParticipantsHandler)
			quizzes.GET("/:id/stats", ctrl.QuizParticipantStatsHandler)
			quizzes.GET("/:id/answers", ctrl.MyAnswersHandler)
			quizzes.GET("/:id/answers/:participant_id", ctrl.OwnerAnswersHandler)

			questions := authed.Group("/questions")
			questions.POST("", ctrl.CreateQuestionHandler)
			questions.PUT("/:id", ctrl.UpdateQuestionHandler)
			questions.DELETE("/:id", ctrl.DeleteQuestionHandler)

			answers := authed.Group("/answers")
			answers.POST("", ctrl.SubmitAnswersHandler)
			answers.POST("/validate", ctrl.GradePaperHandler)
		}
	}
}

func respondError(c *gin.Context, err error) {
	var authErr *apperr.AuthError
	if errors.As(err, &authErr) {
		c.JSON(http.StatusForbidden, dto.AuthErrorResponse{
			Error:            authErr.Reason,
			ErrorDescription: authErr.Description,
			ErrorCode:        authErr.ErrorCode,
		})
		return
	}
	c.JSON(apperr.StatusOf(err), dto.ErrorResponse{Message: err.Error()})
}

func parseID(c *gin.Context, param string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(param), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid ID format"})
		return 0, false
	}
	return uint(id), true
}
