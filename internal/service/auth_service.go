package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/quizmakerhq/quizmaker/config"
	"github.com/quizmakerhq/quizmaker/internal/apperr"
	"github.com/quizmakerhq/quizmaker/internal/dto"
	"github.com/quizmakerhq/quizmaker/internal/model"
	"github.com/quizmakerhq/quizmaker/internal/repository"
)

const (
	ErrCodeAccountInactive   = 4032
	ErrCodeAccountUnapproved = 4033
)

const loginFailedMessage = "Please control the informations. Password is case sensitive."

type AuthService interface {
	Register(req dto.RegisterRequest) (*dto.UserResponse, error)
	// Login authenticates by username or email. When reopen is set, a
	// previously deactivated account is reactivated before the active check.
	Login(req dto.LoginRequest, reopen bool) (*dto.LoginResponse, error)
}

type authService struct {
	userRepo repository.UserRepository
	cfg      *config.Config
}

func NewAuthService(userRepo repository.UserRepository, cfg *config.Config) AuthService {
	return &authService{userRepo: userRepo, cfg: cfg}
}

func (s *authService) Register(req dto.RegisterRequest) (*dto.UserResponse, error) {
	if taken, err := s.userRepo.UsernameExists(req.Username); err != nil {
		return nil, err
	} else if taken {
		return nil, apperr.BadRequest("The username is already exist.")
	}
	if taken, err := s.userRepo.EmailExists(req.Email); err != nil {
		return nil, err
	} else if taken {
		return nil, apperr.BadRequest("The email is already exist.")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := model.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Gender:       req.Gender,
		UserType:     req.UserType,
		IsActive:     true,
	}

	switch req.UserType {
	case model.UserTypeStudent:
		if req.StudentID == "" {
			return nil, apperr.BadRequest("The student id can not be empty.")
		}
		if taken, err := s.userRepo.StudentIDExists(req.StudentID); err != nil {
			return nil, err
		} else if taken {
			return nil, apperr.BadRequest("The student id is already exist.")
		}
		user.Student = &model.Student{StudentID: req.StudentID}
	case model.UserTypeInstructor:
		// Instructors start unapproved; an admin flips the flag out-of-band.
		user.Instructor = &model.Instructor{IsApproved: false}
	}

	if err := s.userRepo.Create(&user); err != nil {
		log.Error().Err(err).Str("username", req.Username).Msg("Failed to create user")
		return nil, err
	}

	resp := toUserResponse(&user)
	return &resp, nil
}

func (s *authService) Login(req dto.LoginRequest, reopen bool) (*dto.LoginResponse, error) {
	user, err := s.userRepo.FindByLogin(req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.BadRequest(loginFailedMessage)
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apperr.BadRequest(loginFailedMessage)
	}

	if reopen && !user.IsActive {
		user.IsActive = true
		if err := s.userRepo.Update(user); err != nil {
			return nil, err
		}
	}

	if !user.IsActive {
		return nil, &apperr.AuthError{
			Reason:      "Activation",
			Description: "Account is not active. You will get this message if a user is delete his/her account",
			ErrorCode:   ErrCodeAccountInactive,
		}
	}

	if user.IsInstructor() && !user.IsApprovedInstructor() {
		return nil, &apperr.AuthError{
			Reason:      "Approved",
			Description: "Account is not approved. You will get this message if a user is not approved by admin",
			ErrorCode:   ErrCodeAccountUnapproved,
		}
	}

	token, err := s.generateToken(user.ID)
	if err != nil {
		return nil, err
	}

	profile := toUserResponse(user)
	return &dto.LoginResponse{
		ID:         user.ID,
		Username:   user.Username,
		Email:      user.Email,
		FirstName:  user.FirstName,
		LastName:   user.LastName,
		UserType:   user.UserType,
		IsStaff:    user.IsStaff,
		StudentID:  profile.StudentID,
		IsApproved: profile.IsApproved,
		Token:      token,
	}, nil
}

func (s *authService) generateToken(userID uint) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"exp":     time.Now().Add(time.Duration(s.cfg.JWT.TTLHours) * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWT.Secret))
}
