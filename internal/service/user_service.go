package service

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/quizmakerhq/quizmaker/internal/apperr"
	"github.com/quizmakerhq/quizmaker/internal/dto"
	"github.com/quizmakerhq/quizmaker/internal/model"
	"github.com/quizmakerhq/quizmaker/internal/repository"
)

type UserService interface {
	Get(id uint) (*dto.UserResponse, error)
	Update(user *model.User, req dto.UserUpdateRequest) (*dto.UserResponse, error)
	ChangePassword(user *model.User, req dto.ChangePasswordRequest) error
	Deactivate(user *model.User) error
	RequestPasswordReset(email string) string
	ListStudents() ([]dto.UserResponse, error)
}

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) Get(id uint) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("User is not found.")
		}
		return nil, err
	}
	resp := toUserResponse(user)
	return &resp, nil
}

func (s *userService) Update(user *model.User, req dto.UserUpdateRequest) (*dto.UserResponse, error) {
	if req.Email != nil && *req.Email != user.Email {
		taken, err := s.userRepo.EmailExists(*req.Email)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, apperr.BadRequest("The email is already exist.")
		}
		user.Email = *req.Email
	}
	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}
	resp := toUserResponse(user)
	return &resp, nil
}

func (s *userService) ChangePassword(user *model.User, req dto.ChangePasswordRequest) error {
	if req.OldPassword == req.NewPassword {
		return apperr.BadRequest("The old and new password cannot be the same.")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.OldPassword)); err != nil {
		return apperr.BadRequest("Old password is wrong.")
	}
	if req.NewPassword != req.ConfirmPassword {
		return apperr.BadRequest("Passwords do not match.")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.PasswordHash = string(hash)
	return s.userRepo.Update(user)
}

// Deactivate soft-deletes the account; the login reopen flag reverses it.
func (s *userService) Deactivate(user *model.User) error {
	user.IsActive = false
	return s.userRepo.Update(user)
}

// RequestPasswordReset answers with a human readable status message and
// never fails the request itself.
func (s *userService) RequestPasswordReset(email string) string {
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		return "The user with this email is not found."
	}
	if !user.IsActive {
		return "The user with this email has been deleted."
	}
	return "The request for reset password has been send to your email."
}

func (s *userService) ListStudents() ([]dto.UserResponse, error) {
	students, err := s.userRepo.FindStudents()
	if err != nil {
		return nil, err
	}
	resp := make([]dto.UserResponse, 0, len(students))
	for i := range students {
		if students[i].User == nil {
			continue
		}
		user := *students[i].User
		user.Student = &students[i]
		resp = append(resp, toUserResponse(&user))
	}
	return resp, nil
}
