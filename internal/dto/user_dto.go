package dto

type RegisterRequest struct {
	Username  string `json:"username" binding:"required,max=30"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=6"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Gender    string `json:"gender" binding:"required,oneof=female male"`
	UserType  string `json:"user_type" binding:"required,oneof=instructor student"`
	StudentID string `json:"student_id"` // required when user_type=student
}

type LoginRequest struct {
	// Username accepts either the username or the email address.
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	ID         uint    `json:"id"`
	Username   string  `json:"username"`
	Email      string  `json:"email"`
	FirstName  string  `json:"first_name"`
	LastName   string  `json:"last_name"`
	UserType   string  `json:"user_type"`
	IsStaff    bool    `json:"is_staff"`
	StudentID  *string `json:"student_id,omitempty"`
	IsApproved *bool   `json:"is_approved,omitempty"`
	Token      string  `json:"token"`
}

type UserResponse struct {
	ID         uint    `json:"id"`
	Username   string  `json:"username"`
	Email      string  `json:"email"`
	FirstName  string  `json:"first_name"`
	LastName   string  `json:"last_name"`
	Gender     string  `json:"gender"`
	UserType   string  `json:"user_type"`
	IsStaff    bool    `json:"is_staff"`
	StudentID  *string `json:"student_id,omitempty"`
	IsApproved *bool   `json:"is_approved,omitempty"`
}

type UserUpdateRequest struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Email     *string `json:"email" binding:"omitempty,email"`
}

type ChangePasswordRequest struct {
	OldPassword     string `json:"old_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=6"`
	ConfirmPassword string `json:"confirm_password" binding:"required"`
}

type PasswordResetRequest struct {
	Email string `json:"email" binding:"required,email"`
}
