package dto

type CourseCreateRequest struct {
	Name string `json:"name" binding:"required,max=50"`
}

type CourseUpdateRequest struct {
	Name string `json:"name" binding:"required,max=50"`
}

// CourseStudentRequest identifies a student by the user ID of their account.
type CourseStudentRequest struct {
	StudentID uint `json:"student_id" binding:"required"`
}

type CourseResponse struct {
	ID       uint           `json:"id"`
	Name     string         `json:"name"`
	Slug     string         `json:"slug"`
	OwnerID  *uint          `json:"owner_id,omitempty"`
	Students []UserResponse `json:"students"`
}
