package dto

import "time"

// QuizQuestionPayload lets a quiz be created together with its questions.
type QuizQuestionPayload struct {
	Question     string  `json:"question" binding:"required"`
	QuestionType string  `json:"question_type" binding:"required,oneof=text multichoice truefalse"`
	Answer       string  `json:"answer"`
	Point        int     `json:"point" binding:"min=0"`
	OptionA      *string `json:"A"`
	OptionB      *string `json:"B"`
	OptionC      *string `json:"C"`
	OptionD      *string `json:"D"`
}

type QuizCreateRequest struct {
	Name        string                `json:"name" binding:"required,max=50"`
	Description string                `json:"description"`
	CourseID    *uint                 `json:"course"`
	Start       time.Time             `json:"start" binding:"required"`
	End         time.Time             `json:"end" binding:"required"`
	BeGraded    bool                  `json:"be_graded"`
	Percentage  float64               `json:"percentage" binding:"min=0,max=100"`
	Questions   []QuizQuestionPayload `json:"questions" binding:"omitempty,dive"`
}

type QuizUpdateRequest struct {
	Name        *string    `json:"name" binding:"omitempty,max=50"`
	Description *string    `json:"description"`
	CourseID    *uint      `json:"course"`
	Start       *time.Time `json:"start"`
	End         *time.Time `json:"end"`
	BeGraded    *bool      `json:"be_graded"`
	Percentage  *float64   `json:"percentage" binding:"omitempty,min=0,max=100"`
}

type QuizResponse struct {
	ID           uint                      `json:"id"`
	OwnerID      uint                      `json:"owner_id"`
	OwnerName    string                    `json:"owner_name"`
	CourseID     *uint                     `json:"course,omitempty"`
	CourseName   *string                   `json:"course_name,omitempty"`
	Name         string                    `json:"name"`
	Description  string                    `json:"description"`
	Start        time.Time                 `json:"start"`
	End          time.Time                 `json:"end"`
	BeGraded     bool                      `json:"be_graded"`
	Percentage   float64                   `json:"percentage"`
	IsPrivate    bool                      `json:"is_private"`
	Status       string                    `json:"status"`
	Participants []QuizParticipantResponse `json:"participants"`
	Questions    []QuestionResponse        `json:"questions"`
}

type QuizParticipantResponse struct {
	ID          uint          `json:"id"`
	QuizID      uint          `json:"quiz"`
	Participant *UserResponse `json:"participant,omitempty"`
	Grade       float64       `json:"grade"`
	Completion  float64       `json:"completion"`
	FinishedIn  *time.Time    `json:"finished_in,omitempty"`
}
