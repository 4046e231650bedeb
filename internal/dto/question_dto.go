package dto

type QuestionCreateRequest struct {
	QuizID       uint    `json:"quiz_id" binding:"required"`
	Question     string  `json:"question" binding:"required"`
	QuestionType string  `json:"question_type" binding:"required,oneof=text multichoice truefalse"`
	Answer       string  `json:"answer"`
	Point        int     `json:"point" binding:"min=0"`
	OptionA      *string `json:"A"`
	OptionB      *string `json:"B"`
	OptionC      *string `json:"C"`
	OptionD      *string `json:"D"`
}

type QuestionUpdateRequest struct {
	Question     *string `json:"question"`
	QuestionType *string `json:"question_type" binding:"omitempty,oneof=text multichoice truefalse"`
	Answer       *string `json:"answer"`
	Point        *int    `json:"point" binding:"omitempty,min=0"`
	OptionA      *string `json:"A"`
	OptionB      *string `json:"B"`
	OptionC      *string `json:"C"`
	OptionD      *string `json:"D"`
}

type QuestionResponse struct {
	ID           uint    `json:"id"`
	Question     string  `json:"question"`
	QuestionType string  `json:"question_type"`
	Answer       string  `json:"answer"`
	Point        int     `json:"point"`
	OptionA      *string `json:"A,omitempty"`
	OptionB      *string `json:"B,omitempty"`
	OptionC      *string `json:"C,omitempty"`
	OptionD      *string `json:"D,omitempty"`
}
