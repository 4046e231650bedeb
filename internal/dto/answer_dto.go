package dto

import "time"

type AnswerItem struct {
	QuestionID uint   `json:"question_id" binding:"required"`
	Answer     string `json:"answer"`
}

// AnswerBatchRequest carries all answers of one submission.
type AnswerBatchRequest struct {
	QuizID     uint         `json:"quiz_id" binding:"required"`
	FinishedIn *time.Time   `json:"finished_in"`
	Answers    []AnswerItem `json:"answers" binding:"required,min=1,dive"`
}

type ParticipantAnswerResponse struct {
	ID            uint             `json:"id"`
	Question      QuestionResponse `json:"question"`
	Answer        string           `json:"answer"`
	ParticipantID uint             `json:"participant_id"`
	IsCorrect     bool             `json:"is_correct"`
	IsValidated   bool             `json:"is_validated"`
	Point         int              `json:"point"`
}

type GradeItem struct {
	QuestionID uint `json:"question_id" binding:"required"`
	Point      int  `json:"point" binding:"min=0"`
}

// GradeBatchRequest is an instructor's manual grading of one participant's paper.
type GradeBatchRequest struct {
	QuizID        uint        `json:"quiz_id" binding:"required"`
	ParticipantID uint        `json:"participant_id" binding:"required"`
	Answers       []GradeItem `json:"answers" binding:"required,min=1,dive"`
}

// GradeErrorResponse describes one rejected item of a grading batch.
type GradeErrorResponse struct {
	Message       string `json:"message"`
	QuestionID    uint   `json:"question_id"`
	QuestionPoint int    `json:"question_point"`
	Point         int    `json:"point"`
}
