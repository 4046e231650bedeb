package service

import (
	"time"

	"github.com/jinzhu/copier"

	"github.com/quizmakerhq/quizmaker/internal/dto"
	"github.com/quizmakerhq/quizmaker/internal/model"
)

func toUserResponse(user *model.User) dto.UserResponse {
	var resp dto.UserResponse
	copier.Copy(&resp, user)
	if user.Student != nil {
		studentID := user.Student.StudentID
		resp.StudentID = &studentID
	}
	if user.Instructor != nil {
		approved := user.Instructor.IsApproved
		resp.IsApproved = &approved
	}
	return resp
}

func toQuestionResponse(question *model.Question) dto.QuestionResponse {
	var resp dto.QuestionResponse
	copier.Copy(&resp, question)
	return resp
}

func toCourseResponse(course *model.Course) dto.CourseResponse {
	resp := dto.CourseResponse{
		ID:       course.ID,
		Name:     course.Name,
		Slug:     course.Slug,
		OwnerID:  course.OwnerID,
		Students: []dto.UserResponse{},
	}
	for i := range course.Students {
		student := course.Students[i]
		if student.User == nil {
			continue
		}
		resp.Students = append(resp.Students, toUserResponse(student.User))
	}
	return resp
}

func toParticipantResponse(p *model.QuizParticipant) dto.QuizParticipantResponse {
	resp := dto.QuizParticipantResponse{
		ID:         p.ID,
		QuizID:     p.QuizID,
		Grade:      p.Grade,
		Completion: p.Completion,
		FinishedIn: p.FinishedIn,
	}
	if p.Participant.ID != 0 {
		user := toUserResponse(&p.Participant)
		resp.Participant = &user
	}
	return resp
}

func toQuizResponse(quiz *model.Quiz, now time.Time) dto.QuizResponse {
	resp := dto.QuizResponse{
		ID:           quiz.ID,
		OwnerID:      quiz.OwnerID,
		OwnerName:    quiz.Owner.Username,
		CourseID:     quiz.CourseID,
		Name:         quiz.Name,
		Description:  quiz.Description,
		Start:        quiz.Start,
		End:          quiz.End,
		BeGraded:     quiz.BeGraded,
		Percentage:   quiz.Percentage,
		IsPrivate:    quiz.IsPrivate,
		Status:       quiz.Status(now),
		Participants: []dto.QuizParticipantResponse{},
		Questions:    []dto.QuestionResponse{},
	}
	if quiz.Course != nil {
		name := quiz.Course.Name
		resp.CourseName = &name
	}
	for i := range quiz.Participants {
		resp.Participants = append(resp.Participants, toParticipantResponse(&quiz.Participants[i]))
	}
	for i := range quiz.Questions {
		resp.Questions = append(resp.Questions, toQuestionResponse(&quiz.Questions[i]))
	}
	return resp
}

func toAnswerResponse(answer *model.ParticipantAnswer) dto.ParticipantAnswerResponse {
	return dto.ParticipantAnswerResponse{
		ID:            answer.ID,
		Question:      toQuestionResponse(&answer.Question),
		Answer:        answer.Answer,
		ParticipantID: answer.ParticipantID,
		IsCorrect:     answer.IsCorrect,
		IsValidated:   answer.IsValidated,
		Point:         answer.Point,
	}
}
