package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quizmakerhq/quizmaker/internal/email"
	"github.com/quizmakerhq/quizmaker/internal/event"
)

func TestNotifierSendsQuizCreatedMail(t *testing.T) {
	mailer := email.NewConsoleService()
	bus := event.NewBus()
	NewNotifier(mailer).Register(bus)

	bus.Publish(event.QuizCreated{
		QuizID:        1,
		QuizName:      "Midterm",
		StudentEmails: []string{"ada@example.com", "bob@example.com"},
	})

	sent := mailer.Sent()
	require.Len(t, sent, 1)
	assert.Equal(t, "A NEW QUIZ HAS BEEN CREATED", sent[0].Subject)
	assert.Equal(t, "Hello from QuizMaker. You've been added to a quiz lately.", sent[0].Body)
	assert.Equal(t, []string{"ada@example.com", "bob@example.com"}, sent[0].To)
}

func TestNotifierSendsPaperGradedMail(t *testing.T) {
	mailer := email.NewConsoleService()
	bus := event.NewBus()
	NewNotifier(mailer).Register(bus)

	bus.Publish(event.PaperGraded{
		QuizID:           1,
		ParticipantID:    2,
		ParticipantEmail: "ada@example.com",
		Grade:            85,
	})

	sent := mailer.Sent()
	require.Len(t, sent, 1)
	assert.Equal(t, "A QUIZ HAS BEEN GRADED", sent[0].Subject)
	assert.Equal(t, "Hello from QuizMaker. The quiz you have added was graded.", sent[0].Body)
}

func TestNotifierSkipsEmptyRecipientList(t *testing.T) {
	mailer := email.NewConsoleService()
	bus := event.NewBus()
	NewNotifier(mailer).Register(bus)

	bus.Publish(event.QuizCreated{QuizID: 1, QuizName: "Midterm"})

	assert.Empty(t, mailer.Sent())
}
