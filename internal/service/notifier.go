package service

import (
	"github.com/rs/zerolog/log"

	"github.com/quizmakerhq/quizmaker/internal/email"
	"github.com/quizmakerhq/quizmaker/internal/event"
)

const (
	quizCreatedSubject = "A NEW QUIZ HAS BEEN CREATED"
	quizCreatedBody    = "Hello from QuizMaker. You've been added to a quiz lately."
	paperGradedSubject = "A QUIZ HAS BEEN GRADED"
	paperGradedBody    = "Hello from QuizMaker. The quiz you have added was graded."
)

// Notifier turns quiz lifecycle events into participant emails.
type Notifier struct {
	mailer email.Service
}

func NewNotifier(mailer email.Service) *Notifier {
	return &Notifier{mailer: mailer}
}

// Register subscribes the notifier to the events it cares about.
func (n *Notifier) Register(bus *event.Bus) {
	bus.Subscribe(event.QuizCreatedName, n.onQuizCreated)
	bus.Subscribe(event.PaperGradedName, n.onPaperGraded)
}

func (n *Notifier) onQuizCreated(e event.Event) {
	created, ok := e.(event.QuizCreated)
	if !ok {
		return
	}
	msg := email.Message{
		To:      created.StudentEmails,
		Subject: quizCreatedSubject,
		Body:    quizCreatedBody,
	}
	if !msg.HasRecipients() {
		return
	}
	log.Info().Uint("quizID", created.QuizID).Int("recipients", len(created.StudentEmails)).Msg("Sending quiz creation notice")
	n.mailer.Send(msg)
}

func (n *Notifier) onPaperGraded(e event.Event) {
	graded, ok := e.(event.PaperGraded)
	if !ok {
		return
	}
	msg := email.Message{
		To:      []string{graded.ParticipantEmail},
		Subject: paperGradedSubject,
		Body:    paperGradedBody,
	}
	if !msg.HasRecipients() {
		return
	}
	log.Info().Uint("quizID", graded.QuizID).Uint("participantID", graded.ParticipantID).Msg("Sending grading notice")
	n.mailer.Send(msg)
}
