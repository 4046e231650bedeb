package event

const (
	QuizCreatedName = "quiz.created"
	PaperGradedName = "quiz.paper_graded"
)

// QuizCreated fires after a quiz is persisted. StudentEmails holds the
// addresses of every student enrolled in the quiz's course.
type QuizCreated struct {
	QuizID        uint
	QuizName      string
	StudentEmails []string
}

func (QuizCreated) Name() string { return QuizCreatedName }

// PaperGraded fires after an instructor successfully grades a whole paper.
type PaperGraded struct {
	QuizID           uint
	ParticipantID    uint
	ParticipantEmail string
	Grade            float64
}

func (PaperGraded) Name() string { return PaperGradedName }
