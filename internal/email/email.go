package email

// Message is a plain-text notification mail.
type Message struct {
	To      []string
	Subject string
	Body    string
}

func (m Message) HasRecipients() bool {
	return len(m.To) > 0
}

// Service sends notification mail. Implementations must not block the caller
// on network I/O.
type Service interface {
	Send(msg Message)
}
