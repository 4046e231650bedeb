package email

import (
	"strings"
	"sync"

	"github.com/rs/zerolog/log"
)

// ConsoleService logs messages instead of delivering them and remembers what
// was "sent". Used in development and by tests.
type ConsoleService struct {
	mu   sync.Mutex
	sent []Message
}

func NewConsoleService() *ConsoleService {
	return &ConsoleService{}
}

func (svc *ConsoleService) Send(msg Message) {
	if !msg.HasRecipients() {
		return
	}
	svc.mu.Lock()
	svc.sent = append(svc.sent, msg)
	svc.mu.Unlock()

	log.Info().
		Str("to", strings.Join(msg.To, ", ")).
		Str("subject", msg.Subject).
		Str("body", msg.Body).
		Msg("email")
}

// Sent returns a copy of every message passed to Send.
func (svc *ConsoleService) Sent() []Message {
	svc.mu.Lock()
	defer svc.mu.Unlock()
	out := make([]Message, len(svc.sent))
	copy(out, svc.sent)
	return out
}
