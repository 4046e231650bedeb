package email

import (
	"net/http"

	"github.com/rs/zerolog/log"
	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/quizmakerhq/quizmaker/config"
)

const (
	sendgridHost     = "https://api.sendgrid.com"
	sendgridEndpoint = "/v3/mail/send"
)

type sendgridService struct {
	key  string
	from *sgmail.Email
}

func NewSendgridService(cfg *config.Config) Service {
	return &sendgridService{
		key:  cfg.Email.SendgridAPIKey,
		from: sgmail.NewEmail(cfg.Email.FromName, cfg.Email.FromAddress),
	}
}

func (svc *sendgridService) Send(msg Message) {
	if !msg.HasRecipients() {
		return
	}
	go svc.send(msg)
}

func (svc *sendgridService) send(msg Message) {
	p := sgmail.NewPersonalization()
	p.Subject = msg.Subject
	for _, to := range msg.To {
		p.AddTos(sgmail.NewEmail("", to))
	}

	m := sgmail.NewV3Mail()
	m.SetFrom(svc.from)
	m.AddPersonalizations(p)
	m.AddContent(sgmail.NewContent("text/plain", msg.Body))

	req := sendgrid.GetRequest(svc.key, sendgridEndpoint, sendgridHost)
	req.Method = http.MethodPost
	req.Body = sgmail.GetRequestBody(m)

	res, err := sendgrid.API(req)
	if err != nil {
		log.Error().Err(err).Str("subject", msg.Subject).Msg("Failed to send email")
	} else if res.StatusCode >= http.StatusBadRequest {
		log.Error().Int("status", res.StatusCode).Str("body", res.Body).Msg("Sendgrid rejected email")
	}
}
