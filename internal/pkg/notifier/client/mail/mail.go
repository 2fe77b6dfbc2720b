package mail

import (
	"fmt"
	"os"

	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"go.uber.org/zap"

	"github.com/ProjectReef/reef/internal/pkg/notifier/client"
	log "github.com/ProjectReef/reef/internal/pkg/reef-server/logger"
	"github.com/ProjectReef/reef/internal/pkg/reef-server/models"
)

var _ client.Notifier = &Mail{}

var l = log.GetLogger()

type Mail struct {
	request rest.Request
	from    *mail.Email
	admin   *mail.Email
}

func (m *Mail) Notify(event models.Event) error {
	m1 := mail.NewV3Mail()
	m1.SetFrom(m.from)

	plainTextContent, err := event.ComposeMailBody()
	if err != nil {
		return err
	}

	content := mail.NewContent("text", plainTextContent)
	m1.AddContent(content)

	personalization := mail.NewPersonalization()
	to := mail.NewEmail("", event.UserEmail)
	personalization.AddTos(to)
	if event.NotifyAdmin {
		personalization.AddBCCs(m.admin)
	}
	personalization.Subject = fmt.Sprintf("Reef Portal - %s", event.Type)

	m1.AddPersonalizations(personalization)

	req := m.request
	req.Body = mail.GetRequestBody(m1)
	response, err := sendgrid.API(req)

	if err != nil {
		l.Error("Error sending mail", zap.Error(err))
		return err
	}

	if response.StatusCode != 202 {
		l.Error("Error sending mail, response code is not 202", zap.Int("code", response.StatusCode))
	}

	return nil
}

func New() client.Notifier {
	key := os.Getenv("SENDGRID_API_KEY")
	if key == "" {
		l.Fatal("SENDGRID_API_KEY not set")
	}
	from := os.Getenv("NOTIFIER_FROM_ADDRESS")
	if from == "" {
		l.Fatal("NOTIFIER_FROM_ADDRESS not set")
	}
	admin := os.Getenv("NOTIFIER_ADMIN_ADDRESS")
	if admin == "" {
		admin = from
	}
	request := sendgrid.GetRequest(key, "/v3/mail/send", "")
	request.Method = "POST"
	return &Mail{
		request: request,
		from:    mail.NewEmail("Reef Portal", from),
		admin:   mail.NewEmail("Reef Portal Admin", admin),
	}
}
