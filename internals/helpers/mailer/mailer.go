// file: internals/helpers/mailer/mailer.go
package mailer

import (
	"log"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"

	"sekolahku_backend/internals/configs"
)

// Mailer mengirim notifikasi email. Core memperlakukan pengiriman sebagai
// fire-and-forget: gagal kirim hanya dicatat di log, tidak pernah
// membatalkan mutasi utama.
type Mailer interface {
	Send(toName, toEmail, subject, body string)
}

// ================= SendGrid =================

type sendgridMailer struct {
	apiKey string
	from   *sgmail.Email
}

func NewSendgridFromEnv() Mailer {
	if configs.SendgridAPIKey == "" {
		return consoleMailer{}
	}
	return &sendgridMailer{
		apiKey: configs.SendgridAPIKey,
		from:   sgmail.NewEmail(configs.MailFromName, configs.MailFromAddress),
	}
}

func (m *sendgridMailer) Send(toName, toEmail, subject, body string) {
	if toEmail == "" {
		return
	}
	go func() {
		msg := sgmail.NewSingleEmail(m.from, subject, sgmail.NewEmail(toName, toEmail), body, "")
		resp, err := sendgrid.NewSendClient(m.apiKey).Send(msg)
		if err != nil {
			log.Printf("[ERROR] kirim email ke %s gagal: %v", toEmail, err)
			return
		}
		if resp.StatusCode >= 400 {
			log.Printf("[ERROR] sendgrid status %d untuk %s: %s", resp.StatusCode, toEmail, resp.Body)
		}
	}()
}

// ================= Console fallback (dev) =================

type consoleMailer struct{}

func (consoleMailer) Send(toName, toEmail, subject, body string) {
	log.Printf("[MAIL] to=%s <%s> subject=%q\n%s", toName, toEmail, subject, body)
}
