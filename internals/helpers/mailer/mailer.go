// file: internals/helpers/mailer/mailer.go
package mailer

import (
	"log"
	"strings"

	"github.com/resend/resend-go/v2"
)

// Sender dipakai reminder service; diabstraksi supaya sweep bisa dites
// tanpa memanggil API Resend beneran.
type Sender interface {
	Send(toEmail, subject, htmlBody string) bool
}

// Mailer kirim email transaksional lewat Resend.
// Tanpa API key semua kiriman jadi no-op (dicatat di log, bukan error).
type Mailer struct {
	client *resend.Client
	from   string
}

func New(apiKey, from string) *Mailer {
	m := &Mailer{from: from}
	if apiKey != "" {
		m.client = resend.NewClient(apiKey)
	}
	return m
}

// Send mengembalikan true hanya bila email benar-benar terkirim.
// Gagal kirim dicatat dan ditelan — reminder sweep tidak boleh berhenti.
func (m *Mailer) Send(toEmail, subject, htmlBody string) bool {
	if strings.TrimSpace(toEmail) == "" {
		log.Printf("[EMAIL SKIPPED] No email address provided for: %s", subject)
		return false
	}
	if m.client == nil {
		log.Printf("[EMAIL SKIPPED] No API key. Would send to %s: %s", toEmail, subject)
		return false
	}

	params := &resend.SendEmailRequest{
		From:    m.from,
		To:      []string{toEmail},
		Subject: subject,
		Html:    htmlBody,
	}
	if _, err := m.client.Emails.Send(params); err != nil {
		log.Printf("[EMAIL ERROR] Failed to send to %s: %v", toEmail, err)
		return false
	}
	log.Printf("[EMAIL SENT] To: %s, Subject: %s", toEmail, subject)
	return true
}
