package smtp

import (
	"fmt"
	smtpPkg "net/smtp"
	"os"
)

type ItfSmtp interface {
	SendContactMessage(senderName string, senderEmail string, message string) error
}

type smtp struct {
	auth  smtpPkg.Auth
	mail  string
	inbox string
	host  string
	port  string
}

func New() ItfSmtp {
	mail := os.Getenv("SMTP_MAIL")
	password := os.Getenv("SMTP_PASSWORD")

	host := os.Getenv("SMTP_HOST")
	if host == "" {
		host = "smtp.gmail.com"
	}
	port := os.Getenv("SMTP_PORT")
	if port == "" {
		port = "587"
	}

	// Contact messages land in the owner's own mailbox unless overridden.
	inbox := os.Getenv("CONTACT_INBOX")
	if inbox == "" {
		inbox = mail
	}

	auth := smtpPkg.PlainAuth("", mail, password, host)

	return &smtp{auth: auth, mail: mail, inbox: inbox, host: host, port: port}
}

func (s *smtp) SendContactMessage(senderName string, senderEmail string, message string) error {
	to := []string{s.inbox}

	body := []byte(fmt.Sprintf(
		"To: %s\r\nSubject: Portfolio contact from %s\r\n\r\n%s <%s> wrote:\r\n\r\n%s",
		s.inbox, senderName, senderName, senderEmail, message))

	err := smtpPkg.SendMail(fmt.Sprintf("%s:%s", s.host, s.port), s.auth, s.mail, to, body)
	if err != nil {
		return err
	}

	return nil
}
