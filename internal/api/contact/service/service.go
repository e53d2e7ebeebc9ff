package contactService

import (
	"PortfolioBackend/internal/api/contact"
	smtpPkg "PortfolioBackend/pkg/smtp"
	"context"

	"github.com/sirupsen/logrus"
)

type IContactService interface {
	SendMessage(ctx context.Context, req contact.SendMessageRequest) error
}

type contactService struct {
	log        *logrus.Logger
	smtpMailer smtpPkg.ItfSmtp
}

func New(
	log *logrus.Logger,
	smtpMailer smtpPkg.ItfSmtp,
) IContactService {
	return &contactService{
		log:        log,
		smtpMailer: smtpMailer,
	}
}
