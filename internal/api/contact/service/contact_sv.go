package contactService

import (
	"PortfolioBackend/internal/api/contact"
	contextPkg "PortfolioBackend/pkg/context"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

func (s *contactService) SendMessage(ctx context.Context, req contact.SendMessageRequest) error {
	requestID := contextPkg.GetRequestID(ctx)

	name := strings.TrimSpace(req.Name)
	message := strings.TrimSpace(req.Message)
	if name == "" || message == "" {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
		}).Warn("Contact message with blank name or body")
		return contact.ErrInvalidContactData
	}

	if err := s.smtpMailer.SendContactMessage(name, req.Email, message); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to send contact mail")
		return contact.ErrMailDelivery
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"sender":     name,
	}).Info("Contact message delivered")

	return nil
}
