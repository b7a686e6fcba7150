package services

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/BTL5010TEJA/smart-mock-interview/internal/models"
)

// EmailService is a placeholder for a real email sending service.
type EmailService struct {
	log *zap.Logger
}

func NewEmailService(log *zap.Logger) *EmailService {
	return &EmailService{log: log}
}

// SendPracticeReminder simulates sending a practice reminder email.
func (s *EmailService) SendPracticeReminder(user models.User) {
	s.log.Info("Sending practice reminder email",
		zap.String("to", user.Email),
		zap.String("name", user.FirstName),
	)
	// In a real application, you would use an SMTP client like go-mail
	// to send a templated HTML email here. // TODO
	fmt.Printf("--- SIMULATING EMAIL ---\nTo: %s\nSubject: Keep your interview streak going\nHi %s,\nYou haven't completed a practice interview today. A short session keeps your streak alive.\n\n", user.Email, user.FirstName)
}
