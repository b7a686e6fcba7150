package services

import (
	"time"

	"go.uber.org/zap"

	"github.com/BTL5010TEJA/smart-mock-interview/internal/models"
	"github.com/BTL5010TEJA/smart-mock-interview/internal/repository"
)

type Scheduler struct {
	log          *zap.Logger
	emailService *EmailService
}

func NewScheduler(log *zap.Logger, emailService *EmailService) *Scheduler {
	return &Scheduler{
		log:          log,
		emailService: emailService,
	}
}

// Start runs the scheduler in a goroutine.
func (s *Scheduler) Start() {
	s.log.Info("Starting reminder scheduler...")
	go func() {
		// Ticker will fire on every minute.
		ticker := time.NewTicker(1 * time.Minute)
		defer ticker.Stop()

		for {
			<-ticker.C
			s.runReminderCheck()
		}
	}()
}

func (s *Scheduler) runReminderCheck() {
	utcNow := time.Now().UTC().Format("2006-01-02 15:04:05")
	s.log.Debug("Running reminder check", zap.String("utc_time", utcNow))

	users, err := repository.GetUsersForPracticeReminder(utcNow)
	if err != nil {
		s.log.Error("Failed to get users for practice reminder", zap.Error(err))
		return
	}

	for _, user := range users {
		completed, err := repository.HasCompletedSessionToday(user.ID)
		if err != nil {
			s.log.Error("Failed to check session completion status", zap.Uint("userID", user.ID), zap.Error(err))
			continue
		}

		if !completed {
			go s.sendReminder(user)
		}
	}
}

func (s *Scheduler) sendReminder(user models.User) {
	s.emailService.SendPracticeReminder(user)
}
