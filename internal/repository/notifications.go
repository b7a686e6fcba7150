package repository

import (
	"github.com/BTL5010TEJA/smart-mock-interview/internal/database"
	"github.com/BTL5010TEJA/smart-mock-interview/internal/models"
)

// GetUsersForPracticeReminder finds users who opted into reminders and whose
// configured reminder time matches the given HH:MM wall-clock time in their
// own timezone.
func GetUsersForPracticeReminder(utcNow string) ([]models.User, error) {
	var users []models.User

	// Compare the user's reminder_time against the current UTC time shifted
	// into their stored timezone, all inside Postgres.
	query := `
        SELECT * FROM users
        WHERE email_notifications_enabled = TRUE
        AND reminder_time = to_char(
            (?::timestamp AT TIME ZONE 'UTC') AT TIME ZONE time_zone, 'HH24:MI'
        );`

	err := database.DB.Raw(query, utcNow).Scan(&users).Error
	return users, err
}
