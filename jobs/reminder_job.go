package jobs

import (
	"fmt"
	"log"
	"time"

	"github.com/jngeno/stablemate/database"
	"github.com/jngeno/stablemate/models"
	"github.com/jngeno/stablemate/notifications"
)

func SendDueReminders() {
	log.Println("Running job: SendDueReminders...")

	now := time.Now()

	var dueReminders []models.Reminder
	err := database.DB.
		Preload("User").
		Where("is_sent = ? AND due_at <= ?", false, now).
		Find(&dueReminders).Error
	if err != nil {
		log.Printf("Error checking for due reminders: %v", err)
		return
	}

	if len(dueReminders) == 0 {
		return
	}

	for _, reminder := range dueReminders {
		log.Printf("Sending reminder ID: %s", reminder.ID)

		emailSubject := fmt.Sprintf("Reminder: %s", reminder.Title)
		emailBody := fmt.Sprintf(
			"<h1>Stablemate Reminder</h1><p>Hi %s,</p><p>This is your reminder: <b>%s</b>, due %s.</p><p>%s</p>",
			reminder.User.FullName,
			reminder.Title,
			reminder.DueAt.Format("January 2, 2006 at 3:04 PM"),
			reminder.Notes,
		)

		go notifications.SendEmail(reminder.User.FullName, reminder.User.Email, emailSubject, emailBody)

		sentAt := time.Now()
		reminder.IsSent = true
		reminder.SentAt = &sentAt
		database.DB.Save(&reminder)
	}

	log.Printf("Sent %d reminder(s).", len(dueReminders))
}
