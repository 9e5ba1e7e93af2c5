package jobs

import (
	"fmt"
	"strings"
	"testing"
	"time"

	gormsqlite "github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/jngeno/stablemate/database"
	"github.com/jngeno/stablemate/models"
)

func setupJobDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(gormsqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Reminder{}); err != nil {
		t.Fatalf("auto migrate: %v", err)
	}

	prev := database.DB
	database.DB = db
	t.Cleanup(func() { database.DB = prev })

	return db
}

func TestSendDueRemindersMarksSent(t *testing.T) {
	db := setupJobDB(t)

	user := models.User{FullName: "Test Owner", Email: "owner@example.com", Password: "x"}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}

	due := models.Reminder{UserID: user.ID, Title: "Farrier visit", DueAt: time.Now().Add(-time.Hour)}
	future := models.Reminder{UserID: user.ID, Title: "Vaccination", DueAt: time.Now().Add(24 * time.Hour)}
	for _, r := range []*models.Reminder{&due, &future} {
		if err := db.Create(r).Error; err != nil {
			t.Fatalf("seed reminder: %v", err)
		}
	}

	SendDueReminders()

	var sent models.Reminder
	if err := db.First(&sent, "id = ?", due.ID).Error; err != nil {
		t.Fatalf("load due reminder: %v", err)
	}
	if !sent.IsSent || sent.SentAt == nil {
		t.Fatalf("due reminder should be marked sent, got is_sent=%v sent_at=%v", sent.IsSent, sent.SentAt)
	}

	var pending models.Reminder
	if err := db.First(&pending, "id = ?", future.ID).Error; err != nil {
		t.Fatalf("load future reminder: %v", err)
	}
	if pending.IsSent {
		t.Fatalf("future reminder must not be sent early")
	}

	// A second run finds nothing due and changes nothing.
	SendDueReminders()
	var sentCount int64
	db.Model(&models.Reminder{}).Where("is_sent = ?", true).Count(&sentCount)
	if sentCount != 1 {
		t.Fatalf("expected exactly one sent reminder, got %d", sentCount)
	}
}
