package services

import (
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/jngeno/stablemate/models"
	"github.com/jngeno/stablemate/websocket"
	"gorm.io/gorm"
)

// EvaluateAchievements runs every catalog predicate for the user and grants
// whichever badges newly hold. It is safe to call on every page load: all
// predicates are pure reads and grants are idempotent. A failing predicate is
// logged and skipped so one broken check never blocks the rest of the
// catalog, and nothing is reported back to the caller. All grants are
// persisted by the time this returns.
func EvaluateAchievements(db *gorm.DB, userID uuid.UUID) {
	if userID == uuid.Nil {
		return
	}

	for _, def := range AchievementCatalog {
		earned, err := def.Check(db, userID)
		if err != nil {
			log.Printf("🔥 Achievement check %q failed for user %s: %v", def.ID, userID, err)
			continue
		}
		if !earned {
			continue
		}

		if err := GrantAchievement(db, userID, def, nil); err != nil {
			log.Printf("🔥 Failed to grant achievement %q to user %s: %v", def.ID, userID, err)
		}
	}
}

// GrantAchievement awards the badge to the user unless they already hold it.
// The existence check plus the unique index on (user_id, achievement_id)
// together guarantee at most one row per pair: if two passes race, the
// loser's insert fails with a duplicate-key error and is treated as
// already-held. The celebration push happens only on the winning insert.
func GrantAchievement(db *gorm.DB, userID uuid.UUID, def AchievementDefinition, horseID *uuid.UUID) error {
	var existing models.UserAchievement
	err := db.Where("user_id = ? AND achievement_id = ?", userID, def.ID).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	award := models.UserAchievement{
		UserID:            userID,
		AchievementID:     def.ID,
		EarnedAt:          time.Now(),
		HorseID:           horseID,
		IsManuallyGranted: false,
	}
	if err := db.Create(&award).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil
		}
		return err
	}

	log.Printf("✅ Awarded achievement %q to user %s.", def.ID, userID)
	websocket.Celebrate(userID, websocket.CelebrationEvent{
		Type:          "achievement_earned",
		AchievementID: def.ID,
		Title:         def.Title,
		Description:   def.Description,
		Icon:          def.Icon,
	})
	return nil
}

// FindDefinition looks up a catalog entry by id.
func FindDefinition(id string) (AchievementDefinition, bool) {
	for _, def := range AchievementCatalog {
		if def.ID == id {
			return def, true
		}
	}
	return AchievementDefinition{}, false
}
