package services

import (
	"time"

	"github.com/google/uuid"
	"github.com/jngeno/stablemate/models"
	"gorm.io/gorm"
)

// AchievementDefinition describes one badge in the fixed catalog. Check is a
// read-only predicate: it queries the user's records and reports whether the
// badge condition currently holds. It must never write.
type AchievementDefinition struct {
	ID          string
	Title       string
	Description string
	Icon        string
	Check       func(db *gorm.DB, userID uuid.UUID) (bool, error)
}

// activitySource names a collection whose dated rows count as activity for
// streak and consistency badges. Only training sessions count today; whether
// health logs should also count is a pending product decision, so the source
// is a parameter rather than hard-coded in each predicate.
type activitySource struct {
	model      interface{}
	dateColumn string
}

var trainingActivity = activitySource{model: &models.TrainingSession{}, dateColumn: "date"}

// AchievementCatalog is evaluated in order on every pass. Entries are
// independent; order only matters for reproducible logs.
var AchievementCatalog = []AchievementDefinition{
	{
		ID:          "first_horse",
		Title:       "Welcome to the Stable",
		Description: "Add your first horse.",
		Icon:        "horse",
		Check:       countAtLeast(&models.Horse{}, 1),
	},
	{
		ID:          "growing_stable",
		Title:       "Growing Stable",
		Description: "Add three horses.",
		Icon:        "barn",
		Check:       countAtLeast(&models.Horse{}, 3),
	},
	{
		ID:          "personality_plus",
		Title:       "Personality Plus",
		Description: "Record a personality trait or fun fact for a horse.",
		Icon:        "sparkles",
		Check:       hasHorsePersonality,
	},
	{
		ID:          "getting_started",
		Title:       "Getting Started",
		Description: "Log your first training session or health entry.",
		Icon:        "flag",
		Check:       combinedCountAtLeast(1, &models.TrainingSession{}, &models.HealthLog{}),
	},
	{
		ID:          "training_bronze",
		Title:       "Bronze Trainer",
		Description: "Log 10 training sessions.",
		Icon:        "medal-bronze",
		Check:       countAtLeast(&models.TrainingSession{}, 10),
	},
	{
		ID:          "training_silver",
		Title:       "Silver Trainer",
		Description: "Log 50 training sessions.",
		Icon:        "medal-silver",
		Check:       countAtLeast(&models.TrainingSession{}, 50),
	},
	{
		ID:          "training_gold",
		Title:       "Gold Trainer",
		Description: "Log 100 training sessions.",
		Icon:        "medal-gold",
		Check:       countAtLeast(&models.TrainingSession{}, 100),
	},
	{
		ID:          "health_watch",
		Title:       "Health Watch",
		Description: "Record 5 health log entries.",
		Icon:        "stethoscope",
		Check:       countAtLeast(&models.HealthLog{}, 5),
	},
	{
		ID:          "health_guru",
		Title:       "Health Guru",
		Description: "Record 25 health log entries.",
		Icon:        "heart-pulse",
		Check:       countAtLeast(&models.HealthLog{}, 25),
	},
	{
		ID:          "first_competition",
		Title:       "Show Debut",
		Description: "Record your first competition.",
		Icon:        "rosette",
		Check:       countAtLeast(&models.Competition{}, 1),
	},
	{
		ID:          "seasoned_competitor",
		Title:       "Seasoned Competitor",
		Description: "Record 10 competitions.",
		Icon:        "trophy",
		Check:       countAtLeast(&models.Competition{}, 10),
	},
	{
		ID:          "goal_setter",
		Title:       "Goal Setter",
		Description: "Complete your first goal.",
		Icon:        "target",
		Check:       completedGoalsAtLeast(1),
	},
	{
		ID:          "goal_getter",
		Title:       "Goal Getter",
		Description: "Complete 5 goals.",
		Icon:        "target-arrow",
		Check:       completedGoalsAtLeast(5),
	},
	{
		ID:          "streak_7",
		Title:       "One Week Strong",
		Description: "Train on 7 different days in a row.",
		Icon:        "flame",
		Check:       streakAtLeast(trainingActivity, 7),
	},
	{
		ID:          "streak_14",
		Title:       "Two Weeks Strong",
		Description: "Train on 14 different days in a row.",
		Icon:        "flame-plus",
		Check:       streakAtLeast(trainingActivity, 14),
	},
	{
		ID:          "consistent",
		Title:       "Consistency Counts",
		Description: "Train at least once in each of the last four weeks.",
		Icon:        "calendar-check",
		Check:       activeEveryWeek(trainingActivity, 4),
	},
}

// countAtLeast builds a predicate that holds when the user owns at least
// threshold rows of the given model. Thresholds are inclusive.
func countAtLeast(model interface{}, threshold int64) func(*gorm.DB, uuid.UUID) (bool, error) {
	return func(db *gorm.DB, userID uuid.UUID) (bool, error) {
		var count int64
		if err := db.Model(model).Where("user_id = ?", userID).Count(&count).Error; err != nil {
			return false, err
		}
		return count >= threshold, nil
	}
}

// combinedCountAtLeast sums the user's row counts across several models.
func combinedCountAtLeast(threshold int64, sources ...interface{}) func(*gorm.DB, uuid.UUID) (bool, error) {
	return func(db *gorm.DB, userID uuid.UUID) (bool, error) {
		var total int64
		for _, model := range sources {
			var count int64
			if err := db.Model(model).Where("user_id = ?", userID).Count(&count).Error; err != nil {
				return false, err
			}
			total += count
		}
		return total >= threshold, nil
	}
}

func completedGoalsAtLeast(threshold int64) func(*gorm.DB, uuid.UUID) (bool, error) {
	return func(db *gorm.DB, userID uuid.UUID) (bool, error) {
		var count int64
		err := db.Model(&models.Goal{}).
			Where("user_id = ? AND is_completed = ?", userID, true).
			Count(&count).Error
		if err != nil {
			return false, err
		}
		return count >= threshold, nil
	}
}

func hasHorsePersonality(db *gorm.DB, userID uuid.UUID) (bool, error) {
	var count int64
	err := db.Model(&models.Horse{}).
		Where("user_id = ?", userID).
		Where("(personality_trait IS NOT NULL AND personality_trait <> '') OR (fun_fact IS NOT NULL AND fun_fact <> '')").
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// streakAtLeast holds when the user has activity on at least `days` distinct
// calendar dates within the trailing `days`-day window. Dates are
// de-duplicated by calendar day, so several entries on one day count once.
func streakAtLeast(src activitySource, days int) func(*gorm.DB, uuid.UUID) (bool, error) {
	return func(db *gorm.DB, userID uuid.UUID) (bool, error) {
		windowStart := startOfDay(time.Now().AddDate(0, 0, -(days - 1)))
		dates, err := activityDates(db, src, userID, windowStart)
		if err != nil {
			return false, err
		}

		distinct := make(map[string]struct{}, len(dates))
		for _, d := range dates {
			distinct[d.Format("2006-01-02")] = struct{}{}
		}
		return len(distinct) >= days, nil
	}
}

// activeEveryWeek holds when every one of the trailing `weeks` contiguous
// 7-day windows contains at least one activity row.
func activeEveryWeek(src activitySource, weeks int) func(*gorm.DB, uuid.UUID) (bool, error) {
	return func(db *gorm.DB, userID uuid.UUID) (bool, error) {
		windowStart := startOfDay(time.Now().AddDate(0, 0, -(weeks*7 - 1)))
		dates, err := activityDates(db, src, userID, windowStart)
		if err != nil {
			return false, err
		}

		active := make([]bool, weeks)
		for _, d := range dates {
			offset := int(startOfDay(d).Sub(windowStart).Hours() / 24)
			bucket := offset / 7
			if bucket >= 0 && bucket < weeks {
				active[bucket] = true
			}
		}
		for _, ok := range active {
			if !ok {
				return false, nil
			}
		}
		return true, nil
	}
}

func activityDates(db *gorm.DB, src activitySource, userID uuid.UUID, since time.Time) ([]time.Time, error) {
	var dates []time.Time
	err := db.Model(src.model).
		Where("user_id = ? AND "+src.dateColumn+" >= ?", userID, since).
		Pluck(src.dateColumn, &dates).Error
	return dates, err
}

func startOfDay(t time.Time) time.Time {
	t = t.Local()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
