package services

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	gormsqlite "github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/jngeno/stablemate/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(gormsqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Horse{},
		&models.TrainingSession{},
		&models.Competition{},
		&models.HealthLog{},
		&models.Goal{},
		&models.UserAchievement{},
	)
	if err != nil {
		t.Fatalf("auto migrate: %v", err)
	}

	return db
}

func seedUser(t *testing.T, db *gorm.DB, email string) uuid.UUID {
	t.Helper()

	user := models.User{FullName: "Test Owner", Email: email, Password: "x"}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user.ID
}

func seedHorse(t *testing.T, db *gorm.DB, userID uuid.UUID) uuid.UUID {
	t.Helper()

	horse := models.Horse{UserID: userID, Name: "Copper"}
	if err := db.Create(&horse).Error; err != nil {
		t.Fatalf("seed horse: %v", err)
	}
	return horse.ID
}

func seedTrainingSessions(t *testing.T, db *gorm.DB, userID, horseID uuid.UUID, dates []time.Time) {
	t.Helper()

	for _, date := range dates {
		session := models.TrainingSession{UserID: userID, HorseID: horseID, Date: date}
		if err := db.Create(&session).Error; err != nil {
			t.Fatalf("seed training session: %v", err)
		}
	}
}

func awardedIDs(t *testing.T, db *gorm.DB, userID uuid.UUID) map[string]int {
	t.Helper()

	var awards []models.UserAchievement
	if err := db.Where("user_id = ?", userID).Find(&awards).Error; err != nil {
		t.Fatalf("list awards: %v", err)
	}
	ids := make(map[string]int, len(awards))
	for _, award := range awards {
		ids[award.AchievementID]++
	}
	return ids
}

func repeatedDates(date time.Time, n int) []time.Time {
	dates := make([]time.Time, n)
	for i := range dates {
		dates[i] = date
	}
	return dates
}

func TestFirstHorseScenario(t *testing.T) {
	db := setupTestDB(t)
	userID := seedUser(t, db, "first-horse@example.com")

	EvaluateAchievements(db, userID)
	if ids := awardedIDs(t, db, userID); len(ids) != 0 {
		t.Fatalf("expected no awards before any records, got %v", ids)
	}

	seedHorse(t, db, userID)
	EvaluateAchievements(db, userID)

	ids := awardedIDs(t, db, userID)
	if len(ids) != 1 || ids["first_horse"] != 1 {
		t.Fatalf("expected exactly one first_horse award, got %v", ids)
	}
}

func TestEvaluateIsIdempotent(t *testing.T) {
	db := setupTestDB(t)
	userID := seedUser(t, db, "idempotent@example.com")
	seedHorse(t, db, userID)

	for _, n := range []int{1, 2, 10} {
		for i := 0; i < n; i++ {
			EvaluateAchievements(db, userID)
		}
		ids := awardedIDs(t, db, userID)
		if ids["first_horse"] != 1 {
			t.Fatalf("after %d extra passes: expected 1 first_horse row, got %d", n, ids["first_horse"])
		}
	}
}

func TestEvaluateNoOpsWithoutUser(t *testing.T) {
	db := setupTestDB(t)

	// Must return immediately and write nothing.
	EvaluateAchievements(db, uuid.Nil)

	var count int64
	db.Model(&models.UserAchievement{}).Count(&count)
	if count != 0 {
		t.Fatalf("expected no awards for nil user, got %d", count)
	}
}

func TestFailingCheckDoesNotBlockOthers(t *testing.T) {
	db := setupTestDB(t)
	userID := seedUser(t, db, "isolation@example.com")

	orig := AchievementCatalog
	defer func() { AchievementCatalog = orig }()
	AchievementCatalog = []AchievementDefinition{
		{
			ID:    "broken_check",
			Title: "Broken",
			Check: func(db *gorm.DB, userID uuid.UUID) (bool, error) {
				return false, errors.New("store unavailable")
			},
		},
		{
			ID:    "always_earned",
			Title: "Always",
			Check: func(db *gorm.DB, userID uuid.UUID) (bool, error) {
				return true, nil
			},
		},
	}

	EvaluateAchievements(db, userID)

	ids := awardedIDs(t, db, userID)
	if ids["always_earned"] != 1 {
		t.Fatalf("expected award despite earlier failing check, got %v", ids)
	}
	if ids["broken_check"] != 0 {
		t.Fatalf("failing check must not award, got %v", ids)
	}
}

func TestThresholdsAreInclusive(t *testing.T) {
	db := setupTestDB(t)
	userID := seedUser(t, db, "threshold@example.com")
	horseID := seedHorse(t, db, userID)

	baseDate := time.Now().AddDate(0, -2, 0)
	seedTrainingSessions(t, db, userID, horseID, repeatedDates(baseDate, 9))

	EvaluateAchievements(db, userID)
	if ids := awardedIDs(t, db, userID); ids["training_bronze"] != 0 {
		t.Fatalf("9 sessions must not grant training_bronze, got %v", ids)
	}

	seedTrainingSessions(t, db, userID, horseID, repeatedDates(baseDate, 1))

	EvaluateAchievements(db, userID)
	if ids := awardedIDs(t, db, userID); ids["training_bronze"] != 1 {
		t.Fatalf("10 sessions must grant training_bronze, got %v", ids)
	}
}

func TestTieredTrainingBadges(t *testing.T) {
	db := setupTestDB(t)
	userID := seedUser(t, db, "tiers@example.com")
	horseID := seedHorse(t, db, userID)

	baseDate := time.Now().AddDate(0, -2, 0)
	seedTrainingSessions(t, db, userID, horseID, repeatedDates(baseDate, 49))

	EvaluateAchievements(db, userID)
	ids := awardedIDs(t, db, userID)
	if ids["training_bronze"] != 1 || ids["training_silver"] != 0 || ids["training_gold"] != 0 {
		t.Fatalf("49 sessions: expected bronze only, got %v", ids)
	}

	seedTrainingSessions(t, db, userID, horseID, repeatedDates(baseDate, 1))

	EvaluateAchievements(db, userID)
	ids = awardedIDs(t, db, userID)
	if ids["training_silver"] != 1 {
		t.Fatalf("50 sessions: expected training_silver, got %v", ids)
	}
	if ids["training_bronze"] != 1 {
		t.Fatalf("training_bronze must not be re-granted, got %v", ids)
	}
	if ids["training_gold"] != 0 {
		t.Fatalf("50 sessions must not grant training_gold, got %v", ids)
	}
}

func TestStreakCountsDistinctDays(t *testing.T) {
	db := setupTestDB(t)
	userID := seedUser(t, db, "streak-same-day@example.com")
	horseID := seedHorse(t, db, userID)

	// Seven entries on one day are one day of activity.
	seedTrainingSessions(t, db, userID, horseID, repeatedDates(time.Now(), 7))

	EvaluateAchievements(db, userID)
	if ids := awardedIDs(t, db, userID); ids["streak_7"] != 0 {
		t.Fatalf("7 same-day sessions must not grant streak_7, got %v", ids)
	}
}

func TestStreakGrantsOnSevenDistinctDays(t *testing.T) {
	db := setupTestDB(t)
	userID := seedUser(t, db, "streak-distinct@example.com")
	horseID := seedHorse(t, db, userID)

	var dates []time.Time
	for i := 0; i < 7; i++ {
		day := time.Now().AddDate(0, 0, -i)
		dates = append(dates, day)
		if i%2 == 0 {
			// Duplicate entries on some days must not be required or harmful.
			dates = append(dates, day.Add(2*time.Hour))
		}
	}
	seedTrainingSessions(t, db, userID, horseID, dates)

	EvaluateAchievements(db, userID)
	if ids := awardedIDs(t, db, userID); ids["streak_7"] != 1 {
		t.Fatalf("7 distinct days must grant streak_7, got %v", ids)
	}
}

func TestWeeklyConsistencyBuckets(t *testing.T) {
	db := setupTestDB(t)
	userID := seedUser(t, db, "consistent@example.com")
	horseID := seedHorse(t, db, userID)

	windowStart := time.Now().AddDate(0, 0, -27)
	// One session in each of the four 7-day buckets: days 0, 8, 16, 25.
	seedTrainingSessions(t, db, userID, horseID, []time.Time{
		windowStart,
		windowStart.AddDate(0, 0, 8),
		windowStart.AddDate(0, 0, 16),
		windowStart.AddDate(0, 0, 25),
	})

	EvaluateAchievements(db, userID)
	if ids := awardedIDs(t, db, userID); ids["consistent"] != 1 {
		t.Fatalf("one session per week over four weeks must grant consistent, got %v", ids)
	}
}

func TestWeeklyConsistencyRequiresEveryBucket(t *testing.T) {
	db := setupTestDB(t)
	userID := seedUser(t, db, "inconsistent@example.com")
	horseID := seedHorse(t, db, userID)

	windowStart := time.Now().AddDate(0, 0, -27)
	// Activity on days 0 through 6 only: first bucket is busy, the rest empty.
	var dates []time.Time
	for i := 0; i <= 6; i++ {
		dates = append(dates, windowStart.AddDate(0, 0, i))
	}
	seedTrainingSessions(t, db, userID, horseID, dates)

	EvaluateAchievements(db, userID)
	if ids := awardedIDs(t, db, userID); ids["consistent"] != 0 {
		t.Fatalf("activity in one week only must not grant consistent, got %v", ids)
	}
}

func TestNoCrossUserLeakage(t *testing.T) {
	db := setupTestDB(t)
	userA := seedUser(t, db, "user-a@example.com")
	userB := seedUser(t, db, "user-b@example.com")
	seedHorse(t, db, userB)

	EvaluateAchievements(db, userA)

	if ids := awardedIDs(t, db, userA); len(ids) != 0 {
		t.Fatalf("user A must not earn badges for user B's records, got %v", ids)
	}
	if ids := awardedIDs(t, db, userB); len(ids) != 0 {
		t.Fatalf("evaluating user A must not write rows for user B, got %v", ids)
	}
}

func TestGoalBadgesCountCompletedOnly(t *testing.T) {
	db := setupTestDB(t)
	userID := seedUser(t, db, "goals@example.com")

	open := models.Goal{UserID: userID, Title: "Learn flying changes"}
	if err := db.Create(&open).Error; err != nil {
		t.Fatalf("seed goal: %v", err)
	}

	EvaluateAchievements(db, userID)
	if ids := awardedIDs(t, db, userID); ids["goal_setter"] != 0 {
		t.Fatalf("open goal must not grant goal_setter, got %v", ids)
	}

	now := time.Now()
	open.IsCompleted = true
	open.CompletedAt = &now
	if err := db.Save(&open).Error; err != nil {
		t.Fatalf("complete goal: %v", err)
	}

	EvaluateAchievements(db, userID)
	if ids := awardedIDs(t, db, userID); ids["goal_setter"] != 1 {
		t.Fatalf("completed goal must grant goal_setter, got %v", ids)
	}
}

func TestCombinedCountBadge(t *testing.T) {
	db := setupTestDB(t)
	userID := seedUser(t, db, "combined@example.com")
	horseID := seedHorse(t, db, userID)

	// A single health log with zero training sessions is enough.
	entry := models.HealthLog{UserID: userID, HorseID: horseID, Date: time.Now(), Type: "farrier"}
	if err := db.Create(&entry).Error; err != nil {
		t.Fatalf("seed health log: %v", err)
	}

	EvaluateAchievements(db, userID)
	if ids := awardedIDs(t, db, userID); ids["getting_started"] != 1 {
		t.Fatalf("one health log must grant getting_started, got %v", ids)
	}
}

func TestPersonalityBadgeIgnoresEmptyFields(t *testing.T) {
	db := setupTestDB(t)
	userID := seedUser(t, db, "personality@example.com")

	empty := ""
	horse := models.Horse{UserID: userID, Name: "Blank", PersonalityTrait: &empty}
	if err := db.Create(&horse).Error; err != nil {
		t.Fatalf("seed horse: %v", err)
	}

	EvaluateAchievements(db, userID)
	if ids := awardedIDs(t, db, userID); ids["personality_plus"] != 0 {
		t.Fatalf("empty personality field must not grant personality_plus, got %v", ids)
	}

	funFact := "Unlocks stable doors with his teeth"
	horse.FunFact = &funFact
	if err := db.Save(&horse).Error; err != nil {
		t.Fatalf("update horse: %v", err)
	}

	EvaluateAchievements(db, userID)
	if ids := awardedIDs(t, db, userID); ids["personality_plus"] != 1 {
		t.Fatalf("non-empty fun fact must grant personality_plus, got %v", ids)
	}
}

func TestGrantSkipsExistingAward(t *testing.T) {
	db := setupTestDB(t)
	userID := seedUser(t, db, "grant-existing@example.com")

	def, ok := FindDefinition("first_horse")
	if !ok {
		t.Fatalf("first_horse missing from catalog")
	}

	existing := models.UserAchievement{UserID: userID, AchievementID: def.ID, EarnedAt: time.Now()}
	if err := db.Create(&existing).Error; err != nil {
		t.Fatalf("seed award: %v", err)
	}

	if err := GrantAchievement(db, userID, def, nil); err != nil {
		t.Fatalf("GrantAchievement() error = %v", err)
	}

	if ids := awardedIDs(t, db, userID); ids[def.ID] != 1 {
		t.Fatalf("expected single award row, got %v", ids)
	}
}

func TestGrantRecordsHorseReference(t *testing.T) {
	db := setupTestDB(t)
	userID := seedUser(t, db, "grant-horse@example.com")
	horseID := seedHorse(t, db, userID)

	def, ok := FindDefinition("first_horse")
	if !ok {
		t.Fatalf("first_horse missing from catalog")
	}

	if err := GrantAchievement(db, userID, def, &horseID); err != nil {
		t.Fatalf("GrantAchievement() error = %v", err)
	}

	var award models.UserAchievement
	if err := db.Where("user_id = ? AND achievement_id = ?", userID, def.ID).First(&award).Error; err != nil {
		t.Fatalf("load award: %v", err)
	}
	if award.HorseID == nil || *award.HorseID != horseID {
		t.Fatalf("award horse reference = %v, want %s", award.HorseID, horseID)
	}
	if award.IsManuallyGranted {
		t.Fatalf("system grants must not be flagged as manual")
	}
	if award.EarnedAt.IsZero() {
		t.Fatalf("EarnedAt must be set at grant time")
	}
}
