package services

import (
	"fmt"
	"sync/atomic"
	"testing"

	"vinolog_backend/database"
	"vinolog_backend/internal/config"
	"vinolog_backend/internal/models"

	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"
)

var testDBCounter int64

// newTestDB инициализирует in-memory SQLite (modernc.org/sqlite) для тестов.
// Именованная база на каждый тест и единственное соединение в пуле,
// чтобы PRAGMA foreign_keys действовала на все запросы.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	n := atomic.AddInt64(&testDBCounter, 1)
	dsn := fmt.Sprintf("file:svctest%d?mode=memory&cache=shared", n)
	dial := gormsqlite.Dialector{DriverName: "sqlite", DSN: dsn}

	db, err := gorm.Open(dial, &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open sqlite (modernc): %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get *sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		t.Fatalf("failed to enable foreign keys: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	return db
}

// setTestConfig задает конфиг без чтения config.yaml
func setTestConfig(t *testing.T) {
	t.Helper()
	cfg := &config.Config{}
	cfg.Server.Env = "test"
	cfg.JWT.Secret = "test_secret_key_for_service_tests"
	cfg.JWT.TTL = 60
	config.AppConfig = cfg
}

func createTestUser(t *testing.T, db *gorm.DB, googleID, email string) *models.User {
	t.Helper()
	user := &models.User{GoogleID: googleID, Email: email, Name: "Test User"}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

func createTestWine(t *testing.T, db *gorm.DB, name string) *models.Wine {
	t.Helper()
	wine := &models.Wine{Name: name, Country: "France"}
	if err := db.Create(wine).Error; err != nil {
		t.Fatalf("failed to create test wine: %v", err)
	}
	return wine
}

func createTestReview(t *testing.T, db *gorm.DB, userID, wineID string, rating int) *models.Review {
	t.Helper()
	review := &models.Review{UserID: userID, WineID: wineID, Rating: rating}
	if err := db.Create(review).Error; err != nil {
		t.Fatalf("failed to create test review: %v", err)
	}
	return review
}

func createTestComment(t *testing.T, db *gorm.DB, userID, reviewID, content string) *models.Comment {
	t.Helper()
	comment := &models.Comment{UserID: userID, ReviewID: reviewID, Content: content}
	if err := db.Create(comment).Error; err != nil {
		t.Fatalf("failed to create test comment: %v", err)
	}
	return comment
}

func countRows(t *testing.T, db *gorm.DB, model interface{}) int64 {
	t.Helper()
	var count int64
	if err := db.Model(model).Count(&count).Error; err != nil {
		t.Fatalf("failed to count rows: %v", err)
	}
	return count
}
