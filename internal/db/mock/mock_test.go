package mock

import (
	"context"
	"testing"
	"time"

	"pedietcalc/models"
)

func TestNewMigratesSessionTable(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	database, err := New(ctx)
	if err != nil {
		t.Fatalf("mock database initialization failed: %v", err)
	}

	if !database.Migrator().HasTable(&models.Session{}) {
		t.Fatal("expected sessions table to exist")
	}

	record := models.Session{Token: "mock-token", Data: []byte("data"), Expiry: time.Now().Add(time.Hour)}
	if err := database.WithContext(ctx).Create(&record).Error; err != nil {
		t.Fatalf("insert session: %v", err)
	}
	var count int64
	if err := database.WithContext(ctx).Model(&models.Session{}).Where("token = ?", "mock-token").Count(&count).Error; err != nil {
		t.Fatalf("count sessions: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected one session row, got %d", count)
	}
}
