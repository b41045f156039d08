package inventory

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"honorsinventory/internal/database"
	"honorsinventory/internal/domain"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.Connect(":memory:", nil)
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func setupSeededDB(t *testing.T) *gorm.DB {
	t.Helper()
	db := setupTestDB(t)
	_, err := database.Seed(context.Background(), db)
	require.NoError(t, err)
	return db
}

func locationID(t *testing.T, db *gorm.DB, roomName string) int64 {
	t.Helper()
	var loc domain.Location
	require.NoError(t, db.Where("room_name = ?", roomName).First(&loc).Error)
	return loc.ID
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []domain.Event
}

func (p *recordingPublisher) Publish(e domain.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
}

func (p *recordingPublisher) Events() []domain.Event {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]domain.Event(nil), p.events...)
}

// steppingClock returns a time one second later on every call.
func steppingClock(start time.Time) func() time.Time {
	var mu sync.Mutex
	cur := start
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		cur = cur.Add(time.Second)
		return cur
	}
}

func int64Ptr(v int64) *int64 { return &v }
