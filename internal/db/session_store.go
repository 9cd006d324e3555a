package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	applog "pedietcalc/internal/log"
	"pedietcalc/models"
)

// SessionStore keeps scs session data in the sessions table. It satisfies
// scs.Store, scs.CtxStore and scs.IterableCtxStore.
type SessionStore struct {
	db          *gorm.DB
	now         func() time.Time
	stopCleanup chan struct{}
	done        chan struct{}
}

// NewSessionStore returns a store backed by db. The sessions table must
// already exist, see AutoMigrate. When cleanupInterval is positive a
// background goroutine removes expired rows until StopCleanup is called.
func NewSessionStore(db *gorm.DB, cleanupInterval time.Duration) (*SessionStore, error) {
	if db == nil {
		return nil, gorm.ErrInvalidDB
	}
	s := &SessionStore{
		db:  db,
		now: func() time.Time { return time.Now().UTC() },
	}
	if cleanupInterval > 0 {
		s.stopCleanup = make(chan struct{})
		s.done = make(chan struct{})
		go s.startCleanup(cleanupInterval)
	}
	return s, nil
}

// Find returns the data for a session token. Expired sessions are reported as
// not found.
func (s *SessionStore) Find(token string) ([]byte, bool, error) {
	return s.FindCtx(context.Background(), token)
}

// FindCtx is Find with a caller supplied context.
func (s *SessionStore) FindCtx(ctx context.Context, token string) ([]byte, bool, error) {
	var record models.Session
	err := s.db.WithContext(ctx).
		Where("token = ? AND expiry > ?", token, s.now()).
		Take(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("find session: %w", err)
	}
	return record.Data, true, nil
}

// Commit inserts or replaces the session data.
func (s *SessionStore) Commit(token string, b []byte, expiry time.Time) error {
	return s.CommitCtx(context.Background(), token, b, expiry)
}

// CommitCtx is Commit with a caller supplied context.
func (s *SessionStore) CommitCtx(ctx context.Context, token string, b []byte, expiry time.Time) error {
	record := models.Session{Token: token, Data: b, Expiry: expiry.UTC()}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "token"}},
		DoUpdates: clause.AssignmentColumns([]string{"data", "expiry"}),
	}).Create(&record).Error
	if err != nil {
		return fmt.Errorf("commit session: %w", err)
	}
	return nil
}

// Delete removes a session.
func (s *SessionStore) Delete(token string) error {
	return s.DeleteCtx(context.Background(), token)
}

// DeleteCtx is Delete with a caller supplied context.
func (s *SessionStore) DeleteCtx(ctx context.Context, token string) error {
	if err := s.db.WithContext(ctx).Where("token = ?", token).Delete(&models.Session{}).Error; err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// All returns every live session keyed by token.
func (s *SessionStore) All() (map[string][]byte, error) {
	return s.AllCtx(context.Background())
}

// AllCtx is All with a caller supplied context.
func (s *SessionStore) AllCtx(ctx context.Context) (map[string][]byte, error) {
	var records []models.Session
	if err := s.db.WithContext(ctx).Where("expiry > ?", s.now()).Find(&records).Error; err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	sessions := make(map[string][]byte, len(records))
	for _, record := range records {
		sessions[record.Token] = record.Data
	}
	return sessions, nil
}

// DeleteExpired removes sessions whose expiry has passed and reports how many
// rows were deleted.
func (s *SessionStore) DeleteExpired(ctx context.Context) (int64, error) {
	result := s.db.WithContext(ctx).Where("expiry <= ?", s.now()).Delete(&models.Session{})
	if result.Error != nil {
		return 0, fmt.Errorf("delete expired sessions: %w", result.Error)
	}
	return result.RowsAffected, nil
}

// StopCleanup terminates the background cleanup goroutine, if any, and waits
// for it to exit.
func (s *SessionStore) StopCleanup() {
	if s.stopCleanup == nil {
		return
	}
	close(s.stopCleanup)
	<-s.done
	s.stopCleanup = nil
}

func (s *SessionStore) startCleanup(interval time.Duration) {
	defer close(s.done)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			removed, err := s.DeleteExpired(context.Background())
			if err != nil {
				applog.Error(context.Background(), "session cleanup failed", "error", err)
				continue
			}
			if removed > 0 {
				applog.Debug(context.Background(), "expired sessions removed", "count", removed)
			}
		case <-s.stopCleanup:
			return
		}
	}
}
