package authing

import (
	"context"
	"os"
	"sync"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"

	"github.com/tenxer/meta-ads-gateway/internal/usecases/tooling"
	"github.com/tenxer/meta-ads-gateway/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// DefaultUserID keys the token record when no explicit user is given.
// The store is per-user on disk so a future multi-user surface reuses
// the same file format.
const DefaultUserID = "default"

// tokenRecord is one stored token. Timestamps are unix milliseconds;
// ExpiresAt nil means the token never expires.
type tokenRecord struct {
	AccessToken string `json:"accessToken"`
	StoredAt    int64  `json:"storedAt"`
	ExpiresAt   *int64 `json:"expiresAt"`
}

// TokenInfo is the redacted status view exposed by facebook_check_auth
type TokenInfo struct {
	HasToken  bool
	IsExpired bool
	StoredAt  string
	ExpiresAt string
}

// FileTokenStore persists tokens in a JSON file keyed by user ID
type FileTokenStore struct {
	path string

	mu  sync.Mutex
	now func() time.Time
}

func NewFileTokenStore(path string) *FileTokenStore {
	return &FileTokenStore{
		path: path,
		now:  time.Now,
	}
}

// Store saves a token for a user. expiresIn is in seconds; zero means
// the token never expires.
func (s *FileTokenStore) Store(userID, accessToken string, expiresIn int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	records := s.readAll()

	record := tokenRecord{
		AccessToken: accessToken,
		StoredAt:    s.now().UnixMilli(),
	}
	if expiresIn > 0 {
		expiresAt := s.now().UnixMilli() + expiresIn*1000
		record.ExpiresAt = &expiresAt
	}
	records[userID] = record

	return s.writeAll(records)
}

// Token returns the stored token for a user. An expired token is
// removed and reported as absent.
func (s *FileTokenStore) Token(userID string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records := s.readAll()
	record, ok := records[userID]
	if !ok {
		return "", false
	}

	if s.expired(record) {
		log.L.Warnf("stored token for user %s has expired", userID)
		delete(records, userID)
		if err := s.writeAll(records); err != nil {
			log.L.WithError(err).Error("removing expired token")
		}
		return "", false
	}

	return record.AccessToken, true
}

// Info reports the token status without exposing the token itself
func (s *FileTokenStore) Info(userID string) TokenInfo {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.readAll()[userID]
	if !ok {
		return TokenInfo{}
	}

	info := TokenInfo{
		HasToken:  true,
		IsExpired: s.expired(record),
		StoredAt:  time.UnixMilli(record.StoredAt).UTC().Format(time.RFC3339),
		ExpiresAt: "Never",
	}
	if record.ExpiresAt != nil {
		info.ExpiresAt = time.UnixMilli(*record.ExpiresAt).UTC().Format(time.RFC3339)
	}

	return info
}

// Clear removes the stored token for a user
func (s *FileTokenStore) Clear(userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	records := s.readAll()
	delete(records, userID)

	return s.writeAll(records)
}

// Sweep removes every expired token and returns how many were dropped.
// Called periodically by the scheduler.
func (s *FileTokenStore) Sweep() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records := s.readAll()

	removed := 0
	for userID, record := range records {
		if s.expired(record) {
			delete(records, userID)
			removed++
		}
	}

	if removed == 0 {
		return 0, nil
	}

	return removed, s.writeAll(records)
}

// AccessToken implements tooling.TokenProvider for the default user
func (s *FileTokenStore) AccessToken(_ context.Context) (string, error) {
	token, ok := s.Token(DefaultUserID)
	if !ok {
		return "", tooling.ErrNotAuthenticated
	}
	return token, nil
}

func (s *FileTokenStore) expired(record tokenRecord) bool {
	return record.ExpiresAt != nil && s.now().UnixMilli() > *record.ExpiresAt
}

// readAll loads the token file; a missing or unreadable file is treated
// as empty so a corrupted store never blocks a fresh login.
func (s *FileTokenStore) readAll() map[string]tokenRecord {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return map[string]tokenRecord{}
	}

	records := map[string]tokenRecord{}
	if err := json.Unmarshal(raw, &records); err != nil {
		log.L.WithError(err).Warn("token file is not valid JSON, starting empty")
		return map[string]tokenRecord{}
	}

	return records
}

func (s *FileTokenStore) writeAll(records map[string]tokenRecord) error {
	raw, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encoding token file")
	}

	if err := os.WriteFile(s.path, raw, 0o600); err != nil {
		return errors.Wrap(err, "writing token file")
	}

	return nil
}
