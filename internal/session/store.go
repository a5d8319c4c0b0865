// Package session persists a single opaque credential blob across
// process restarts. It is the client-side counterpart of the auth
// endpoints: a CLI or embedded client keeps its token pair here and
// restores it on start.
package session

import (
	"encoding/json"
	"time"
)

// Key under which the credential blob is stored.
const Key = "driver-sales-session"

// Credentials is the stored blob. The store treats it as opaque;
// fields exist only so callers get a typed round-trip.
type Credentials struct {
	AccessToken  string          `json:"access_token"`
	RefreshToken string          `json:"refresh_token"`
	ExpiresAt    time.Time       `json:"expires_at"`
	User         json.RawMessage `json:"user,omitempty"`
}

// KV is the durable key-value storage the store writes through.
type KV interface {
	Get(key string) ([]byte, bool, error)
	Set(key string, value []byte) error
	Delete(key string) error
}

type Store struct {
	kv KV
}

func NewStore(kv KV) *Store {
	return &Store{kv: kv}
}

// Save serializes and stores the credentials. A nil value deletes the
// stored entry, which is how logout and detected expiry clear state.
func (s *Store) Save(c *Credentials) error {
	if c == nil {
		return s.kv.Delete(Key)
	}
	data, err := json.Marshal(c)
	if err != nil {
		return err
	}
	return s.kv.Set(Key, data)
}

// Load restores the stored credentials. A missing entry returns
// (nil, nil). A corrupt entry is deleted and also returns (nil, nil):
// an unreadable session is treated as no session, never an error the
// caller has to handle.
func (s *Store) Load() (*Credentials, error) {
	data, ok, err := s.kv.Get(Key)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	var c Credentials
	if err := json.Unmarshal(data, &c); err != nil {
		_ = s.kv.Delete(Key)
		return nil, nil
	}
	return &c, nil
}
