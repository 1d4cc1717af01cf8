// Package storage provides the persisted key/value namespace backing
// session state and the partner draft. Callers treat writes as
// fire-and-forget and reads as best-effort: a missing or unreadable
// entry degrades to "not present", never to a hard failure upstream.
package storage

import (
	"context"
	"encoding/json"
)

// Well-known keys. The namespace is fixed and shared; concurrent writers
// race last-write-wins, which is acceptable for a single-user wizard.
const (
	KeyAccessToken   = "access_token"
	KeyRefreshToken  = "refresh_token"
	KeyTokenExpiry   = "token_expiry"
	KeyRefreshExpiry = "refresh_expiry"
	KeyUser          = "user"
	KeyTempUser      = "temp_user"
	KeyTempToken     = "temp_token"
	KeyPartnerDraft  = "partner_form_data"
)

// Store is the persisted key/value facade. Values are JSON-serializable;
// date fields travel as ISO strings and are reconstituted by the caller.
type Store interface {
	// GetItem returns the raw stored bytes and whether the key exists.
	GetItem(ctx context.Context, key string) ([]byte, bool, error)
	// SetItem stores raw bytes under key, replacing any previous value.
	SetItem(ctx context.Context, key string, value []byte) error
	// RemoveItem deletes key; removing an absent key is not an error.
	RemoveItem(ctx context.Context, key string) error
}

// GetJSON reads key and unmarshals it into out. The second return is
// false when the key is absent. A decode failure is returned to the
// caller, who decides whether to fall back to a default.
func GetJSON(ctx context.Context, s Store, key string, out interface{}) (bool, error) {
	raw, ok, err := s.GetItem(ctx, key)
	if err != nil || !ok {
		return false, err
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return true, err
	}
	return true, nil
}

// SetJSON marshals value and stores it under key.
func SetJSON(ctx context.Context, s Store, key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return s.SetItem(ctx, key, raw)
}
