// Package session owns the process-wide session state: the signed-in
// user, the temporary sign-up state, and the auth status driving the
// route gates. It replaces ambient globals with one injectable instance
// hydrated from the persisted store on boot and torn down on logout.
package session

import (
	"context"
	"sync"

	"onboarding-engine/internal/common/logger"
	"onboarding-engine/internal/gate"
	"onboarding-engine/internal/models"
	"onboarding-engine/internal/storage"
)

// Store is the injectable session service.
type Store struct {
	mu        sync.RWMutex
	persisted storage.Store
	log       logger.Logger

	user      *models.User
	tempUser  *models.TempUser
	tempToken string
	status    gate.AuthStatus
}

// NewStore creates an unhydrated session store in the Idle state.
func NewStore(persisted storage.Store, log logger.Logger) *Store {
	return &Store{
		persisted: persisted,
		log:       log,
		status:    gate.AuthIdle,
	}
}

// Init hydrates user and temp state from the persisted namespace. A
// present user restores the Succeeded state directly; read failures
// leave the store signed out rather than erroring.
func (s *Store) Init(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var user models.User
	ok, err := storage.GetJSON(ctx, s.persisted, storage.KeyUser, &user)
	if err != nil {
		s.log.Warn("stored user is unreadable, starting signed out", map[string]interface{}{
			"error": err.Error(),
		})
	} else if ok {
		s.user = &user
		s.status = gate.AuthSucceeded
	}

	var tempUser models.TempUser
	if ok, err := storage.GetJSON(ctx, s.persisted, storage.KeyTempUser, &tempUser); err == nil && ok {
		s.tempUser = &tempUser
	}
	var tempToken string
	if ok, err := storage.GetJSON(ctx, s.persisted, storage.KeyTempToken, &tempToken); err == nil && ok {
		s.tempToken = tempToken
	}
}

// BeginAuth marks an authentication attempt in flight.
func (s *Store) BeginAuth() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = gate.AuthPending
}

// FailAuth records a failed attempt.
func (s *Store) FailAuth() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = gate.AuthFailed
}

// Login stores the user, clears the temp state, and moves to Succeeded.
func (s *Store) Login(ctx context.Context, user models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = &user
	s.tempUser = nil
	s.tempToken = ""
	s.status = gate.AuthSucceeded

	if err := storage.SetJSON(ctx, s.persisted, storage.KeyUser, user); err != nil {
		s.log.Warn("user write failed", map[string]interface{}{"error": err.Error()})
	}
	s.removeQuiet(ctx, storage.KeyTempUser)
	s.removeQuiet(ctx, storage.KeyTempToken)
}

// Logout clears the in-memory state and the whole persisted namespace.
func (s *Store) Logout(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = nil
	s.tempUser = nil
	s.tempToken = ""
	s.status = gate.AuthIdle

	for _, key := range []string{
		storage.KeyAccessToken,
		storage.KeyRefreshToken,
		storage.KeyTokenExpiry,
		storage.KeyRefreshExpiry,
		storage.KeyUser,
		storage.KeyTempUser,
		storage.KeyTempToken,
	} {
		s.removeQuiet(ctx, key)
	}
}

// Current returns the signed-in user, or nil.
func (s *Store) Current() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// Status returns the auth status driving the route gates.
func (s *Store) Status() gate.AuthStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status
}

// IsAuthenticated reports whether a user is signed in.
func (s *Store) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user != nil
}

// SetTempUser stages the partially-registered user across the sign-up hop.
func (s *Store) SetTempUser(ctx context.Context, user models.TempUser) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tempUser = &user
	if err := storage.SetJSON(ctx, s.persisted, storage.KeyTempUser, user); err != nil {
		s.log.Warn("temp user write failed", map[string]interface{}{"error": err.Error()})
	}
}

// SetTempToken stages the OTP-verification token.
func (s *Store) SetTempToken(ctx context.Context, token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tempToken = token
	if err := storage.SetJSON(ctx, s.persisted, storage.KeyTempToken, token); err != nil {
		s.log.Warn("temp token write failed", map[string]interface{}{"error": err.Error()})
	}
}

// TempUser returns the staged sign-up user, or nil.
func (s *Store) TempUser() *models.TempUser {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.tempUser == nil {
		return nil
	}
	u := *s.tempUser
	return &u
}

// TempToken returns the staged OTP token, empty when absent.
func (s *Store) TempToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tempToken
}

// ClearTemp drops the staged sign-up state.
func (s *Store) ClearTemp(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tempUser = nil
	s.tempToken = ""
	s.removeQuiet(ctx, storage.KeyTempUser)
	s.removeQuiet(ctx, storage.KeyTempToken)
}

func (s *Store) removeQuiet(ctx context.Context, key string) {
	if err := s.persisted.RemoveItem(ctx, key); err != nil {
		s.log.Warn("storage remove failed", map[string]interface{}{
			"key":   key,
			"error": err.Error(),
		})
	}
}
