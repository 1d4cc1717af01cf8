// Package draft implements the staging area for the add-partner
// sub-wizard. The draft lives in memory, mirrors to the persisted store
// on every mutation, and is flushed to the server only by a
// caller-supplied submit at the final step.
package draft

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"onboarding-engine/internal/common/logger"
	"onboarding-engine/internal/models"
	"onboarding-engine/internal/routes"
	"onboarding-engine/internal/storage"
)

// State of the draft lifecycle.
type State string

const (
	StateEmpty          State = "EMPTY"
	StateInProgress     State = "IN_PROGRESS"
	StateReadyForSubmit State = "READY_FOR_SUBMIT"
)

// FormState is the derived wizard state for the current path.
type FormState struct {
	IsValid      bool `json:"isValid"`
	IsDirty      bool `json:"isDirty"`
	IsSubmitting bool `json:"isSubmitting"`
	CurrentStep  int  `json:"currentStep"`
	TotalSteps   int  `json:"totalSteps"`
}

// SubmitFunc commits the finished draft to the backend. The store never
// constructs HTTP calls itself.
type SubmitFunc func(ctx context.Context, draft models.PartnerDraft) error

// Store holds the partner draft. Every update rewrites the whole draft
// to the persisted store (not debounced), so a crash loses at most the
// in-flight keystrokes of the current step.
type Store struct {
	mu           sync.RWMutex
	persisted    storage.Store
	log          logger.Logger
	draft        models.PartnerDraft
	isDirty      bool
	isSubmitting bool
}

// NewStore creates a draft store hydrated from the persisted entry.
// A missing, corrupted, or unparseable entry falls back to the empty
// draft; hydration never fails hard.
func NewStore(ctx context.Context, persisted storage.Store, log logger.Logger) *Store {
	s := &Store{
		persisted: persisted,
		log:       log,
		draft:     models.EmptyPartnerDraft(),
	}
	s.hydrate(ctx)
	return s
}

// hydrate reads the persisted draft, explicitly re-parsing the two date
// fields from their ISO string form. All other fields pass through.
func (s *Store) hydrate(ctx context.Context) {
	raw, ok, err := s.persisted.GetItem(ctx, storage.KeyPartnerDraft)
	if err != nil {
		s.log.Warn("partner draft read failed, starting empty", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}
	if !ok {
		return
	}

	var stored struct {
		Information struct {
			models.PartnerInformationDraft
			DateOfBirth  string `json:"dateOfBirth"`
			IDExpiryDate string `json:"IDExpiryDate"`
		} `json:"information"`
		Address  models.PartnerAddressDraft  `json:"address"`
		Document models.PartnerDocumentDraft `json:"document"`
	}
	if err := json.Unmarshal(raw, &stored); err != nil {
		s.log.Warn("partner draft is unreadable, starting empty", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}

	info := stored.Information.PartnerInformationDraft
	info.DateOfBirth = parseISODate(stored.Information.DateOfBirth)
	info.IDExpiryDate = parseISODate(stored.Information.IDExpiryDate)

	s.draft = models.PartnerDraft{
		Information: info,
		Address:     stored.Address,
		Document:    stored.Document,
	}
}

func parseISODate(value string) *time.Time {
	if value == "" {
		return nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, value); err == nil {
			return &t
		}
	}
	return nil
}

// persist mirrors the whole draft to storage. Write errors are logged
// and swallowed: the in-memory draft stays authoritative for the session.
func (s *Store) persist(ctx context.Context) {
	if err := storage.SetJSON(ctx, s.persisted, storage.KeyPartnerDraft, s.draft); err != nil {
		s.log.Warn("partner draft write failed", map[string]interface{}{
			"error": err.Error(),
		})
	}
}

// UpdateInformation replaces the personal-info section.
func (s *Store) UpdateInformation(ctx context.Context, data models.PartnerInformationDraft) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft.Information = data
	s.isDirty = true
	s.persist(ctx)
}

// UpdateAddress replaces the address section.
func (s *Store) UpdateAddress(ctx context.Context, data models.PartnerAddressDraft) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft.Address = data
	s.isDirty = true
	s.persist(ctx)
}

// UpdateDocument replaces the document section.
func (s *Store) UpdateDocument(ctx context.Context, data models.PartnerDocumentDraft) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft.Document = data
	s.isDirty = true
	s.persist(ctx)
}

// Clear resets the draft and removes the persisted entry. This is the
// only operation that deletes the storage key.
func (s *Store) Clear(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft = models.EmptyPartnerDraft()
	s.isDirty = false
	s.isSubmitting = false
	if err := s.persisted.RemoveItem(ctx, storage.KeyPartnerDraft); err != nil {
		s.log.Warn("partner draft remove failed", map[string]interface{}{
			"error": err.Error(),
		})
	}
}

// Draft returns a copy of the current draft.
func (s *Store) Draft() models.PartnerDraft {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.draft
}

// FormNavigation derives the three wizard steps with their linear
// gating: Address needs a first name, Documents need a present division.
func (s *Store) FormNavigation() []models.SubStep {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.formNavigationLocked()
}

func (s *Store) formNavigationLocked() []models.SubStep {
	return []models.SubStep{
		{
			Title:   "Personal Info",
			Href:    routes.AddPartner,
			Girding: "Let's fill your Partner",
		},
		{
			Title:    "Address",
			Href:     routes.AddPartnerAddress,
			Disabled: s.draft.Information.FirstName == "",
			Girding:  "Fill your Partner",
		},
		{
			Title:    "Documents",
			Href:     routes.AddPartnerDocument,
			Disabled: s.draft.Address.PresentDivision == "",
			Girding:  "Fill your Partner",
		},
	}
}

// FormState derives wizard-level state for currentPath. CurrentStep is
// -1 when the path is not one of the wizard pages.
func (s *Store) FormState(currentPath string) FormState {
	s.mu.RLock()
	defer s.mu.RUnlock()

	nav := s.formNavigationLocked()
	step := -1
	for i := range nav {
		if nav[i].Href == currentPath {
			step = i
			break
		}
	}

	valid := false
	switch step {
	case 0:
		valid = s.draft.Information.FirstName != ""
	case 1:
		valid = s.draft.Address.PresentDivision != ""
	case 2:
		valid = true
	}

	return FormState{
		IsValid:      valid,
		IsDirty:      s.isDirty,
		IsSubmitting: s.isSubmitting,
		CurrentStep:  step,
		TotalSteps:   len(nav),
	}
}

// State reports where the draft sits in its lifecycle.
func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	switch {
	case s.draft.Information.FirstName != "" &&
		s.draft.Address.PresentDivision != "" &&
		s.draft.Document.DocumentType != "":
		return StateReadyForSubmit
	case s.isDirty || s.draft.Information.FirstName != "":
		return StateInProgress
	default:
		return StateEmpty
	}
}

// NextStep returns the step after currentPath, or nil at the end or
// when the next step is still gated off.
func (s *Store) NextStep(currentPath string) *models.SubStep {
	s.mu.RLock()
	defer s.mu.RUnlock()
	nav := s.formNavigationLocked()
	for i := range nav {
		if nav[i].Href == currentPath && i < len(nav)-1 {
			next := nav[i+1]
			if next.Disabled {
				return nil
			}
			return &next
		}
	}
	return nil
}

// PreviousStep returns the step before currentPath, or nil at the start.
func (s *Store) PreviousStep(currentPath string) *models.SubStep {
	s.mu.RLock()
	defer s.mu.RUnlock()
	nav := s.formNavigationLocked()
	for i := range nav {
		if nav[i].Href == currentPath && i > 0 {
			prev := nav[i-1]
			return &prev
		}
	}
	return nil
}

// Submit runs the caller-supplied commit with a snapshot of the draft
// and clears the store on success. A failed submit leaves the draft
// untouched so the user can resubmit.
func (s *Store) Submit(ctx context.Context, fn SubmitFunc) error {
	s.mu.Lock()
	if s.isSubmitting {
		s.mu.Unlock()
		return ErrSubmitInFlight
	}
	s.isSubmitting = true
	snapshot := s.draft
	s.mu.Unlock()

	err := fn(ctx, snapshot)

	s.mu.Lock()
	s.isSubmitting = false
	s.mu.Unlock()

	if err != nil {
		return err
	}
	s.Clear(ctx)
	return nil
}
