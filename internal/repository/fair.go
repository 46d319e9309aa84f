package repository

import (
	"errors"
	"sync"

	"github.com/echoes-archive/feria-api/internal/domain"
	"github.com/echoes-archive/feria-api/internal/i18n"
)

var (
	ErrFairNotFound = errors.New("fair not found")
	ErrBadLocale    = errors.New("unsupported locale")
)

// FairStore is the single source of truth: an ordered in-memory collection of
// fairs plus the selected-fair pointer and the active locale key. It is an
// explicit injectable object, not a singleton, so tests can run independent
// stores and a persistent-backed implementation can replace it later. State is
// volatile and lost when the process exits.
type FairStore struct {
	mu         sync.RWMutex
	fairs      []domain.Fair
	selectedID string
	locale     string
}

func NewFairStore() *FairStore {
	return &FairStore{
		locale: i18n.DefaultLocale,
	}
}

// Append adds a fully formed fair at the end of the collection. Insertion order
// is display order and is preserved forever.
func (s *FairStore) Append(fair domain.Fair) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.fairs = append(s.fairs, fair.Clone())
}

func (s *FairStore) List() []domain.Fair {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Fair, len(s.fairs))
	for i, f := range s.fairs {
		out[i] = f.Clone()
	}

	return out
}

func (s *FairStore) GetByID(id string) (domain.Fair, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, f := range s.fairs {
		if f.ID == id {
			return f.Clone(), nil
		}
	}

	return domain.Fair{}, ErrFairNotFound
}

// Update replaces the fair with a matching id wholesale. An unknown id is a
// silent no-op, not an error: a completion handler racing a vanished fair must
// simply be absorbed. Update is idempotent.
func (s *FairStore) Update(fair domain.Fair) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, f := range s.fairs {
		if f.ID == fair.ID {
			s.fairs[i] = fair.Clone()
			return
		}
	}
}

// Select sets the active fair pointer. An empty id returns to the listing view;
// an id with no matching fair resolves to the safe "nothing selected" state.
func (s *FairStore) Select(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id == "" {
		s.selectedID = ""
		return
	}

	for _, f := range s.fairs {
		if f.ID == id {
			s.selectedID = id
			return
		}
	}

	s.selectedID = ""
}

func (s *FairStore) Selected() (domain.Fair, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.selectedID == "" {
		return domain.Fair{}, false
	}

	for _, f := range s.fairs {
		if f.ID == s.selectedID {
			return f.Clone(), true
		}
	}

	return domain.Fair{}, false
}

func (s *FairStore) Locale() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.locale
}

func (s *FairStore) SetLocale(locale string) error {
	if !i18n.Supported(locale) {
		return ErrBadLocale
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.locale = locale

	return nil
}
