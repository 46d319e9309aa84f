package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/echoes-archive/feria-api/internal/catalog"
	"github.com/echoes-archive/feria-api/internal/domain"
	"github.com/echoes-archive/feria-api/internal/repository"
)

var (
	ErrFairNotFound = repository.ErrFairNotFound
	ErrBadLocale    = repository.ErrBadLocale
	ErrDateInPast   = errors.New("fair date must be today or later")
	ErrTownNotFound = errors.New("town could not be verified to exist")
)

// FairRepository is the store contract the services mutate through. All edits
// are wholesale aggregate replacements via Update.
type FairRepository interface {
	Append(fair domain.Fair)
	List() []domain.Fair
	GetByID(id string) (domain.Fair, error)
	Update(fair domain.Fair)
	Select(id string)
	Selected() (domain.Fair, bool)
	Locale() string
	SetLocale(locale string) error
}

// TownVerdict is the tri-state outcome of the town-existence gate.
type TownVerdict int

const (
	TownUnknown TownVerdict = iota
	TownExists
	TownMissing
)

// TownChecker answers whether a town plausibly exists. Anything short of an
// explicit negative lets creation proceed.
type TownChecker interface {
	CheckTown(ctx context.Context, town, country string) TownVerdict
}

type FairService struct {
	repo  FairRepository
	towns TownChecker
}

func NewFairService(repo FairRepository, towns TownChecker) *FairService {
	return &FairService{
		repo:  repo,
		towns: towns,
	}
}

type CreateFairInput struct {
	Title   string
	Town    string
	Country string
	Date    time.Time
}

// CreateFair validates the date, runs the fail-open town-existence gate and
// commits a fully formed fair: fresh id, fixed feasibility catalog, seeded
// marketing rows, empty sub-collections. The new fair is appended and selected
// in one step, so no partially initialized state is ever observable.
func (s *FairService) CreateFair(ctx context.Context, input CreateFairInput) (domain.Fair, error) {
	if beforeToday(input.Date) {
		return domain.Fair{}, ErrDateInPast
	}

	// Only an explicit negative blocks creation; an unreachable or undecided
	// checker lets the fair through.
	if s.towns.CheckTown(ctx, input.Town, input.Country) == TownMissing {
		return domain.Fair{}, ErrTownNotFound
	}

	fair := domain.NewFair(
		uuid.NewString(),
		input.Title,
		input.Town,
		input.Country,
		input.Date,
		catalog.FeasibilitySteps,
		catalog.DefaultMarketingStrategies,
	)

	s.repo.Append(fair)
	s.repo.Select(fair.ID)

	return fair, nil
}

// beforeToday compares calendar days, the date's in its own location against
// the current local one. A "today" form value stays valid no matter which zone
// it was parsed in.
func beforeToday(date time.Time) bool {
	y, m, d := date.Date()
	ny, nm, nd := time.Now().Date()

	if y != ny {
		return y < ny
	}
	if m != nm {
		return m < nm
	}

	return d < nd
}

func (s *FairService) ListFairs() []domain.Fair {
	return s.repo.List()
}

func (s *FairService) GetFair(id string) (domain.Fair, error) {
	fair, err := s.repo.GetByID(id)
	if err != nil {
		return domain.Fair{}, fmt.Errorf("s.repo.GetByID -> %w", err)
	}

	return fair, nil
}

// ReplaceFair is the single mutation primitive: it swaps the fair with a
// matching id wholesale. An unknown id is absorbed as a no-op.
func (s *FairService) ReplaceFair(fair domain.Fair) {
	s.repo.Update(fair)
}

func (s *FairService) SelectFair(id string) {
	s.repo.Select(id)
}

func (s *FairService) SelectedFair() (domain.Fair, bool) {
	return s.repo.Selected()
}

func (s *FairService) Locale() string {
	return s.repo.Locale()
}

func (s *FairService) SetLocale(locale string) error {
	return s.repo.SetLocale(locale)
}

// Summary carries the derived values; they are recomputed on every call.
type Summary struct {
	Totals               domain.Totals
	AttendanceProjection int
}

func (s *FairService) Summary(fairID string) (Summary, error) {
	fair, err := s.repo.GetByID(fairID)
	if err != nil {
		return Summary{}, fmt.Errorf("s.repo.GetByID -> %w", err)
	}

	return Summary{
		Totals:               fair.Totals(),
		AttendanceProjection: fair.AttendanceProjection(),
	}, nil
}

// mutate loads the fair, applies one copy-on-write transformation and commits
// the replacement. Every finer-grained edit below goes through it.
func (s *FairService) mutate(fairID string, apply func(domain.Fair) domain.Fair) (domain.Fair, error) {
	fair, err := s.repo.GetByID(fairID)
	if err != nil {
		return domain.Fair{}, fmt.Errorf("s.repo.GetByID -> %w", err)
	}

	updated := apply(fair)
	s.repo.Update(updated)

	return updated, nil
}

func (s *FairService) ToggleFeasibilityStep(fairID, stepID string) (domain.Fair, error) {
	return s.mutate(fairID, func(f domain.Fair) domain.Fair {
		return f.WithToggledStep(stepID)
	})
}

func (s *FairService) ToggleActivityLink(fairID, activityID string) (domain.Fair, error) {
	return s.mutate(fairID, func(f domain.Fair) domain.Fair {
		return f.WithToggledActivityLink(activityID)
	})
}

func (s *FairService) ToggleEntertainmentLink(fairID, providerID string) (domain.Fair, error) {
	return s.mutate(fairID, func(f domain.Fair) domain.Fair {
		return f.WithToggledEntertainmentLink(providerID)
	})
}

func (s *FairService) AddActivity(fairID string, activity domain.Activity) (domain.Fair, error) {
	activity.ID = uuid.NewString()
	return s.mutate(fairID, func(f domain.Fair) domain.Fair {
		return f.WithActivity(activity)
	})
}

func (s *FairService) AddMaterial(fairID string, material domain.Material) (domain.Fair, error) {
	material.ID = uuid.NewString()
	return s.mutate(fairID, func(f domain.Fair) domain.Fair {
		return f.WithMaterial(material)
	})
}

func (s *FairService) AddContact(fairID string, contact domain.Contact) (domain.Fair, error) {
	contact.ID = uuid.NewString()
	return s.mutate(fairID, func(f domain.Fair) domain.Fair {
		return f.WithContact(contact)
	})
}

func (s *FairService) AddBudgetEntry(fairID string, entry domain.BudgetEntry) (domain.Fair, error) {
	entry.ID = uuid.NewString()
	if entry.Status == "" {
		entry.Status = domain.BudgetPending
	}
	return s.mutate(fairID, func(f domain.Fair) domain.Fair {
		return f.WithBudgetEntry(entry)
	})
}

func (s *FairService) FlipBudgetStatus(fairID, entryID string) (domain.Fair, error) {
	return s.mutate(fairID, func(f domain.Fair) domain.Fair {
		return f.WithFlippedBudgetStatus(entryID)
	})
}

func (s *FairService) AddSocialPost(fairID string, post domain.SocialPost) (domain.Fair, error) {
	post.ID = uuid.NewString()
	if post.Status == "" {
		post.Status = domain.PostDraft
	}
	return s.mutate(fairID, func(f domain.Fair) domain.Fair {
		return f.WithSocialPost(post)
	})
}

func (s *FairService) AddMarketingMaterial(fairID string, material domain.MarketingMaterial) (domain.Fair, error) {
	material.ID = uuid.NewString()
	return s.mutate(fairID, func(f domain.Fair) domain.Fair {
		return f.WithMarketingMaterial(material)
	})
}

func (s *FairService) SetMarketingExecution(fairID, executionID string, implemented *bool, evidenceLink *string) (domain.Fair, error) {
	return s.mutate(fairID, func(f domain.Fair) domain.Fair {
		return f.WithMarketingExecution(executionID, implemented, evidenceLink)
	})
}

func (s *FairService) SetReportField(fairID, field, value string) (domain.Fair, error) {
	return s.mutate(fairID, func(f domain.Fair) domain.Fair {
		return f.WithReportField(field, value)
	})
}

func (s *FairService) SelectCompanies(fairID string, marketStudyCompanyID, marketingCompanyID *string) (domain.Fair, error) {
	return s.mutate(fairID, func(f domain.Fair) domain.Fair {
		return f.WithCompanies(marketStudyCompanyID, marketingCompanyID)
	})
}
