package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/echoes-archive/feria-api/internal/domain"
	"github.com/echoes-archive/feria-api/internal/repository"
)

type stubTownChecker struct {
	verdict TownVerdict
}

func (s stubTownChecker) CheckTown(_ context.Context, _, _ string) TownVerdict {
	return s.verdict
}

func newFairService(verdict TownVerdict) (*FairService, *repository.FairStore) {
	store := repository.NewFairStore()
	return NewFairService(store, stubTownChecker{verdict: verdict}), store
}

func validInput() CreateFairInput {
	return CreateFairInput{
		Title:   "Feria Lenca",
		Town:    "Gracias",
		Country: "Honduras",
		Date:    time.Now().Add(72 * time.Hour),
	}
}

func TestFairService_CreateFair_Success(t *testing.T) {
	svc, store := newFairService(TownExists)

	fair, err := svc.CreateFair(context.Background(), validInput())

	require.NoError(t, err)
	assert.NotEmpty(t, fair.ID)
	assert.Equal(t, "Feria Lenca", fair.Title)
	require.Len(t, fair.FeasibilitySteps, 5)
	assert.Equal(t, "step-0", fair.FeasibilitySteps[0].ID)
	require.Len(t, fair.MarketingExecution, 3)
	assert.Equal(t, "mk1", fair.MarketingExecution[0].ID)

	stored, err := store.GetByID(fair.ID)
	require.NoError(t, err)
	assert.Equal(t, fair.ID, stored.ID)
}

func TestFairService_CreateFair_SelectsNewFair(t *testing.T) {
	svc, store := newFairService(TownExists)

	fair, err := svc.CreateFair(context.Background(), validInput())

	require.NoError(t, err)
	selected, ok := store.Selected()
	require.True(t, ok)
	assert.Equal(t, fair.ID, selected.ID)
}

func TestFairService_CreateFair_TodayAllowed(t *testing.T) {
	svc, _ := newFairService(TownExists)

	input := validInput()
	input.Date = time.Now()

	_, err := svc.CreateFair(context.Background(), input)

	require.NoError(t, err)
}

func TestFairService_CreateFair_TodayAtUTCMidnightAllowed(t *testing.T) {
	// A date-only form value parsed as UTC midnight still names today's
	// calendar day; it must not be rejected in zones west of UTC.
	svc, _ := newFairService(TownExists)

	now := time.Now()
	input := validInput()
	input.Date = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	_, err := svc.CreateFair(context.Background(), input)

	require.NoError(t, err)
}

func TestFairService_CreateFair_YesterdayLateEveningRejected(t *testing.T) {
	svc, _ := newFairService(TownExists)

	now := time.Now()
	input := validInput()
	input.Date = time.Date(now.Year(), now.Month(), now.Day(), 23, 0, 0, 0, time.Local).AddDate(0, 0, -1)

	_, err := svc.CreateFair(context.Background(), input)

	assert.ErrorIs(t, err, ErrDateInPast)
}

func TestFairService_CreateFair_PastDateRejected(t *testing.T) {
	svc, store := newFairService(TownExists)

	input := validInput()
	input.Date = time.Now().Add(-48 * time.Hour)

	_, err := svc.CreateFair(context.Background(), input)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDateInPast)
	assert.Empty(t, store.List())
}

func TestFairService_CreateFair_TownMissingBlocks(t *testing.T) {
	svc, store := newFairService(TownMissing)

	_, err := svc.CreateFair(context.Background(), validInput())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTownNotFound)
	assert.Empty(t, store.List())
}

func TestFairService_CreateFair_TownUnknownProceeds(t *testing.T) {
	// An undecided or unreachable checker must not block creation.
	svc, _ := newFairService(TownUnknown)

	_, err := svc.CreateFair(context.Background(), validInput())

	require.NoError(t, err)
}

func TestFairService_GetFair_NotFound(t *testing.T) {
	svc, _ := newFairService(TownExists)

	_, err := svc.GetFair("missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrFairNotFound)
}

func TestFairService_ReplaceFair_UnknownIDAbsorbed(t *testing.T) {
	svc, store := newFairService(TownExists)
	fair, err := svc.CreateFair(context.Background(), validInput())
	require.NoError(t, err)

	ghost := fair
	ghost.ID = "ghost"
	ghost.Title = "never stored"
	svc.ReplaceFair(ghost)

	fairs := store.List()
	require.Len(t, fairs, 1)
	assert.Equal(t, fair.ID, fairs[0].ID)
	assert.Equal(t, "Feria Lenca", fairs[0].Title)
}

func TestFairService_Summary(t *testing.T) {
	svc, _ := newFairService(TownExists)
	fair, err := svc.CreateFair(context.Background(), validInput())
	require.NoError(t, err)

	_, err = svc.AddActivity(fair.ID, domain.Activity{
		Name:          "Clay Modeling",
		Cost:          domain.ParseAmount("120"),
		StaffRequired: 2,
	})
	require.NoError(t, err)
	_, err = svc.AddMaterial(fair.ID, domain.Material{
		Name:          "Tents",
		ActualCost:    domain.ParseAmount("80"),
		StaffRequired: 1,
	})
	require.NoError(t, err)

	summary, err := svc.Summary(fair.ID)

	require.NoError(t, err)
	assert.True(t, summary.Totals.Cost.Equal(domain.ParseAmount("200")))
	assert.Equal(t, 3, summary.Totals.Staff)
	assert.Equal(t, 250, summary.AttendanceProjection)
}

func TestFairService_ToggleFeasibilityStep(t *testing.T) {
	svc, _ := newFairService(TownExists)
	fair, err := svc.CreateFair(context.Background(), validInput())
	require.NoError(t, err)

	updated, err := svc.ToggleFeasibilityStep(fair.ID, "step-2")
	require.NoError(t, err)
	assert.True(t, updated.FeasibilitySteps[2].Completed)

	restored, err := svc.ToggleFeasibilityStep(fair.ID, "step-2")
	require.NoError(t, err)
	assert.False(t, restored.FeasibilitySteps[2].Completed)
}

func TestFairService_ToggleFeasibilityStep_FairNotFound(t *testing.T) {
	svc, _ := newFairService(TownExists)

	_, err := svc.ToggleFeasibilityStep("missing", "step-0")

	assert.ErrorIs(t, err, ErrFairNotFound)
}

func TestFairService_AddActivity_AssignsIDAndAppends(t *testing.T) {
	svc, _ := newFairService(TownExists)
	fair, err := svc.CreateFair(context.Background(), validInput())
	require.NoError(t, err)

	first, err := svc.AddActivity(fair.ID, domain.Activity{Name: "Dance Show"})
	require.NoError(t, err)
	second, err := svc.AddActivity(fair.ID, domain.Activity{Name: "Pottery"})
	require.NoError(t, err)

	require.Len(t, second.Activities, 2)
	assert.Equal(t, "Dance Show", second.Activities[0].Name)
	assert.Equal(t, "Pottery", second.Activities[1].Name)
	assert.NotEmpty(t, second.Activities[0].ID)
	assert.NotEqual(t, first.Activities[0].ID, second.Activities[1].ID)
}

func TestFairService_AddBudgetEntry_DefaultsToPending(t *testing.T) {
	svc, _ := newFairService(TownExists)
	fair, err := svc.CreateFair(context.Background(), validInput())
	require.NoError(t, err)

	updated, err := svc.AddBudgetEntry(fair.ID, domain.BudgetEntry{Description: "Tents"})

	require.NoError(t, err)
	require.Len(t, updated.Budget, 1)
	assert.Equal(t, domain.BudgetPending, updated.Budget[0].Status)
}

func TestFairService_FlipBudgetStatus(t *testing.T) {
	svc, _ := newFairService(TownExists)
	fair, err := svc.CreateFair(context.Background(), validInput())
	require.NoError(t, err)

	updated, err := svc.AddBudgetEntry(fair.ID, domain.BudgetEntry{Description: "Sound"})
	require.NoError(t, err)

	flipped, err := svc.FlipBudgetStatus(fair.ID, updated.Budget[0].ID)
	require.NoError(t, err)
	assert.Equal(t, domain.BudgetPaid, flipped.Budget[0].Status)
}

func TestFairService_AddSocialPost_DefaultsToDraft(t *testing.T) {
	svc, _ := newFairService(TownExists)
	fair, err := svc.CreateFair(context.Background(), validInput())
	require.NoError(t, err)

	updated, err := svc.AddSocialPost(fair.ID, domain.SocialPost{
		Platform: domain.PlatformInstagram,
		Content:  "Come visit!",
	})

	require.NoError(t, err)
	require.Len(t, updated.SocialPosts, 1)
	assert.Equal(t, domain.PostDraft, updated.SocialPosts[0].Status)
}

func TestFairService_SetMarketingExecution(t *testing.T) {
	svc, _ := newFairService(TownExists)
	fair, err := svc.CreateFair(context.Background(), validInput())
	require.NoError(t, err)

	implemented := true
	updated, err := svc.SetMarketingExecution(fair.ID, "mk2", &implemented, nil)

	require.NoError(t, err)
	assert.True(t, updated.MarketingExecution[1].Implemented)
	assert.False(t, updated.MarketingExecution[0].Implemented)
}

func TestFairService_SetReportField(t *testing.T) {
	svc, _ := newFairService(TownExists)
	fair, err := svc.CreateFair(context.Background(), validInput())
	require.NoError(t, err)

	updated, err := svc.SetReportField(fair.ID, "risks", "Rainy season overlap")

	require.NoError(t, err)
	assert.Equal(t, "Rainy season overlap", updated.MarketStudyReport.Risks)
}

func TestFairService_SelectCompanies(t *testing.T) {
	svc, _ := newFairService(TownExists)
	fair, err := svc.CreateFair(context.Background(), validInput())
	require.NoError(t, err)

	study := "msc1"
	updated, err := svc.SelectCompanies(fair.ID, &study, nil)

	require.NoError(t, err)
	assert.Equal(t, "msc1", updated.SelectedMarketStudyCompanyID)
	assert.Empty(t, updated.SelectedMarketingCompanyID)
}

func TestFairService_Locale_RoundTrip(t *testing.T) {
	svc, _ := newFairService(TownExists)

	assert.Equal(t, "es", svc.Locale())
	require.NoError(t, svc.SetLocale("en"))
	assert.Equal(t, "en", svc.Locale())
	assert.ErrorIs(t, svc.SetLocale("de"), ErrBadLocale)
}
