package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testSteps      = []string{"First step", "Second step", "Third step"}
	testStrategies = []string{"Social Media", "Radio Spots", "Flyers"}
)

func newTestFair() Fair {
	return NewFair("fair-1", "Feria Lenca", "Gracias", "Honduras", time.Now().Add(48*time.Hour), testSteps, testStrategies)
}

func TestNewFair_BuildsChecklistWithPositionalIDs(t *testing.T) {
	f := newTestFair()

	require.Len(t, f.FeasibilitySteps, 3)
	for i, step := range f.FeasibilitySteps {
		assert.Equal(t, testSteps[i], step.Description)
		assert.False(t, step.Completed)
	}
	assert.Equal(t, "step-0", f.FeasibilitySteps[0].ID)
	assert.Equal(t, "step-2", f.FeasibilitySteps[2].ID)
}

func TestNewFair_SeedsMarketingExecution(t *testing.T) {
	f := newTestFair()

	require.Len(t, f.MarketingExecution, 3)
	assert.Equal(t, "mk1", f.MarketingExecution[0].ID)
	assert.Equal(t, "Social Media", f.MarketingExecution[0].Strategy)
	assert.Equal(t, "mk3", f.MarketingExecution[2].ID)
	for _, e := range f.MarketingExecution {
		assert.False(t, e.Implemented)
		assert.Empty(t, e.EvidenceLink)
	}
}

func TestNewFair_SubCollectionsEmptyNotNil(t *testing.T) {
	f := newTestFair()

	assert.NotNil(t, f.Activities)
	assert.NotNil(t, f.Materials)
	assert.NotNil(t, f.Contacts)
	assert.NotNil(t, f.Budget)
	assert.NotNil(t, f.SocialPosts)
	assert.NotNil(t, f.MarketingMaterials)
	assert.NotNil(t, f.LinkedActivityIDs)
	assert.NotNil(t, f.LinkedEntertainmentIDs)
	assert.Empty(t, f.Activities)
}

func TestFair_Clone_IsolatesSlices(t *testing.T) {
	f := newTestFair()
	f = f.WithContact(Contact{ID: "c1", Name: "Ana"})

	c := f.Clone()
	c.FeasibilitySteps[0].Completed = true
	c.Contacts[0].Name = "changed"

	assert.False(t, f.FeasibilitySteps[0].Completed)
	assert.Equal(t, "Ana", f.Contacts[0].Name)
}

func TestFair_WithToggledStep_FlipsAndRestores(t *testing.T) {
	f := newTestFair()

	once := f.WithToggledStep("step-1")
	assert.True(t, once.FeasibilitySteps[1].Completed)
	assert.False(t, once.FeasibilitySteps[0].Completed)

	twice := once.WithToggledStep("step-1")
	assert.False(t, twice.FeasibilitySteps[1].Completed)
}

func TestFair_WithToggledStep_UnknownIDUnchanged(t *testing.T) {
	f := newTestFair()

	out := f.WithToggledStep("step-99")

	require.Len(t, out.FeasibilitySteps, len(f.FeasibilitySteps))
	for _, step := range out.FeasibilitySteps {
		assert.False(t, step.Completed)
	}
}

func TestFair_WithToggledStep_DoesNotMutateReceiver(t *testing.T) {
	f := newTestFair()

	_ = f.WithToggledStep("step-0")

	assert.False(t, f.FeasibilitySteps[0].Completed)
}

func TestFair_WithToggledActivityLink_AddAndRemove(t *testing.T) {
	f := newTestFair()

	linked := f.WithToggledActivityLink("act1")
	assert.Equal(t, []string{"act1"}, linked.LinkedActivityIDs)

	linked = linked.WithToggledActivityLink("act2")
	assert.Equal(t, []string{"act1", "act2"}, linked.LinkedActivityIDs)

	unlinked := linked.WithToggledActivityLink("act1")
	assert.Equal(t, []string{"act2"}, unlinked.LinkedActivityIDs)
}

func TestFair_WithToggledEntertainmentLink(t *testing.T) {
	f := newTestFair()

	linked := f.WithToggledEntertainmentLink("ent1")
	assert.Equal(t, []string{"ent1"}, linked.LinkedEntertainmentIDs)

	unlinked := linked.WithToggledEntertainmentLink("ent1")
	assert.Empty(t, unlinked.LinkedEntertainmentIDs)
}

func TestFair_WithBudgetEntry_AppendsPreservingOrder(t *testing.T) {
	f := newTestFair()

	f = f.WithBudgetEntry(BudgetEntry{ID: "b1", Description: "Tents"})
	f = f.WithBudgetEntry(BudgetEntry{ID: "b2", Description: "Sound"})

	require.Len(t, f.Budget, 2)
	assert.Equal(t, "b1", f.Budget[0].ID)
	assert.Equal(t, "b2", f.Budget[1].ID)
}

func TestFair_WithFlippedBudgetStatus(t *testing.T) {
	f := newTestFair().WithBudgetEntry(BudgetEntry{ID: "b1", Status: BudgetPending})

	paid := f.WithFlippedBudgetStatus("b1")
	assert.Equal(t, BudgetPaid, paid.Budget[0].Status)

	pending := paid.WithFlippedBudgetStatus("b1")
	assert.Equal(t, BudgetPending, pending.Budget[0].Status)
}

func TestFair_WithMarketingExecution_PartialUpdate(t *testing.T) {
	f := newTestFair()

	implemented := true
	out := f.WithMarketingExecution("mk1", &implemented, nil)
	assert.True(t, out.MarketingExecution[0].Implemented)
	assert.Empty(t, out.MarketingExecution[0].EvidenceLink)

	link := "https://example.com/campaign"
	out = out.WithMarketingExecution("mk1", nil, &link)
	assert.True(t, out.MarketingExecution[0].Implemented)
	assert.Equal(t, link, out.MarketingExecution[0].EvidenceLink)
}

func TestFair_WithReportField_SetsNamedField(t *testing.T) {
	f := newTestFair()

	out := f.WithReportField("local_culture", "Strong Lenca identity")

	assert.Equal(t, "Strong Lenca identity", out.MarketStudyReport.LocalCulture)
	assert.Empty(t, out.MarketStudyReport.Risks)
}

func TestFair_WithReportField_UnknownFieldUnchanged(t *testing.T) {
	f := newTestFair()

	out := f.WithReportField("nonsense", "value")

	assert.Equal(t, f.MarketStudyReport, out.MarketStudyReport)
	assert.Equal(t, f.UpdatedAt, out.UpdatedAt)
}

func TestFair_WithCompanies_PartialSelection(t *testing.T) {
	f := newTestFair()

	study := "msc1"
	out := f.WithCompanies(&study, nil)
	assert.Equal(t, "msc1", out.SelectedMarketStudyCompanyID)
	assert.Empty(t, out.SelectedMarketingCompanyID)

	marketing := "mkc2"
	out = out.WithCompanies(nil, &marketing)
	assert.Equal(t, "msc1", out.SelectedMarketStudyCompanyID)
	assert.Equal(t, "mkc2", out.SelectedMarketingCompanyID)
}

func TestFair_WithPopulation_StoresVerbatim(t *testing.T) {
	f := newTestFair()

	out := f.WithPopulation("48000", "Gemini population lookup")

	assert.Equal(t, "48000", out.Population)
	assert.Equal(t, "Gemini population lookup", out.PopulationSource)
}
