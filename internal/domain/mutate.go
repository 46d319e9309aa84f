package domain

import "time"

// Every helper below follows the same replacement discipline: take the fair by
// value, rebuild exactly one sub-collection preserving entry order and ids, and
// return the modified copy. Nothing is mutated in place; the caller commits the
// copy through the store as a wholesale replacement of the aggregate.

func (f Fair) touch() Fair {
	f.UpdatedAt = time.Now()
	return f
}

// WithToggledStep flips the completed flag of one feasibility step. Unknown step
// ids leave the fair unchanged; the checklist itself is fixed at creation.
func (f Fair) WithToggledStep(stepID string) Fair {
	steps := make([]FeasibilityStep, len(f.FeasibilitySteps))
	for i, s := range f.FeasibilitySteps {
		if s.ID == stepID {
			s.Completed = !s.Completed
		}
		steps[i] = s
	}
	f.FeasibilitySteps = steps

	return f.touch()
}

func toggleMembership(ids []string, id string) []string {
	for i, existing := range ids {
		if existing == id {
			out := make([]string, 0, len(ids)-1)
			out = append(out, ids[:i]...)
			return append(out, ids[i+1:]...)
		}
	}

	out := make([]string, 0, len(ids)+1)
	out = append(out, ids...)
	return append(out, id)
}

// WithToggledActivityLink adds or removes a library activity id from the linked set.
func (f Fair) WithToggledActivityLink(activityID string) Fair {
	f.LinkedActivityIDs = toggleMembership(f.LinkedActivityIDs, activityID)
	return f.touch()
}

// WithToggledEntertainmentLink adds or removes a provider id from the linked set.
func (f Fair) WithToggledEntertainmentLink(providerID string) Fair {
	f.LinkedEntertainmentIDs = toggleMembership(f.LinkedEntertainmentIDs, providerID)
	return f.touch()
}

func (f Fair) WithActivity(a Activity) Fair {
	f.Activities = append(append([]Activity{}, f.Activities...), a)
	return f.touch()
}

func (f Fair) WithMaterial(m Material) Fair {
	f.Materials = append(append([]Material{}, f.Materials...), m)
	return f.touch()
}

func (f Fair) WithContact(c Contact) Fair {
	f.Contacts = append(append([]Contact{}, f.Contacts...), c)
	return f.touch()
}

func (f Fair) WithBudgetEntry(e BudgetEntry) Fair {
	f.Budget = append(append([]BudgetEntry{}, f.Budget...), e)
	return f.touch()
}

func (f Fair) WithSocialPost(p SocialPost) Fair {
	f.SocialPosts = append(append([]SocialPost{}, f.SocialPosts...), p)
	return f.touch()
}

func (f Fair) WithMarketingMaterial(m MarketingMaterial) Fair {
	f.MarketingMaterials = append(append([]MarketingMaterial{}, f.MarketingMaterials...), m)
	return f.touch()
}

// WithFlippedBudgetStatus toggles one entry between Pending and Paid.
func (f Fair) WithFlippedBudgetStatus(entryID string) Fair {
	budget := make([]BudgetEntry, len(f.Budget))
	for i, e := range f.Budget {
		if e.ID == entryID {
			if e.Status == BudgetPaid {
				e.Status = BudgetPending
			} else {
				e.Status = BudgetPaid
			}
		}
		budget[i] = e
	}
	f.Budget = budget

	return f.touch()
}

// WithMarketingExecution updates the implemented flag and evidence link of one
// tracked strategy row. Nil arguments leave the corresponding field untouched.
func (f Fair) WithMarketingExecution(executionID string, implemented *bool, evidenceLink *string) Fair {
	execution := make([]MarketingStrategyExecution, len(f.MarketingExecution))
	for i, e := range f.MarketingExecution {
		if e.ID == executionID {
			if implemented != nil {
				e.Implemented = *implemented
			}
			if evidenceLink != nil {
				e.EvidenceLink = *evidenceLink
			}
		}
		execution[i] = e
	}
	f.MarketingExecution = execution

	return f.touch()
}

// ReportFields enumerates the narrative fields of the market study report.
var ReportFields = []string{
	"attendance_potential",
	"local_culture",
	"infrastructure",
	"economic_context",
	"heritage_access",
	"seasonality",
	"promotional_env",
	"risks",
	"impact_indicators",
	"feasibility",
}

// WithReportField sets one market-study narrative field by its wire name.
// Unknown field names leave the fair unchanged.
func (f Fair) WithReportField(field, value string) Fair {
	r := f.MarketStudyReport
	switch field {
	case "attendance_potential":
		r.AttendancePotential = value
	case "local_culture":
		r.LocalCulture = value
	case "infrastructure":
		r.Infrastructure = value
	case "economic_context":
		r.EconomicContext = value
	case "heritage_access":
		r.HeritageAccess = value
	case "seasonality":
		r.Seasonality = value
	case "promotional_env":
		r.PromotionalEnv = value
	case "risks":
		r.Risks = value
	case "impact_indicators":
		r.ImpactIndicators = value
	case "feasibility":
		r.Feasibility = value
	default:
		return f
	}
	f.MarketStudyReport = r

	return f.touch()
}

// WithCompanies sets the single optional market-study / marketing company
// references. Nil arguments leave the corresponding selection untouched.
func (f Fair) WithCompanies(marketStudyCompanyID, marketingCompanyID *string) Fair {
	if marketStudyCompanyID != nil {
		f.SelectedMarketStudyCompanyID = *marketStudyCompanyID
	}
	if marketingCompanyID != nil {
		f.SelectedMarketingCompanyID = *marketingCompanyID
	}

	return f.touch()
}

// WithPopulation stores the looked-up population string verbatim together with
// its source note. No range validation happens on purpose.
func (f Fair) WithPopulation(population, source string) Fair {
	f.Population = population
	f.PopulationSource = source

	return f.touch()
}

// WithFeasibilityAnalysis stores the generated narrative verbatim, unlimited.
func (f Fair) WithFeasibilityAnalysis(text string) Fair {
	f.FeasibilityAnalysis = text
	return f.touch()
}
