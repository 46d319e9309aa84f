package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type ActivityCategory string

const (
	ActivityInformative    ActivityCategory = "Informative"
	ActivityArchaeological ActivityCategory = "Archaeological"
	ActivityRecreational   ActivityCategory = "Recreational"
	ActivityEntertainment  ActivityCategory = "Entertainment"
	ActivityFoodDrink      ActivityCategory = "Food & Drinks"
	ActivityCustom         ActivityCategory = "Custom / Town Specific"
)

type AcquisitionType string

const (
	AcquisitionPurchase AcquisitionType = "Purchase"
	AcquisitionRent     AcquisitionType = "Rent"
)

type ContactCategory string

const (
	ContactVendor    ContactCategory = "Vendor"
	ContactStaff     ContactCategory = "Staff"
	ContactAuthority ContactCategory = "Authority"
	ContactLogistics ContactCategory = "Logistics"
	ContactSponsor   ContactCategory = "Sponsor"
)

type BudgetCategory string

const (
	BudgetActivities BudgetCategory = "Activities"
	BudgetMarketing  BudgetCategory = "Marketing"
	BudgetMaterials  BudgetCategory = "Materials"
	BudgetVendors    BudgetCategory = "Vendors"
	BudgetServices   BudgetCategory = "Services"
)

type BudgetStatus string

const (
	BudgetPending BudgetStatus = "Pending"
	BudgetPaid    BudgetStatus = "Paid"
)

type SocialPlatform string

const (
	PlatformInstagram SocialPlatform = "Instagram"
	PlatformFacebook  SocialPlatform = "Facebook"
	PlatformTwitterX  SocialPlatform = "Twitter/X"
	PlatformTikTok    SocialPlatform = "TikTok"
)

type PostStatus string

const (
	PostDraft     PostStatus = "Draft"
	PostPublished PostStatus = "Published"
)

type MarketingMaterialType string

const (
	MaterialPoster      MarketingMaterialType = "Poster"
	MaterialFlyer       MarketingMaterialType = "Flyer"
	MaterialSocialMedia MarketingMaterialType = "Social Media"
	MaterialOther       MarketingMaterialType = "Other"
)

// FeasibilityStep is one item of the pre-event viability checklist. The set is
// fixed when the fair is created; only the completed flag ever changes.
type FeasibilityStep struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
}

type Activity struct {
	ID                  string           `json:"id"`
	Name                string           `json:"name"`
	Category            ActivityCategory `json:"category"`
	Description         string           `json:"description"`
	Cost                decimal.Decimal  `json:"cost"`
	StaffRequired       int              `json:"staff_required"`
	ContactID           string           `json:"contact_id,omitempty"`
	RequiredMaterialIDs []string         `json:"required_material_ids,omitempty"`
	Notes               string           `json:"notes,omitempty"`
	// Food & Drinks only.
	VendorName    string `json:"vendor_name,omitempty"`
	FoodType      string `json:"food_type,omitempty"`
	VendorContact string `json:"vendor_contact,omitempty"`
}

type Material struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	IsReusable    bool            `json:"is_reusable"`
	Type          AcquisitionType `json:"type"`
	EstimatedCost decimal.Decimal `json:"estimated_cost"`
	ActualCost    decimal.Decimal `json:"actual_cost"`
	StaffRequired int             `json:"staff_required"`
	ContactID     string          `json:"contact_id,omitempty"`
	Notes         string          `json:"notes,omitempty"`
}

type Contact struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Role     string          `json:"role"`
	Category ContactCategory `json:"category"`
	Phone    string          `json:"phone"`
	Email    string          `json:"email"`
	Notes    string          `json:"notes,omitempty"`
}

type BudgetEntry struct {
	ID            string          `json:"id"`
	Category      BudgetCategory  `json:"category"`
	Description   string          `json:"description"`
	EstimatedCost decimal.Decimal `json:"estimated_cost"`
	ActualCost    decimal.Decimal `json:"actual_cost"`
	Status        BudgetStatus    `json:"status"`
	Notes         string          `json:"notes,omitempty"`
}

type SocialPost struct {
	ID       string         `json:"id"`
	Platform SocialPlatform `json:"platform"`
	Content  string         `json:"content"`
	Hashtags string         `json:"hashtags"`
	Status   PostStatus     `json:"status"`
}

type MarketingStrategyExecution struct {
	ID           string `json:"id"`
	Strategy     string `json:"strategy"`
	Implemented  bool   `json:"implemented"`
	EvidenceLink string `json:"evidence_link"`
}

type MarketingMaterial struct {
	ID   string                `json:"id"`
	Name string                `json:"name"`
	Type MarketingMaterialType `json:"type"`
	URL  string                `json:"url"`
}

// MarketStudyReport is a manually filled narrative; every field is free text.
type MarketStudyReport struct {
	AttendancePotential string `json:"attendance_potential"`
	LocalCulture        string `json:"local_culture"`
	Infrastructure      string `json:"infrastructure"`
	EconomicContext     string `json:"economic_context"`
	HeritageAccess      string `json:"heritage_access"`
	Seasonality         string `json:"seasonality"`
	PromotionalEnv      string `json:"promotional_env"`
	Risks               string `json:"risks"`
	ImpactIndicators    string `json:"impact_indicators"`
	Feasibility         string `json:"feasibility"`
}

// Company is a third-party firm offering market-study or marketing services.
type Company struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Specialty string `json:"specialty"`
	Services  string `json:"services"`
	CostRange string `json:"cost_range"`
	Contact   string `json:"contact"`
}

type EntertainmentProvider struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	ServiceType string          `json:"service_type"`
	Cost        decimal.Decimal `json:"cost"`
	Duration    string          `json:"duration"`
	Contact     string          `json:"contact"`
	Notes       string          `json:"notes,omitempty"`
}

// Fair is the root planning record for one cultural/heritage event. Fairs are
// independent of each other; every sub-entity id is unique within its fair and
// stable for the entity's lifetime.
type Fair struct {
	ID      string    `json:"id"`
	Title   string    `json:"title"`
	Town    string    `json:"town"`
	Country string    `json:"country,omitempty"`
	Date    time.Time `json:"date"`

	// Digits-only string filled by the population lookup; free text by design.
	Population       string `json:"population,omitempty"`
	PopulationSource string `json:"population_source,omitempty"`

	FeasibilitySteps    []FeasibilityStep `json:"feasibility_steps"`
	FeasibilityAnalysis string            `json:"feasibility_analysis,omitempty"`

	SelectedMarketStudyCompanyID string            `json:"selected_market_study_company_id,omitempty"`
	SelectedMarketingCompanyID   string            `json:"selected_marketing_company_id,omitempty"`
	MarketStudyReport            MarketStudyReport `json:"market_study_report"`

	LinkedActivityIDs      []string `json:"linked_activity_ids"`
	LinkedEntertainmentIDs []string `json:"linked_entertainment_ids"`

	Activities         []Activity                   `json:"activities"`
	Materials          []Material                   `json:"materials"`
	Contacts           []Contact                    `json:"contacts"`
	Budget             []BudgetEntry                `json:"budget"`
	SocialPosts        []SocialPost                 `json:"social_posts"`
	MarketingExecution []MarketingStrategyExecution `json:"marketing_execution"`
	MarketingMaterials []MarketingMaterial          `json:"marketing_materials"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewFair constructs a fully formed fair in one step: fixed checklist built from
// the step catalog with positional ids, the seeded marketing strategy rows, and
// empty sub-collections. No partially initialized fair is ever observable.
func NewFair(id, title, town, country string, date time.Time, stepCatalog, strategySeed []string) Fair {
	now := time.Now()

	steps := make([]FeasibilityStep, len(stepCatalog))
	for i, description := range stepCatalog {
		steps[i] = FeasibilityStep{
			ID:          fmt.Sprintf("step-%d", i),
			Description: description,
		}
	}

	execution := make([]MarketingStrategyExecution, len(strategySeed))
	for i, strategy := range strategySeed {
		execution[i] = MarketingStrategyExecution{
			ID:       fmt.Sprintf("mk%d", i+1),
			Strategy: strategy,
		}
	}

	return Fair{
		ID:                     id,
		Title:                  title,
		Town:                   town,
		Country:                country,
		Date:                   date,
		FeasibilitySteps:       steps,
		LinkedActivityIDs:      []string{},
		LinkedEntertainmentIDs: []string{},
		Activities:             []Activity{},
		Materials:              []Material{},
		Contacts:               []Contact{},
		Budget:                 []BudgetEntry{},
		SocialPosts:            []SocialPost{},
		MarketingExecution:     execution,
		MarketingMaterials:     []MarketingMaterial{},
		CreatedAt:              now,
		UpdatedAt:              now,
	}
}

// Clone returns a deep copy so callers can never alias slices held by the store.
func (f Fair) Clone() Fair {
	c := f
	c.FeasibilitySteps = append([]FeasibilityStep(nil), f.FeasibilitySteps...)
	c.LinkedActivityIDs = append([]string(nil), f.LinkedActivityIDs...)
	c.LinkedEntertainmentIDs = append([]string(nil), f.LinkedEntertainmentIDs...)
	c.Activities = make([]Activity, len(f.Activities))
	for i, a := range f.Activities {
		a.RequiredMaterialIDs = append([]string(nil), a.RequiredMaterialIDs...)
		c.Activities[i] = a
	}
	c.Materials = append([]Material(nil), f.Materials...)
	c.Contacts = append([]Contact(nil), f.Contacts...)
	c.Budget = append([]BudgetEntry(nil), f.Budget...)
	c.SocialPosts = append([]SocialPost(nil), f.SocialPosts...)
	c.MarketingExecution = append([]MarketingStrategyExecution(nil), f.MarketingExecution...)
	c.MarketingMaterials = append([]MarketingMaterial(nil), f.MarketingMaterials...)

	return c
}
