package request

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"

	"github.com/echoes-archive/feria-api/internal/domain"
)

type CreateFairRequest struct {
	Title   string `json:"title" binding:"required"`
	Town    string `json:"town" binding:"required"`
	Country string `json:"country" binding:"required"`
	Date    string `json:"date" binding:"required" format:"YYYY-MM-DD"`
}

func (req *CreateFairRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Title, validation.Required, validation.Length(2, 100)),
		validation.Field(&req.Town, validation.Required, validation.Length(2, 100)),
		validation.Field(&req.Country, validation.Required, validation.Length(2, 60)),
		validation.Field(&req.Date, validation.Required, validation.Date("2006-01-02")),
	)
}

type AddActivityRequest struct {
	Name                string   `json:"name" binding:"required"`
	Category            string   `json:"category"`
	Description         string   `json:"description"`
	Cost                string   `json:"cost"`
	StaffRequired       int      `json:"staff_required"`
	ContactID           string   `json:"contact_id"`
	RequiredMaterialIDs []string `json:"required_material_ids"`
	Notes               string   `json:"notes"`
	VendorName          string   `json:"vendor_name"`
	FoodType            string   `json:"food_type"`
	VendorContact       string   `json:"vendor_contact"`
}

func (req *AddActivityRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.Category, validation.In(
			string(domain.ActivityInformative),
			string(domain.ActivityArchaeological),
			string(domain.ActivityRecreational),
			string(domain.ActivityEntertainment),
			string(domain.ActivityFoodDrink),
			string(domain.ActivityCustom),
		)),
		validation.Field(&req.Description, validation.Length(0, 500)),
		validation.Field(&req.StaffRequired, validation.Min(0)),
	)
}

type AddMaterialRequest struct {
	Name          string `json:"name" binding:"required"`
	Description   string `json:"description"`
	IsReusable    bool   `json:"is_reusable"`
	Type          string `json:"type"`
	EstimatedCost string `json:"estimated_cost"`
	ActualCost    string `json:"actual_cost"`
	StaffRequired int    `json:"staff_required"`
	ContactID     string `json:"contact_id"`
	Notes         string `json:"notes"`
}

func (req *AddMaterialRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.Type, validation.In(
			string(domain.AcquisitionPurchase),
			string(domain.AcquisitionRent),
		)),
		validation.Field(&req.StaffRequired, validation.Min(0)),
	)
}

type AddContactRequest struct {
	Name     string `json:"name" binding:"required"`
	Role     string `json:"role"`
	Category string `json:"category"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	Notes    string `json:"notes"`
}

func (req *AddContactRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.Category, validation.In(
			string(domain.ContactVendor),
			string(domain.ContactStaff),
			string(domain.ContactAuthority),
			string(domain.ContactLogistics),
			string(domain.ContactSponsor),
		)),
		validation.Field(&req.Email, is.Email),
	)
}

type AddBudgetEntryRequest struct {
	Category      string `json:"category"`
	Description   string `json:"description"`
	EstimatedCost string `json:"estimated_cost"`
	ActualCost    string `json:"actual_cost"`
	Status        string `json:"status"`
	Notes         string `json:"notes"`
}

func (req *AddBudgetEntryRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Category, validation.In(
			string(domain.BudgetActivities),
			string(domain.BudgetMarketing),
			string(domain.BudgetMaterials),
			string(domain.BudgetVendors),
			string(domain.BudgetServices),
		)),
		validation.Field(&req.Status, validation.In(
			string(domain.BudgetPending),
			string(domain.BudgetPaid),
		)),
	)
}

type AddSocialPostRequest struct {
	Platform string `json:"platform" binding:"required"`
	Content  string `json:"content"`
	Hashtags string `json:"hashtags"`
	Status   string `json:"status"`
}

func (req *AddSocialPostRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Platform, validation.Required, validation.In(
			string(domain.PlatformInstagram),
			string(domain.PlatformFacebook),
			string(domain.PlatformTwitterX),
			string(domain.PlatformTikTok),
		)),
		validation.Field(&req.Status, validation.In(
			string(domain.PostDraft),
			string(domain.PostPublished),
		)),
	)
}

type GenerateSocialPostRequest struct {
	Platform string `json:"platform" binding:"required"`
}

func (req *GenerateSocialPostRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Platform, validation.Required, validation.In(
			string(domain.PlatformInstagram),
			string(domain.PlatformFacebook),
			string(domain.PlatformTwitterX),
			string(domain.PlatformTikTok),
		)),
	)
}

type AddMarketingMaterialRequest struct {
	Name string `json:"name" binding:"required"`
	Type string `json:"type"`
	URL  string `json:"url"`
}

func (req *AddMarketingMaterialRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.Type, validation.In(
			string(domain.MaterialPoster),
			string(domain.MaterialFlyer),
			string(domain.MaterialSocialMedia),
			string(domain.MaterialOther),
		)),
		validation.Field(&req.URL, is.URL),
	)
}

type MarketingExecutionRequest struct {
	Implemented  *bool   `json:"implemented"`
	EvidenceLink *string `json:"evidence_link"`
}

func (req *MarketingExecutionRequest) Validate() error {
	if req.Implemented == nil && req.EvidenceLink == nil {
		return errors.New("either implemented or evidence_link must be provided")
	}

	return nil
}

type ReportFieldRequest struct {
	Value string `json:"value"`
}

type SelectCompaniesRequest struct {
	MarketStudyCompanyID *string `json:"market_study_company_id"`
	MarketingCompanyID   *string `json:"marketing_company_id"`
}

func (req *SelectCompaniesRequest) Validate() error {
	if req.MarketStudyCompanyID == nil && req.MarketingCompanyID == nil {
		return errors.New("no company selection provided")
	}

	return nil
}

type SelectionRequest struct {
	// Empty clears the selection and returns to the listing view.
	FairID string `json:"fair_id"`
}

type LocaleRequest struct {
	Locale string `json:"locale" binding:"required"`
}

func (req *LocaleRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Locale, validation.Required, validation.In("en", "es")),
	)
}
