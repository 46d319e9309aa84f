package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/echoes-archive/feria-api/internal/api/handler/v1/request"
	"github.com/echoes-archive/feria-api/internal/api/handler/v1/response"
	"github.com/echoes-archive/feria-api/internal/domain"
	"github.com/echoes-archive/feria-api/internal/service"
)

type FairService interface {
	CreateFair(ctx context.Context, input service.CreateFairInput) (domain.Fair, error)
	ListFairs() []domain.Fair
	GetFair(id string) (domain.Fair, error)
	ReplaceFair(fair domain.Fair)
	SelectFair(id string)
	SelectedFair() (domain.Fair, bool)
	Summary(fairID string) (service.Summary, error)
	Locale() string
	SetLocale(locale string) error
	ToggleFeasibilityStep(fairID, stepID string) (domain.Fair, error)
	ToggleActivityLink(fairID, activityID string) (domain.Fair, error)
	ToggleEntertainmentLink(fairID, providerID string) (domain.Fair, error)
	AddActivity(fairID string, activity domain.Activity) (domain.Fair, error)
	AddMaterial(fairID string, material domain.Material) (domain.Fair, error)
	AddContact(fairID string, contact domain.Contact) (domain.Fair, error)
	AddBudgetEntry(fairID string, entry domain.BudgetEntry) (domain.Fair, error)
	FlipBudgetStatus(fairID, entryID string) (domain.Fair, error)
	AddSocialPost(fairID string, post domain.SocialPost) (domain.Fair, error)
	AddMarketingMaterial(fairID string, material domain.MarketingMaterial) (domain.Fair, error)
	SetMarketingExecution(fairID, executionID string, implemented *bool, evidenceLink *string) (domain.Fair, error)
	SetReportField(fairID, field, value string) (domain.Fair, error)
	SelectCompanies(fairID string, marketStudyCompanyID, marketingCompanyID *string) (domain.Fair, error)
}

type FairHandler struct {
	svc FairService
}

func NewFairHandler(svc FairService) *FairHandler {
	return &FairHandler{
		svc: svc,
	}
}

// HandleListFairs godoc
// @Summary      List all fairs
// @Description  Returns every fair in creation order
// @Tags         fairs
// @Produce      json
// @Success      200  {array}  domain.Fair
// @Router       /fairs [get]
func (h *FairHandler) HandleListFairs(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, h.svc.ListFairs())
}

// HandleCreateFair godoc
// @Summary      Create a new fair
// @Description  Creates a fully formed fair: fixed feasibility checklist, seeded marketing rows, empty sub-collections. The date must be today or later; a town the verifier explicitly rejects blocks creation.
// @Tags         fairs
// @Accept       json
// @Produce      json
// @Param        input  body      request.CreateFairRequest  true  "Fair details"
// @Success      201    {object}  domain.Fair
// @Failure      400    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /fairs [post]
func (h *FairHandler) HandleCreateFair(ctx *gin.Context) {
	var req request.CreateFairRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	parsedDate, err := time.ParseInLocation("2006-01-02", req.Date, time.Local)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid date format: %v", err)))
		return
	}

	fair, err := h.svc.CreateFair(ctx.Request.Context(), service.CreateFairInput{
		Title:   req.Title,
		Town:    req.Town,
		Country: req.Country,
		Date:    parsedDate,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrDateInPast), errors.Is(err, service.ErrTownNotFound):
			response.RenderErr(ctx, response.ErrBadRequest(err))
		default:
			err = fmt.Errorf("HandleCreateFair -> h.svc.CreateFair -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusCreated, fair)
}

// HandleGetFair godoc
// @Summary      Get one fair
// @Tags         fairs
// @Produce      json
// @Param        fairID  path      string  true  "Fair ID"
// @Success      200     {object}  domain.Fair
// @Failure      404     {object}  response.Err
// @Router       /fairs/{fairID} [get]
func (h *FairHandler) HandleGetFair(ctx *gin.Context) {
	fair, err := h.svc.GetFair(ctx.Param("fairID"))
	if err != nil {
		response.RenderErr(ctx, response.ErrNotFound("fair", "ID", ctx.Param("fairID")))
		return
	}

	ctx.JSON(http.StatusOK, fair)
}

// HandleReplaceFair godoc
// @Summary      Replace a fair wholesale
// @Description  Swaps the stored fair with the request body. An unknown id is silently absorbed as a no-op.
// @Tags         fairs
// @Accept       json
// @Param        fairID  path  string       true  "Fair ID"
// @Param        fair    body  domain.Fair  true  "Replacement fair"
// @Success      204
// @Failure      400  {object}  response.Err
// @Router       /fairs/{fairID} [put]
func (h *FairHandler) HandleReplaceFair(ctx *gin.Context) {
	var fair domain.Fair
	if err := ctx.ShouldBindJSON(&fair); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	fair.ID = ctx.Param("fairID")
	h.svc.ReplaceFair(fair)

	ctx.Status(http.StatusNoContent)
}

// HandleGetSummary godoc
// @Summary      Derived totals and attendance projection
// @Tags         fairs
// @Produce      json
// @Param        fairID  path      string  true  "Fair ID"
// @Success      200     {object}  response.FairSummary
// @Failure      404     {object}  response.Err
// @Router       /fairs/{fairID}/summary [get]
func (h *FairHandler) HandleGetSummary(ctx *gin.Context) {
	fairID := ctx.Param("fairID")

	summary, err := h.svc.Summary(fairID)
	if err != nil {
		response.RenderErr(ctx, response.ErrNotFound("fair", "ID", fairID))
		return
	}

	ctx.JSON(http.StatusOK, response.FairSummary{
		FairID:               fairID,
		TotalCost:            summary.Totals.Cost,
		TotalStaff:           summary.Totals.Staff,
		AttendanceProjection: summary.AttendanceProjection,
	})
}

// HandleGetSelection godoc
// @Summary      Get the currently selected fair
// @Tags         selection
// @Produce      json
// @Success      200  {object}  response.Selection
// @Router       /selection [get]
func (h *FairHandler) HandleGetSelection(ctx *gin.Context) {
	fair, ok := h.svc.SelectedFair()
	if !ok {
		ctx.JSON(http.StatusOK, response.Selection{})
		return
	}

	ctx.JSON(http.StatusOK, response.Selection{FairID: fair.ID})
}

// HandleSetSelection godoc
// @Summary      Select a fair
// @Description  An empty fair_id clears the selection. Selecting an unknown id resolves to the safe "nothing selected" state.
// @Tags         selection
// @Accept       json
// @Produce      json
// @Param        input  body      request.SelectionRequest  true  "Selection"
// @Success      200    {object}  response.Selection
// @Failure      400    {object}  response.Err
// @Router       /selection [put]
func (h *FairHandler) HandleSetSelection(ctx *gin.Context) {
	var req request.SelectionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	h.svc.SelectFair(req.FairID)

	fair, ok := h.svc.SelectedFair()
	if !ok {
		ctx.JSON(http.StatusOK, response.Selection{})
		return
	}

	ctx.JSON(http.StatusOK, response.Selection{FairID: fair.ID})
}

// renderMutation maps the shared outcome of the sub-collection edits: the
// updated fair on success, 404 when the fair id is unknown at call time.
func renderMutation(ctx *gin.Context, fair domain.Fair, err error) {
	if err != nil {
		if errors.Is(err, service.ErrFairNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("fair", "ID", ctx.Param("fairID")))
			return
		}

		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, fair)
}

// HandleToggleStep godoc
// @Summary      Toggle a feasibility checklist step
// @Tags         feasibility
// @Produce      json
// @Param        fairID  path      string  true  "Fair ID"
// @Param        stepID  path      string  true  "Step ID"
// @Success      200     {object}  domain.Fair
// @Failure      404     {object}  response.Err
// @Router       /fairs/{fairID}/feasibility/{stepID}/toggle [post]
func (h *FairHandler) HandleToggleStep(ctx *gin.Context) {
	fair, err := h.svc.ToggleFeasibilityStep(ctx.Param("fairID"), ctx.Param("stepID"))
	renderMutation(ctx, fair, err)
}

// HandleToggleActivityLink godoc
// @Summary      Link or unlink a library activity
// @Tags         activities
// @Produce      json
// @Param        fairID      path      string  true  "Fair ID"
// @Param        activityID  path      string  true  "Library activity ID"
// @Success      200         {object}  domain.Fair
// @Failure      404         {object}  response.Err
// @Router       /fairs/{fairID}/activities/{activityID}/link [post]
func (h *FairHandler) HandleToggleActivityLink(ctx *gin.Context) {
	fair, err := h.svc.ToggleActivityLink(ctx.Param("fairID"), ctx.Param("activityID"))
	renderMutation(ctx, fair, err)
}

// HandleToggleEntertainmentLink godoc
// @Summary      Link or unlink an entertainment provider
// @Tags         activities
// @Produce      json
// @Param        fairID      path      string  true  "Fair ID"
// @Param        providerID  path      string  true  "Provider ID"
// @Success      200         {object}  domain.Fair
// @Failure      404         {object}  response.Err
// @Router       /fairs/{fairID}/entertainment/{providerID}/link [post]
func (h *FairHandler) HandleToggleEntertainmentLink(ctx *gin.Context) {
	fair, err := h.svc.ToggleEntertainmentLink(ctx.Param("fairID"), ctx.Param("providerID"))
	renderMutation(ctx, fair, err)
}

// HandleAddActivity godoc
// @Summary      Add a custom activity
// @Tags         activities
// @Accept       json
// @Produce      json
// @Param        fairID  path      string                      true  "Fair ID"
// @Param        input   body      request.AddActivityRequest  true  "Activity details"
// @Success      200     {object}  domain.Fair
// @Failure      400     {object}  response.Err
// @Failure      404     {object}  response.Err
// @Router       /fairs/{fairID}/activities [post]
func (h *FairHandler) HandleAddActivity(ctx *gin.Context) {
	var req request.AddActivityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	category := domain.ActivityCategory(req.Category)
	if category == "" {
		category = domain.ActivityCustom
	}

	fair, err := h.svc.AddActivity(ctx.Param("fairID"), domain.Activity{
		Name:                req.Name,
		Category:            category,
		Description:         req.Description,
		Cost:                domain.ParseAmount(req.Cost),
		StaffRequired:       req.StaffRequired,
		ContactID:           req.ContactID,
		RequiredMaterialIDs: req.RequiredMaterialIDs,
		Notes:               req.Notes,
		VendorName:          req.VendorName,
		FoodType:            req.FoodType,
		VendorContact:       req.VendorContact,
	})
	renderMutation(ctx, fair, err)
}

// HandleAddMaterial godoc
// @Summary      Add a material
// @Tags         materials
// @Accept       json
// @Produce      json
// @Param        fairID  path      string                      true  "Fair ID"
// @Param        input   body      request.AddMaterialRequest  true  "Material details"
// @Success      200     {object}  domain.Fair
// @Failure      400     {object}  response.Err
// @Failure      404     {object}  response.Err
// @Router       /fairs/{fairID}/materials [post]
func (h *FairHandler) HandleAddMaterial(ctx *gin.Context) {
	var req request.AddMaterialRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	acquisition := domain.AcquisitionType(req.Type)
	if acquisition == "" {
		acquisition = domain.AcquisitionPurchase
	}

	fair, err := h.svc.AddMaterial(ctx.Param("fairID"), domain.Material{
		Name:          req.Name,
		Description:   req.Description,
		IsReusable:    req.IsReusable,
		Type:          acquisition,
		EstimatedCost: domain.ParseAmount(req.EstimatedCost),
		ActualCost:    domain.ParseAmount(req.ActualCost),
		StaffRequired: req.StaffRequired,
		ContactID:     req.ContactID,
		Notes:         req.Notes,
	})
	renderMutation(ctx, fair, err)
}

// HandleAddContact godoc
// @Summary      Add a contact
// @Tags         contacts
// @Accept       json
// @Produce      json
// @Param        fairID  path      string                     true  "Fair ID"
// @Param        input   body      request.AddContactRequest  true  "Contact details"
// @Success      200     {object}  domain.Fair
// @Failure      400     {object}  response.Err
// @Failure      404     {object}  response.Err
// @Router       /fairs/{fairID}/contacts [post]
func (h *FairHandler) HandleAddContact(ctx *gin.Context) {
	var req request.AddContactRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	category := domain.ContactCategory(req.Category)
	if category == "" {
		category = domain.ContactVendor
	}

	fair, err := h.svc.AddContact(ctx.Param("fairID"), domain.Contact{
		Name:     req.Name,
		Role:     req.Role,
		Category: category,
		Phone:    req.Phone,
		Email:    req.Email,
		Notes:    req.Notes,
	})
	renderMutation(ctx, fair, err)
}

// HandleAddBudgetEntry godoc
// @Summary      Append a budget line item
// @Description  Omitted fields get the ledger defaults: Activities category, "New Expense" description, zero costs, Pending status.
// @Tags         budget
// @Accept       json
// @Produce      json
// @Param        fairID  path      string                         true  "Fair ID"
// @Param        input   body      request.AddBudgetEntryRequest  true  "Budget entry"
// @Success      200     {object}  domain.Fair
// @Failure      400     {object}  response.Err
// @Failure      404     {object}  response.Err
// @Router       /fairs/{fairID}/budget [post]
func (h *FairHandler) HandleAddBudgetEntry(ctx *gin.Context) {
	var req request.AddBudgetEntryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	category := domain.BudgetCategory(req.Category)
	if category == "" {
		category = domain.BudgetActivities
	}
	description := req.Description
	if description == "" {
		description = "New Expense"
	}

	fair, err := h.svc.AddBudgetEntry(ctx.Param("fairID"), domain.BudgetEntry{
		Category:      category,
		Description:   description,
		EstimatedCost: domain.ParseAmount(req.EstimatedCost),
		ActualCost:    domain.ParseAmount(req.ActualCost),
		Status:        domain.BudgetStatus(req.Status),
		Notes:         req.Notes,
	})
	renderMutation(ctx, fair, err)
}

// HandleFlipBudgetStatus godoc
// @Summary      Flip a budget entry between Pending and Paid
// @Tags         budget
// @Produce      json
// @Param        fairID   path      string  true  "Fair ID"
// @Param        entryID  path      string  true  "Budget entry ID"
// @Success      200      {object}  domain.Fair
// @Failure      404      {object}  response.Err
// @Router       /fairs/{fairID}/budget/{entryID}/status [post]
func (h *FairHandler) HandleFlipBudgetStatus(ctx *gin.Context) {
	fair, err := h.svc.FlipBudgetStatus(ctx.Param("fairID"), ctx.Param("entryID"))
	renderMutation(ctx, fair, err)
}

// HandleAddSocialPost godoc
// @Summary      Add a social post manually
// @Tags         marketing
// @Accept       json
// @Produce      json
// @Param        fairID  path      string                        true  "Fair ID"
// @Param        input   body      request.AddSocialPostRequest  true  "Post details"
// @Success      200     {object}  domain.Fair
// @Failure      400     {object}  response.Err
// @Failure      404     {object}  response.Err
// @Router       /fairs/{fairID}/social-posts [post]
func (h *FairHandler) HandleAddSocialPost(ctx *gin.Context) {
	var req request.AddSocialPostRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	fair, err := h.svc.AddSocialPost(ctx.Param("fairID"), domain.SocialPost{
		Platform: domain.SocialPlatform(req.Platform),
		Content:  req.Content,
		Hashtags: req.Hashtags,
		Status:   domain.PostStatus(req.Status),
	})
	renderMutation(ctx, fair, err)
}

// HandleAddMarketingMaterial godoc
// @Summary      Add a marketing asset
// @Tags         marketing
// @Accept       json
// @Produce      json
// @Param        fairID  path      string                               true  "Fair ID"
// @Param        input   body      request.AddMarketingMaterialRequest  true  "Asset details"
// @Success      200     {object}  domain.Fair
// @Failure      400     {object}  response.Err
// @Failure      404     {object}  response.Err
// @Router       /fairs/{fairID}/marketing/materials [post]
func (h *FairHandler) HandleAddMarketingMaterial(ctx *gin.Context) {
	var req request.AddMarketingMaterialRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	materialType := domain.MarketingMaterialType(req.Type)
	if materialType == "" {
		materialType = domain.MaterialOther
	}

	fair, err := h.svc.AddMarketingMaterial(ctx.Param("fairID"), domain.MarketingMaterial{
		Name: req.Name,
		Type: materialType,
		URL:  req.URL,
	})
	renderMutation(ctx, fair, err)
}

// HandleSetMarketingExecution godoc
// @Summary      Update one tracked marketing strategy row
// @Tags         marketing
// @Accept       json
// @Produce      json
// @Param        fairID       path      string                             true  "Fair ID"
// @Param        executionID  path      string                             true  "Execution row ID"
// @Param        input        body      request.MarketingExecutionRequest  true  "Implemented flag and/or evidence link"
// @Success      200          {object}  domain.Fair
// @Failure      400          {object}  response.Err
// @Failure      404          {object}  response.Err
// @Router       /fairs/{fairID}/marketing/{executionID} [put]
func (h *FairHandler) HandleSetMarketingExecution(ctx *gin.Context) {
	var req request.MarketingExecutionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	fair, err := h.svc.SetMarketingExecution(ctx.Param("fairID"), ctx.Param("executionID"), req.Implemented, req.EvidenceLink)
	renderMutation(ctx, fair, err)
}

// HandleSetReportField godoc
// @Summary      Set one market-study report narrative field
// @Tags         feasibility
// @Accept       json
// @Produce      json
// @Param        fairID  path      string                     true  "Fair ID"
// @Param        field   path      string                     true  "Report field name"
// @Param        input   body      request.ReportFieldRequest true  "Field value"
// @Success      200     {object}  domain.Fair
// @Failure      400     {object}  response.Err
// @Failure      404     {object}  response.Err
// @Router       /fairs/{fairID}/report/{field} [put]
func (h *FairHandler) HandleSetReportField(ctx *gin.Context) {
	field := ctx.Param("field")
	if !isReportField(field) {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("unknown report field %q", field)))
		return
	}

	var req request.ReportFieldRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	fair, err := h.svc.SetReportField(ctx.Param("fairID"), field, req.Value)
	renderMutation(ctx, fair, err)
}

func isReportField(field string) bool {
	for _, known := range domain.ReportFields {
		if field == known {
			return true
		}
	}

	return false
}

// HandleSelectCompanies godoc
// @Summary      Select the market-study and/or marketing company
// @Description  Each fair references at most one company of each kind.
// @Tags         feasibility
// @Accept       json
// @Produce      json
// @Param        fairID  path      string                         true  "Fair ID"
// @Param        input   body      request.SelectCompaniesRequest true  "Company selection"
// @Success      200     {object}  domain.Fair
// @Failure      400     {object}  response.Err
// @Failure      404     {object}  response.Err
// @Router       /fairs/{fairID}/companies [put]
func (h *FairHandler) HandleSelectCompanies(ctx *gin.Context) {
	var req request.SelectCompaniesRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	fair, err := h.svc.SelectCompanies(ctx.Param("fairID"), req.MarketStudyCompanyID, req.MarketingCompanyID)
	renderMutation(ctx, fair, err)
}
