package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/echoes-archive/feria-api/internal/api/handler/v1/request"
	"github.com/echoes-archive/feria-api/internal/api/handler/v1/response"
	"github.com/echoes-archive/feria-api/internal/catalog"
	"github.com/echoes-archive/feria-api/internal/i18n"
)

// LocaleStore is the slice of the fair service the catalog handler needs.
type LocaleStore interface {
	Locale() string
	SetLocale(locale string) error
}

// CatalogHandler serves the static planning libraries and the locale state.
type CatalogHandler struct {
	locales LocaleStore
}

func NewCatalogHandler(locales LocaleStore) *CatalogHandler {
	return &CatalogHandler{
		locales: locales,
	}
}

// HandleListActivityLibrary godoc
// @Summary      Reusable activity library
// @Tags         catalog
// @Produce      json
// @Success      200  {array}  domain.Activity
// @Router       /catalog/activities [get]
func (h *CatalogHandler) HandleListActivityLibrary(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, catalog.ActivityLibrary)
}

// HandleListMaterialLibrary godoc
// @Summary      Reusable material library
// @Tags         catalog
// @Produce      json
// @Success      200  {array}  domain.Material
// @Router       /catalog/materials [get]
func (h *CatalogHandler) HandleListMaterialLibrary(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, catalog.MaterialLibrary)
}

// HandleListStudyCompanies godoc
// @Summary      Vetted market-study companies
// @Tags         catalog
// @Produce      json
// @Success      200  {array}  domain.Company
// @Router       /catalog/study-companies [get]
func (h *CatalogHandler) HandleListStudyCompanies(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, catalog.MarketStudyCompanies)
}

// HandleListMarketingCompanies godoc
// @Summary      Vetted marketing companies
// @Tags         catalog
// @Produce      json
// @Success      200  {array}  domain.Company
// @Router       /catalog/marketing-companies [get]
func (h *CatalogHandler) HandleListMarketingCompanies(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, catalog.MarketingCompanies)
}

// HandleListEntertainment godoc
// @Summary      Entertainment providers
// @Tags         catalog
// @Produce      json
// @Success      200  {array}  domain.EntertainmentProvider
// @Router       /catalog/entertainment [get]
func (h *CatalogHandler) HandleListEntertainment(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, catalog.EntertainmentProviders)
}

// HandleGetLabels godoc
// @Summary      UI label table for one locale
// @Tags         i18n
// @Produce      json
// @Param        lang  path      string  true  "Locale key (en or es)"
// @Success      200   {object}  map[string]string
// @Failure      404   {object}  response.Err
// @Router       /i18n/{lang} [get]
func (h *CatalogHandler) HandleGetLabels(ctx *gin.Context) {
	lang := ctx.Param("lang")

	labels, ok := i18n.Labels(lang)
	if !ok {
		response.RenderErr(ctx, response.ErrNotFound("locale", "key", lang))
		return
	}

	ctx.JSON(http.StatusOK, labels)
}

// HandleGetLocale godoc
// @Summary      Active locale key
// @Tags         i18n
// @Produce      json
// @Success      200  {object}  response.Locale
// @Router       /locale [get]
func (h *CatalogHandler) HandleGetLocale(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, response.Locale{Locale: h.locales.Locale()})
}

// HandleSetLocale godoc
// @Summary      Switch the active locale
// @Tags         i18n
// @Accept       json
// @Produce      json
// @Param        input  body      request.LocaleRequest  true  "Locale key"
// @Success      200    {object}  response.Locale
// @Failure      400    {object}  response.Err
// @Router       /locale [put]
func (h *CatalogHandler) HandleSetLocale(ctx *gin.Context) {
	var req request.LocaleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := h.locales.SetLocale(req.Locale); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	ctx.JSON(http.StatusOK, response.Locale{Locale: h.locales.Locale()})
}
