package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/workly_crm/internal/core/ports/services"
	"github.com/SscSPs/workly_crm/internal/dto"
	"github.com/SscSPs/workly_crm/internal/middleware"
	"github.com/SscSPs/workly_crm/internal/utils"
	"github.com/gin-gonic/gin"
)

// companyHandler handles HTTP requests related to companies.
type companyHandler struct {
	companyService portssvc.CompanySvcFacade
	posthogClient  *utils.PosthogClientWrapper
}

func newCompanyHandler(cs portssvc.CompanySvcFacade, posthogClient *utils.PosthogClientWrapper) *companyHandler {
	return &companyHandler{
		companyService: cs,
		posthogClient:  posthogClient,
	}
}

// registerCompanyAuthRoutes registers the public company routes.
func registerCompanyAuthRoutes(public *gin.RouterGroup, h *companyHandler, loginLimit gin.HandlerFunc) {
	companies := public.Group("/companies")
	{
		companies.POST("/register", h.registerCompany)
		companies.POST("/login", loginLimit, h.loginCompany)
	}
}

// registerCompanyRoutes registers the authenticated company routes.
func registerCompanyRoutes(rg *gin.RouterGroup, h *companyHandler, sharedSecret string) {
	admin := middleware.Authorize(middleware.AdminOnly, sharedSecret)
	companies := rg.Group("/companies")
	{
		companies.GET("", admin, h.listCompanies)
		companies.GET("/:id", admin, h.getCompany)
		companies.PUT("/:id", admin, h.updateCompany)
		companies.DELETE("/:id", middleware.Authorize(middleware.AdminOnly.WithSharedSecret(), sharedSecret), h.deleteCompany)
	}
}

// registerCompany godoc
// @Summary Register a company
// @Description Creates a company with a unique COMP-#### code and its first admin, and returns a token for the admin.
// @Tags companies
// @Accept json
// @Produce json
// @Param company body dto.RegisterCompanyRequest true "Company details"
// @Success 201 {object} dto.RegisterCompanyResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /companies/register [post]
func (h *companyHandler) registerCompany(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.RegisterCompanyRequest
	if !bindJSON(c, logger, &req) {
		return
	}

	reg, err := h.companyService.RegisterCompany(c.Request.Context(), req)
	if err != nil {
		handleServiceError(c, logger, err, "register company")
		return
	}

	middleware.PosthogEvent(c, h.posthogClient, reg.Admin.ID, "company_registered", map[string]any{
		"tenant_id": reg.Company.TenantCode.String(),
	})
	c.JSON(http.StatusCreated, dto.RegisterCompanyResponse{
		Message: "Company registered successfully",
		Company: dto.ToCompanyResponse(&reg.Company),
		Admin:   dto.ToEmployeeResponse(&reg.Admin),
		Token:   reg.Token,
	})
}

// loginCompany godoc
// @Summary Company login (step one)
// @Description Resolves a company by name and code and returns its employee roster.
// @Tags companies
// @Accept json
// @Produce json
// @Param login body dto.CompanyLoginRequest true "Company name and code"
// @Success 200 {object} dto.CompanyLoginResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 429 {object} dto.ErrorResponse
// @Router /companies/login [post]
func (h *companyHandler) loginCompany(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CompanyLoginRequest
	if !bindJSON(c, logger, &req) {
		return
	}

	company, roster, err := h.companyService.LoginCompany(c.Request.Context(), req)
	if err != nil {
		handleServiceError(c, logger, err, "log in company")
		return
	}
	c.JSON(http.StatusOK, dto.ToCompanyLoginResponse(company, roster))
}

// listCompanies godoc
// @Summary List companies
// @Description Lists the companies visible to the caller, which is only their own.
// @Tags companies
// @Produce json
// @Success 200 {array} dto.CompanyResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /companies [get]
func (h *companyHandler) listCompanies(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	principal, ok := principalOrAbort(c, logger)
	if !ok {
		return
	}

	companies, err := h.companyService.ListCompanies(c.Request.Context(), principal)
	if err != nil {
		handleServiceError(c, logger, err, "list companies")
		return
	}
	c.JSON(http.StatusOK, dto.ToListCompaniesResponse(companies))
}

// getCompany godoc
// @Summary Get a company
// @Description Returns the caller's company, addressed by id or by COMP-#### code.
// @Tags companies
// @Produce json
// @Param id path string true "Company id or code"
// @Success 200 {object} dto.CompanyResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /companies/{id} [get]
func (h *companyHandler) getCompany(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	principal, ok := principalOrAbort(c, logger)
	if !ok {
		return
	}

	company, err := h.companyService.GetCompany(c.Request.Context(), principal, c.Param("id"))
	if err != nil {
		handleServiceError(c, logger, err, "get company")
		return
	}
	c.JSON(http.StatusOK, dto.ToCompanyResponse(company))
}

// updateCompany godoc
// @Summary Update a company
// @Description Applies a partial update to the caller's company.
// @Tags companies
// @Accept json
// @Produce json
// @Param id path string true "Company id or code"
// @Param company body dto.UpdateCompanyRequest true "Fields to update"
// @Success 200 {object} dto.CompanyResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /companies/{id} [put]
func (h *companyHandler) updateCompany(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	principal, ok := principalOrAbort(c, logger)
	if !ok {
		return
	}
	var req dto.UpdateCompanyRequest
	if !bindJSON(c, logger, &req) {
		return
	}

	company, err := h.companyService.UpdateCompany(c.Request.Context(), principal, c.Param("id"), req)
	if err != nil {
		handleServiceError(c, logger, err, "update company")
		return
	}
	c.JSON(http.StatusOK, dto.ToCompanyResponse(company))
}

// deleteCompany godoc
// @Summary Delete a company
// @Description Deletes the caller's company and all of its employees.
// @Tags companies
// @Param id path string true "Company id or code"
// @Param X-Admin-Secret header string false "Shared admin secret, when configured"
// @Success 204
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /companies/{id} [delete]
func (h *companyHandler) deleteCompany(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	principal, ok := principalOrAbort(c, logger)
	if !ok {
		return
	}

	if err := h.companyService.DeleteCompany(c.Request.Context(), principal, c.Param("id")); err != nil {
		handleServiceError(c, logger, err, "delete company")
		return
	}
	logger.Info("Company deleted", slog.String("tenant_id", principal.TenantCode.String()))
	c.Status(http.StatusNoContent)
}
