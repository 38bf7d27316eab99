package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/workly_crm/internal/core/ports/services"
	"github.com/SscSPs/workly_crm/internal/dto"
	"github.com/SscSPs/workly_crm/internal/middleware"
	"github.com/gin-gonic/gin"
)

// employeeHandler handles HTTP requests related to employees.
type employeeHandler struct {
	employeeService portssvc.EmployeeSvcFacade
}

func newEmployeeHandler(es portssvc.EmployeeSvcFacade) *employeeHandler {
	return &employeeHandler{employeeService: es}
}

// registerEmployeeAuthRoutes registers the public employee login route.
func registerEmployeeAuthRoutes(public *gin.RouterGroup, h *employeeHandler, loginLimit gin.HandlerFunc) {
	public.POST("/employees/login", loginLimit, h.loginEmployee)
}

// registerEmployeeRoutes registers the authenticated employee routes.
func registerEmployeeRoutes(rg *gin.RouterGroup, h *employeeHandler, sharedSecret string) {
	admin := middleware.Authorize(middleware.AdminOnly, sharedSecret)
	anyRole := middleware.Authorize(middleware.AnyRole, sharedSecret)

	employees := rg.Group("/employees")
	{
		employees.GET("/company/:companyId", anyRole, h.listEmployeesByCompany)
		employees.POST("", admin, h.createEmployee)
		employees.GET("", admin, h.listEmployees)
		employees.GET("/:id", anyRole, h.getEmployee)
		employees.PUT("/:id", admin, h.updateEmployee)
		employees.DELETE("/:id", middleware.Authorize(middleware.AdminOnly.WithSharedSecret(), sharedSecret), h.deleteEmployee)
	}
}

// loginEmployee godoc
// @Summary Employee login (step two)
// @Description Authenticates an employee within a company and returns an access token.
// @Tags employees
// @Accept json
// @Produce json
// @Param login body dto.EmployeeLoginRequest true "Credentials"
// @Success 200 {object} dto.EmployeeLoginResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 429 {object} dto.ErrorResponse
// @Router /employees/login [post]
func (h *employeeHandler) loginEmployee(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.EmployeeLoginRequest
	if !bindJSON(c, logger, &req) {
		return
	}

	employee, token, expiresAt, err := h.employeeService.LoginEmployee(c.Request.Context(), req)
	if err != nil {
		handleServiceError(c, logger, err, "log in employee")
		return
	}
	c.JSON(http.StatusOK, dto.EmployeeLoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		Employee:  dto.ToEmployeeResponse(employee),
	})
}

// createEmployee godoc
// @Summary Create an employee
// @Description Adds an employee to the caller's company.
// @Tags employees
// @Accept json
// @Produce json
// @Param employee body dto.CreateEmployeeRequest true "Employee details"
// @Success 201 {object} dto.EmployeeResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /employees [post]
func (h *employeeHandler) createEmployee(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	principal, ok := principalOrAbort(c, logger)
	if !ok {
		return
	}
	var req dto.CreateEmployeeRequest
	if !bindJSON(c, logger, &req) {
		return
	}

	employee, err := h.employeeService.CreateEmployee(c.Request.Context(), principal, req)
	if err != nil {
		handleServiceError(c, logger, err, "create employee")
		return
	}
	logger.Info("Employee created", slog.String("employee_id", employee.ID))
	c.JSON(http.StatusCreated, dto.ToEmployeeResponse(employee))
}

// listEmployees godoc
// @Summary List employees
// @Description Lists employees of the caller's company. A zero limit returns everyone.
// @Tags employees
// @Produce json
// @Param limit query int false "Page size (max 500)"
// @Param offset query int false "Offset"
// @Success 200 {array} dto.EmployeeResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /employees [get]
func (h *employeeHandler) listEmployees(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	principal, ok := principalOrAbort(c, logger)
	if !ok {
		return
	}
	var params dto.ListEmployeesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query parameters", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	employees, err := h.employeeService.ListEmployees(c.Request.Context(), principal, params.Limit, params.Offset)
	if err != nil {
		handleServiceError(c, logger, err, "list employees")
		return
	}
	c.JSON(http.StatusOK, dto.ToListEmployeesResponse(employees))
}

// getEmployee godoc
// @Summary Get an employee
// @Description Admins may read any employee of their company; others only themselves.
// @Tags employees
// @Produce json
// @Param id path string true "Employee ID"
// @Success 200 {object} dto.EmployeeResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /employees/{id} [get]
func (h *employeeHandler) getEmployee(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	principal, ok := principalOrAbort(c, logger)
	if !ok {
		return
	}

	employee, err := h.employeeService.GetEmployee(c.Request.Context(), principal, c.Param("id"))
	if err != nil {
		handleServiceError(c, logger, err, "get employee")
		return
	}
	c.JSON(http.StatusOK, dto.ToEmployeeResponse(employee))
}

// listEmployeesByCompany godoc
// @Summary List a company's employees
// @Description Returns the roster of the caller's own company with its size.
// @Tags employees
// @Produce json
// @Param companyId path string true "Company code"
// @Success 200 {object} dto.EmployeesByCompanyResponse
// @Failure 403 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /employees/company/{companyId} [get]
func (h *employeeHandler) listEmployeesByCompany(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	principal, ok := principalOrAbort(c, logger)
	if !ok {
		return
	}

	employees, err := h.employeeService.ListEmployeesByCompany(c.Request.Context(), principal, c.Param("companyId"))
	if err != nil {
		handleServiceError(c, logger, err, "list company employees")
		return
	}
	c.JSON(http.StatusOK, dto.ToEmployeesByCompanyResponse(employees))
}

// updateEmployee godoc
// @Summary Update an employee
// @Description Applies a partial update to an employee of the caller's company.
// @Tags employees
// @Accept json
// @Produce json
// @Param id path string true "Employee ID"
// @Param employee body dto.UpdateEmployeeRequest true "Fields to update"
// @Success 200 {object} dto.EmployeeResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /employees/{id} [put]
func (h *employeeHandler) updateEmployee(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	principal, ok := principalOrAbort(c, logger)
	if !ok {
		return
	}
	var req dto.UpdateEmployeeRequest
	if !bindJSON(c, logger, &req) {
		return
	}

	employee, err := h.employeeService.UpdateEmployee(c.Request.Context(), principal, c.Param("id"), req)
	if err != nil {
		handleServiceError(c, logger, err, "update employee")
		return
	}
	c.JSON(http.StatusOK, dto.ToEmployeeResponse(employee))
}

// deleteEmployee godoc
// @Summary Delete an employee
// @Tags employees
// @Param id path string true "Employee ID"
// @Param X-Admin-Secret header string false "Shared admin secret, when configured"
// @Success 204
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /employees/{id} [delete]
func (h *employeeHandler) deleteEmployee(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	principal, ok := principalOrAbort(c, logger)
	if !ok {
		return
	}

	if err := h.employeeService.DeleteEmployee(c.Request.Context(), principal, c.Param("id")); err != nil {
		handleServiceError(c, logger, err, "delete employee")
		return
	}
	c.Status(http.StatusNoContent)
}
