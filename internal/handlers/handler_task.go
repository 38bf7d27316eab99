package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/workly_crm/internal/core/domain"
	portssvc "github.com/SscSPs/workly_crm/internal/core/ports/services"
	"github.com/SscSPs/workly_crm/internal/dto"
	"github.com/SscSPs/workly_crm/internal/middleware"
	"github.com/gin-gonic/gin"
)

// taskHandler handles HTTP requests related to tasks.
type taskHandler struct {
	taskService portssvc.TaskSvcFacade
}

func newTaskHandler(ts portssvc.TaskSvcFacade) *taskHandler {
	return &taskHandler{taskService: ts}
}

func registerTaskRoutes(rg *gin.RouterGroup, h *taskHandler, sharedSecret string) {
	managers := middleware.Authorize(middleware.Managers, sharedSecret)
	anyRole := middleware.Authorize(middleware.AnyRole, sharedSecret)

	tasks := rg.Group("/tasks")
	{
		tasks.POST("", managers, h.createTask)
		tasks.GET("", anyRole, h.listTasks)
		tasks.GET("/company/:companyId", anyRole, h.taskStatsByCompany)
		tasks.GET("/employee/:employeeId", anyRole, h.listTasksByEmployee)
		tasks.GET("/:id", anyRole, h.getTask)
		// Assignees reach the service, which limits them to status changes.
		tasks.PUT("/:id", anyRole, h.updateTask)
		tasks.DELETE("/:id", managers, h.deleteTask)
	}
}

// createTask godoc
// @Summary Create a task
// @Description Creates a task assigned to an employee of the caller's company.
// @Tags tasks
// @Accept json
// @Produce json
// @Param task body dto.CreateTaskRequest true "Task details"
// @Success 201 {object} dto.TaskResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /tasks [post]
func (h *taskHandler) createTask(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	principal, ok := principalOrAbort(c, logger)
	if !ok {
		return
	}
	var req dto.CreateTaskRequest
	if !bindJSON(c, logger, &req) {
		return
	}

	task, err := h.taskService.CreateTask(c.Request.Context(), principal, req)
	if err != nil {
		handleServiceError(c, logger, err, "create task")
		return
	}
	logger.Info("Task created", slog.String("task_id", task.ID))
	c.JSON(http.StatusCreated, dto.ToTaskResponse(task))
}

// listTasks godoc
// @Summary List tasks
// @Description Lists the company's tasks, newest first, optionally filtered by assignee.
// @Tags tasks
// @Produce json
// @Param assignedTo query string false "Assignee employee ID"
// @Success 200 {array} dto.TaskResponse
// @Security BearerAuth
// @Router /tasks [get]
func (h *taskHandler) listTasks(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	principal, ok := principalOrAbort(c, logger)
	if !ok {
		return
	}
	var params dto.ListTasksParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	tasks, err := h.taskService.ListTasks(c.Request.Context(), principal, domain.TaskFilter{AssignedTo: params.AssignedTo})
	if err != nil {
		handleServiceError(c, logger, err, "list tasks")
		return
	}
	c.JSON(http.StatusOK, dto.ToListTasksResponse(tasks))
}

// taskStatsByCompany godoc
// @Summary Task statistics for a company
// @Description Counts the caller's company tasks by status and lists them.
// @Tags tasks
// @Produce json
// @Param companyId path string true "Company code"
// @Success 200 {object} dto.TaskStatsResponse
// @Failure 403 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /tasks/company/{companyId} [get]
func (h *taskHandler) taskStatsByCompany(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	principal, ok := principalOrAbort(c, logger)
	if !ok {
		return
	}

	stats, tasks, err := h.taskService.TaskStatsByCompany(c.Request.Context(), principal, c.Param("companyId"))
	if err != nil {
		handleServiceError(c, logger, err, "get task stats")
		return
	}
	c.JSON(http.StatusOK, dto.ToTaskStatsResponse(stats, tasks))
}

// listTasksByEmployee godoc
// @Summary List an employee's tasks
// @Tags tasks
// @Produce json
// @Param employeeId path string true "Employee ID"
// @Success 200 {array} dto.TaskResponse
// @Security BearerAuth
// @Router /tasks/employee/{employeeId} [get]
func (h *taskHandler) listTasksByEmployee(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	principal, ok := principalOrAbort(c, logger)
	if !ok {
		return
	}

	tasks, err := h.taskService.ListTasksByEmployee(c.Request.Context(), principal, c.Param("employeeId"))
	if err != nil {
		handleServiceError(c, logger, err, "list employee tasks")
		return
	}
	c.JSON(http.StatusOK, dto.ToListTasksResponse(tasks))
}

// getTask godoc
// @Summary Get a task
// @Tags tasks
// @Produce json
// @Param id path string true "Task ID"
// @Success 200 {object} dto.TaskResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /tasks/{id} [get]
func (h *taskHandler) getTask(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	principal, ok := principalOrAbort(c, logger)
	if !ok {
		return
	}

	task, err := h.taskService.GetTask(c.Request.Context(), principal, c.Param("id"))
	if err != nil {
		handleServiceError(c, logger, err, "get task")
		return
	}
	c.JSON(http.StatusOK, dto.ToTaskResponse(task))
}

// updateTask godoc
// @Summary Update a task
// @Description Admins and managers may change any field. The assignee may change only the status.
// @Tags tasks
// @Accept json
// @Produce json
// @Param id path string true "Task ID"
// @Param task body dto.UpdateTaskRequest true "Fields to update"
// @Success 200 {object} dto.TaskResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /tasks/{id} [put]
func (h *taskHandler) updateTask(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	principal, ok := principalOrAbort(c, logger)
	if !ok {
		return
	}
	var req dto.UpdateTaskRequest
	if !bindJSON(c, logger, &req) {
		return
	}

	task, err := h.taskService.UpdateTask(c.Request.Context(), principal, c.Param("id"), req)
	if err != nil {
		handleServiceError(c, logger, err, "update task")
		return
	}
	c.JSON(http.StatusOK, dto.ToTaskResponse(task))
}

// deleteTask godoc
// @Summary Delete a task
// @Tags tasks
// @Param id path string true "Task ID"
// @Success 204
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /tasks/{id} [delete]
func (h *taskHandler) deleteTask(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	principal, ok := principalOrAbort(c, logger)
	if !ok {
		return
	}

	if err := h.taskService.DeleteTask(c.Request.Context(), principal, c.Param("id")); err != nil {
		handleServiceError(c, logger, err, "delete task")
		return
	}
	c.Status(http.StatusNoContent)
}
