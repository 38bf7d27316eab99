package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/workly_crm/internal/core/ports/services"
	"github.com/SscSPs/workly_crm/internal/dto"
	"github.com/SscSPs/workly_crm/internal/middleware"
	"github.com/gin-gonic/gin"
)

// meetingHandler handles HTTP requests related to meetings.
type meetingHandler struct {
	meetingService portssvc.MeetingSvcFacade
}

func newMeetingHandler(ms portssvc.MeetingSvcFacade) *meetingHandler {
	return &meetingHandler{meetingService: ms}
}

func registerMeetingRoutes(rg *gin.RouterGroup, h *meetingHandler, sharedSecret string) {
	managers := middleware.Authorize(middleware.Managers, sharedSecret)
	anyRole := middleware.Authorize(middleware.AnyRole, sharedSecret)

	meetings := rg.Group("/meetings")
	{
		meetings.POST("", managers, h.createMeeting)
		meetings.GET("", anyRole, h.listMeetings)
		meetings.GET("/company/:companyId", anyRole, h.listMeetingsByCompany)
		meetings.GET("/:id", anyRole, h.getMeeting)
		meetings.PUT("/:id", managers, h.updateMeeting)
		meetings.DELETE("/:id", middleware.Authorize(middleware.Managers.WithSharedSecret(), sharedSecret), h.deleteMeeting)
	}
}

// createMeeting godoc
// @Summary Schedule a meeting
// @Description Schedules a meeting with up to 10 participants from the caller's company.
// @Tags meetings
// @Accept json
// @Produce json
// @Param meeting body dto.CreateMeetingRequest true "Meeting details"
// @Success 201 {object} dto.MeetingResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /meetings [post]
func (h *meetingHandler) createMeeting(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	principal, ok := principalOrAbort(c, logger)
	if !ok {
		return
	}
	var req dto.CreateMeetingRequest
	if !bindJSON(c, logger, &req) {
		return
	}

	meeting, err := h.meetingService.CreateMeeting(c.Request.Context(), principal, req)
	if err != nil {
		handleServiceError(c, logger, err, "create meeting")
		return
	}
	logger.Info("Meeting created", slog.String("meeting_id", meeting.ID))
	c.JSON(http.StatusCreated, dto.ToMeetingResponse(meeting))
}

// listMeetings godoc
// @Summary List meetings
// @Description Lists the company's meetings, latest scheduled first.
// @Tags meetings
// @Produce json
// @Success 200 {array} dto.MeetingResponse
// @Security BearerAuth
// @Router /meetings [get]
func (h *meetingHandler) listMeetings(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	principal, ok := principalOrAbort(c, logger)
	if !ok {
		return
	}

	meetings, err := h.meetingService.ListMeetings(c.Request.Context(), principal)
	if err != nil {
		handleServiceError(c, logger, err, "list meetings")
		return
	}
	c.JSON(http.StatusOK, dto.ToListMeetingsResponse(meetings))
}

// listMeetingsByCompany godoc
// @Summary List a company's meetings
// @Tags meetings
// @Produce json
// @Param companyId path string true "Company code"
// @Success 200 {object} dto.MeetingsByCompanyResponse
// @Failure 403 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /meetings/company/{companyId} [get]
func (h *meetingHandler) listMeetingsByCompany(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	principal, ok := principalOrAbort(c, logger)
	if !ok {
		return
	}

	meetings, err := h.meetingService.ListMeetingsByCompany(c.Request.Context(), principal, c.Param("companyId"))
	if err != nil {
		handleServiceError(c, logger, err, "list company meetings")
		return
	}
	c.JSON(http.StatusOK, dto.ToMeetingsByCompanyResponse(meetings))
}

// getMeeting godoc
// @Summary Get a meeting
// @Tags meetings
// @Produce json
// @Param id path string true "Meeting ID"
// @Success 200 {object} dto.MeetingResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /meetings/{id} [get]
func (h *meetingHandler) getMeeting(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	principal, ok := principalOrAbort(c, logger)
	if !ok {
		return
	}

	meeting, err := h.meetingService.GetMeeting(c.Request.Context(), principal, c.Param("id"))
	if err != nil {
		handleServiceError(c, logger, err, "get meeting")
		return
	}
	c.JSON(http.StatusOK, dto.ToMeetingResponse(meeting))
}

// updateMeeting godoc
// @Summary Update a meeting
// @Tags meetings
// @Accept json
// @Produce json
// @Param id path string true "Meeting ID"
// @Param meeting body dto.UpdateMeetingRequest true "Fields to update"
// @Success 200 {object} dto.MeetingResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /meetings/{id} [put]
func (h *meetingHandler) updateMeeting(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	principal, ok := principalOrAbort(c, logger)
	if !ok {
		return
	}
	var req dto.UpdateMeetingRequest
	if !bindJSON(c, logger, &req) {
		return
	}

	meeting, err := h.meetingService.UpdateMeeting(c.Request.Context(), principal, c.Param("id"), req)
	if err != nil {
		handleServiceError(c, logger, err, "update meeting")
		return
	}
	c.JSON(http.StatusOK, dto.ToMeetingResponse(meeting))
}

// deleteMeeting godoc
// @Summary Delete a meeting
// @Tags meetings
// @Param id path string true "Meeting ID"
// @Param X-Admin-Secret header string false "Shared admin secret, when configured"
// @Success 204
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /meetings/{id} [delete]
func (h *meetingHandler) deleteMeeting(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	principal, ok := principalOrAbort(c, logger)
	if !ok {
		return
	}

	if err := h.meetingService.DeleteMeeting(c.Request.Context(), principal, c.Param("id")); err != nil {
		handleServiceError(c, logger, err, "delete meeting")
		return
	}
	c.Status(http.StatusNoContent)
}
