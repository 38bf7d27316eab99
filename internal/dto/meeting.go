package dto

import (
	"time"

	"github.com/SscSPs/workly_crm/internal/core/domain"
)

// CreateMeetingRequest defines the data needed to schedule a meeting.
type CreateMeetingRequest struct {
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	ScheduledAt  *time.Time `json:"scheduledAt"`
	Participants []string   `json:"participants" binding:"max=10"`
	Location     string     `json:"location"`
	Status       string     `json:"status" binding:"omitempty,oneof=scheduled completed cancelled"`
}

// UpdateMeetingRequest is a partial update of a meeting.
type UpdateMeetingRequest struct {
	Title        *string    `json:"title"`
	Description  *string    `json:"description"`
	ScheduledAt  *time.Time `json:"scheduledAt"`
	Participants *[]string  `json:"participants"`
	Location     *string    `json:"location"`
	Status       *string    `json:"status" binding:"omitempty,oneof=scheduled completed cancelled"`
}

// MeetingResponse is the public view of a meeting with people embedded.
type MeetingResponse struct {
	ID           string                `json:"id"`
	CompanyID    domain.TenantCode     `json:"companyId"`
	Title        string                `json:"title"`
	Description  string                `json:"description"`
	ScheduledAt  time.Time             `json:"scheduledAt"`
	CreatedBy    EmployeeRefResponse   `json:"createdBy"`
	Participants []EmployeeRefResponse `json:"participants"`
	Location     string                `json:"location"`
	Status       domain.MeetingStatus  `json:"status"`
	CreatedAt    time.Time             `json:"createdAt"`
	UpdatedAt    time.Time             `json:"updatedAt"`
}

// MeetingsByCompanyResponse lists a tenant's meetings with their count.
type MeetingsByCompanyResponse struct {
	Count    int               `json:"count"`
	Meetings []MeetingResponse `json:"meetings"`
}

// ToMeetingResponse converts a meeting with resolved people to its public view.
func ToMeetingResponse(m *domain.MeetingDetails) MeetingResponse {
	participants := make([]EmployeeRefResponse, len(m.Attendees))
	for i, ref := range m.Attendees {
		participants[i] = toEmployeeRefResponse(ref)
	}
	return MeetingResponse{
		ID:           m.ID,
		CompanyID:    m.TenantCode,
		Title:        m.Title,
		Description:  m.Description,
		ScheduledAt:  m.ScheduledAt,
		CreatedBy:    refOrID(m.Creator, m.CreatedBy),
		Participants: participants,
		Location:     m.Location,
		Status:       m.Status,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// ToListMeetingsResponse converts meetings to their public views.
func ToListMeetingsResponse(meetings []domain.MeetingDetails) []MeetingResponse {
	out := make([]MeetingResponse, len(meetings))
	for i := range meetings {
		out[i] = ToMeetingResponse(&meetings[i])
	}
	return out
}

// ToMeetingsByCompanyResponse wraps meetings with their count.
func ToMeetingsByCompanyResponse(meetings []domain.MeetingDetails) MeetingsByCompanyResponse {
	return MeetingsByCompanyResponse{
		Count:    len(meetings),
		Meetings: ToListMeetingsResponse(meetings),
	}
}
