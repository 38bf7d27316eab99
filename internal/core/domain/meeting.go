package domain

import "time"

// MaxMeetingParticipants caps the participant list of a single meeting.
const MaxMeetingParticipants = 10

// DefaultMeetingLocation is used when a meeting is created without a location.
const DefaultMeetingLocation = "Online"

// MeetingStatus is free-form within its value set.
type MeetingStatus string

const (
	MeetingScheduled MeetingStatus = "scheduled"
	MeetingCompleted MeetingStatus = "completed"
	MeetingCancelled MeetingStatus = "cancelled"
)

func (s MeetingStatus) IsValid() bool {
	return s == MeetingScheduled || s == MeetingCompleted || s == MeetingCancelled
}

// Meeting is a static record of a scheduled gathering inside one tenant.
type Meeting struct {
	ID           string        `json:"id"`
	TenantCode   TenantCode    `json:"companyId"`
	Title        string        `json:"title"`
	Description  string        `json:"description"`
	ScheduledAt  time.Time     `json:"scheduledAt"`
	CreatedBy    string        `json:"createdBy"`
	Participants []string      `json:"participants"`
	Location     string        `json:"location"`
	Status       MeetingStatus `json:"status"`
	Timestamps
}

// MeetingDetails is a meeting with participant and creator summaries resolved.
// Participants that no longer exist are left out.
type MeetingDetails struct {
	Meeting
	Creator   *EmployeeRef
	Attendees []EmployeeRef
}
