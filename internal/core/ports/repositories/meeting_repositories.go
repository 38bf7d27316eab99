package repositories

import (
	"context"

	"github.com/SscSPs/workly_crm/internal/core/domain"
)

// MeetingReader defines read operations for meeting data
type MeetingReader interface {
	// FindMeeting retrieves a meeting by id within one tenant.
	FindMeeting(ctx context.Context, code domain.TenantCode, id string) (*domain.Meeting, error)

	// ListMeetings retrieves a tenant's meetings ordered by scheduled time, newest first.
	ListMeetings(ctx context.Context, code domain.TenantCode) ([]domain.Meeting, error)
}

// MeetingWriter defines write operations for meeting data
type MeetingWriter interface {
	SaveMeeting(ctx context.Context, meeting domain.Meeting) error
	UpdateMeeting(ctx context.Context, meeting domain.Meeting) error
	DeleteMeeting(ctx context.Context, code domain.TenantCode, id string) error
}

// MeetingRepositoryFacade combines all meeting-related repository interfaces
type MeetingRepositoryFacade interface {
	MeetingReader
	MeetingWriter
}
