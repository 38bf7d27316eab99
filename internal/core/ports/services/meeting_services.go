package services

import (
	"context"

	"github.com/SscSPs/workly_crm/internal/core/domain"
	"github.com/SscSPs/workly_crm/internal/dto"
)

// MeetingReaderSvc defines read operations for meeting data
type MeetingReaderSvc interface {
	// ListMeetings returns the tenant's meetings, newest first.
	ListMeetings(ctx context.Context, principal domain.Principal) ([]domain.MeetingDetails, error)
	GetMeeting(ctx context.Context, principal domain.Principal, meetingID string) (*domain.MeetingDetails, error)
	ListMeetingsByCompany(ctx context.Context, principal domain.Principal, companyID string) ([]domain.MeetingDetails, error)
}

// MeetingWriterSvc defines write operations for meeting data
type MeetingWriterSvc interface {
	CreateMeeting(ctx context.Context, principal domain.Principal, req dto.CreateMeetingRequest) (*domain.MeetingDetails, error)
	UpdateMeeting(ctx context.Context, principal domain.Principal, meetingID string, req dto.UpdateMeetingRequest) (*domain.MeetingDetails, error)
	DeleteMeeting(ctx context.Context, principal domain.Principal, meetingID string) error
}

// MeetingSvcFacade combines all meeting-related service interfaces
type MeetingSvcFacade interface {
	MeetingReaderSvc
	MeetingWriterSvc
}
