package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/workly_crm/internal/apperrors"
	"github.com/SscSPs/workly_crm/internal/core/domain"
	portsrepo "github.com/SscSPs/workly_crm/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/workly_crm/internal/core/ports/services"
	"github.com/SscSPs/workly_crm/internal/dto"
	"github.com/google/uuid"
)

// meetingService implements the meeting related service interfaces.
type meetingService struct {
	BaseService
	meetingRepo portsrepo.MeetingRepositoryFacade
	directory   employeeDirectory
}

// NewMeetingService creates a new instance of meetingService.
func NewMeetingService(meetingRepo portsrepo.MeetingRepositoryFacade, employeeRepo portsrepo.EmployeeReader) portssvc.MeetingSvcFacade {
	return &meetingService{
		meetingRepo: meetingRepo,
		directory:   employeeDirectory{employees: employeeRepo},
	}
}

var _ portssvc.MeetingSvcFacade = (*meetingService)(nil)

// participantsFor dedupes ids in order and checks the cap and tenant membership.
func (s *meetingService) participantsFor(ctx context.Context, code domain.TenantCode, ids []string) ([]string, error) {
	out := make([]string, 0, len(ids))
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	if len(out) > domain.MaxMeetingParticipants {
		return nil, apperrors.NewValidationFailedError(
			fmt.Sprintf("a meeting can have at most %d participants", domain.MaxMeetingParticipants))
	}
	missing, err := s.directory.missing(ctx, code, out)
	if err != nil {
		return nil, err
	}
	if len(missing) > 0 {
		return nil, apperrors.NewValidationFailedError("participants not found in this company: " + strings.Join(missing, ", "))
	}
	return out, nil
}

func (s *meetingService) withPeople(ctx context.Context, code domain.TenantCode, meetings []domain.Meeting) ([]domain.MeetingDetails, error) {
	var ids []string
	for _, m := range meetings {
		ids = append(ids, m.CreatedBy)
		ids = append(ids, m.Participants...)
	}
	refs, err := s.directory.lookup(ctx, code, ids)
	if err != nil {
		return nil, fmt.Errorf("resolving meeting participants: %w", err)
	}
	out := make([]domain.MeetingDetails, len(meetings))
	for i, m := range meetings {
		attendees := make([]domain.EmployeeRef, 0, len(m.Participants))
		for _, id := range m.Participants {
			if ref, ok := refs[id]; ok {
				attendees = append(attendees, ref)
			}
		}
		out[i] = domain.MeetingDetails{Meeting: m, Creator: refPtr(refs, m.CreatedBy), Attendees: attendees}
	}
	return out, nil
}

func (s *meetingService) detail(ctx context.Context, meeting *domain.Meeting) (*domain.MeetingDetails, error) {
	details, err := s.withPeople(ctx, meeting.TenantCode, []domain.Meeting{*meeting})
	if err != nil {
		return nil, err
	}
	return &details[0], nil
}

func (s *meetingService) ListMeetings(ctx context.Context, principal domain.Principal) ([]domain.MeetingDetails, error) {
	meetings, err := s.meetingRepo.ListMeetings(ctx, principal.TenantCode)
	if err != nil {
		return nil, err
	}
	return s.withPeople(ctx, principal.TenantCode, meetings)
}

func (s *meetingService) GetMeeting(ctx context.Context, principal domain.Principal, meetingID string) (*domain.MeetingDetails, error) {
	meeting, err := s.meetingRepo.FindMeeting(ctx, principal.TenantCode, meetingID)
	if err != nil {
		return nil, err
	}
	return s.detail(ctx, meeting)
}

func (s *meetingService) ListMeetingsByCompany(ctx context.Context, principal domain.Principal, companyID string) ([]domain.MeetingDetails, error) {
	if err := s.RequireOwnTenant(principal, companyID); err != nil {
		return nil, err
	}
	return s.ListMeetings(ctx, principal)
}

func (s *meetingService) CreateMeeting(ctx context.Context, principal domain.Principal, req dto.CreateMeetingRequest) (*domain.MeetingDetails, error) {
	if err := s.RequireRole(ctx, principal, domain.RoleAdmin, domain.RoleManager); err != nil {
		return nil, err
	}
	title := strings.TrimSpace(req.Title)
	if title == "" || req.ScheduledAt == nil {
		return nil, apperrors.NewValidationFailedError("title and scheduledAt are required")
	}
	status := domain.MeetingScheduled
	if req.Status != "" {
		status = domain.MeetingStatus(req.Status)
		if !status.IsValid() {
			return nil, apperrors.NewValidationFailedError("invalid meeting status")
		}
	}
	location := strings.TrimSpace(req.Location)
	if location == "" {
		location = domain.DefaultMeetingLocation
	}
	participants, err := s.participantsFor(ctx, principal.TenantCode, req.Participants)
	if err != nil {
		return nil, err
	}

	now := s.Now()
	meeting := domain.Meeting{
		ID:           uuid.NewString(),
		TenantCode:   principal.TenantCode,
		Title:        title,
		Description:  req.Description,
		ScheduledAt:  req.ScheduledAt.UTC(),
		CreatedBy:    principal.ID,
		Participants: participants,
		Location:     location,
		Status:       status,
		Timestamps:   domain.Timestamps{CreatedAt: now, UpdatedAt: now},
	}
	if err := s.meetingRepo.SaveMeeting(ctx, meeting); err != nil {
		s.LogError(ctx, err, "Failed to create meeting")
		return nil, err
	}
	s.LogInfo(ctx, "Meeting scheduled", slog.String("meeting_id", meeting.ID), slog.Int("participants", len(participants)))
	return s.detail(ctx, &meeting)
}

func (s *meetingService) UpdateMeeting(ctx context.Context, principal domain.Principal, meetingID string, req dto.UpdateMeetingRequest) (*domain.MeetingDetails, error) {
	if err := s.RequireRole(ctx, principal, domain.RoleAdmin, domain.RoleManager); err != nil {
		return nil, err
	}
	meeting, err := s.meetingRepo.FindMeeting(ctx, principal.TenantCode, meetingID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return nil, apperrors.NewValidationFailedError("title cannot be empty")
		}
		meeting.Title = title
	}
	if req.Description != nil {
		meeting.Description = *req.Description
	}
	if req.ScheduledAt != nil {
		meeting.ScheduledAt = req.ScheduledAt.UTC()
	}
	if req.Participants != nil {
		participants, err := s.participantsFor(ctx, principal.TenantCode, *req.Participants)
		if err != nil {
			return nil, err
		}
		meeting.Participants = participants
	}
	if req.Location != nil {
		location := strings.TrimSpace(*req.Location)
		if location == "" {
			location = domain.DefaultMeetingLocation
		}
		meeting.Location = location
	}
	if req.Status != nil {
		status := domain.MeetingStatus(*req.Status)
		if !status.IsValid() {
			return nil, apperrors.NewValidationFailedError("invalid meeting status")
		}
		meeting.Status = status
	}
	meeting.UpdatedAt = s.Now()

	if err := s.meetingRepo.UpdateMeeting(ctx, *meeting); err != nil {
		return nil, err
	}
	return s.detail(ctx, meeting)
}

func (s *meetingService) DeleteMeeting(ctx context.Context, principal domain.Principal, meetingID string) error {
	if err := s.RequireRole(ctx, principal, domain.RoleAdmin, domain.RoleManager); err != nil {
		return err
	}
	return s.meetingRepo.DeleteMeeting(ctx, principal.TenantCode, meetingID)
}
