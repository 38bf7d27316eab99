package memory

import (
	"context"
	"slices"
	"sort"

	"github.com/SscSPs/workly_crm/internal/apperrors"
	"github.com/SscSPs/workly_crm/internal/core/domain"
	portsrepo "github.com/SscSPs/workly_crm/internal/core/ports/repositories"
)

type meetingRepository struct {
	acc accessor
}

var _ portsrepo.MeetingRepositoryFacade = (*meetingRepository)(nil)

func (r *meetingRepository) FindMeeting(ctx context.Context, code domain.TenantCode, id string) (*domain.Meeting, error) {
	var found *domain.Meeting
	err := r.acc.read(ctx, func(d *dataset) error {
		m, ok := d.meetings[id]
		if !ok || m.TenantCode != code {
			return apperrors.NewNotFoundError("meeting not found")
		}
		m.Participants = slices.Clone(m.Participants)
		found = &m
		return nil
	})
	return found, err
}

func (r *meetingRepository) ListMeetings(ctx context.Context, code domain.TenantCode) ([]domain.Meeting, error) {
	list := []domain.Meeting{}
	err := r.acc.read(ctx, func(d *dataset) error {
		for _, m := range d.meetings {
			if m.TenantCode == code {
				m.Participants = slices.Clone(m.Participants)
				list = append(list, m)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].ScheduledAt.Equal(list[j].ScheduledAt) {
			return list[i].ID > list[j].ID
		}
		return list[i].ScheduledAt.After(list[j].ScheduledAt)
	})
	return list, nil
}

func (r *meetingRepository) SaveMeeting(ctx context.Context, meeting domain.Meeting) error {
	return r.acc.write(ctx, func(d *dataset) error {
		if _, ok := d.meetings[meeting.ID]; ok {
			return apperrors.NewConflictError("meeting " + meeting.ID + " already exists")
		}
		meeting.Participants = slices.Clone(meeting.Participants)
		d.meetings[meeting.ID] = meeting
		return nil
	})
}

func (r *meetingRepository) UpdateMeeting(ctx context.Context, meeting domain.Meeting) error {
	return r.acc.write(ctx, func(d *dataset) error {
		existing, ok := d.meetings[meeting.ID]
		if !ok || existing.TenantCode != meeting.TenantCode {
			return apperrors.NewNotFoundError("meeting not found")
		}
		meeting.Participants = slices.Clone(meeting.Participants)
		d.meetings[meeting.ID] = meeting
		return nil
	})
}

func (r *meetingRepository) DeleteMeeting(ctx context.Context, code domain.TenantCode, id string) error {
	return r.acc.write(ctx, func(d *dataset) error {
		m, ok := d.meetings[id]
		if !ok || m.TenantCode != code {
			return apperrors.NewNotFoundError("meeting not found")
		}
		delete(d.meetings, id)
		return nil
	})
}
