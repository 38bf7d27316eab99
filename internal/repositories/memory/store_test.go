package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/workly_crm/internal/apperrors"
	"github.com/SscSPs/workly_crm/internal/core/domain"
	portsrepo "github.com/SscSPs/workly_crm/internal/core/ports/repositories"
	"github.com/stretchr/testify/suite"
)

type MemoryStoreTestSuite struct {
	suite.Suite
	ctx   context.Context
	store *Store
	repos portsrepo.Store
}

func (s *MemoryStoreTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = NewStore()
	s.repos = s.store.Repositories()
}

func TestMemoryStoreTestSuite(t *testing.T) {
	suite.Run(t, new(MemoryStoreTestSuite))
}

func (s *MemoryStoreTestSuite) seedCompany(code domain.TenantCode, email string) {
	err := s.repos.CompanyRepo.SaveCompany(s.ctx, domain.Company{ID: string(code), TenantCode: code, Name: "Acme", Email: email})
	s.Require().NoError(err)
}

func (s *MemoryStoreTestSuite) seedEmployee(id string, code domain.TenantCode, email string, createdAt time.Time) {
	err := s.repos.EmployeeRepo.SaveEmployee(s.ctx, domain.Employee{
		ID: id, TenantCode: code, Name: id, Email: email, Role: domain.RoleEmployee, IsActive: true,
		Timestamps: domain.Timestamps{CreatedAt: createdAt, UpdatedAt: createdAt},
	})
	s.Require().NoError(err)
}

func (s *MemoryStoreTestSuite) TestCompanyConflicts() {
	s.seedCompany("COMP-1234", "ops@acme.io")

	err := s.repos.CompanyRepo.SaveCompany(s.ctx, domain.Company{TenantCode: "COMP-1234", Email: "other@acme.io"})
	s.True(errors.Is(err, apperrors.ErrConflict))

	err = s.repos.CompanyRepo.SaveCompany(s.ctx, domain.Company{TenantCode: "COMP-5678", Email: "OPS@acme.io"})
	s.True(errors.Is(err, apperrors.ErrConflict))

	exists, err := s.repos.CompanyRepo.TenantCodeExists(s.ctx, "COMP-1234")
	s.NoError(err)
	s.True(exists)
}

func (s *MemoryStoreTestSuite) TestTenantCodeExistsCountsLeftoverRecords() {
	s.seedCompany("COMP-1234", "ops@acme.io")
	err := s.repos.TaskRepo.SaveTask(s.ctx, domain.Task{ID: "t1", TenantCode: "COMP-1234", Title: "roadmap"})
	s.Require().NoError(err)
	s.Require().NoError(s.repos.CompanyRepo.DeleteCompany(s.ctx, "COMP-1234"))

	exists, err := s.repos.CompanyRepo.TenantCodeExists(s.ctx, "COMP-1234")
	s.NoError(err)
	s.True(exists)

	exists, err = s.repos.CompanyRepo.TenantCodeExists(s.ctx, "COMP-9999")
	s.NoError(err)
	s.False(exists)
}

func (s *MemoryStoreTestSuite) TestFindCompanyByNameAndCodeRequiresExactName() {
	s.seedCompany("COMP-1234", "ops@acme.io")

	_, err := s.repos.CompanyRepo.FindCompanyByNameAndCode(s.ctx, "Acme", "COMP-1234")
	s.NoError(err)

	_, err = s.repos.CompanyRepo.FindCompanyByNameAndCode(s.ctx, "acme", "COMP-1234")
	s.True(errors.Is(err, apperrors.ErrNotFound))
}

func (s *MemoryStoreTestSuite) TestEmployeeEmailUniquePerTenant() {
	now := time.Now()
	s.seedEmployee("e1", "COMP-1234", "a@acme.io", now)

	err := s.repos.EmployeeRepo.SaveEmployee(s.ctx, domain.Employee{ID: "e2", TenantCode: "COMP-1234", Email: "a@acme.io"})
	s.True(errors.Is(err, apperrors.ErrConflict))

	// the same email in another tenant is fine
	s.seedEmployee("e3", "COMP-5678", "a@acme.io", now)
}

func (s *MemoryStoreTestSuite) TestTenantScopedLookups() {
	s.seedEmployee("e1", "COMP-1234", "a@acme.io", time.Now())

	_, err := s.repos.EmployeeRepo.FindEmployee(s.ctx, "COMP-5678", "e1")
	s.True(errors.Is(err, apperrors.ErrNotFound))

	err = s.repos.EmployeeRepo.DeleteEmployee(s.ctx, "COMP-5678", "e1")
	s.True(errors.Is(err, apperrors.ErrNotFound))

	e, err := s.repos.EmployeeRepo.FindEmployeeByID(s.ctx, "e1")
	s.NoError(err)
	s.Equal(domain.TenantCode("COMP-1234"), e.TenantCode)
}

func (s *MemoryStoreTestSuite) TestListEmployeesPaginates() {
	base := time.Now()
	s.seedEmployee("e1", "COMP-1234", "1@acme.io", base)
	s.seedEmployee("e2", "COMP-1234", "2@acme.io", base.Add(time.Second))
	s.seedEmployee("e3", "COMP-1234", "3@acme.io", base.Add(2*time.Second))
	s.seedEmployee("x1", "COMP-5678", "1@acme.io", base)

	page, err := s.repos.EmployeeRepo.ListEmployees(s.ctx, "COMP-1234", 2, 1)
	s.NoError(err)
	s.Require().Len(page, 2)
	s.Equal("e2", page[0].ID)
	s.Equal("e3", page[1].ID)

	all, err := s.repos.EmployeeRepo.ListEmployees(s.ctx, "COMP-1234", 0, 0)
	s.NoError(err)
	s.Len(all, 3)
}

func (s *MemoryStoreTestSuite) TestRunInTxRollsBackOnError() {
	boom := errors.New("boom")
	err := s.repos.UnitOfWork.RunInTx(s.ctx, func(ctx context.Context, tx portsrepo.RepositoryProvider) error {
		if err := tx.CompanyRepo.SaveCompany(ctx, domain.Company{TenantCode: "COMP-1234", Email: "ops@acme.io"}); err != nil {
			return err
		}
		return boom
	})
	s.ErrorIs(err, boom)

	exists, err := s.repos.CompanyRepo.TenantCodeExists(s.ctx, "COMP-1234")
	s.NoError(err)
	s.False(exists)
}

func (s *MemoryStoreTestSuite) TestRunInTxCommits() {
	err := s.repos.UnitOfWork.RunInTx(s.ctx, func(ctx context.Context, tx portsrepo.RepositoryProvider) error {
		if err := tx.CompanyRepo.SaveCompany(ctx, domain.Company{TenantCode: "COMP-1234", Email: "ops@acme.io"}); err != nil {
			return err
		}
		return tx.EmployeeRepo.SaveEmployee(ctx, domain.Employee{ID: "admin", TenantCode: "COMP-1234", Email: "admin@acme.io"})
	})
	s.NoError(err)

	_, err = s.repos.EmployeeRepo.FindEmployee(s.ctx, "COMP-1234", "admin")
	s.NoError(err)
}

func (s *MemoryStoreTestSuite) TestMeetingsNewestFirstAndIsolated() {
	early := time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)
	late := early.Add(48 * time.Hour)
	s.Require().NoError(s.repos.MeetingRepo.SaveMeeting(s.ctx, domain.Meeting{ID: "m1", TenantCode: "COMP-1234", ScheduledAt: early, Participants: []string{"e1"}}))
	s.Require().NoError(s.repos.MeetingRepo.SaveMeeting(s.ctx, domain.Meeting{ID: "m2", TenantCode: "COMP-1234", ScheduledAt: late}))

	list, err := s.repos.MeetingRepo.ListMeetings(s.ctx, "COMP-1234")
	s.NoError(err)
	s.Require().Len(list, 2)
	s.Equal("m2", list[0].ID)

	list[1].Participants[0] = "mutated"
	m, err := s.repos.MeetingRepo.FindMeeting(s.ctx, "COMP-1234", "m1")
	s.NoError(err)
	s.Equal([]string{"e1"}, m.Participants)
}

func (s *MemoryStoreTestSuite) TestCancelledContext() {
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()
	_, err := s.repos.TaskRepo.ListTasks(ctx, "COMP-1234", domain.TaskFilter{})
	s.ErrorIs(err, context.Canceled)
}
