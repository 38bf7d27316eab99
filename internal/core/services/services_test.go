package services

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/SscSPs/workly_crm/internal/apperrors"
	"github.com/SscSPs/workly_crm/internal/core/domain"
	portsrepo "github.com/SscSPs/workly_crm/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/workly_crm/internal/core/ports/services"
	"github.com/SscSPs/workly_crm/internal/dto"
	"github.com/SscSPs/workly_crm/internal/platform/config"
	"github.com/SscSPs/workly_crm/internal/repositories/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type ServicesTestSuite struct {
	suite.Suite
	ctx   context.Context
	cfg   *config.Config
	store portsrepo.Store
	svc   *portssvc.ServiceContainer
}

func TestServicesTestSuite(t *testing.T) {
	suite.Run(t, new(ServicesTestSuite))
}

func (s *ServicesTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.cfg = &config.Config{
		JWTSecret:              "test-secret",
		JWTExpiryDuration:      time.Hour,
		JWTIssuer:              "workly-test",
		TaskSelfServiceEnabled: true,
		TenantCodeMaxAttempts:  50,
	}
	s.store = memory.NewStore().Repositories()
	s.svc = NewServiceContainer(s.cfg, s.store, nil)
}

// register creates a company and returns the admin's principal.
func (s *ServicesTestSuite) register(name, email string) (*portssvc.Registration, domain.Principal) {
	reg, err := s.svc.Company.RegisterCompany(s.ctx, dto.RegisterCompanyRequest{
		Name:     name,
		Email:    email,
		Password: "s3cret!",
	})
	s.Require().NoError(err)
	return reg, reg.Admin.Principal()
}

func (s *ServicesTestSuite) addEmployee(admin domain.Principal, name, email string, role domain.Role) domain.Principal {
	e, err := s.svc.Employee.CreateEmployee(s.ctx, admin, dto.CreateEmployeeRequest{
		Name: name, Email: email, Password: "pw-" + name, Role: string(role),
	})
	s.Require().NoError(err)
	return e.Principal()
}

func (s *ServicesTestSuite) TestRegisterCompanyDefaults() {
	reg, admin := s.register("Acme Corp", "Ops@Acme.io")

	s.True(reg.Company.TenantCode.IsValid())
	s.Equal("ops@acme.io", reg.Company.Email)
	s.Equal(domain.PlanFree, reg.Company.SubscriptionPlan)
	s.Equal(domain.SubscriptionInactive, reg.Company.SubscriptionStatus)
	s.Equal(domain.DefaultMaxEmployees, reg.Company.MaxEmployees)

	s.Equal(domain.RoleAdmin, admin.Role)
	s.Equal(reg.Company.TenantCode, admin.TenantCode)
	s.Equal("Admin User", reg.Admin.Name)
	s.Equal("admin@acmecorp.com", reg.Admin.Email)
	s.NotEqual("s3cret!", reg.Admin.PasswordHash)
	s.NotEmpty(reg.Token)

	subject, err := s.svc.Token.VerifyToken(reg.Token)
	s.NoError(err)
	s.Equal(reg.Admin.ID, subject)
}

func (s *ServicesTestSuite) TestRegisterCompanyDuplicateEmailIsConflict() {
	s.register("Acme", "ops@acme.io")

	_, err := s.svc.Company.RegisterCompany(s.ctx, dto.RegisterCompanyRequest{
		Name: "Acme Two", Email: "OPS@acme.io", Password: "x",
	})
	s.True(errors.Is(err, apperrors.ErrConflict))
}

func (s *ServicesTestSuite) TestRegisterCompanyWithRequestedCode() {
	reg, err := s.svc.Company.RegisterCompany(s.ctx, dto.RegisterCompanyRequest{
		Name: "Acme", Email: "ops@acme.io", Code: "COMP-4242", Password: "pw",
		Admin: &dto.AdminDetails{Name: "Ada", Email: "ada@acme.io"},
	})
	s.Require().NoError(err)
	s.Equal(domain.TenantCode("COMP-4242"), reg.Company.TenantCode)
	s.Equal("Ada", reg.Admin.Name)

	_, err = s.svc.Company.RegisterCompany(s.ctx, dto.RegisterCompanyRequest{
		Name: "Other", Email: "ops@other.io", Code: "COMP-4242", Password: "pw",
	})
	s.True(errors.Is(err, apperrors.ErrConflict))

	_, err = s.svc.Company.RegisterCompany(s.ctx, dto.RegisterCompanyRequest{
		Name: "Other", Email: "ops@other.io", Code: "COMP-42", Password: "pw",
	})
	s.True(errors.Is(err, apperrors.ErrValidation))
}

func (s *ServicesTestSuite) TestRegisterCompanyValidation() {
	_, err := s.svc.Company.RegisterCompany(s.ctx, dto.RegisterCompanyRequest{Email: "a@b.io", Password: "x"})
	s.True(errors.Is(err, apperrors.ErrValidation))

	_, err = s.svc.Company.RegisterCompany(s.ctx, dto.RegisterCompanyRequest{Name: "NoPassword", Email: "a@b.io"})
	s.True(errors.Is(err, apperrors.ErrValidation))
}

func (s *ServicesTestSuite) TestRegisterCompanyConflictLeavesNoTenant() {
	_, err := s.svc.Company.RegisterCompany(s.ctx, dto.RegisterCompanyRequest{
		Name: "Acme", Email: "ops@acme.io", Code: "COMP-5555", Password: "pw",
	})
	s.Require().NoError(err)

	_, err = s.svc.Company.RegisterCompany(s.ctx, dto.RegisterCompanyRequest{
		Name: "Acme", Email: "ops@acme.io", Code: "COMP-6666", Password: "pw",
	})
	s.True(errors.Is(err, apperrors.ErrConflict))

	exists, err := s.store.CompanyRepo.TenantCodeExists(s.ctx, "COMP-6666")
	s.NoError(err)
	s.False(exists)
}

func (s *ServicesTestSuite) TestLoginCompanyReturnsRoster() {
	reg, admin := s.register("Acme", "ops@acme.io")
	s.addEmployee(admin, "bob", "bob@acme.io", domain.RoleEmployee)

	company, roster, err := s.svc.Company.LoginCompany(s.ctx, dto.CompanyLoginRequest{
		Name: "Acme", Code: reg.Company.TenantCode.String(),
	})
	s.Require().NoError(err)
	s.Equal(reg.Company.ID, company.ID)
	s.Len(roster, 2)
}

func (s *ServicesTestSuite) TestLoginCompanyFailures() {
	reg, _ := s.register("Acme", "ops@acme.io")

	_, _, err := s.svc.Company.LoginCompany(s.ctx, dto.CompanyLoginRequest{Name: "Acme"})
	s.True(errors.Is(err, apperrors.ErrValidation))

	// A wrong name or code is a NotFoundError (404), not a malformed request.
	_, _, err = s.svc.Company.LoginCompany(s.ctx, dto.CompanyLoginRequest{Name: "Acme", Code: "COMP-0001"})
	s.True(errors.Is(err, apperrors.ErrNotFound))
	s.Equal(http.StatusNotFound, apperrors.StatusCode(err))

	_, _, err = s.svc.Company.LoginCompany(s.ctx, dto.CompanyLoginRequest{Name: "Acme", Code: "ACME-1"})
	s.True(errors.Is(err, apperrors.ErrNotFound))

	_, _, err = s.svc.Company.LoginCompany(s.ctx, dto.CompanyLoginRequest{Name: "Other", Code: reg.Company.TenantCode.String()})
	s.True(errors.Is(err, apperrors.ErrNotFound))
}

func (s *ServicesTestSuite) TestLoginEmployee() {
	reg, admin := s.register("Acme", "ops@acme.io")
	code := reg.Company.TenantCode.String()
	bob := s.addEmployee(admin, "bob", "bob@acme.io", domain.RoleEmployee)

	employee, token, expiresAt, err := s.svc.Employee.LoginEmployee(s.ctx, dto.EmployeeLoginRequest{
		Email: "BOB@acme.io", Password: "pw-bob", CompanyID: code,
	})
	s.Require().NoError(err)
	s.Equal(bob.ID, employee.ID)
	s.NotEmpty(token)
	s.True(expiresAt.After(time.Now()))

	_, _, _, err = s.svc.Employee.LoginEmployee(s.ctx, dto.EmployeeLoginRequest{Email: "bob@acme.io", Password: "wrong", CompanyID: code})
	s.True(errors.Is(err, apperrors.ErrUnauthorized))

	_, _, _, err = s.svc.Employee.LoginEmployee(s.ctx, dto.EmployeeLoginRequest{Email: "nobody@acme.io", Password: "pw", CompanyID: code})
	s.True(errors.Is(err, apperrors.ErrNotFound))

	_, _, _, err = s.svc.Employee.LoginEmployee(s.ctx, dto.EmployeeLoginRequest{Email: "bob@acme.io", Password: "pw-bob"})
	s.True(errors.Is(err, apperrors.ErrValidation))

	inactive := false
	_, err = s.svc.Employee.UpdateEmployee(s.ctx, admin, bob.ID, dto.UpdateEmployeeRequest{IsActive: &inactive})
	s.Require().NoError(err)
	_, _, _, err = s.svc.Employee.LoginEmployee(s.ctx, dto.EmployeeLoginRequest{Email: "bob@acme.io", Password: "pw-bob", CompanyID: code})
	s.True(errors.Is(err, apperrors.ErrUnauthorized))
}

func (s *ServicesTestSuite) TestEmployeeRoleCannotCreateEmployees() {
	_, admin := s.register("Acme", "ops@acme.io")
	bob := s.addEmployee(admin, "bob", "bob@acme.io", domain.RoleEmployee)

	_, err := s.svc.Employee.CreateEmployee(s.ctx, bob, dto.CreateEmployeeRequest{
		Name: "eve", Email: "eve@acme.io", Password: "pw",
	})
	s.True(errors.Is(err, apperrors.ErrForbidden))
}

func (s *ServicesTestSuite) TestDuplicateEmployeeEmailWithinTenant() {
	_, admin := s.register("Acme", "ops@acme.io")
	s.addEmployee(admin, "bob", "bob@acme.io", domain.RoleEmployee)

	_, err := s.svc.Employee.CreateEmployee(s.ctx, admin, dto.CreateEmployeeRequest{
		Name: "bob2", Email: "Bob@Acme.io", Password: "pw",
	})
	s.True(errors.Is(err, apperrors.ErrConflict))

	_, otherAdmin := s.register("Globex", "ops@globex.io")
	s.addEmployee(otherAdmin, "bob", "bob@acme.io", domain.RoleEmployee)
}

func (s *ServicesTestSuite) TestCreateEmployeeCarriesCompensation() {
	_, admin := s.register("Acme", "ops@acme.io")
	salary := decimal.RequireFromString("52000.50")

	e, err := s.svc.Employee.CreateEmployee(s.ctx, admin, dto.CreateEmployeeRequest{
		Name: "bob", Email: "bob@acme.io", Password: "pw", Salary: &salary,
	})
	s.Require().NoError(err)
	s.True(salary.Equal(e.Salary))
	s.True(e.Bonus.IsZero())
	s.Equal(domain.RoleEmployee, e.Role)
	s.True(e.IsActive)
}

func (s *ServicesTestSuite) TestGetEmployeeAdminOrSelf() {
	_, admin := s.register("Acme", "ops@acme.io")
	bob := s.addEmployee(admin, "bob", "bob@acme.io", domain.RoleEmployee)
	carol := s.addEmployee(admin, "carol", "carol@acme.io", domain.RoleManager)

	_, err := s.svc.Employee.GetEmployee(s.ctx, bob, bob.ID)
	s.NoError(err)
	_, err = s.svc.Employee.GetEmployee(s.ctx, admin, bob.ID)
	s.NoError(err)
	_, err = s.svc.Employee.GetEmployee(s.ctx, carol, bob.ID)
	s.True(errors.Is(err, apperrors.ErrForbidden))
}

func (s *ServicesTestSuite) TestTenantIsolation() {
	_, acme := s.register("Acme", "ops@acme.io")
	_, globex := s.register("Globex", "ops@globex.io")
	bob := s.addEmployee(acme, "bob", "bob@acme.io", domain.RoleEmployee)

	_, err := s.svc.Employee.GetEmployee(s.ctx, globex, bob.ID)
	s.True(errors.Is(err, apperrors.ErrNotFound))

	err = s.svc.Employee.DeleteEmployee(s.ctx, globex, bob.ID)
	s.True(errors.Is(err, apperrors.ErrNotFound))

	_, err = s.svc.Employee.ListEmployeesByCompany(s.ctx, globex, acme.TenantCode.String())
	s.True(errors.Is(err, apperrors.ErrForbidden))

	_, err = s.svc.Company.GetCompany(s.ctx, globex, acme.TenantCode.String())
	s.True(errors.Is(err, apperrors.ErrNotFound))
}

func (s *ServicesTestSuite) TestCompanyGetListUpdate() {
	reg, admin := s.register("Acme", "ops@acme.io")

	byCode, err := s.svc.Company.GetCompany(s.ctx, admin, reg.Company.TenantCode.String())
	s.Require().NoError(err)
	byID, err := s.svc.Company.GetCompany(s.ctx, admin, reg.Company.ID)
	s.Require().NoError(err)
	s.Equal(byCode.ID, byID.ID)

	list, err := s.svc.Company.ListCompanies(s.ctx, admin)
	s.NoError(err)
	s.Len(list, 1)

	plan := "premium"
	name := "Acme Industries"
	updated, err := s.svc.Company.UpdateCompany(s.ctx, admin, reg.Company.ID, dto.UpdateCompanyRequest{
		Name: &name, SubscriptionPlan: &plan,
	})
	s.Require().NoError(err)
	s.Equal(domain.PlanPremium, updated.SubscriptionPlan)
	s.Equal("Acme Industries", updated.Name)
	s.Equal(reg.Company.TenantCode, updated.TenantCode)
}

func (s *ServicesTestSuite) TestDeleteCompanyCascadesEmployeesOnly() {
	reg, admin := s.register("Acme", "ops@acme.io")
	bob := s.addEmployee(admin, "bob", "bob@acme.io", domain.RoleEmployee)
	task, err := s.svc.Task.CreateTask(s.ctx, admin, dto.CreateTaskRequest{Title: "Ship", AssignedTo: bob.ID})
	s.Require().NoError(err)

	s.Require().NoError(s.svc.Company.DeleteCompany(s.ctx, admin, reg.Company.TenantCode.String()))

	employees, err := s.store.EmployeeRepo.ListEmployees(s.ctx, reg.Company.TenantCode, 0, 0)
	s.NoError(err)
	s.Empty(employees)

	_, err = s.store.TaskRepo.FindTask(s.ctx, reg.Company.TenantCode, task.ID)
	s.NoError(err, "tasks of a deleted tenant are kept")

	_, err = s.svc.Employee.LoadEmployee(s.ctx, admin.ID)
	s.True(errors.Is(err, apperrors.ErrNotFound))
}

func (s *ServicesTestSuite) TestDeletedCompanyCodeIsNotReused() {
	reg, err := s.svc.Company.RegisterCompany(s.ctx, dto.RegisterCompanyRequest{
		Name: "Acme", Email: "ops@acme.io", Code: "COMP-4242", Password: "pw",
	})
	s.Require().NoError(err)
	admin := reg.Admin.Principal()
	_, err = s.svc.Task.CreateTask(s.ctx, admin, dto.CreateTaskRequest{Title: "Acme secret roadmap", AssignedTo: admin.ID})
	s.Require().NoError(err)
	s.Require().NoError(s.svc.Company.DeleteCompany(s.ctx, admin, "COMP-4242"))

	_, err = s.svc.Company.RegisterCompany(s.ctx, dto.RegisterCompanyRequest{
		Name: "Mallory", Email: "ops@mallory.io", Code: "COMP-4242", Password: "pw",
	})
	s.True(errors.Is(err, apperrors.ErrConflict))

	// random allocation skips the retired code as well
	company := s.svc.Company.(*companyService)
	suffixes := []int{4242, 4343}
	company.allocator.random = func(_, _ int) (int, error) {
		n := suffixes[0]
		suffixes = suffixes[1:]
		return n, nil
	}
	other, err := s.svc.Company.RegisterCompany(s.ctx, dto.RegisterCompanyRequest{
		Name: "Mallory", Email: "ops@mallory.io", Password: "pw",
	})
	s.Require().NoError(err)
	s.Equal(domain.TenantCode("COMP-4343"), other.Company.TenantCode)

	_, tasks, err := s.svc.Task.TaskStatsByCompany(s.ctx, other.Admin.Principal(), "COMP-4343")
	s.NoError(err)
	s.Empty(tasks)
}

func (s *ServicesTestSuite) TestRegisterCompanyEmailChecks() {
	_, err := s.svc.Company.RegisterCompany(s.ctx, dto.RegisterCompanyRequest{
		Name: "Acme", Email: "Ops Team <ops@acme.io>", Password: "pw",
	})
	s.True(errors.Is(err, apperrors.ErrValidation), "display-name forms are not addresses")

	reg, err := s.svc.Company.RegisterCompany(s.ctx, dto.RegisterCompanyRequest{
		Name: "Acme & Co.", Email: "ops@acme.io", Password: "pw",
	})
	s.Require().NoError(err)
	s.Equal("admin@acmeco.com", reg.Admin.Email)

	_, err = s.svc.Company.RegisterCompany(s.ctx, dto.RegisterCompanyRequest{
		Name: "!!!", Email: "ops@bang.io", Password: "pw",
	})
	s.True(errors.Is(err, apperrors.ErrValidation), "a name with no usable characters needs an explicit admin email")

	_, err = s.svc.Company.RegisterCompany(s.ctx, dto.RegisterCompanyRequest{
		Name: "Globex", Email: "ops@globex.io", Password: "pw",
		Admin: &dto.AdminDetails{Name: "Hank", Email: "not-an-address"},
	})
	s.True(errors.Is(err, apperrors.ErrValidation))
}

func (s *ServicesTestSuite) TestTaskLifecycle() {
	_, admin := s.register("Acme", "ops@acme.io")
	bob := s.addEmployee(admin, "bob", "bob@acme.io", domain.RoleEmployee)

	task, err := s.svc.Task.CreateTask(s.ctx, admin, dto.CreateTaskRequest{Title: "Ship", AssignedTo: bob.ID})
	s.Require().NoError(err)
	s.Equal(domain.PriorityMedium, task.Priority)
	s.Equal(domain.TaskPending, task.Status)
	s.Equal(admin.ID, task.CreatedBy)
	s.Require().NotNil(task.Assignee)
	s.Equal("bob@acme.io", task.Assignee.Email)

	_, err = s.svc.Task.CreateTask(s.ctx, admin, dto.CreateTaskRequest{Title: "Ghost", AssignedTo: "missing"})
	s.True(errors.Is(err, apperrors.ErrValidation))

	_, err = s.svc.Task.CreateTask(s.ctx, bob, dto.CreateTaskRequest{Title: "Self", AssignedTo: bob.ID})
	s.True(errors.Is(err, apperrors.ErrForbidden))

	stats, tasks, err := s.svc.Task.TaskStatsByCompany(s.ctx, bob, bob.TenantCode.String())
	s.NoError(err)
	s.Equal(1, stats.Count)
	s.Equal(1, stats.Pending)
	s.Len(tasks, 1)

	byEmployee, err := s.svc.Task.ListTasksByEmployee(s.ctx, admin, bob.ID)
	s.NoError(err)
	s.Len(byEmployee, 1)

	s.NoError(s.svc.Task.DeleteTask(s.ctx, admin, task.ID))
	s.True(errors.Is(s.svc.Task.DeleteTask(s.ctx, admin, task.ID), apperrors.ErrNotFound))
}

func (s *ServicesTestSuite) TestTaskSelfService() {
	_, admin := s.register("Acme", "ops@acme.io")
	bob := s.addEmployee(admin, "bob", "bob@acme.io", domain.RoleEmployee)
	eve := s.addEmployee(admin, "eve", "eve@acme.io", domain.RoleEmployee)
	task, err := s.svc.Task.CreateTask(s.ctx, admin, dto.CreateTaskRequest{Title: "Ship", AssignedTo: bob.ID})
	s.Require().NoError(err)

	status := string(domain.TaskInProgress)
	updated, err := s.svc.Task.UpdateTask(s.ctx, bob, task.ID, dto.UpdateTaskRequest{Status: &status})
	s.Require().NoError(err)
	s.Equal(domain.TaskInProgress, updated.Status)

	_, err = s.svc.Task.UpdateTask(s.ctx, bob, task.ID, dto.UpdateTaskRequest{Status: &status, AssignedTo: &eve.ID})
	s.True(errors.Is(err, apperrors.ErrForbidden))

	_, err = s.svc.Task.UpdateTask(s.ctx, eve, task.ID, dto.UpdateTaskRequest{Status: &status})
	s.True(errors.Is(err, apperrors.ErrForbidden))

	reassigned, err := s.svc.Task.UpdateTask(s.ctx, admin, task.ID, dto.UpdateTaskRequest{AssignedTo: &eve.ID})
	s.Require().NoError(err)
	s.Equal(eve.ID, reassigned.AssignedTo)
}

func (s *ServicesTestSuite) TestTaskSelfServiceDisabled() {
	s.cfg.TaskSelfServiceEnabled = false
	s.svc = NewServiceContainer(s.cfg, s.store, nil)
	_, admin := s.register("Acme", "ops@acme.io")
	bob := s.addEmployee(admin, "bob", "bob@acme.io", domain.RoleEmployee)
	task, err := s.svc.Task.CreateTask(s.ctx, admin, dto.CreateTaskRequest{Title: "Ship", AssignedTo: bob.ID})
	s.Require().NoError(err)

	status := string(domain.TaskCompleted)
	_, err = s.svc.Task.UpdateTask(s.ctx, bob, task.ID, dto.UpdateTaskRequest{Status: &status})
	s.True(errors.Is(err, apperrors.ErrForbidden))
}

func (s *ServicesTestSuite) TestMeetingParticipants() {
	_, admin := s.register("Acme", "ops@acme.io")
	bob := s.addEmployee(admin, "bob", "bob@acme.io", domain.RoleEmployee)
	when := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	meeting, err := s.svc.Meeting.CreateMeeting(s.ctx, admin, dto.CreateMeetingRequest{
		Title: "Standup", ScheduledAt: &when, Participants: []string{bob.ID, admin.ID, bob.ID},
	})
	s.Require().NoError(err)
	s.Equal(domain.DefaultMeetingLocation, meeting.Location)
	s.Equal(domain.MeetingScheduled, meeting.Status)
	s.Equal([]string{bob.ID, admin.ID}, meeting.Participants)
	s.Require().Len(meeting.Attendees, 2)
	s.Equal("bob", meeting.Attendees[0].Name)
	s.Require().NotNil(meeting.Creator)

	_, err = s.svc.Meeting.CreateMeeting(s.ctx, admin, dto.CreateMeetingRequest{
		Title: "Ghosts", ScheduledAt: &when, Participants: []string{"nobody"},
	})
	s.True(errors.Is(err, apperrors.ErrValidation))

	_, err = s.svc.Meeting.CreateMeeting(s.ctx, admin, dto.CreateMeetingRequest{Title: "No date"})
	s.True(errors.Is(err, apperrors.ErrValidation))

	_, err = s.svc.Meeting.CreateMeeting(s.ctx, bob, dto.CreateMeetingRequest{Title: "Mine", ScheduledAt: &when})
	s.True(errors.Is(err, apperrors.ErrForbidden))
}

func (s *ServicesTestSuite) TestMeetingParticipantCap() {
	_, admin := s.register("Acme", "ops@acme.io")
	when := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	ids := make([]string, 0, domain.MaxMeetingParticipants+1)
	for i := 0; i <= domain.MaxMeetingParticipants; i++ {
		ids = append(ids, string(rune('a'+i)))
	}

	_, err := s.svc.Meeting.CreateMeeting(s.ctx, admin, dto.CreateMeetingRequest{
		Title: "Crowd", ScheduledAt: &when, Participants: ids,
	})
	s.True(errors.Is(err, apperrors.ErrValidation))
}

func (s *ServicesTestSuite) TestMeetingsByCompanyNewestFirst() {
	_, admin := s.register("Acme", "ops@acme.io")
	early := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	late := early.Add(48 * time.Hour)
	for _, at := range []time.Time{early, late} {
		_, err := s.svc.Meeting.CreateMeeting(s.ctx, admin, dto.CreateMeetingRequest{Title: at.String(), ScheduledAt: &at})
		s.Require().NoError(err)
	}

	meetings, err := s.svc.Meeting.ListMeetingsByCompany(s.ctx, admin, admin.TenantCode.String())
	s.Require().NoError(err)
	s.Require().Len(meetings, 2)
	s.True(meetings[0].ScheduledAt.Equal(late))

	_, err = s.svc.Meeting.ListMeetingsByCompany(s.ctx, admin, "COMP-9999")
	s.True(errors.Is(err, apperrors.ErrForbidden))
}
