package services

import (
	portsrepo "github.com/SscSPs/workly_crm/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/workly_crm/internal/core/ports/services"
	"github.com/SscSPs/workly_crm/internal/platform/config"
)

type noopAuthMetrics struct{}

func (noopAuthMetrics) CompanyRegistered()         {}
func (noopAuthMetrics) LoginSucceeded(string)      {}
func (noopAuthMetrics) LoginFailed(string, string) {}

// NewServiceContainer creates and returns a new service container with all services initialized.
// A nil metrics sink disables auth metrics.
func NewServiceContainer(cfg *config.Config, store portsrepo.Store, metrics portssvc.AuthMetrics) *portssvc.ServiceContainer {
	tokens := NewTokenService(cfg)

	return &portssvc.ServiceContainer{
		Company:  NewCompanyService(store, tokens, cfg.TenantCodeMaxAttempts, metrics),
		Employee: NewEmployeeService(store.EmployeeRepo, tokens, metrics),
		Task:     NewTaskService(store.TaskRepo, store.EmployeeRepo, cfg.TaskSelfServiceEnabled),
		Meeting:  NewMeetingService(store.MeetingRepo, store.EmployeeRepo),
		Token:    tokens,
	}
}
