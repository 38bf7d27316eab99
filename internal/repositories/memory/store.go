package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/SscSPs/workly_crm/internal/core/domain"
	portsrepo "github.com/SscSPs/workly_crm/internal/core/ports/repositories"
)

// dataset is the full contents of the store.
type dataset struct {
	companies map[domain.TenantCode]domain.Company
	employees map[string]domain.Employee
	tasks     map[string]domain.Task
	meetings  map[string]domain.Meeting
}

func newDataset() *dataset {
	return &dataset{
		companies: map[domain.TenantCode]domain.Company{},
		employees: map[string]domain.Employee{},
		tasks:     map[string]domain.Task{},
		meetings:  map[string]domain.Meeting{},
	}
}

func (d *dataset) clone() *dataset {
	c := &dataset{
		companies: make(map[domain.TenantCode]domain.Company, len(d.companies)),
		employees: make(map[string]domain.Employee, len(d.employees)),
		tasks:     make(map[string]domain.Task, len(d.tasks)),
		meetings:  make(map[string]domain.Meeting, len(d.meetings)),
	}
	for k, v := range d.companies {
		c.companies[k] = v
	}
	for k, v := range d.employees {
		c.employees[k] = v
	}
	for k, v := range d.tasks {
		c.tasks[k] = v
	}
	for k, v := range d.meetings {
		v.Participants = slices.Clone(v.Participants)
		c.meetings[k] = v
	}
	return c
}

// Store is an in-process backend guarded by a single RWMutex. It is used by
// tests and when the service runs with STORE_DRIVER=memory.
type Store struct {
	mu   sync.RWMutex
	data *dataset
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{data: newDataset()}
}

// accessor hands a dataset to repository code. Outside a transaction it takes
// the store lock; inside one the lock is already held by RunInTx.
type accessor interface {
	read(ctx context.Context, fn func(d *dataset) error) error
	write(ctx context.Context, fn func(d *dataset) error) error
}

type shared struct{ s *Store }

func (a shared) read(ctx context.Context, fn func(d *dataset) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	a.s.mu.RLock()
	defer a.s.mu.RUnlock()
	return fn(a.s.data)
}

func (a shared) write(ctx context.Context, fn func(d *dataset) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	a.s.mu.Lock()
	defer a.s.mu.Unlock()
	return fn(a.s.data)
}

type pinned struct{ d *dataset }

func (a pinned) read(ctx context.Context, fn func(d *dataset) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return fn(a.d)
}

func (a pinned) write(ctx context.Context, fn func(d *dataset) error) error {
	return a.read(ctx, fn)
}

func providerFor(acc accessor) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		CompanyRepo:  &companyRepository{acc: acc},
		EmployeeRepo: &employeeRepository{acc: acc},
		TaskRepo:     &taskRepository{acc: acc},
		MeetingRepo:  &meetingRepository{acc: acc},
	}
}

// Repositories returns the store's repositories and unit of work.
func (s *Store) Repositories() portsrepo.Store {
	return portsrepo.Store{
		RepositoryProvider: providerFor(shared{s: s}),
		UnitOfWork:         s,
	}
}

// RunInTx runs fn against a private copy of the data and publishes the copy
// only when fn succeeds. Writers are serialized for the duration of fn.
// fn must use the repositories it is given; the outer ones would deadlock.
func (s *Store) RunInTx(ctx context.Context, fn func(ctx context.Context, tx portsrepo.RepositoryProvider) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	draft := s.data.clone()
	if err := fn(ctx, providerFor(pinned{d: draft})); err != nil {
		return err
	}
	s.data = draft
	return nil
}

var _ portsrepo.UnitOfWork = (*Store)(nil)
