package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	CompanyRepo  CompanyRepositoryFacade
	EmployeeRepo EmployeeRepositoryFacade
	TaskRepo     TaskRepositoryFacade
	MeetingRepo  MeetingRepositoryFacade
}

// Store is a complete persistence backend: the repositories plus a way to
// group their writes into one transaction.
type Store struct {
	RepositoryProvider
	UnitOfWork UnitOfWork
}
