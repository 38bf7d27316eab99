package services

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used throughout the application, particularly in the handlers.
type ServiceContainer struct {
	Company  CompanySvcFacade
	Employee EmployeeSvcFacade
	Task     TaskSvcFacade
	Meeting  MeetingSvcFacade
	Token    TokenSvc
}

// AuthMetrics receives authentication outcomes for monitoring.
type AuthMetrics interface {
	CompanyRegistered()
	LoginSucceeded(step string)
	LoginFailed(step, reason string)
}
