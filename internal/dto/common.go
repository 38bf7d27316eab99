package dto

import "github.com/SscSPs/workly_crm/internal/core/domain"

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// EmployeeRefResponse is the public summary of an employee embedded in other resources.
type EmployeeRefResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}

func toEmployeeRefResponse(ref domain.EmployeeRef) EmployeeRefResponse {
	return EmployeeRefResponse{ID: ref.ID, Name: ref.Name, Email: ref.Email}
}

// refOrID returns the resolved summary or, when the employee is gone, just the id.
func refOrID(ref *domain.EmployeeRef, id string) EmployeeRefResponse {
	if ref == nil {
		return EmployeeRefResponse{ID: id}
	}
	return toEmployeeRefResponse(*ref)
}
