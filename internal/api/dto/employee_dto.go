package dto

import (
	"github.com/spec-kit/employee-service/internal/domain"
)

const dateLayout = "2006-01-02"

// EmployeePayload is the employee object inside create/update requests.
// Everything is a pointer so partial updates can distinguish omitted fields.
type EmployeePayload struct {
	FirstName       *string `json:"first_name"`
	LastName        *string `json:"last_name"`
	Email           *string `json:"email"`
	NumberOfLeaves  *int    `json:"number_of_leaves"`
	Benefits        *string `json:"benefits"`
	ContractEndDate *string `json:"contract_end_date"`
	Project         *string `json:"project"`
}

// EmployeeCreateRequest is the tagged create payload.
type EmployeeCreateRequest struct {
	TypeOfEmployee string          `json:"type_of_employee"`
	Employee       EmployeePayload `json:"employee"`
}

// EmployeeUpdateRequest is the tagged partial-update payload.
type EmployeeUpdateRequest struct {
	TypeOfEmployee string          `json:"type_of_employee"`
	Employee       EmployeePayload `json:"employee"`
}

// EmployeeResponse renders either variant; variant-specific fields are
// omitted when they do not apply.
type EmployeeResponse struct {
	ID              string  `json:"id"`
	TypeOfEmployee  string  `json:"type_of_employee"`
	FirstName       string  `json:"first_name"`
	LastName        string  `json:"last_name"`
	Email           string  `json:"email"`
	NumberOfLeaves  *int    `json:"number_of_leaves,omitempty"`
	Benefits        *string `json:"benefits,omitempty"`
	ContractEndDate *string `json:"contract_end_date,omitempty"`
	Project         *string `json:"project,omitempty"`
}

// NewEmployeeResponse converts a domain employee to its wire form. Contract
// end dates render as YYYY-MM-DD.
func NewEmployeeResponse(employee domain.Employee) EmployeeResponse {
	resp := EmployeeResponse{TypeOfEmployee: string(employee.Type)}

	switch employee.Type {
	case domain.EmployeeTypeRegular:
		r := employee.Regular
		resp.ID = r.ID
		resp.FirstName = r.FirstName
		resp.LastName = r.LastName
		resp.Email = r.Email
		resp.NumberOfLeaves = &r.NumberOfLeaves
		resp.Benefits = &r.Benefits
	case domain.EmployeeTypeContractual:
		c := employee.Contractual
		resp.ID = c.ID
		resp.FirstName = c.FirstName
		resp.LastName = c.LastName
		resp.Email = c.Email
		endDate := c.ContractEndDate.Format(dateLayout)
		resp.ContractEndDate = &endDate
		resp.Project = &c.Project
	}
	return resp
}

// NewEmployeeResponses converts a listing.
func NewEmployeeResponses(employees []domain.Employee) []EmployeeResponse {
	responses := make([]EmployeeResponse, 0, len(employees))
	for _, employee := range employees {
		responses = append(responses, NewEmployeeResponse(employee))
	}
	return responses
}
