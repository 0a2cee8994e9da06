package domain

import "time"

// EmployeeType is the variant tag selecting which employee collection and
// shape an operation targets.
type EmployeeType string

const (
	EmployeeTypeRegular     EmployeeType = "regular"
	EmployeeTypeContractual EmployeeType = "contractual"
)

// Valid reports whether the tag names a known variant.
func (t EmployeeType) Valid() bool {
	return t == EmployeeTypeRegular || t == EmployeeTypeContractual
}

// RegularEmployee is a permanent employee with leave and benefits entitlements.
type RegularEmployee struct {
	ID             string
	FirstName      string
	LastName       string
	Email          string
	NumberOfLeaves int
	Benefits       string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// ContractualEmployee is a fixed-term employee attached to a project.
type ContractualEmployee struct {
	ID              string
	FirstName       string
	LastName        string
	Email           string
	ContractEndDate time.Time
	Project         string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Employee is the tagged union over the two variants. Exactly one of the
// payload fields is set, matching Type.
type Employee struct {
	Type        EmployeeType
	Regular     *RegularEmployee
	Contractual *ContractualEmployee
}

// ID returns the identifier of whichever variant is set.
func (e Employee) ID() string {
	switch e.Type {
	case EmployeeTypeRegular:
		if e.Regular != nil {
			return e.Regular.ID
		}
	case EmployeeTypeContractual:
		if e.Contractual != nil {
			return e.Contractual.ID
		}
	}
	return ""
}
