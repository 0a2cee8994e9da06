package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/employee-service/internal/cache"
	"github.com/spec-kit/employee-service/internal/domain"
	"github.com/spec-kit/employee-service/internal/events"
	"github.com/spec-kit/employee-service/internal/repository"
	apperrors "github.com/spec-kit/employee-service/pkg/util"
)

const dateLayout = "2006-01-02"

// CreateEmployeeInput carries fields for a tagged create. Variant-specific
// fields are pointers so missing values can be told apart from zero values.
type CreateEmployeeInput struct {
	FirstName       string
	LastName        string
	Email           string
	NumberOfLeaves  *int
	Benefits        *string
	ContractEndDate *string
	Project         *string
}

// UpdateEmployeeInput carries a partial update: nil fields are left untouched.
type UpdateEmployeeInput struct {
	FirstName       *string
	LastName        *string
	Email           *string
	NumberOfLeaves  *int
	Benefits        *string
	ContractEndDate *string
	Project         *string
}

// EmployeeDependencies bundles repo requirements for the employee service.
type EmployeeDependencies struct {
	RegularRepo     repository.RegularEmployeeRepository
	ContractualRepo repository.ContractualEmployeeRepository
	Cache           *cache.EmployeeCache
	Dispatcher      events.Dispatcher
}

// EmployeeService orchestrates variant-tagged CRUD over the two employee
// collections. Every tagged operation dispatches on the variant before any
// storage access; an unknown tag never reaches a repository.
type EmployeeService struct {
	regular     repository.RegularEmployeeRepository
	contractual repository.ContractualEmployeeRepository
	cache       *cache.EmployeeCache
	dispatcher  events.Dispatcher
}

// NewEmployeeService builds the service.
func NewEmployeeService(deps EmployeeDependencies) *EmployeeService {
	return &EmployeeService{
		regular:     deps.RegularRepo,
		contractual: deps.ContractualRepo,
		cache:       deps.Cache,
		dispatcher:  deps.Dispatcher,
	}
}

// List returns all records of the given variant. Order follows store
// iteration order; callers must not rely on insertion order.
func (s *EmployeeService) List(ctx context.Context, variant domain.EmployeeType) ([]domain.Employee, error) {
	switch variant {
	case domain.EmployeeTypeRegular:
		employees, err := s.listRegular(ctx)
		if err != nil {
			return nil, err
		}
		return wrapRegular(employees), nil
	case domain.EmployeeTypeContractual:
		employees, err := s.listContractual(ctx)
		if err != nil {
			return nil, err
		}
		return wrapContractual(employees), nil
	default:
		return nil, apperrors.NewInvalidEmployeeType(string(variant))
	}
}

// ListAll returns the regular listing followed by the contractual listing,
// concatenated in that fixed order.
func (s *EmployeeService) ListAll(ctx context.Context) ([]domain.Employee, error) {
	regular, err := s.listRegular(ctx)
	if err != nil {
		return nil, err
	}
	contractual, err := s.listContractual(ctx)
	if err != nil {
		return nil, err
	}
	all := wrapRegular(regular)
	return append(all, wrapContractual(contractual)...), nil
}

// Get looks up an id across both collections: regular first, contractual
// second. Use the tagged operations when the variant is known.
func (s *EmployeeService) Get(ctx context.Context, id string) (domain.Employee, error) {
	regular, err := s.regular.GetByID(ctx, id)
	if err == nil {
		return domain.Employee{Type: domain.EmployeeTypeRegular, Regular: regular}, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return domain.Employee{}, err
	}

	contractual, err := s.contractual.GetByID(ctx, id)
	if err == nil {
		return domain.Employee{Type: domain.EmployeeTypeContractual, Contractual: contractual}, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return domain.Employee{}, err
	}
	return domain.Employee{}, apperrors.NewNotFound("employee", map[string]any{"id": id})
}

// Create validates the input for the variant shape, generates an identifier
// and persists the record. A duplicate email within the variant's collection
// surfaces as a conflict from the repository.
func (s *EmployeeService) Create(ctx context.Context, variant domain.EmployeeType, input CreateEmployeeInput) (domain.Employee, error) {
	switch variant {
	case domain.EmployeeTypeRegular:
		return s.createRegular(ctx, input)
	case domain.EmployeeTypeContractual:
		return s.createContractual(ctx, input)
	default:
		return domain.Employee{}, apperrors.NewInvalidEmployeeType(string(variant))
	}
}

// Update applies a partial update within the named variant's collection. Only
// supplied fields are overwritten. Unlike Get, the lookup is variant-scoped.
func (s *EmployeeService) Update(ctx context.Context, variant domain.EmployeeType, id string, input UpdateEmployeeInput) (domain.Employee, error) {
	switch variant {
	case domain.EmployeeTypeRegular:
		return s.updateRegular(ctx, id, input)
	case domain.EmployeeTypeContractual:
		return s.updateContractual(ctx, id, input)
	default:
		return domain.Employee{}, apperrors.NewInvalidEmployeeType(string(variant))
	}
}

// Delete removes a record from the named variant's collection. Deleting an id
// that is absent there fails not-found, including a repeated delete.
func (s *EmployeeService) Delete(ctx context.Context, variant domain.EmployeeType, id string) error {
	var err error
	switch variant {
	case domain.EmployeeTypeRegular:
		err = s.regular.Delete(ctx, id)
	case domain.EmployeeTypeContractual:
		err = s.contractual.Delete(ctx, id)
	default:
		return apperrors.NewInvalidEmployeeType(string(variant))
	}
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound(string(variant)+" employee", map[string]any{"id": id})
		}
		return err
	}

	s.cache.Invalidate(ctx, variant)
	s.publish(ctx, events.EventEmployeeDeleted, id, events.EmployeeDeletedPayload{
		EmployeeType: variant,
		EmployeeID:   id,
	})
	return nil
}

func (s *EmployeeService) listRegular(ctx context.Context) ([]domain.RegularEmployee, error) {
	if employees, ok := s.cache.GetRegular(ctx); ok {
		return employees, nil
	}
	employees, err := s.regular.List(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.SetRegular(ctx, employees)
	return employees, nil
}

func (s *EmployeeService) listContractual(ctx context.Context) ([]domain.ContractualEmployee, error) {
	if employees, ok := s.cache.GetContractual(ctx); ok {
		return employees, nil
	}
	employees, err := s.contractual.List(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.SetContractual(ctx, employees)
	return employees, nil
}

func (s *EmployeeService) createRegular(ctx context.Context, input CreateEmployeeInput) (domain.Employee, error) {
	missing := missingCommonFields(input)
	if input.NumberOfLeaves == nil {
		missing = append(missing, "number_of_leaves")
	}
	if input.Benefits == nil || *input.Benefits == "" {
		missing = append(missing, "benefits")
	}
	if len(missing) > 0 {
		return domain.Employee{}, apperrors.NewValidationError("missing required fields",
			map[string]any{"fields": missing})
	}

	employee := &domain.RegularEmployee{
		ID:             uuid.NewString(),
		FirstName:      input.FirstName,
		LastName:       input.LastName,
		Email:          input.Email,
		NumberOfLeaves: *input.NumberOfLeaves,
		Benefits:       *input.Benefits,
	}
	if err := s.regular.Create(ctx, employee); err != nil {
		return domain.Employee{}, err
	}

	s.cache.Invalidate(ctx, domain.EmployeeTypeRegular)
	s.publish(ctx, events.EventEmployeeCreated, employee.ID, events.EmployeeCreatedPayload{
		EmployeeType: domain.EmployeeTypeRegular,
		EmployeeID:   employee.ID,
		Email:        employee.Email,
	})
	return domain.Employee{Type: domain.EmployeeTypeRegular, Regular: employee}, nil
}

func (s *EmployeeService) createContractual(ctx context.Context, input CreateEmployeeInput) (domain.Employee, error) {
	missing := missingCommonFields(input)
	if input.ContractEndDate == nil || *input.ContractEndDate == "" {
		missing = append(missing, "contract_end_date")
	}
	if input.Project == nil || *input.Project == "" {
		missing = append(missing, "project")
	}
	if len(missing) > 0 {
		return domain.Employee{}, apperrors.NewValidationError("missing required fields",
			map[string]any{"fields": missing})
	}

	endDate, err := parseContractEndDate(*input.ContractEndDate)
	if err != nil {
		return domain.Employee{}, err
	}

	employee := &domain.ContractualEmployee{
		ID:              uuid.NewString(),
		FirstName:       input.FirstName,
		LastName:        input.LastName,
		Email:           input.Email,
		ContractEndDate: endDate,
		Project:         *input.Project,
	}
	if err := s.contractual.Create(ctx, employee); err != nil {
		return domain.Employee{}, err
	}

	s.cache.Invalidate(ctx, domain.EmployeeTypeContractual)
	s.publish(ctx, events.EventEmployeeCreated, employee.ID, events.EmployeeCreatedPayload{
		EmployeeType: domain.EmployeeTypeContractual,
		EmployeeID:   employee.ID,
		Email:        employee.Email,
	})
	return domain.Employee{Type: domain.EmployeeTypeContractual, Contractual: employee}, nil
}

func (s *EmployeeService) updateRegular(ctx context.Context, id string, input UpdateEmployeeInput) (domain.Employee, error) {
	existing, err := s.regular.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Employee{}, apperrors.NewNotFound("regular employee", map[string]any{"id": id})
		}
		return domain.Employee{}, err
	}

	var updated []string
	if input.FirstName != nil {
		existing.FirstName = *input.FirstName
		updated = append(updated, "first_name")
	}
	if input.LastName != nil {
		existing.LastName = *input.LastName
		updated = append(updated, "last_name")
	}
	if input.Email != nil {
		existing.Email = *input.Email
		updated = append(updated, "email")
	}
	if input.NumberOfLeaves != nil {
		existing.NumberOfLeaves = *input.NumberOfLeaves
		updated = append(updated, "number_of_leaves")
	}
	if input.Benefits != nil {
		existing.Benefits = *input.Benefits
		updated = append(updated, "benefits")
	}

	if err := s.regular.Update(ctx, existing); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Employee{}, apperrors.NewNotFound("regular employee", map[string]any{"id": id})
		}
		return domain.Employee{}, err
	}

	s.cache.Invalidate(ctx, domain.EmployeeTypeRegular)
	s.publish(ctx, events.EventEmployeeUpdated, id, events.EmployeeUpdatedPayload{
		EmployeeType:  domain.EmployeeTypeRegular,
		EmployeeID:    id,
		UpdatedFields: updated,
	})
	return domain.Employee{Type: domain.EmployeeTypeRegular, Regular: existing}, nil
}

func (s *EmployeeService) updateContractual(ctx context.Context, id string, input UpdateEmployeeInput) (domain.Employee, error) {
	existing, err := s.contractual.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Employee{}, apperrors.NewNotFound("contractual employee", map[string]any{"id": id})
		}
		return domain.Employee{}, err
	}

	var updated []string
	if input.FirstName != nil {
		existing.FirstName = *input.FirstName
		updated = append(updated, "first_name")
	}
	if input.LastName != nil {
		existing.LastName = *input.LastName
		updated = append(updated, "last_name")
	}
	if input.Email != nil {
		existing.Email = *input.Email
		updated = append(updated, "email")
	}
	if input.ContractEndDate != nil {
		endDate, err := parseContractEndDate(*input.ContractEndDate)
		if err != nil {
			return domain.Employee{}, err
		}
		existing.ContractEndDate = endDate
		updated = append(updated, "contract_end_date")
	}
	if input.Project != nil {
		existing.Project = *input.Project
		updated = append(updated, "project")
	}

	if err := s.contractual.Update(ctx, existing); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Employee{}, apperrors.NewNotFound("contractual employee", map[string]any{"id": id})
		}
		return domain.Employee{}, err
	}

	s.cache.Invalidate(ctx, domain.EmployeeTypeContractual)
	s.publish(ctx, events.EventEmployeeUpdated, id, events.EmployeeUpdatedPayload{
		EmployeeType:  domain.EmployeeTypeContractual,
		EmployeeID:    id,
		UpdatedFields: updated,
	})
	return domain.Employee{Type: domain.EmployeeTypeContractual, Contractual: existing}, nil
}

func (s *EmployeeService) publish(ctx context.Context, eventType events.EventType, subject string, payload any) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		Subject:   subject,
		Timestamp: time.Now(),
		Payload:   payload,
	})
}

func wrapRegular(employees []domain.RegularEmployee) []domain.Employee {
	wrapped := make([]domain.Employee, 0, len(employees))
	for i := range employees {
		wrapped = append(wrapped, domain.Employee{
			Type:    domain.EmployeeTypeRegular,
			Regular: &employees[i],
		})
	}
	return wrapped
}

func wrapContractual(employees []domain.ContractualEmployee) []domain.Employee {
	wrapped := make([]domain.Employee, 0, len(employees))
	for i := range employees {
		wrapped = append(wrapped, domain.Employee{
			Type:        domain.EmployeeTypeContractual,
			Contractual: &employees[i],
		})
	}
	return wrapped
}

func missingCommonFields(input CreateEmployeeInput) []string {
	var missing []string
	if input.FirstName == "" {
		missing = append(missing, "first_name")
	}
	if input.LastName == "" {
		missing = append(missing, "last_name")
	}
	if input.Email == "" {
		missing = append(missing, "email")
	}
	return missing
}

func parseContractEndDate(raw string) (time.Time, error) {
	parsed, err := time.Parse(dateLayout, raw)
	if err != nil {
		return time.Time{}, apperrors.NewValidationError("contract_end_date must be a valid date",
			map[string]any{"contract_end_date": raw})
	}
	return parsed, nil
}
