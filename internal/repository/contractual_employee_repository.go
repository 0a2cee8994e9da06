package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/employee-service/internal/domain"
	apperrors "github.com/spec-kit/employee-service/pkg/util"
)

// ContractualEmployeeRepository encapsulates persistence for the contractual collection.
type ContractualEmployeeRepository interface {
	Create(ctx context.Context, employee *domain.ContractualEmployee) error
	Update(ctx context.Context, employee *domain.ContractualEmployee) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.ContractualEmployee, error)
	List(ctx context.Context) ([]domain.ContractualEmployee, error)
}

type contractualEmployeeRepository struct {
	pool *pgxpool.Pool
}

// NewContractualEmployeeRepository instantiates the repository.
func NewContractualEmployeeRepository(pool *pgxpool.Pool) ContractualEmployeeRepository {
	return &contractualEmployeeRepository{pool: pool}
}

func (r *contractualEmployeeRepository) Create(ctx context.Context, employee *domain.ContractualEmployee) error {
	const query = `
        INSERT INTO contractual_employees (id, first_name, last_name, email, contract_end_date, project)
        VALUES ($1,$2,$3,$4,$5,$6)
        RETURNING created_at, updated_at`

	err := r.pool.QueryRow(ctx, query,
		employee.ID,
		employee.FirstName,
		employee.LastName,
		employee.Email,
		employee.ContractEndDate,
		employee.Project,
	).Scan(&employee.CreatedAt, &employee.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.NewConflict("email already exists",
				map[string]any{"email": employee.Email})
		}
		return err
	}
	return nil
}

func (r *contractualEmployeeRepository) Update(ctx context.Context, employee *domain.ContractualEmployee) error {
	const query = `
        UPDATE contractual_employees
        SET first_name=$1, last_name=$2, email=$3, contract_end_date=$4, project=$5, updated_at=NOW()
        WHERE id=$6`

	cmd, err := r.pool.Exec(ctx, query,
		employee.FirstName,
		employee.LastName,
		employee.Email,
		employee.ContractEndDate,
		employee.Project,
		employee.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.NewConflict("email already exists",
				map[string]any{"email": employee.Email})
		}
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *contractualEmployeeRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM contractual_employees WHERE id=$1`

	cmd, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *contractualEmployeeRepository) GetByID(ctx context.Context, id string) (*domain.ContractualEmployee, error) {
	const query = `
        SELECT id, first_name, last_name, email, contract_end_date, project, created_at, updated_at
        FROM contractual_employees WHERE id=$1`

	var employee domain.ContractualEmployee
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&employee.ID,
		&employee.FirstName,
		&employee.LastName,
		&employee.Email,
		&employee.ContractEndDate,
		&employee.Project,
		&employee.CreatedAt,
		&employee.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &employee, nil
}

func (r *contractualEmployeeRepository) List(ctx context.Context) ([]domain.ContractualEmployee, error) {
	const query = `
        SELECT id, first_name, last_name, email, contract_end_date, project, created_at, updated_at
        FROM contractual_employees`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	employees := make([]domain.ContractualEmployee, 0)
	for rows.Next() {
		var employee domain.ContractualEmployee
		if err := rows.Scan(
			&employee.ID,
			&employee.FirstName,
			&employee.LastName,
			&employee.Email,
			&employee.ContractEndDate,
			&employee.Project,
			&employee.CreatedAt,
			&employee.UpdatedAt,
		); err != nil {
			return nil, err
		}
		employees = append(employees, employee)
	}
	return employees, rows.Err()
}
