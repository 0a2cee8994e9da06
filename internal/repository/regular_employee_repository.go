package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/employee-service/internal/domain"
	apperrors "github.com/spec-kit/employee-service/pkg/util"
)

// RegularEmployeeRepository encapsulates persistence for the regular collection.
type RegularEmployeeRepository interface {
	Create(ctx context.Context, employee *domain.RegularEmployee) error
	Update(ctx context.Context, employee *domain.RegularEmployee) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.RegularEmployee, error)
	List(ctx context.Context) ([]domain.RegularEmployee, error)
}

type regularEmployeeRepository struct {
	pool *pgxpool.Pool
}

// NewRegularEmployeeRepository instantiates the repository.
func NewRegularEmployeeRepository(pool *pgxpool.Pool) RegularEmployeeRepository {
	return &regularEmployeeRepository{pool: pool}
}

func (r *regularEmployeeRepository) Create(ctx context.Context, employee *domain.RegularEmployee) error {
	const query = `
        INSERT INTO regular_employees (id, first_name, last_name, email, number_of_leaves, benefits)
        VALUES ($1,$2,$3,$4,$5,$6)
        RETURNING created_at, updated_at`

	err := r.pool.QueryRow(ctx, query,
		employee.ID,
		employee.FirstName,
		employee.LastName,
		employee.Email,
		employee.NumberOfLeaves,
		employee.Benefits,
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

func (r *regularEmployeeRepository) Update(ctx context.Context, employee *domain.RegularEmployee) error {
	const query = `
        UPDATE regular_employees
        SET first_name=$1, last_name=$2, email=$3, number_of_leaves=$4, benefits=$5, updated_at=NOW()
        WHERE id=$6`

	cmd, err := r.pool.Exec(ctx, query,
		employee.FirstName,
		employee.LastName,
		employee.Email,
		employee.NumberOfLeaves,
		employee.Benefits,
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

func (r *regularEmployeeRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM regular_employees WHERE id=$1`

	cmd, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *regularEmployeeRepository) GetByID(ctx context.Context, id string) (*domain.RegularEmployee, error) {
	const query = `
        SELECT id, first_name, last_name, email, number_of_leaves, benefits, created_at, updated_at
        FROM regular_employees WHERE id=$1`

	var employee domain.RegularEmployee
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&employee.ID,
		&employee.FirstName,
		&employee.LastName,
		&employee.Email,
		&employee.NumberOfLeaves,
		&employee.Benefits,
		&employee.CreatedAt,
		&employee.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &employee, nil
}

func (r *regularEmployeeRepository) List(ctx context.Context) ([]domain.RegularEmployee, error) {
	const query = `
        SELECT id, first_name, last_name, email, number_of_leaves, benefits, created_at, updated_at
        FROM regular_employees`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	employees := make([]domain.RegularEmployee, 0)
	for rows.Next() {
		var employee domain.RegularEmployee
		if err := rows.Scan(
			&employee.ID,
			&employee.FirstName,
			&employee.LastName,
			&employee.Email,
			&employee.NumberOfLeaves,
			&employee.Benefits,
			&employee.CreatedAt,
			&employee.UpdatedAt,
		); err != nil {
			return nil, err
		}
		employees = append(employees, employee)
	}
	return employees, rows.Err()
}
