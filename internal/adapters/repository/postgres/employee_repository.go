package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/ogurasousui/codex-org-analyzer/internal/core/employee"
	pgdb "github.com/ogurasousui/codex-org-analyzer/internal/platform/db/postgres"
)

const (
	undefinedTableCode = "42P01"
	invalidTextRepCode = "22P02"
	numericOutOfRange  = "22003"
	listEmployeesQuery = `
        SELECT id, first_name, last_name, salary, manager_id
          FROM employees
         ORDER BY id
    `
)

// EmployeeRepository は PostgreSQL の employees テーブルから社員レコードを読み込みます。
type EmployeeRepository struct {
	pool pgdb.Queryer
}

// NewEmployeeRepository は EmployeeRepository を生成します。
func NewEmployeeRepository(pool pgdb.Queryer) *EmployeeRepository {
	return &EmployeeRepository{pool: pool}
}

// List は全社員を ID 順に取得します。
func (r *EmployeeRepository) List(ctx context.Context) ([]*employee.Employee, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	rows, err := exec.Query(ctx, listEmployeesQuery)
	if err != nil {
		return nil, translateEmployeePgError(err)
	}
	defer rows.Close()

	employees := make([]*employee.Employee, 0)
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, translateEmployeePgError(err)
		}
		employees = append(employees, emp)
	}

	if err := rows.Err(); err != nil {
		return nil, translateEmployeePgError(err)
	}

	return employees, nil
}

func scanEmployee(row pgx.Row) (*employee.Employee, error) {
	var (
		id        int64
		firstName string
		lastName  string
		salary    float64
		managerID sql.NullInt64
	)

	if err := row.Scan(&id, &firstName, &lastName, &salary, &managerID); err != nil {
		return nil, err
	}

	if salary < 0 {
		return nil, fmt.Errorf("id %d: %w", id, employee.ErrInvalidSalary)
	}

	var managerPtr *int64
	if managerID.Valid {
		m := managerID.Int64
		managerPtr = &m
	}

	return &employee.Employee{
		ID:        id,
		FirstName: firstName,
		LastName:  lastName,
		Salary:    salary,
		ManagerID: managerPtr,
	}, nil
}

func translateEmployeePgError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case invalidTextRepCode, numericOutOfRange:
			return fmt.Errorf("%w: %s", employee.ErrMalformedRecord, pgErr.Message)
		case undefinedTableCode:
			return fmt.Errorf("postgres: employees table is missing, run migrations: %w", err)
		}
	}

	return err
}
