package csvfile

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/ogurasousui/codex-org-analyzer/internal/core/employee"
)

const (
	colID = iota
	colFirstName
	colLastName
	colSalary
	colManagerID
	columnCount
)

// EmployeeRepository は CSV ファイルから社員レコードを読み込みます。
// 1 行目はヘッダとして読み飛ばし、列は Id,firstName,lastName,salary,managerId の順です。
type EmployeeRepository struct {
	path string
}

// NewEmployeeRepository は EmployeeRepository を生成します。
func NewEmployeeRepository(path string) *EmployeeRepository {
	return &EmployeeRepository{path: path}
}

// List はファイルを読み込み、全社員を返します。
func (r *EmployeeRepository) List(ctx context.Context) ([]*employee.Employee, error) {
	f, err := os.Open(r.path)
	if err != nil {
		return nil, fmt.Errorf("csvfile: open %s: %w", r.path, err)
	}
	defer f.Close()

	return Parse(ctx, f)
}

// Parse は CSV を読み込みます。ヘッダのみ、または空の入力は空のスライスを返します。
func Parse(ctx context.Context, in io.Reader) ([]*employee.Employee, error) {
	reader := csv.NewReader(in)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	if _, err := reader.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return []*employee.Employee{}, nil
		}
		return nil, fmt.Errorf("csvfile: read header: %w", err)
	}

	employees := make([]*employee.Employee, 0)
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("csvfile: %w: %v", employee.ErrMalformedRecord, err)
		}

		line, _ := reader.FieldPos(0)
		emp, err := parseRecord(record)
		if err != nil {
			return nil, fmt.Errorf("csvfile: line %d: %w", line, err)
		}
		employees = append(employees, emp)
	}

	return employees, nil
}

func parseRecord(record []string) (*employee.Employee, error) {
	if len(record) < columnCount-1 {
		return nil, fmt.Errorf("%w: expected %d columns, got %d", employee.ErrMalformedRecord, columnCount, len(record))
	}

	id, err := strconv.ParseInt(strings.TrimSpace(record[colID]), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: id %q", employee.ErrInvalidID, record[colID])
	}

	salary, err := strconv.ParseFloat(strings.TrimSpace(record[colSalary]), 64)
	if err != nil || salary < 0 || math.IsNaN(salary) || math.IsInf(salary, 0) {
		return nil, fmt.Errorf("%w: salary %q", employee.ErrInvalidSalary, record[colSalary])
	}

	var managerID *int64
	if len(record) > colManagerID {
		if raw := strings.TrimSpace(record[colManagerID]); raw != "" {
			m, err := strconv.ParseInt(raw, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: manager id %q", employee.ErrMalformedRecord, raw)
			}
			managerID = &m
		}
	}

	return &employee.Employee{
		ID:        id,
		FirstName: strings.TrimSpace(record[colFirstName]),
		LastName:  strings.TrimSpace(record[colLastName]),
		Salary:    salary,
		ManagerID: managerID,
	}, nil
}
