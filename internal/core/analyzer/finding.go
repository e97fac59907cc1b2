package analyzer

import (
	"fmt"

	"github.com/ogurasousui/codex-org-analyzer/internal/core/employee"
)

// SalaryViolation は給与ポリシー違反の種別です。
type SalaryViolation string

const (
	SalaryBelowMinimum SalaryViolation = "below_minimum"
	SalaryAboveMaximum SalaryViolation = "above_maximum"
)

// SalaryFinding は給与レンジ外のマネージャー 1 名分の検出結果です。
type SalaryFinding struct {
	Manager                  employee.Employee
	Violation                SalaryViolation
	Threshold                float64
	Difference               float64
	AverageSubordinateSalary float64
}

// String はレポート 1 行分の文字列を返します。
func (f SalaryFinding) String() string {
	m := f.Manager
	if f.Violation == SalaryBelowMinimum {
		return fmt.Sprintf(
			"Manager %s %s (ID: %d) earns less than required. Current Salary: %s, Minimum Required Salary: %s, Difference: %s, Average Subordinate Salary: %s",
			m.FirstName, m.LastName, m.ID,
			formatMoney(m.Salary), formatMoney(f.Threshold), formatMoney(f.Difference), formatMoney(f.AverageSubordinateSalary),
		)
	}
	return fmt.Sprintf(
		"Manager %s %s (ID: %d) earns more than allowed. Current Salary: %s, Maximum Allowed Salary: %s, Difference: %s, Average Subordinate Salary: %s",
		m.FirstName, m.LastName, m.ID,
		formatMoney(m.Salary), formatMoney(f.Threshold), formatMoney(f.Difference), formatMoney(f.AverageSubordinateSalary),
	)
}

// ReportingLineFinding はレポートラインが長すぎる社員 1 名分の検出結果です。
type ReportingLineFinding struct {
	Employee     employee.Employee
	LevelsToCEO  int
	ExcessLevels int
}

// String はレポート 1 行分の文字列を返します。
func (f ReportingLineFinding) String() string {
	e := f.Employee
	return fmt.Sprintf(
		"Employee %s %s (ID: %d) has a reporting line too long by %d levels. Total Levels to CEO: %d",
		e.FirstName, e.LastName, e.ID, f.ExcessLevels, f.LevelsToCEO,
	)
}

// Lines は検出結果をレポート出力先へ渡す文字列の列に変換します。
func Lines[T fmt.Stringer](findings []T) []string {
	lines := make([]string, 0, len(findings))
	for _, f := range findings {
		lines = append(lines, f.String())
	}
	return lines
}
