package analyzer

import (
	"fmt"

	"github.com/ogurasousui/codex-org-analyzer/internal/core/employee"
)

const (
	minSalaryRatio    = 1.2
	maxSalaryRatio    = 1.5
	maxReportingDepth = 4
)

// Analyzer は Directory に対して給与とレポートラインの分析を行います。
// 状態を持たないため、同じ Directory に対して何度呼び出しても同じ結果を返します。
type Analyzer struct {
	dir *employee.Directory
}

// New は Analyzer を生成します。dir は nil であってはなりません。
func New(dir *employee.Directory) *Analyzer {
	if dir == nil {
		panic("analyzer: directory is required")
	}
	return &Analyzer{dir: dir}
}

// AnalyzeSalaries は直属の部下の平均給与に対してマネージャーの給与が
// 1.2 倍未満または 1.5 倍超である場合に検出結果を返します。
func (a *Analyzer) AnalyzeSalaries() []SalaryFinding {
	var findings []SalaryFinding
	for _, manager := range a.dir.All() {
		subordinates := a.dir.Subordinates(manager.ID)
		if len(subordinates) == 0 {
			continue
		}

		avg := averageSalary(subordinates)
		minSalary := avg * minSalaryRatio
		maxSalary := avg * maxSalaryRatio

		switch {
		case manager.Salary < minSalary:
			findings = append(findings, SalaryFinding{
				Manager:                  manager,
				Violation:                SalaryBelowMinimum,
				Threshold:                minSalary,
				Difference:               minSalary - manager.Salary,
				AverageSubordinateSalary: avg,
			})
		case manager.Salary > maxSalary:
			findings = append(findings, SalaryFinding{
				Manager:                  manager,
				Violation:                SalaryAboveMaximum,
				Threshold:                maxSalary,
				Difference:               manager.Salary - maxSalary,
				AverageSubordinateSalary: avg,
			})
		}
	}
	return findings
}

// AnalyzeReportingLines は CEO までの階層数が 4 を超える社員を返します。
func (a *Analyzer) AnalyzeReportingLines() ([]ReportingLineFinding, error) {
	var findings []ReportingLineFinding
	for _, e := range a.dir.All() {
		distance, err := a.DistanceToCEO(e.ID)
		if err != nil {
			return nil, err
		}
		if distance > maxReportingDepth {
			findings = append(findings, ReportingLineFinding{
				Employee:     e,
				LevelsToCEO:  distance,
				ExcessLevels: distance - maxReportingDepth,
			})
		}
	}
	return findings, nil
}

// DistanceToCEO は社員から上長を辿ってルートに到達するまでの階層数を返します。
// 上長 ID が Directory に存在しない場合はそこで打ち切り、それまでの階層数を返します。
// 社員数を超えて辿った場合は循環とみなし employee.ErrReportingCycle を返します。
func (a *Analyzer) DistanceToCEO(employeeID int64) (int, error) {
	limit := a.dir.Len()
	distance := 0

	current, ok := a.dir.Get(employeeID)
	for ok {
		managerID, hasManager := current.Manager()
		if !hasManager {
			break
		}
		current, ok = a.dir.Get(managerID)
		distance++
		if distance > limit {
			return 0, fmt.Errorf("analyzer: id %d: %w", employeeID, employee.ErrReportingCycle)
		}
	}

	return distance, nil
}

func averageSalary(employees []employee.Employee) float64 {
	var total float64
	for _, e := range employees {
		total += e.Salary
	}
	return total / float64(len(employees))
}
