package orgreport

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/ogurasousui/codex-org-analyzer/internal/core/analyzer"
	"github.com/ogurasousui/codex-org-analyzer/internal/core/employee"
)

// Clock は現在時刻を提供します。
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now().UTC()
}

// TransactionManager は読み取り専用トランザクション制御の抽象化です。
type TransactionManager interface {
	WithinReadOnly(ctx context.Context, fn func(context.Context) error) error
}

type noopTransactionManager struct{}

func (noopTransactionManager) WithinReadOnly(ctx context.Context, fn func(context.Context) error) error {
	if fn == nil {
		return nil
	}
	return fn(ctx)
}

// UseCase は組織レポート生成の公開インターフェースです。
type UseCase interface {
	GenerateReport(ctx context.Context) (*Report, error)
}

// Report は 1 回の分析実行の結果です。
type Report struct {
	RunID                 string
	GeneratedAt           time.Time
	EmployeeCount         int
	SalaryFindings        []analyzer.SalaryFinding
	ReportingLineFindings []analyzer.ReportingLineFinding
	// ReportingLineErr はレポートライン分析が完了できなかった理由です (循環など)。
	// 給与分析の結果はこの値に関係なく有効です。
	ReportingLineErr error
}

// SalaryLines は給与分析の結果をレポート行として返します。
func (r *Report) SalaryLines() []string {
	return analyzer.Lines(r.SalaryFindings)
}

// ReportingLineLines はレポートライン分析の結果をレポート行として返します。
func (r *Report) ReportingLineLines() []string {
	return analyzer.Lines(r.ReportingLineFindings)
}

// Service は社員レコードを読み込み、2 種類の分析を実行します。
type Service struct {
	repo  employee.Repository
	clock Clock
	tx    TransactionManager
	newID func() string
}

// NewService は Service を生成します。
func NewService(repo employee.Repository, clock Clock, tx TransactionManager) *Service {
	if clock == nil {
		clock = realClock{}
	}
	if tx == nil {
		tx = noopTransactionManager{}
	}
	return &Service{repo: repo, clock: clock, tx: tx, newID: uuid.NewString}
}

// GenerateReport はスナップショットを読み込んで分析し、Report を返します。
func (s *Service) GenerateReport(ctx context.Context) (*Report, error) {
	var records []*employee.Employee
	if err := s.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		found, err := s.repo.List(txCtx)
		if err != nil {
			return err
		}
		records = found
		return nil
	}); err != nil {
		return nil, fmt.Errorf("orgreport: load employees: %w", err)
	}

	dir := employee.NewDirectory(records)
	a := analyzer.New(dir)

	report := &Report{
		RunID:          s.newID(),
		GeneratedAt:    s.clock.Now(),
		EmployeeCount:  dir.Len(),
		SalaryFindings: a.AnalyzeSalaries(),
	}

	reportingLines, err := a.AnalyzeReportingLines()
	if err != nil {
		report.ReportingLineErr = fmt.Errorf("orgreport: analyze reporting lines: %w", err)
		return report, nil
	}
	report.ReportingLineFindings = reportingLines
	return report, nil
}
