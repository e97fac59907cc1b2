package source

import (
	"context"
	"fmt"

	"github.com/ogurasousui/codex-org-analyzer/internal/adapters/repository/csvfile"
	"github.com/ogurasousui/codex-org-analyzer/internal/adapters/repository/postgres"
	"github.com/ogurasousui/codex-org-analyzer/internal/core/employee"
	"github.com/ogurasousui/codex-org-analyzer/internal/core/orgreport"
	"github.com/ogurasousui/codex-org-analyzer/internal/platform/config"
	pg "github.com/ogurasousui/codex-org-analyzer/internal/platform/db/postgres"
)

// Source は設定に応じて選択された社員レコードの読み込み元です。
type Source struct {
	Repository employee.Repository
	Tx         orgreport.TransactionManager
	close      func()
}

// Close は読み込み元が保持するリソースを解放します。
func (s *Source) Close() {
	if s.close != nil {
		s.close()
	}
}

// Open は cfg.Source.Kind に従って読み込み元を構築します。
func Open(ctx context.Context, cfg *config.Config) (*Source, error) {
	switch cfg.Source.Kind {
	case config.SourceCSV:
		return &Source{Repository: csvfile.NewEmployeeRepository(cfg.Source.CSVPath)}, nil
	case config.SourcePostgres:
		if cfg.Database == nil {
			return nil, fmt.Errorf("source: database config is required for %q", cfg.Source.Kind)
		}
		pool, err := pg.NewPool(ctx, *cfg.Database)
		if err != nil {
			return nil, err
		}
		return &Source{
			Repository: postgres.NewEmployeeRepository(pool),
			Tx:         pg.NewTransactionManager(pool),
			close:      pool.Close,
		}, nil
	default:
		return nil, fmt.Errorf("source: unsupported kind %q", cfg.Source.Kind)
	}
}
