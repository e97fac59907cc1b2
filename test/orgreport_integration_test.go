//go:build integration

package integration

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	repo "github.com/ogurasousui/codex-org-analyzer/internal/adapters/repository/postgres"
	"github.com/ogurasousui/codex-org-analyzer/internal/core/orgreport"
	"github.com/ogurasousui/codex-org-analyzer/internal/platform/config"
	pg "github.com/ogurasousui/codex-org-analyzer/internal/platform/db/postgres"
)

const (
	migrationsDir = "../assets/migrations"
	seedFile      = "../assets/seeds/employees.sql"
)

func TestOrgReportPostgresIntegration(t *testing.T) {
	cfg, err := config.Load(configPathFromEnv())
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if cfg.Database == nil {
		t.Skip("database section is not configured")
	}

	if err := resetMigrations(cfg.Database.DSN(), migrationsDir); err != nil {
		t.Fatalf("failed to migrate database: %v", err)
	}

	ctx := context.Background()
	pool, err := pg.NewPool(ctx, *cfg.Database)
	if err != nil {
		t.Fatalf("failed to create pool: %v", err)
	}
	t.Cleanup(pool.Close)

	seed, err := os.ReadFile(seedFile)
	if err != nil {
		t.Fatalf("failed to read seeds: %v", err)
	}
	if _, err := pool.Exec(ctx, string(seed)); err != nil {
		t.Fatalf("failed to apply seeds: %v", err)
	}

	svc := orgreport.NewService(repo.NewEmployeeRepository(pool), nil, pg.NewTransactionManager(pool))
	report, err := svc.GenerateReport(ctx)
	if err != nil {
		t.Fatalf("GenerateReport error: %v", err)
	}

	if report.EmployeeCount != 5 {
		t.Fatalf("expected 5 employees, got %d", report.EmployeeCount)
	}
	lines := report.SalaryLines()
	if len(lines) != 1 || !strings.Contains(lines[0], "Martin Chekov (ID: 124) earns less than required") {
		t.Fatalf("unexpected salary findings: %v", lines)
	}
	if len(report.ReportingLineLines()) != 0 {
		t.Fatalf("unexpected reporting line findings: %v", report.ReportingLineLines())
	}
}

func resetMigrations(dsn, dir string) error {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return err
	}

	m, err := migrate.New("file://"+filepath.ToSlash(absDir), dsn)
	if err != nil {
		return err
	}
	defer m.Close()

	if err := m.Down(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}

func configPathFromEnv() string {
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		return v
	}
	return "../assets/local.yaml"
}
