package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/ogurasousui/codex-org-analyzer/internal/platform/config"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
)

func main() {
	var (
		configPath    = pflag.StringP("config", "c", "", "path to config file (defaults to CONFIG_PATH env or assets/local.yaml)")
		migrationsDir = pflag.String("dir", "assets/migrations", "directory containing migration files")
	)
	pflag.Parse()

	action := "up"
	if pflag.NArg() > 0 {
		action = pflag.Arg(0)
	}

	cfg, err := config.Load(config.ResolvePath(*configPath))
	if err != nil {
		logrus.Fatalf("failed to load config: %v", err)
	}
	if cfg.Database == nil {
		logrus.Fatal("database section is required for migrations")
	}

	log := logrus.WithField("action", action)
	if err := runMigration(log, action, *migrationsDir, cfg.Database.DSN()); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	log.Info("migration completed")
}

func migrationSourceURL(dir string) (string, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolve path for %s: %w", dir, err)
	}
	if _, err := os.Stat(absDir); err != nil {
		return "", fmt.Errorf("migrations directory: %w", err)
	}
	return "file://" + filepath.ToSlash(absDir), nil
}

func runMigration(log *logrus.Entry, action, dir, dsn string) error {
	sourceURL, err := migrationSourceURL(dir)
	if err != nil {
		return err
	}

	m, err := migrate.New(sourceURL, dsn)
	if err != nil {
		return fmt.Errorf("create migrate instance: %w", err)
	}
	defer m.Close()

	switch action {
	case "up":
		if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return err
		}
		return nil
	case "down":
		if err := m.Down(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return err
		}
		return nil
	case "drop":
		return m.Drop()
	case "version":
		version, dirty, err := m.Version()
		if err != nil {
			if errors.Is(err, migrate.ErrNilVersion) {
				log.Info("no migration applied")
				return nil
			}
			return err
		}
		log.WithFields(logrus.Fields{"version": version, "dirty": dirty}).Info("current migration version")
		return nil
	default:
		return fmt.Errorf("unsupported action %q", action)
	}
}
