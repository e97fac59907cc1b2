package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/ogurasousui/codex-org-analyzer/internal/adapters/report"
	"github.com/ogurasousui/codex-org-analyzer/internal/core/orgreport"
	"github.com/ogurasousui/codex-org-analyzer/internal/platform/config"
	"github.com/ogurasousui/codex-org-analyzer/internal/platform/logging"
	"github.com/ogurasousui/codex-org-analyzer/internal/platform/source"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
)

type options struct {
	configPath string
	csvPath    string
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "orgreport: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	opts, err := parseFlags(args)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.Log, stderr)
	if err != nil {
		return err
	}
	log := logger.WithField("source", string(cfg.Source.Kind))

	src, err := source.Open(ctx, cfg)
	if err != nil {
		return fmt.Errorf("open source: %w", err)
	}
	defer src.Close()

	svc := orgreport.NewService(src.Repository, nil, src.Tx)
	r, err := svc.GenerateReport(ctx)
	if err != nil {
		return fmt.Errorf("generate report: %w", err)
	}

	log.WithFields(logrus.Fields{
		"run_id":    r.RunID,
		"employees": r.EmployeeCount,
	}).Debug("org report generated")

	if err := report.WriteText(stdout, r); err != nil {
		return err
	}
	if r.ReportingLineErr != nil {
		return r.ReportingLineErr
	}
	return nil
}

func parseFlags(args []string) (options, error) {
	var opts options

	fs := pflag.NewFlagSet("orgreport", pflag.ContinueOnError)
	fs.StringVarP(&opts.configPath, "config", "c", "", "path to config file (defaults to CONFIG_PATH env or assets/local.yaml)")
	fs.StringVar(&opts.csvPath, "csv", "", "read employees from this CSV file instead of the configured source")

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if opts.csvPath == "" && fs.NArg() > 0 {
		opts.csvPath = fs.Arg(0)
	}
	return opts, nil
}

// loadConfig は CSV パスのみ指定された場合、設定ファイルなしで実行できるようにします。
func loadConfig(opts options) (*config.Config, error) {
	path := config.ResolvePath(opts.configPath)

	cfg, err := config.Load(path)
	if err != nil {
		if opts.csvPath == "" || opts.configPath != "" {
			return nil, err
		}
		cfg = &config.Config{
			Log: config.LogConfig{Level: "info", Format: "text"},
		}
	}

	if opts.csvPath != "" {
		cfg.Source = config.SourceConfig{Kind: config.SourceCSV, CSVPath: opts.csvPath}
	}
	return cfg, nil
}
