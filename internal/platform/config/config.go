package config

import (
	"fmt"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultPath は設定ファイルのパスが指定されなかった場合に利用されます。
const DefaultPath = "assets/local.yaml"

// SourceKind は社員レコードの読み込み元の種別です。
type SourceKind string

const (
	SourceCSV      SourceKind = "csv"
	SourcePostgres SourceKind = "postgres"
)

// Config はアプリケーション全体の設定を表現します。
type Config struct {
	Source   SourceConfig    `yaml:"source"`
	Server   ServerConfig    `yaml:"server"`
	Database *DatabaseConfig `yaml:"database"`
	Log      LogConfig       `yaml:"log"`
}

// SourceConfig は社員レコードの読み込み元に関する設定です。
type SourceConfig struct {
	Kind    SourceKind `yaml:"kind"`
	CSVPath string     `yaml:"csv_path"`
}

// ServerConfig は gRPC サーバーに関する設定です。
type ServerConfig struct {
	ListenAddr string `yaml:"listen_addr"`
}

// LogConfig はログ出力に関する設定です。
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// DatabaseConfig は PostgreSQL 接続に関する設定です。
type DatabaseConfig struct {
	Host               string        `yaml:"host"`
	Port               int           `yaml:"port"`
	User               string        `yaml:"user"`
	Password           string        `yaml:"password"`
	Name               string        `yaml:"name"`
	SSLMode            string        `yaml:"ssl_mode"`
	MaxOpenConns       int           `yaml:"max_open_conns"`
	MaxIdleConns       int           `yaml:"max_idle_conns"`
	ConnMaxLifetime    time.Duration `yaml:"-"`
	ConnMaxIdleTime    time.Duration `yaml:"-"`
	ConnMaxLifetimeRaw string        `yaml:"conn_max_lifetime"`
	ConnMaxIdleTimeRaw string        `yaml:"conn_max_idle_time"`
}

// ResolvePath はフラグ値、CONFIG_PATH 環境変数、DefaultPath の順に設定ファイルのパスを決定します。
func ResolvePath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if env := os.Getenv("CONFIG_PATH"); env != "" {
		return env
	}
	return DefaultPath
}

// Load は指定されたパスから設定ファイルを読み込みます。
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read file %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return nil, fmt.Errorf("config: parse yaml: %w", err)
	}

	if err := cfg.validateAndNormalize(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validateAndNormalize() error {
	if err := c.Source.validateAndNormalize(); err != nil {
		return err
	}

	if c.Server.ListenAddr == "" {
		c.Server.ListenAddr = ":50051"
	}

	if err := c.Log.validateAndNormalize(); err != nil {
		return err
	}

	if c.Source.Kind == SourcePostgres && c.Database == nil {
		return fmt.Errorf("config: database must be set when source.kind is %q", SourcePostgres)
	}

	if c.Database != nil {
		if err := c.Database.validateAndNormalize(); err != nil {
			return err
		}
	}

	return nil
}

func (s *SourceConfig) validateAndNormalize() error {
	s.Kind = SourceKind(strings.ToLower(strings.TrimSpace(string(s.Kind))))
	if s.Kind == "" {
		s.Kind = SourceCSV
	}

	switch s.Kind {
	case SourceCSV:
		if s.CSVPath == "" {
			s.CSVPath = "employees.csv"
		}
	case SourcePostgres:
	default:
		return fmt.Errorf("config: source.kind %q is not supported", s.Kind)
	}
	return nil
}

func (l *LogConfig) validateAndNormalize() error {
	l.Level = strings.ToLower(strings.TrimSpace(l.Level))
	if l.Level == "" {
		l.Level = "info"
	}

	l.Format = strings.ToLower(strings.TrimSpace(l.Format))
	switch l.Format {
	case "":
		l.Format = "text"
	case "text", "json":
	default:
		return fmt.Errorf("config: log.format %q is not supported", l.Format)
	}
	return nil
}

func (d *DatabaseConfig) validateAndNormalize() error {
	if d.Host == "" {
		return fmt.Errorf("config: database.host must be set")
	}
	if d.Port == 0 {
		return fmt.Errorf("config: database.port must be set")
	}
	if d.User == "" {
		return fmt.Errorf("config: database.user must be set")
	}
	if d.Password == "" {
		return fmt.Errorf("config: database.password must be set")
	}
	if d.Name == "" {
		return fmt.Errorf("config: database.name must be set")
	}
	if d.SSLMode == "" {
		d.SSLMode = "disable"
	}

	lifetime, err := parseDurationAllowEmpty(d.ConnMaxLifetimeRaw)
	if err != nil {
		return fmt.Errorf("config: database.conn_max_lifetime: %w", err)
	}
	d.ConnMaxLifetime = lifetime

	idleTime, err := parseDurationAllowEmpty(d.ConnMaxIdleTimeRaw)
	if err != nil {
		return fmt.Errorf("config: database.conn_max_idle_time: %w", err)
	}
	d.ConnMaxIdleTime = idleTime

	return nil
}

func parseDurationAllowEmpty(raw string) (time.Duration, error) {
	if raw == "" {
		return 0, nil
	}
	return time.ParseDuration(raw)
}

// DSN は pgx 用の接続文字列を返します。ユーザー名とパスワードはエスケープされます。
func (d DatabaseConfig) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(d.User, d.Password),
		Host:     net.JoinHostPort(d.Host, strconv.Itoa(d.Port)),
		Path:     "/" + d.Name,
		RawQuery: "sslmode=" + url.QueryEscape(d.SSLMode),
	}
	return u.String()
}
