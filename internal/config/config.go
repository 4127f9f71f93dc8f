package config

import "time"

// Default configuration values.
const (
	defaultServiceName     = "job-normalizer"
	defaultServiceVersion  = "1.0.0"
	defaultServicePort     = 8082
	defaultConcurrency     = 10
	defaultMaxBatchSize    = 500
	defaultDBHost          = "localhost"
	defaultDBPort          = 5432
	defaultDBUser          = "postgres"
	defaultDBName          = "jobfeed"
	defaultDBSSLMode       = "disable"
	defaultDBMaxConns      = 25
	defaultDBMaxIdleConns  = 5
	defaultScannerURL      = "http://ner-sidecar:8090"
	defaultScannerTimeout  = 10 * time.Second
	defaultScannerMaxChars = 1000000
	defaultScannerMaxRPS   = 20
	defaultLogLevel        = "info"
	defaultLogFormat       = "json"
	defaultSkillsDelimiter = ","
)

// Config holds all configuration for the job-normalizer service.
type Config struct {
	Service    ServiceConfig    `yaml:"service"`
	Database   DatabaseConfig   `yaml:"database"`
	Vocabulary VocabularyConfig `yaml:"vocabulary"`
	Scanner    ScannerConfig    `yaml:"scanner"`
	Output     OutputConfig     `yaml:"output"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// ServiceConfig holds service-level configuration.
type ServiceConfig struct {
	Name         string `yaml:"name"`
	Version      string `yaml:"version"`
	Port         int    `env:"NORMALIZER_PORT"        yaml:"port"`
	Debug        bool   `env:"APP_DEBUG"              yaml:"debug"`
	Concurrency  int    `env:"NORMALIZER_CONCURRENCY" yaml:"concurrency"`
	MaxBatchSize int    `yaml:"max_batch_size"`
}

// DatabaseConfig holds PostgreSQL configuration for the vocabulary store.
type DatabaseConfig struct {
	Host            string        `env:"POSTGRES_HOST"     yaml:"host"`
	Port            int           `env:"POSTGRES_PORT"     yaml:"port"`
	User            string        `env:"POSTGRES_USER"     yaml:"user"`
	Password        string        `env:"POSTGRES_PASSWORD" yaml:"password"`
	Database        string        `env:"POSTGRES_DB"       yaml:"database"`
	SSLMode         string        `env:"POSTGRES_SSLMODE"  yaml:"sslmode"`
	MaxConnections  int           `yaml:"max_connections"`
	MaxIdleConns    int           `yaml:"max_idle_connections"`
	ConnMaxLifetime time.Duration `yaml:"connection_max_lifetime"`
}

// VocabularyConfig selects where the skill vocabulary is loaded from.
// Source is "builtin" or "database"; database loads fall back to the builtin
// set on failure.
type VocabularyConfig struct {
	Source string `env:"VOCABULARY_SOURCE" yaml:"source"`
}

// ScannerConfig holds entity scanner (NER sidecar) configuration.
// The scanner is optional: when disabled or unreachable at startup the skill
// extractor runs regex-only.
type ScannerConfig struct {
	Enabled  bool          `env:"SCANNER_ENABLED" yaml:"enabled"`
	URL      string        `env:"SCANNER_URL"     yaml:"url"`
	Timeout  time.Duration `yaml:"timeout"`
	MaxChars int           `yaml:"max_chars"`
	MaxRPS   int           `yaml:"max_rps"`
}

// OutputConfig holds output encoding settings.
type OutputConfig struct {
	Path            string `env:"OUTPUT_PATH" yaml:"path"`
	SkillsDelimiter string `yaml:"skills_delimiter"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `env:"LOG_LEVEL"  yaml:"level"`
	Format string `env:"LOG_FORMAT" yaml:"format"`
}

// Vocabulary source values.
const (
	VocabularySourceBuiltin  = "builtin"
	VocabularySourceDatabase = "database"
)

// setDefaults applies default values to the config.
func (c *Config) setDefaults() {
	setServiceDefaults(&c.Service)
	setDatabaseDefaults(&c.Database)
	setVocabularyDefaults(&c.Vocabulary)
	setScannerDefaults(&c.Scanner)
	setOutputDefaults(&c.Output)
	setLoggingDefaults(&c.Logging)
}

func setServiceDefaults(s *ServiceConfig) {
	if s.Name == "" {
		s.Name = defaultServiceName
	}
	if s.Version == "" {
		s.Version = defaultServiceVersion
	}
	if s.Port == 0 {
		s.Port = defaultServicePort
	}
	if s.Concurrency == 0 {
		s.Concurrency = defaultConcurrency
	}
	if s.MaxBatchSize == 0 {
		s.MaxBatchSize = defaultMaxBatchSize
	}
}

func setDatabaseDefaults(d *DatabaseConfig) {
	if d.Host == "" {
		d.Host = defaultDBHost
	}
	if d.Port == 0 {
		d.Port = defaultDBPort
	}
	if d.User == "" {
		d.User = defaultDBUser
	}
	if d.Database == "" {
		d.Database = defaultDBName
	}
	if d.SSLMode == "" {
		d.SSLMode = defaultDBSSLMode
	}
	if d.MaxConnections == 0 {
		d.MaxConnections = defaultDBMaxConns
	}
	if d.MaxIdleConns == 0 {
		d.MaxIdleConns = defaultDBMaxIdleConns
	}
	if d.ConnMaxLifetime == 0 {
		d.ConnMaxLifetime = time.Hour
	}
}

func setVocabularyDefaults(v *VocabularyConfig) {
	if v.Source == "" {
		v.Source = VocabularySourceBuiltin
	}
}

func setScannerDefaults(s *ScannerConfig) {
	if s.URL == "" {
		s.URL = defaultScannerURL
	}
	if s.Timeout == 0 {
		s.Timeout = defaultScannerTimeout
	}
	if s.MaxChars == 0 {
		s.MaxChars = defaultScannerMaxChars
	}
	if s.MaxRPS == 0 {
		s.MaxRPS = defaultScannerMaxRPS
	}
}

func setOutputDefaults(o *OutputConfig) {
	if o.SkillsDelimiter == "" {
		o.SkillsDelimiter = defaultSkillsDelimiter
	}
}

func setLoggingDefaults(l *LoggingConfig) {
	if l.Level == "" {
		l.Level = defaultLogLevel
	}
	if l.Format == "" {
		l.Format = defaultLogFormat
	}
}
