// Package config loads the application configuration from environment
// variables and an optional YAML file. Environment variables win; the file
// fills whatever they leave empty, and built-in defaults cover the rest.
package config

import (
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config is the complete application configuration.
type Config struct {
	Logging  LoggingConfig  `yaml:"logging" envconfig:"LOGGING"`
	Drive    DriveConfig    `yaml:"drive" envconfig:"DRIVE"`
	Mail     MailConfig     `yaml:"mail" envconfig:"MAIL"`
	Operador OperadorConfig `yaml:"operador" envconfig:"OPERADOR"`
	Locale   LocaleConfig   `yaml:"locale" envconfig:"LOCALE"`
	Output   OutputConfig   `yaml:"output" envconfig:"OUTPUT"`
}

// LoggingConfig controls the slog setup.
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL"`
	Format   string `yaml:"format" envconfig:"FORMAT"`
	Output   string `yaml:"output" envconfig:"OUTPUT"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH"`
}

// DriveConfig configures the Google Drive uploader. With Enabled false the
// generated documents stay local.
type DriveConfig struct {
	Enabled         bool   `yaml:"enabled" envconfig:"ENABLED"`
	CredentialsFile string `yaml:"credentials_file" envconfig:"CREDENTIALS_FILE"`
	FolderID        string `yaml:"folder_id" envconfig:"FOLDER_ID"`
}

// MailConfig configures the Resend notifier.
type MailConfig struct {
	Enabled bool   `yaml:"enabled" envconfig:"ENABLED"`
	APIKey  string `yaml:"api_key" envconfig:"API_KEY"`
	From    string `yaml:"from" envconfig:"FROM"`
}

// OperadorConfig is the default signing operator, used when a request carries
// no operator and the directory has no record.
type OperadorConfig struct {
	Nombre             string `yaml:"nombre" envconfig:"NOMBRE"`
	Identificacion     string `yaml:"identificacion" envconfig:"IDENTIFICACION"`
	TarjetaProfesional string `yaml:"tarjeta_profesional" envconfig:"TARJETA_PROFESIONAL"`
	FirmaFile          string `yaml:"firma_file" envconfig:"FIRMA_FILE"`
}

// LocaleConfig carries the place defaults written into documents.
type LocaleConfig struct {
	Ciudad string `yaml:"ciudad" envconfig:"CIUDAD"`
}

// OutputConfig controls where the CLI writes documents.
type OutputConfig struct {
	Dir string `yaml:"dir" envconfig:"DIR"`
}

// Load builds the configuration: environment first, then the YAML file at
// path (skipped when it does not exist), then defaults, then validation.
// An empty path means "config.yaml" next to the working directory.
func Load(path string) (*Config, error) {
	var cfg Config
	if err := envconfig.Process("AUTOACTAS", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	if path == "" {
		path = "config.yaml"
	}
	if _, err := os.Stat(path); err == nil {
		fileCfg, err := loadFromFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load config from file: %w", err)
		}
		cfg = mergeConfigs(*fileCfg, cfg)
	}

	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

func loadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// mergeConfigs fills the env config's empty fields from the file config; a
// value set in the environment always wins.
func mergeConfigs(fileCfg, envCfg Config) Config {
	if envCfg.Logging.Level == "" {
		envCfg.Logging.Level = fileCfg.Logging.Level
	}
	if envCfg.Logging.Format == "" {
		envCfg.Logging.Format = fileCfg.Logging.Format
	}
	if envCfg.Logging.Output == "" {
		envCfg.Logging.Output = fileCfg.Logging.Output
	}
	if envCfg.Logging.FilePath == "" {
		envCfg.Logging.FilePath = fileCfg.Logging.FilePath
	}

	if !envCfg.Drive.Enabled {
		envCfg.Drive.Enabled = fileCfg.Drive.Enabled
	}
	if envCfg.Drive.CredentialsFile == "" {
		envCfg.Drive.CredentialsFile = fileCfg.Drive.CredentialsFile
	}
	if envCfg.Drive.FolderID == "" {
		envCfg.Drive.FolderID = fileCfg.Drive.FolderID
	}

	if !envCfg.Mail.Enabled {
		envCfg.Mail.Enabled = fileCfg.Mail.Enabled
	}
	if envCfg.Mail.APIKey == "" {
		envCfg.Mail.APIKey = fileCfg.Mail.APIKey
	}
	if envCfg.Mail.From == "" {
		envCfg.Mail.From = fileCfg.Mail.From
	}

	if envCfg.Operador.Nombre == "" {
		envCfg.Operador.Nombre = fileCfg.Operador.Nombre
	}
	if envCfg.Operador.Identificacion == "" {
		envCfg.Operador.Identificacion = fileCfg.Operador.Identificacion
	}
	if envCfg.Operador.TarjetaProfesional == "" {
		envCfg.Operador.TarjetaProfesional = fileCfg.Operador.TarjetaProfesional
	}
	if envCfg.Operador.FirmaFile == "" {
		envCfg.Operador.FirmaFile = fileCfg.Operador.FirmaFile
	}

	if envCfg.Locale.Ciudad == "" {
		envCfg.Locale.Ciudad = fileCfg.Locale.Ciudad
	}
	if envCfg.Output.Dir == "" {
		envCfg.Output.Dir = fileCfg.Output.Dir
	}
	return envCfg
}

func (c *Config) applyDefaults() {
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "json"
	}
	if c.Logging.Output == "" {
		c.Logging.Output = "console"
	}
	if c.Logging.FilePath == "" {
		c.Logging.FilePath = "logs/autoactas.log"
	}
	if c.Mail.From == "" {
		c.Mail.From = "actas@insolvencia.local"
	}
	if c.Operador.Nombre == "" {
		c.Operador.Nombre = "JUAN CAMILO ROMERO BURGOS"
	}
	if c.Locale.Ciudad == "" {
		c.Locale.Ciudad = "Cali"
	}
	if c.Output.Dir == "" {
		c.Output.Dir = "actas"
	}
}

func (c *Config) validate() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid logging level: %s", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "json", "text":
	default:
		return fmt.Errorf("invalid logging format: %s", c.Logging.Format)
	}
	switch c.Logging.Output {
	case "console", "file", "both":
	default:
		return fmt.Errorf("invalid logging output: %s", c.Logging.Output)
	}
	if c.Drive.Enabled && c.Drive.CredentialsFile == "" {
		return fmt.Errorf("drive enabled but credentials_file is empty")
	}
	if c.Mail.Enabled && c.Mail.APIKey == "" {
		return fmt.Errorf("mail enabled but api_key is empty")
	}
	return nil
}
