package config

import (
	"errors"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config описывает основные параметры MCP-сервера.
type Config struct {
	Server struct {
		Name     string `yaml:"name"`
		Version  string `yaml:"version"`
		LogLevel string `yaml:"log_level"`
	} `yaml:"server"`
	Exec struct {
		TimeoutSeconds int `yaml:"timeout_seconds"`
		MaxOutputKB    int `yaml:"max_output_kb"`
	} `yaml:"exec"`
	Files struct {
		MaxReadLines     int `yaml:"max_read_lines"`
		MaxFileSizeMB    int `yaml:"max_file_size_mb"`
		MaxSearchResults int `yaml:"max_search_results"`
	} `yaml:"files"`
	Security struct {
		DisabledTools   []string `yaml:"disabled_tools"`
		RateLimitPerSec int      `yaml:"rate_limit_per_sec"`
	} `yaml:"security"`
	SQLite struct {
		Path          string `yaml:"path"`
		RetentionDays int    `yaml:"retention_days"`
	} `yaml:"sqlite"`
	Metrics struct {
		Enabled         bool `yaml:"enabled"`
		IntervalSeconds int  `yaml:"interval_seconds"`
	} `yaml:"metrics"`
	Web struct {
		Enabled          bool   `yaml:"enabled"`
		ListenAddr       string `yaml:"listen_addr"`
		ShutdownTimeoutS int    `yaml:"shutdown_timeout_s"`
	} `yaml:"web"`
}

// Default возвращает конфигурацию по умолчанию.
func Default() Config {
	var cfg Config
	cfg.Server.Name = "devmcp"
	cfg.Server.Version = "1.0.0"
	cfg.Server.LogLevel = "info"
	cfg.Exec.TimeoutSeconds = 30
	cfg.Exec.MaxOutputKB = 1024
	cfg.Files.MaxReadLines = 100
	cfg.Files.MaxFileSizeMB = 10
	cfg.Files.MaxSearchResults = 50
	cfg.Security.RateLimitPerSec = 0
	cfg.SQLite.Path = ""
	cfg.SQLite.RetentionDays = 30
	cfg.Metrics.Enabled = false
	cfg.Metrics.IntervalSeconds = 60
	cfg.Web.Enabled = false
	cfg.Web.ListenAddr = "127.0.0.1:8321"
	cfg.Web.ShutdownTimeoutS = 5
	return cfg
}

// Load читает конфиг из файла YAML поверх значений по умолчанию,
// затем применяет переопределения из окружения (включая .env рядом с процессом).
func Load(path string) (Config, error) {
	cfg := Default()

	// .env поддерживается ради совместимости с env-ориентированными клиентами;
	// отсутствие файла не является ошибкой.
	_ = godotenv.Load()

	if path != "" {
		data, err := os.ReadFile(path) // #nosec G304 -- путь к конфигу задается доверенным оператором.
		if err != nil {
			return cfg, err
		}
		if len(data) == 0 {
			return cfg, errors.New("config file is empty")
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, err
		}
	}

	applyEnv(&cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("MCP_SERVER_NAME"); v != "" {
		cfg.Server.Name = v
	}
	if v := os.Getenv("MCP_SERVER_VERSION"); v != "" {
		cfg.Server.Version = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Server.LogLevel = strings.ToLower(v)
	}
	if n, ok := envInt("COMMAND_TIMEOUT_SECONDS"); ok && n > 0 {
		cfg.Exec.TimeoutSeconds = n
	}
	if n, ok := envInt("MAX_FILE_SIZE_MB"); ok && n > 0 {
		cfg.Files.MaxFileSizeMB = n
	}
	if n, ok := envInt("MAX_SEARCH_RESULTS"); ok && n > 0 {
		cfg.Files.MaxSearchResults = n
	}
	if v := os.Getenv("ENABLE_METRICS"); v != "" {
		cfg.Metrics.Enabled = strings.EqualFold(v, "true")
	}
}

func envInt(key string) (int, bool) {
	v := os.Getenv(key)
	if v == "" {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, false
	}
	return n, true
}
