package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/m04kA/SMC-OfficeBooking/internal/domain"
)

// Переменные окружения с настройками подключения к API данных
const (
	EnvDataAPIURL = "DATA_API_URL"
	EnvDataAPIKey = "DATA_API_KEY"
)

// envFiles файлы окружения, читаемые до разбора конфигурации (отсутствующие пропускаются)
var envFiles = []string{".env.local", ".env"}

// Config конфигурация приложения
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	DataAPI  DataAPIConfig  `toml:"data_api"`
	Database DatabaseConfig `toml:"database"`
	Reports  ReportsConfig  `toml:"reports"`
}

// ServerConfig настройки HTTP-сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// LogsConfig настройки логирования
type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// MetricsConfig настройки Prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// DataAPIConfig настройки размещённого API данных
type DataAPIConfig struct {
	URL     string `toml:"url"`
	Key     string `toml:"key"`
	Schema  string `toml:"schema"`
	Timeout int    `toml:"timeout"`
}

// Configured сообщает, заданы ли адрес и ключ
func (c DataAPIConfig) Configured() bool {
	return strings.TrimSpace(c.URL) != "" && strings.TrimSpace(c.Key) != ""
}

// DatabaseConfig настройки прямого подключения к PostgreSQL
type DatabaseConfig struct {
	Enabled         bool   `toml:"enabled"`
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	Schema          string `toml:"schema"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN возвращает строку подключения lib/pq
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// ReportsConfig настройки отчётов
type ReportsConfig struct {
	HistoryLimit   int  `toml:"history_limit"`
	RefreshOnStart bool `toml:"refresh_on_start"`
}

// GatewayKind источник данных, выбранный конфигурацией
type GatewayKind string

const (
	GatewayPostgres GatewayKind = "postgres"
	GatewayDataAPI  GatewayKind = "data_api"
	GatewaySample   GatewayKind = "sample"
)

// Gateway выбирает источник данных: PostgreSQL, затем API данных, иначе демонстрационные данные
func (c *Config) Gateway() GatewayKind {
	switch {
	case c.Database.Enabled:
		return GatewayPostgres
	case c.DataAPI.Configured():
		return GatewayDataAPI
	default:
		return GatewaySample
	}
}

// Load загружает конфигурацию из TOML-файла и применяет переменные окружения.
// Отсутствующий файл не является ошибкой: используются значения по умолчанию.
func Load(path string) (*Config, error) {
	cfg := Default()

	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("config: decode %s: %w", path, err)
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("config: stat %s: %w", path, err)
	}

	if err := loadEnvFiles(envFiles...); err != nil {
		return nil, err
	}
	cfg.applyEnv()
	cfg.applyDefaults()

	return cfg, nil
}

// Default возвращает конфигурацию со значениями по умолчанию
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "office_booking",
		},
		DataAPI: DataAPIConfig{
			Schema:  "boksite",
			Timeout: 10,
		},
		Database: DatabaseConfig{
			Port:            5432,
			SSLMode:         "disable",
			Schema:          "boksite",
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Reports: ReportsConfig{
			HistoryLimit:   domain.DefaultHistoryLimit,
			RefreshOnStart: true,
		},
	}
}

// loadEnvFiles загружает существующие файлы окружения, не перезаписывая уже заданные переменные
func loadEnvFiles(files ...string) error {
	for _, file := range files {
		if _, err := os.Stat(file); err != nil {
			continue
		}
		if err := godotenv.Load(file); err != nil {
			return fmt.Errorf("config: load %s: %w", file, err)
		}
	}
	return nil
}

// applyEnv переопределяет настройки API данных значениями окружения
func (c *Config) applyEnv() {
	if v := strings.TrimSpace(os.Getenv(EnvDataAPIURL)); v != "" {
		c.DataAPI.URL = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvDataAPIKey)); v != "" {
		c.DataAPI.Key = v
	}
}

// applyDefaults восстанавливает значения, обнулённые в файле
func (c *Config) applyDefaults() {
	def := Default()
	if c.Server.HTTPPort <= 0 {
		c.Server.HTTPPort = def.Server.HTTPPort
	}
	if c.DataAPI.Schema == "" {
		c.DataAPI.Schema = def.DataAPI.Schema
	}
	if c.DataAPI.Timeout <= 0 {
		c.DataAPI.Timeout = def.DataAPI.Timeout
	}
	if c.Database.Schema == "" {
		c.Database.Schema = def.Database.Schema
	}
	if c.Reports.HistoryLimit <= 0 {
		c.Reports.HistoryLimit = def.Reports.HistoryLimit
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = def.Metrics.Path
	}
	c.DataAPI.URL = strings.TrimRight(c.DataAPI.URL, "/")
}
