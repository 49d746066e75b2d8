package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config конфигурация сервиса, загружается из config.toml
type Config struct {
	Server    ServerConfig    `toml:"server"`
	Logs      LogsConfig      `toml:"logs"`
	Metrics   MetricsConfig   `toml:"metrics"`
	Database  DatabaseConfig  `toml:"database"`
	RateLimit RateLimitConfig `toml:"ratelimit"`
	Booking   BookingConfig   `toml:"booking"`
	Pricing   PricingConfig   `toml:"pricing"`

	// Hours рабочие часы мастерской по дням недели (ключи: monday..sunday)
	Hours map[string]DayHours `toml:"hours"`

	// Holidays таблица праздничных дней
	Holidays []Holiday `toml:"holidays"`

	// Catalog справочник типов ремонта
	Catalog []RepairType `toml:"catalog"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
	Path        string `toml:"path"`
}

// DatabaseConfig настройки подключения к БД бронирований (только чтение)
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN возвращает строку подключения к PostgreSQL
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// RateLimitConfig настройки rate limiter'а для публичных ручек
type RateLimitConfig struct {
	AvailabilityPerMinute int `toml:"availability_per_minute"`
	SearchPerMinute       int `toml:"search_per_minute"`
	WindowSeconds         int `toml:"window_seconds"`
}

// BookingConfig бизнес-правила бронирования
type BookingConfig struct {
	MinimumNoticeHours        int            `toml:"minimum_notice_hours"`
	AdvanceBookingDays        int            `toml:"advance_booking_days"`
	DefaultReservationMinutes int            `toml:"default_reservation_minutes"`
	DailyCaps                 map[string]int `toml:"daily_caps"` // потолок бронирований в день по типу ремонта
}

// PricingConfig таблица правил ценообразования
type PricingConfig struct {
	PriorityPercent  float64 `toml:"priority_percent"`
	EmergencyPercent float64 `toml:"emergency_percent"`
	HolidayPercent   float64 `toml:"holiday_percent"`
	CollectionFee    float64 `toml:"collection_fee"`
	PostalFee        float64 `toml:"postal_fee"`

	Calendar []CalendarRule `toml:"calendar"`
}

// CalendarRule календарное правило наценки, срабатывает по дню недели
// и (опционально) интервалу времени суток
type CalendarRule struct {
	Name    string   `toml:"name"`
	Days    []string `toml:"days"` // monday..sunday
	From    string   `toml:"from"` // HH:MM, пусто = весь день
	To      string   `toml:"to"`   // HH:MM, не включительно
	Percent float64  `toml:"percent"`
	Reason  string   `toml:"reason"`
}

// DayHours рабочие часы и ёмкость мастерской на один день недели
type DayHours struct {
	Closed      bool     `toml:"closed"`
	Open        string   `toml:"open"`  // HH:MM
	Close       string   `toml:"close"` // HH:MM
	SlotMinutes int      `toml:"slot_minutes"`
	Capacity    int      `toml:"capacity"`
	Technicians []string `toml:"technicians"`
}

// Holiday праздничный день
type Holiday struct {
	Date    string `toml:"date"` // YYYY-MM-DD
	Name    string `toml:"name"`
	Closure string `toml:"closure"` // full_closure | limited_hours
	Hours   string `toml:"hours"`   // для limited_hours, например "10:00-14:00"
}

// RepairType запись справочника типов ремонта
type RepairType struct {
	Slug            string  `toml:"slug"`
	Name            string  `toml:"name"`
	BasePrice       float64 `toml:"base_price"`
	DurationMinutes int     `toml:"duration_minutes"`
	SkillLevel      string  `toml:"skill_level"`
}

// Load загружает и валидирует конфигурацию из TOML файла
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.HTTPPort == 0 {
		c.Server.HTTPPort = 8080
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 10
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 10
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = 60
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 15
	}
	if c.RateLimit.AvailabilityPerMinute == 0 {
		c.RateLimit.AvailabilityPerMinute = 50
	}
	if c.RateLimit.SearchPerMinute == 0 {
		c.RateLimit.SearchPerMinute = 30
	}
	if c.RateLimit.WindowSeconds == 0 {
		c.RateLimit.WindowSeconds = 60
	}
	if c.Pricing.PriorityPercent == 0 {
		c.Pricing.PriorityPercent = 25
	}
	if c.Pricing.EmergencyPercent == 0 {
		c.Pricing.EmergencyPercent = 50
	}
}

func (c *Config) validate() error {
	if len(c.Catalog) == 0 {
		return fmt.Errorf("catalog must not be empty")
	}
	for day, hours := range c.Hours {
		if hours.Closed {
			continue
		}
		if hours.Open == "" || hours.Close == "" {
			return fmt.Errorf("hours.%s: open and close are required", day)
		}
		if hours.SlotMinutes <= 0 {
			return fmt.Errorf("hours.%s: slot_minutes must be positive", day)
		}
		if hours.Capacity <= 0 {
			return fmt.Errorf("hours.%s: capacity must be positive", day)
		}
	}
	for _, h := range c.Holidays {
		if h.Closure != "full_closure" && h.Closure != "limited_hours" {
			return fmt.Errorf("holiday %s: unknown closure type %q", h.Date, h.Closure)
		}
	}
	return nil
}
