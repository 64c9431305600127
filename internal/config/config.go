package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"

	applog "clinicart/internal/log"
	"clinicart/internal/rules"
)

type Config struct {
	App       AppConfig       `mapstructure:"app"`
	Log       applog.Config   `mapstructure:"log"`
	Data      DataConfig      `mapstructure:"data"`
	Catalog   CatalogConfig   `mapstructure:"catalog"`
	Inventory InventoryConfig `mapstructure:"inventory"`
	Delivery  DeliveryConfig  `mapstructure:"delivery"`
	Offers    []OfferConfig   `mapstructure:"offers" validate:"dive"`
	HTTP      HTTPConfig      `mapstructure:"http"`

	v *viper.Viper
}

type AppConfig struct {
	Env         string `mapstructure:"env"`
	Port        string `mapstructure:"port" validate:"required,numeric"`
	TemplateDir string `mapstructure:"template_dir"`
	APIDocsDir  string `mapstructure:"api_docs_dir"`
}

type DataConfig struct {
	Source string `mapstructure:"source" validate:"oneof=csv sqlite"`
	Dir    string `mapstructure:"dir"`
	DSN    string `mapstructure:"dsn"`
	// Seed fixes the random source used for categories, ratings and scarcity.
	// Zero means seed from the clock.
	Seed int64 `mapstructure:"seed"`
}

type CatalogConfig struct {
	MaxRating       float64 `mapstructure:"max_rating" validate:"gt=0"`
	DefaultDiscount float64 `mapstructure:"default_discount" validate:"gte=0,lte=100"`
}

type InventoryConfig struct {
	ScarcityBound int `mapstructure:"scarcity_bound" validate:"gt=0"`
}

type DeliveryConfig struct {
	Timezone string         `mapstructure:"timezone"`
	Cutoffs  []CutoffConfig `mapstructure:"cutoffs" validate:"dive"`
}

type CutoffConfig struct {
	Provider string `mapstructure:"provider" validate:"required"`
	Hour     int    `mapstructure:"hour" validate:"gte=0,lte=24"`
}

type OfferConfig struct {
	Type               string   `mapstructure:"type" validate:"required"`
	Start              string   `mapstructure:"start" validate:"required"`
	End                string   `mapstructure:"end" validate:"required"`
	DiscountPercentage *float64 `mapstructure:"discount_percentage" validate:"omitempty,gte=0,lte=100"`
}

type HTTPConfig struct {
	PincodeRateLimit int           `mapstructure:"pincode_rate_limit" validate:"gte=0"`
	RateWindow       time.Duration `mapstructure:"rate_window"`
	CORSAllowOrigins string        `mapstructure:"cors_allow_origins"`
	MaxBodySize      int           `mapstructure:"max_body_size" validate:"gt=0"`
	MaxPageSize      int           `mapstructure:"max_page_size" validate:"gte=0"`
}

var validate = validator.New()

// Load reads configuration. Priority, highest first:
//  1. CLINICART_ environment variables (CLINICART_APP_PORT, CLINICART_DATA_DIR, ...)
//  2. the config file: path if given, else config.yaml in . or ./configs
//  3. built-in defaults
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	v.SetEnvPrefix("CLINICART")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg, err := decode(v)
	if err != nil {
		return nil, err
	}
	applog.L().Sugar().Infow("config.loaded",
		"file", v.ConfigFileUsed(), "port", cfg.App.Port,
		"source", cfg.Data.Source, "dir", cfg.Data.Dir, "dsn", cfg.Data.DSN)
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.env", "development")
	v.SetDefault("app.port", "3000")
	v.SetDefault("app.template_dir", "./web/templates")
	v.SetDefault("app.api_docs_dir", "./api")

	d := applog.DefaultConfig()
	v.SetDefault("log.level", d.Level)
	v.SetDefault("log.format", d.Format)
	v.SetDefault("log.output", d.Output)

	v.SetDefault("data.source", "csv")
	v.SetDefault("data.dir", "./data")
	v.SetDefault("data.dsn", "clinicart.db")
	v.SetDefault("data.seed", 0)

	v.SetDefault("catalog.max_rating", 5.0)
	v.SetDefault("catalog.default_discount", 10.0)
	v.SetDefault("inventory.scarcity_bound", rules.DefaultScarcityBound)

	v.SetDefault("delivery.timezone", "Local")
	v.SetDefault("delivery.cutoffs", []map[string]any{
		{"provider": "Provider A", "hour": 17},
		{"provider": "Provider B", "hour": 9},
	})
	v.SetDefault("offers", []map[string]any{
		{"type": "Diwali", "start": "2024-10-29", "end": "2024-11-01"},
	})

	v.SetDefault("http.pincode_rate_limit", 15)
	v.SetDefault("http.rate_window", 30*time.Second)
	v.SetDefault("http.cors_allow_origins", "*")
	v.SetDefault("http.max_body_size", 1<<20)
	v.SetDefault("http.max_page_size", 100)
}

func decode(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg.v = v
	return cfg, nil
}

// Validate checks struct constraints and that dates and time zone parse.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if _, err := c.Location(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if _, err := c.OfferWindows(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

func (c *Config) Location() (*time.Location, error) {
	if c.Delivery.Timezone == "" {
		return time.Local, nil
	}
	return time.LoadLocation(c.Delivery.Timezone)
}

func (c *Config) Cutoffs() rules.Cutoffs {
	out := make(rules.Cutoffs, len(c.Delivery.Cutoffs))
	for _, co := range c.Delivery.Cutoffs {
		out[co.Provider] = co.Hour
	}
	return out
}

func (c *Config) DefaultDiscount() decimal.Decimal {
	return decimal.NewFromFloat(c.Catalog.DefaultDiscount)
}

// OfferWindows parses the offer calendar. Dates are YYYY-MM-DD (midnight UTC)
// or RFC 3339 timestamps.
func (c *Config) OfferWindows() ([]rules.OfferWindow, error) {
	out := make([]rules.OfferWindow, 0, len(c.Offers))
	for _, o := range c.Offers {
		start, err := parseDate(o.Start)
		if err != nil {
			return nil, fmt.Errorf("offer %s start: %w", o.Type, err)
		}
		end, err := parseDate(o.End)
		if err != nil {
			return nil, fmt.Errorf("offer %s end: %w", o.Type, err)
		}
		if end.Before(start) {
			return nil, fmt.Errorf("offer %s ends before it starts", o.Type)
		}
		w := rules.OfferWindow{Type: o.Type, Start: start, End: end}
		if o.DiscountPercentage != nil {
			d := decimal.NewFromFloat(*o.DiscountPercentage)
			w.DiscountPercentage = &d
		}
		out = append(out, w)
	}
	return out, nil
}

func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

// Watch re-reads the config file whenever it changes and hands every valid
// result to fn. Invalid edits are logged and ignored. It is a no-op when no
// config file was read.
func (c *Config) Watch(fn func(*Config)) {
	if c.v == nil || c.v.ConfigFileUsed() == "" {
		return
	}
	v := c.v
	v.OnConfigChange(func(e fsnotify.Event) {
		next, err := decode(v)
		if err != nil {
			applog.Error(nil, "config.reload.fail", err, map[string]any{"file": e.Name})
			return
		}
		applog.Info(nil, "config.reload", map[string]any{"file": e.Name, "op": e.Op.String()})
		fn(next)
	})
	v.WatchConfig()
}
