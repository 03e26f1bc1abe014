package config

import (
	"errors"
	"log"
	"strings"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// DiscountCode maps an opaque code to a flat percentage reduction.
// Codes are matched case-insensitively.
type DiscountCode struct {
	Code       string  `mapstructure:"code"`
	PercentOff float64 `mapstructure:"percentOff"`
}

// BillingConfig holds the tunables of invoice generation.
type BillingConfig struct {
	DueDays       int            `mapstructure:"dueDays"`
	SequenceSeed  int64          `mapstructure:"sequenceSeed"`
	DiscountCodes []DiscountCode `mapstructure:"discountCodes"`
}

func DefaultBillingConfig() BillingConfig {
	return BillingConfig{
		DueDays:      30,
		SequenceSeed: 1000,
		DiscountCodes: []DiscountCode{
			{Code: "DISC10", PercentOff: 10},
		},
	}
}

// DiscountMultiplier returns the factor to apply for a discount code,
// or 1 when the code is not recognized. Unknown codes are a silent no-op.
func (c BillingConfig) DiscountMultiplier(code string) float64 {
	code = strings.TrimSpace(code)
	if code == "" {
		return 1
	}
	for _, dc := range c.DiscountCodes {
		if strings.EqualFold(dc.Code, code) {
			return 1 - dc.PercentOff/100
		}
	}
	return 1
}

type BillingConfigHolder struct {
	current atomic.Value // holds BillingConfig
}

func NewBillingConfigHolder() (*BillingConfigHolder, error) {
	v := viper.New()

	v.SetConfigName("billing")
	v.SetConfigType("yml")
	v.AddConfigPath("/etc/railbill")
	v.AddConfigPath(".") // Current directory (dev mode)

	v.SetEnvPrefix("RAILBILL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
		// if config file not found, use defaults
		defaults := DefaultBillingConfig()
		v.SetDefault("billing.dueDays", defaults.DueDays)
		v.SetDefault("billing.sequenceSeed", defaults.SequenceSeed)
		v.SetDefault("billing.discountCodes", defaults.DiscountCodes)
	}

	var cfg BillingConfig
	if err := v.UnmarshalKey("billing", &cfg); err != nil {
		return nil, err
	}
	if err := validateBillingConfig(cfg); err != nil {
		return nil, err
	}

	holder := &BillingConfigHolder{}
	holder.current.Store(cfg)

	v.WatchConfig()
	v.OnConfigChange(func(e fsnotify.Event) {
		var updated BillingConfig
		if err := v.UnmarshalKey("billing", &updated); err != nil {
			log.Printf("[billing-config] reload failed: %v", err)
			return
		}
		if err := validateBillingConfig(updated); err != nil {
			log.Printf("[billing-config] invalid config ignored: %v", err)
			return
		}
		holder.current.Store(updated)
		log.Printf("[billing-config] reloaded from %s", e.Name)
	})

	return holder, nil
}

// NewStaticBillingConfigHolder wraps a fixed config, bypassing viper.
// Intended for tests and embedded use.
func NewStaticBillingConfigHolder(cfg BillingConfig) *BillingConfigHolder {
	holder := &BillingConfigHolder{}
	holder.current.Store(cfg)
	return holder
}

func (h *BillingConfigHolder) Get() BillingConfig {
	return h.current.Load().(BillingConfig)
}

func validateBillingConfig(cfg BillingConfig) error {
	if cfg.DueDays <= 0 {
		return errors.New("billing.dueDays must be positive")
	}
	if cfg.SequenceSeed < 0 {
		return errors.New("billing.sequenceSeed cannot be negative")
	}
	for _, dc := range cfg.DiscountCodes {
		if strings.TrimSpace(dc.Code) == "" {
			return errors.New("billing.discountCodes entries need a code")
		}
		if dc.PercentOff < 0 || dc.PercentOff > 100 {
			return errors.New("billing.discountCodes percentOff must be within [0, 100]")
		}
	}
	return nil
}
