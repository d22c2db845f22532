package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
)

// ClientConfig campusctl 的設定，全部來自環境變數
type ClientConfig struct {
	APIURL    string        `env:"CAMPUS_API_URL"    envDefault:"http://localhost:8080"`
	StateDir  string        `env:"CAMPUS_STATE_DIR"`
	Timeout   time.Duration `env:"CAMPUS_TIMEOUT"    envDefault:"10s"`
	LogLevel  string        `env:"CAMPUS_LOG_LEVEL"  envDefault:"warn"`
	DeviceLat *float64      `env:"CAMPUS_DEVICE_LAT"`
	DeviceLng *float64      `env:"CAMPUS_DEVICE_LNG"`
}

func LoadClientConfig() (ClientConfig, error) {
	var cfg ClientConfig
	if err := env.Parse(&cfg); err != nil {
		return ClientConfig{}, fmt.Errorf("parse client config: %w", err)
	}
	if cfg.StateDir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			base = os.TempDir()
		}
		cfg.StateDir = filepath.Join(base, "campusctl")
	}
	return cfg, nil
}

// HasDevicePosition 經緯度都有設定才算支援定位
func (c ClientConfig) HasDevicePosition() bool {
	return c.DeviceLat != nil && c.DeviceLng != nil
}
