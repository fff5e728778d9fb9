package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const envPrefix = "SEASONAL"

type appConfig struct {
	Port      string
	GinMode   string
	LogLvl    string
	LogFormat string
	DBPath    string

	RemoteURL      string
	RemoteTimeout  time.Duration
	RemoteCacheTTL time.Duration

	Timezone       string
	CountdownTick  time.Duration
	AllowedOrigins []string

	ReadHeaderTimeout time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "8080")
	v.SetDefault("gin.mode", "release")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("db.path", "seasonal.db")
	v.SetDefault("remote.url", "")
	v.SetDefault("remote.timeout", "3s")
	v.SetDefault("remote.cache_ttl", "10m")
	v.SetDefault("thaw.timezone", "Local")
	v.SetDefault("countdown.tick", "1s")
	v.SetDefault("cors.allowed_origins", []string{"*"})
	v.SetDefault("server.read_header_timeout", "10s")
	v.SetDefault("server.write_timeout", "10s")
	v.SetDefault("server.idle_timeout", "60s")
}

// loadConfig reads configs/config.yml from dir (when present) and applies
// SEASONAL_* environment overrides, e.g. SEASONAL_REMOTE_URL.
func loadConfig(dir string) (appConfig, error) {
	v := viper.New()
	setDefaults(v)

	v.AddConfigPath(dir)
	v.SetConfigName("config")
	v.SetConfigType("yml")
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return appConfig{}, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := appConfig{
		Port:              v.GetString("port"),
		GinMode:           v.GetString("gin.mode"),
		LogLvl:            v.GetString("log.level"),
		LogFormat:         v.GetString("log.format"),
		DBPath:            v.GetString("db.path"),
		RemoteURL:         strings.TrimSpace(v.GetString("remote.url")),
		RemoteTimeout:     v.GetDuration("remote.timeout"),
		RemoteCacheTTL:    v.GetDuration("remote.cache_ttl"),
		Timezone:          v.GetString("thaw.timezone"),
		CountdownTick:     v.GetDuration("countdown.tick"),
		AllowedOrigins:    splitList(v.GetStringSlice("cors.allowed_origins")),
		ReadHeaderTimeout: v.GetDuration("server.read_header_timeout"),
		WriteTimeout:      v.GetDuration("server.write_timeout"),
		IdleTimeout:       v.GetDuration("server.idle_timeout"),
	}
	if cfg.RemoteTimeout <= 0 {
		return appConfig{}, fmt.Errorf("remote.timeout must be positive, got %v", cfg.RemoteTimeout)
	}
	if cfg.CountdownTick <= 0 {
		return appConfig{}, fmt.Errorf("countdown.tick must be positive, got %v", cfg.CountdownTick)
	}
	return cfg, nil
}

// splitList flattens comma separated entries so env values like "a,b" work.
func splitList(in []string) []string {
	var out []string
	for _, item := range in {
		for _, part := range strings.Split(item, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

// loadLocation resolves the zone used for target times without an offset.
func loadLocation(name string) (*time.Location, error) {
	switch strings.TrimSpace(name) {
	case "", "Local":
		return time.Local, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("load thaw.timezone %q: %w", name, err)
	}
	return loc, nil
}
