// Package config loads typed configuration from the environment.
//
// Values come from process environment variables, optionally seeded from .env files
// with github.com/joho/godotenv, and are parsed into structs with
// github.com/caarlos0/env/v11 field tags:
//
//	type ServerConfig struct {
//		Addr     string `env:"HTTP_ADDR" envDefault:":8080"`
//		LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
//	}
//
//	if err := config.LoadEnv(".env.local"); err != nil && !errors.Is(err, fs.ErrNotExist) {
//		return err
//	}
//	var cfg ServerConfig
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
//
// Every configuration type is parsed once per process and served from a cache
// afterwards. Reload bypasses the cache; ResetCache clears it, which is mostly useful
// in tests.
package config
