package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	mu    sync.Mutex
	cache = map[reflect.Type]any{}

	defaultEnvOnce sync.Once
)

// LoadEnv loads the given .env files into the process environment. Variables that are
// already set are kept. With no arguments the .env file of the working directory is used.
func LoadEnv(files ...string) error {
	if err := godotenv.Load(files...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}

// MustLoadEnv is like LoadEnv but panics on error.
func MustLoadEnv(files ...string) {
	if err := LoadEnv(files...); err != nil {
		panic(err)
	}
}

// Load parses the environment into v. The first successful result for a type is cached
// and returned by later calls. A missing default .env file is not an error.
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}
	defaultEnvOnce.Do(func() { _ = godotenv.Load() })

	key := reflect.TypeFor[T]()

	mu.Lock()
	defer mu.Unlock()
	if cached, ok := cache[key]; ok {
		*v = cached.(T)
		return nil
	}
	if err := parse(v); err != nil {
		return err
	}
	cache[key] = *v
	return nil
}

// MustLoad is like Load but panics on error.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}

// Reload parses the environment into v ignoring and replacing any cached value.
func Reload[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}
	mu.Lock()
	defer mu.Unlock()
	if err := parse(v); err != nil {
		return err
	}
	cache[reflect.TypeFor[T]()] = *v
	return nil
}

// ResetCache drops every cached configuration.
func ResetCache() {
	mu.Lock()
	defer mu.Unlock()
	clear(cache)
}

func parse[T any](v *T) error {
	if err := env.Parse(v); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}
