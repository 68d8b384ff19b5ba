package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// PayloadError reports a config payload that could not be used at all:
// unreadable, not JSON, or not a JSON object. Field-level problems never
// produce a PayloadError; those fields silently take their defaults.
type PayloadError struct {
	Source string // file path, or "payload" for in-memory data
	Err    error
}

func (e *PayloadError) Error() string {
	return fmt.Sprintf("config %s: %v", e.Source, e.Err)
}

func (e *PayloadError) Unwrap() error { return e.Err }

// Parse decodes and validates a config.json payload.
// It returns a *PayloadError when data is not a JSON object.
func Parse(data []byte) (Config, error) {
	return parse("payload", data)
}

func parse(source string, data []byte) (Config, error) {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return Config{}, &PayloadError{Source: source, Err: fmt.Errorf("invalid JSON: %w", err)}
	}
	if err := checkShape(doc); err != nil {
		return Config{}, &PayloadError{Source: source, Err: err}
	}
	raw, _ := doc.(map[string]any)
	return Validate(raw), nil
}

// Reload applies a freshly fetched payload. When the payload is malformed
// the previous config is returned unchanged together with the error, so
// callers can keep working with the last known-good value.
//
// Reload is the entry point for a watcher that re-fetches config.json while
// the program runs; the CLI commands load once and use Load instead.
func Reload(prev Config, data []byte) (Config, error) {
	next, err := Parse(data)
	if err != nil {
		return prev, err
	}
	return next, nil
}

// Load reads the config file at path. A missing file is not an error and
// yields Default(). Unreadable or malformed files yield Default() with a
// *PayloadError.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Default(), &PayloadError{Source: path, Err: err}
	}

	c, err := parse(path, data)
	if err != nil {
		return Default(), err
	}
	return c, nil
}
