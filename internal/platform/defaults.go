// Package platform holds the company-configurable revenue platform
// catalog defaults: the currency and enabled platform list a company
// starts from before its admin has saved anything, and the values we
// fall back to when a settings row cannot be loaded.
package platform

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
)

// Defaults is the boot-time settings template for new companies.
type Defaults struct {
	Currency         string   `json:"currency"`
	EnabledPlatforms []string `json:"enabled_platforms"`
	CustomPlatforms  []string `json:"custom_platforms"`
}

// Fallback is the hard-coded configuration used when no defaults file
// is configured and when a settings load fails mid-request.
func Fallback() Defaults {
	return Defaults{
		Currency:         "USD",
		EnabledPlatforms: []string{"UBER", "CABIFY", "BOLT", "TAXXILO"},
		CustomPlatforms:  []string{},
	}
}

type Registry struct {
	mu       sync.RWMutex
	defaults Defaults
}

func NewRegistry() *Registry {
	return &Registry{defaults: Fallback()}
}

// LoadFromFile reads a defaults JSON file. An empty path yields the
// hard-coded fallback; a missing or unreadable file is an error so a
// misconfigured deployment fails at boot, not at first use.
func LoadFromFile(path string) (*Registry, error) {
	r := NewRegistry()
	if path == "" {
		return r, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read settings defaults: %w", err)
	}

	var d Defaults
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("failed to parse settings defaults: %w", err)
	}
	if d.Currency == "" {
		d.Currency = Fallback().Currency
	}
	if d.EnabledPlatforms == nil {
		d.EnabledPlatforms = Fallback().EnabledPlatforms
	}
	if d.CustomPlatforms == nil {
		d.CustomPlatforms = []string{}
	}

	r.mu.Lock()
	r.defaults = d
	r.mu.Unlock()
	return r, nil
}

// Defaults returns a copy, so callers can append without aliasing the
// shared slices.
func (r *Registry) Defaults() Defaults {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d := r.defaults
	d.EnabledPlatforms = append([]string(nil), d.EnabledPlatforms...)
	d.CustomPlatforms = append([]string(nil), d.CustomPlatforms...)
	return d
}

func (r *Registry) Currency() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.defaults.Currency
}
