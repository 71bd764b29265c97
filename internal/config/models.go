package config

import (
	"fmt"
	"sort"
	"strings"
)

// TargetName identifies a deployment target
type TargetName string

const (
	TargetDevelopment TargetName = "development"
	TargetProduction  TargetName = "production"
	TargetLocal       TargetName = "local"
)

// ParseTargetName converts user input into a TargetName.
// "dev" and "prod" are accepted as shorthands.
func ParseTargetName(s string) (TargetName, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "development", "dev":
		return TargetDevelopment, nil
	case "production", "prod":
		return TargetProduction, nil
	case "local":
		return TargetLocal, nil
	default:
		return "", fmt.Errorf("unknown target %q (expected development, production or local)", s)
	}
}

// Catalogue represents the entire deployment target file.
type Catalogue struct {
	Version int                    `yaml:"version"`
	Default TargetName             `yaml:"default"`
	Targets map[TargetName]*Target `yaml:"targets"` // Keyed by target name
}

// Target describes one backend deployment the client can submit to.
type Target struct {
	// Name is filled from the catalogue key
	Name TargetName `yaml:"-"`

	// BaseURL is the API root, e.g. https://api.phya.co.za/api/v1
	BaseURL string `yaml:"base_url" validate:"required,url"`

	// TenantDomain is sent as tenant_domain on every submission
	TenantDomain string `yaml:"tenant_domain" validate:"required,hostname"`

	// ContactEmail is shown in generic failure messages
	ContactEmail string `yaml:"contact_email" validate:"required,email"`

	// LandingURL is the public landing page for this target
	LandingURL string `yaml:"landing_url,omitempty" validate:"omitempty,url"`
}

// Names returns the target names in the catalogue, sorted
func (c *Catalogue) Names() []TargetName {
	names := make([]TargetName, 0, len(c.Targets))
	for name := range c.Targets {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}

// Resolve returns the target called name.
// An empty name selects the catalogue default.
func (c *Catalogue) Resolve(name TargetName) (Target, error) {
	if name == "" {
		name = c.Default
	}
	t, ok := c.Targets[name]
	if !ok || t == nil {
		return Target{}, fmt.Errorf("target %q not found in catalogue", name)
	}
	return *t, nil
}

// Resolve selects the deployment target for this run.
// An explicit flag value wins over the PHYA_TARGET environment variable.
func Resolve(c *Catalogue, flagValue string, e Env) (Target, error) {
	raw := flagValue
	if raw == "" {
		raw = e.Target
	}
	if raw == "" {
		return c.Resolve("")
	}

	name, err := ParseTargetName(raw)
	if err != nil {
		return Target{}, err
	}
	return c.Resolve(name)
}
