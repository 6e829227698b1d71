// Package config loads and saves the user configuration file,
// ~/.config/<app>.yaml.
package config

import (
	"fmt"
	"regexp"
	"sync"

	"github.com/go-playground/validator/v10"
)

// Config is the full schema of the configuration file.
type Config struct {
	// DefaultJail is the jail used by "exec" when none is named on the
	// command line.
	DefaultJail string `yaml:"default-jail,omitempty" validate:"omitempty,jailname"`

	// Env is extra environment passed to every jailed command.
	Env map[string]string `yaml:"env,omitempty" validate:"omitempty,dive,keys,envname,endkeys"`

	// Aliases maps a short name to the command line "exec" expands it to.
	Aliases map[string][]string `yaml:"aliases,omitempty" validate:"omitempty,dive,min=1"`
}

// Validate checks the schema constraints. Load and Save call it; exported
// for callers that build a Config in code.
func (c *Config) Validate() error {
	if err := validate().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// jail names may not be purely numeric: the CLI treats a numeric spec as a
// JID, and the kernel rejects such names anyway
var jailNameRE = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_.-]*$`)

var envNameRE = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

var validate = sync.OnceValue(func() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	for tag, re := range map[string]*regexp.Regexp{
		"jailname": jailNameRE,
		"envname":  envNameRE,
	} {
		if err := v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
			return re.MatchString(fl.Field().String())
		}); err != nil {
			panic(fmt.Errorf("registering %q validation: %w", tag, err))
		}
	}
	return v
})
