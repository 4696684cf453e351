// Package validation provides struct-tag validation for configuration types
// bound by wirekit, using the validator library.
//
//	type DbConfig struct {
//	    Host string `mapstructure:"host" validate:"required"`
//	    Port int    `mapstructure:"port" validate:"gte=1,lte=65535"`
//	}
//	err := validation.Validate(&cfg)
package validation
