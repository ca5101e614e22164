package config

import "github.com/go-playground/validator/v10"

var v = validator.New()

// validateStruct returns the first validation error, or nil on success.
// Load calls it immediately after unmarshalling so the process never runs
// with partial or malformed configuration.
func validateStruct(c *Config) error {
	return v.Struct(c)
}
