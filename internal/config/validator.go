package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Validate checks value ranges and backend-specific requirements
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf(ErrMsgInvalidConfig, err.Error())
	}

	problems := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		problems = append(problems, fmt.Sprintf("%s failed %s=%s (got %v)", fe.Field(), fe.Tag(), fe.Param(), fe.Value()))
	}
	return fmt.Errorf(ErrMsgInvalidConfig, strings.Join(problems, "; "))
}

// Warnings lists insecure but valid settings. Production without an API key
// is a warning, not an error, so a private deployment can still run open.
func (c *Config) Warnings() []string {
	var warnings []string

	if c.StoreBackend == StoreBackendPostgres && c.DBPassword == ExampleDBPassword {
		warnings = append(warnings, "DB_PASSWORD appears to be using the example value - please use a secure password")
	}

	if c.APIKey == ExampleAPIKey {
		warnings = append(warnings, "API_KEY appears to be using the example value - generate a secure key with: openssl rand -hex 32")
	}

	if c.APIKey == "" && c.IsProduction() {
		warnings = append(warnings, "API_KEY is not set - the game API is open to anyone who can reach it")
	}

	if c.StoreBackend == StoreBackendMemory {
		warnings = append(warnings, "STORE_BACKEND=memory - saves are lost when the server stops")
	}

	return warnings
}
