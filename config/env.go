package config

import (
	"os"
	"strings"
)

// Environment selects where configuration is read from and which
// operator commands are allowed.
type Environment string

const (
	Development Environment = "development"
	Test        Environment = "test"
	CI          Environment = "ci"
	Production  Environment = "production"
)

func (e Environment) String() string {
	return string(e)
}

// ParseEnvironment maps an ENV value to an Environment. Unknown and empty
// values mean development.
func ParseEnvironment(s string) Environment {
	switch env := Environment(strings.ToLower(strings.TrimSpace(s))); env {
	case Production, Test, CI:
		return env
	default:
		return Development
	}
}

// GetEnvironment reads ENV. CI=true overrides it.
func GetEnvironment() Environment {
	if os.Getenv("CI") == "true" {
		return CI
	}
	return ParseEnvironment(os.Getenv("ENV"))
}

// IsProduction reports whether ENV selects production
func IsProduction() bool {
	return GetEnvironment() == Production
}
