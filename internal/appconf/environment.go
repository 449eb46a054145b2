package appconf

import (
	"fmt"
	"strings"
)

// Environment is the deployment environment the dashboard runs in
type Environment int

const (
	Development Environment = iota
	Test
	Production
)

func (e Environment) String() string {
	switch e {
	case Test:
		return "test"
	case Production:
		return "production"
	default:
		return "development"
	}
}

// ParseEnvironment converts a name such as "prod" or "development" to an
// Environment.
func ParseEnvironment(name string) (Environment, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "development", "dev", "":
		return Development, nil
	case "test", "testing":
		return Test, nil
	case "production", "prod":
		return Production, nil
	}
	return Development, fmt.Errorf("unknown environment %q", name)
}

// UnmarshalText lets envconfig and yaml decode environment names
func (e *Environment) UnmarshalText(text []byte) error {
	env, err := ParseEnvironment(string(text))
	if err != nil {
		return err
	}
	*e = env
	return nil
}

func (e Environment) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}
