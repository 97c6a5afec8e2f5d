package types

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Severity controls how a configured check is treated by the engine.
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
	SeverityOff
)

func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityOff:
		return "off"
	default:
		return "error"
	}
}

func (s Severity) MarshalYAML() (interface{}, error) {
	return s.String(), nil
}

func (s *Severity) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	switch raw {
	case "", "error":
		*s = SeverityError
	case "warn", "warning":
		*s = SeverityWarning
	case "off":
		*s = SeverityOff
	default:
		return fmt.Errorf("unknown severity %q", raw)
	}
	return nil
}

// ConfigRule holds the per-check configuration.
type ConfigRule struct {
	Severity Severity `yaml:"severity"`
}
