package config

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Direction selects the main growth direction of the root system.
type Direction int

const (
	DirectionDown Direction = iota
	DirectionUp
	DirectionRadial
	DirectionDiagonal
	DirectionMixed
	DirectionSpiral
)

var directionNames = [...]string{"down", "up", "radial", "diagonal", "mixed", "spiral"}

// String returns the lowercase name used in YAML files.
func (d Direction) String() string {
	if d < DirectionDown || d > DirectionSpiral {
		return fmt.Sprintf("direction(%d)", int(d))
	}
	return directionNames[d]
}

// ParseDirection converts a name to a Direction.
func ParseDirection(s string) (Direction, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range directionNames {
		if n == name {
			return Direction(i), nil
		}
	}
	return DirectionDown, fmt.Errorf("unknown growth direction %q", s)
}

// UnmarshalYAML decodes a direction from its string name.
func (d *Direction) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseDirection(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// MarshalYAML encodes a direction as its string name.
func (d Direction) MarshalYAML() (interface{}, error) {
	return d.String(), nil
}
