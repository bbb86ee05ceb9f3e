package curve

import "gopkg.in/yaml.v3"

// MarshalYAML serializes the curve as its config string, so a curve field
// in a yaml document reads the same as on the command line.
func (c Curve) MarshalYAML() (interface{}, error) {
	return c.ConfigString(), nil
}

// UnmarshalYAML parses a config-string scalar.
func (c *Curve) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	return c.UnmarshalText([]byte(raw))
}
