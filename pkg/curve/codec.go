package curve

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseError describes why a config string is not a valid curve. Token is
// the offending token, empty when the whole string is malformed (wrong
// point count).
type ParseError struct {
	Token  string
	Reason string
}

func (e *ParseError) Error() string {
	if e.Token == "" {
		return fmt.Sprintf("invalid fan curve: %s", e.Reason)
	}
	return fmt.Sprintf("invalid fan curve point %q: %s", e.Token, e.Reason)
}

// Parse decodes the config string format
//
//	<t>c:<s>%,<t>c:<s>%,... (8 pairs)
//
// into a Curve. The format matches the one used by atrofac. A trailing
// comma and whitespace around tokens are tolerated; anything else strict:
// exactly 8 pairs, one colon per pair, mandatory c and % suffixes, and
// both numbers must fit in a byte.
func Parse(s string) (Curve, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, ",")

	tokens := strings.Split(s, ",")
	if len(tokens) != NumPoints {
		return Curve{}, &ParseError{
			Reason: fmt.Sprintf("expected %d points, got %d", NumPoints, len(tokens)),
		}
	}

	c := New()
	for i, token := range tokens {
		token = strings.TrimSpace(token)

		parts := strings.Split(token, ":")
		if len(parts) != 2 {
			return Curve{}, &ParseError{Token: token, Reason: "expected a single <temp>c:<speed>% pair"}
		}

		rawTemp, ok := strings.CutSuffix(parts[0], "c")
		if !ok {
			return Curve{}, &ParseError{Token: token, Reason: "temperature must end with c"}
		}
		rawSpeed, ok := strings.CutSuffix(parts[1], "%")
		if !ok {
			return Curve{}, &ParseError{Token: token, Reason: "speed must end with %"}
		}

		temp, err := strconv.ParseUint(rawTemp, 10, 8)
		if err != nil {
			return Curve{}, &ParseError{Token: token, Reason: fmt.Sprintf("invalid temperature %q", rawTemp)}
		}
		speed, err := strconv.ParseUint(rawSpeed, 10, 8)
		if err != nil {
			return Curve{}, &ParseError{Token: token, Reason: fmt.Sprintf("invalid speed %q", rawSpeed)}
		}

		if err := c.SetPoint(i, uint8(temp), uint8(speed)); err != nil {
			return Curve{}, err
		}
	}

	return c, nil
}

// ConfigString renders the curve in the canonical config string format.
// Parse(c.ConfigString()) always reproduces c.
func (c Curve) ConfigString() string {
	tokens := make([]string, NumPoints)
	for i := 0; i < NumPoints; i++ {
		tokens[i] = fmt.Sprintf("%dc:%d%%", c.buf[i], c.buf[i+NumPoints])
	}
	return strings.Join(tokens, ",")
}

// MarshalText implements encoding.TextMarshaler; the textual form is the
// config string, so a Curve field round-trips through yaml and viper.
func (c Curve) MarshalText() ([]byte, error) {
	return []byte(c.ConfigString()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Curve) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
