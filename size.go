package lengthlimit

import (
	"encoding"
	"flag"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v2"
)

var (
	_ encoding.TextUnmarshaler = (*Size)(nil)
	_ encoding.TextMarshaler   = Size(0)
	_ yaml.Unmarshaler         = (*Size)(nil)
	_ flag.Value               = (*Size)(nil)
)

// Size is a byte count used to configure limits.
//
// In yaml/json/text form it's either a bare decimal number of bytes,
// or a decimal number with one of the suffixes "b", "kb", "mb", "gb"
// (case insensitive), so configs can say maxRequestBody: 10mb.
type Size int64

// Size units, multiplying by 1024 at each step.
const (
	Byte     Size = 1
	Kilobyte      = 1024 * Byte
	Megabyte      = 1024 * Kilobyte
	Gigabyte      = 1024 * Megabyte
)

// Bytes returns the size as a plain byte count.
func (s Size) Bytes() int64 {
	return int64(s)
}

func (s Size) String() string {
	switch {
	case s >= Gigabyte && s%Gigabyte == 0:
		return strconv.FormatInt(int64(s/Gigabyte), 10) + "gb"
	case s >= Megabyte && s%Megabyte == 0:
		return strconv.FormatInt(int64(s/Megabyte), 10) + "mb"
	case s >= Kilobyte && s%Kilobyte == 0:
		return strconv.FormatInt(int64(s/Kilobyte), 10) + "kb"
	default:
		return strconv.FormatInt(int64(s), 10)
	}
}

// ParseSize parses a Size from its string form.
func ParseSize(text string) (Size, error) {
	trimmed := strings.ToLower(strings.TrimSpace(text))
	unit := Byte
	switch {
	case strings.HasSuffix(trimmed, "kb"):
		unit = Kilobyte
		trimmed = strings.TrimSuffix(trimmed, "kb")
	case strings.HasSuffix(trimmed, "mb"):
		unit = Megabyte
		trimmed = strings.TrimSuffix(trimmed, "mb")
	case strings.HasSuffix(trimmed, "gb"):
		unit = Gigabyte
		trimmed = strings.TrimSuffix(trimmed, "gb")
	case strings.HasSuffix(trimmed, "b"):
		trimmed = strings.TrimSuffix(trimmed, "b")
	}
	n, err := strconv.ParseInt(strings.TrimSpace(trimmed), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("lengthlimit: cannot parse %q as size: %v", text, err)
	}
	if n < 0 {
		return 0, fmt.Errorf("lengthlimit: size cannot be negative: %q", text)
	}
	return Size(n) * unit, nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Size) UnmarshalText(data []byte) error {
	// Empty/default
	if len(data) == 0 {
		*s = 0
		return nil
	}
	parsed, err := ParseSize(string(data))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (s Size) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
//
// It accepts both a bare number (bytes) and a string with a unit suffix.
func (s *Size) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var n int64
	if err := unmarshal(&n); err == nil {
		*s = Size(n)
		return nil
	}
	var str string
	if err := unmarshal(&str); err != nil {
		return err
	}
	parsed, err := ParseSize(str)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Set implements flag.Value.
func (s *Size) Set(value string) error {
	parsed, err := ParseSize(value)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
