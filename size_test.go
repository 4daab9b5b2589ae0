package lengthlimit_test

import (
	"flag"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v2"

	"github.com/streamguard/lengthlimit"
)

func TestParseSize(t *testing.T) {
	for _, c := range []struct {
		text     string
		expected lengthlimit.Size
	}{
		{text: "512", expected: 512},
		{text: "512b", expected: 512},
		{text: "4kb", expected: 4 * lengthlimit.Kilobyte},
		{text: "10MB", expected: 10 * lengthlimit.Megabyte},
		{text: "1gb", expected: lengthlimit.Gigabyte},
		{text: " 2 kb ", expected: 2 * lengthlimit.Kilobyte},
		{text: "0", expected: 0},
	} {
		t.Run(c.text, func(t *testing.T) {
			parsed, err := lengthlimit.ParseSize(c.text)
			if err != nil {
				t.Fatalf("ParseSize(%q) failed: %v", c.text, err)
			}
			if parsed != c.expected {
				t.Errorf("Expected ParseSize(%q) to be %d, got %d", c.text, c.expected, parsed)
			}
		})
	}

	for _, text := range []string{"", "abc", "-1", "1.5mb", "10tb"} {
		t.Run("invalid/"+text, func(t *testing.T) {
			if parsed, err := lengthlimit.ParseSize(text); err == nil {
				t.Errorf("Expected ParseSize(%q) to fail, got %d", text, parsed)
			}
		})
	}
}

func TestSizeString(t *testing.T) {
	for _, c := range []struct {
		size     lengthlimit.Size
		expected string
	}{
		{size: 512, expected: "512"},
		{size: 4 * lengthlimit.Kilobyte, expected: "4kb"},
		{size: 10 * lengthlimit.Megabyte, expected: "10mb"},
		{size: lengthlimit.Gigabyte, expected: "1gb"},
		{size: 1536, expected: "1536"},
		{size: 0, expected: "0"},
	} {
		t.Run(c.expected, func(t *testing.T) {
			if s := c.size.String(); s != c.expected {
				t.Errorf("Expected %q, got %q", c.expected, s)
			}
		})
	}
}

func TestSizeYAML(t *testing.T) {
	type config struct {
		Max lengthlimit.Size `yaml:"max"`
	}

	for _, c := range []struct {
		label    string
		doc      string
		expected config
	}{
		{
			label:    "suffixed-string",
			doc:      "max: 10mb",
			expected: config{Max: 10 * lengthlimit.Megabyte},
		},
		{
			label:    "bare-number",
			doc:      "max: 1024",
			expected: config{Max: lengthlimit.Kilobyte},
		},
		{
			label:    "quoted-string",
			doc:      `max: "4kb"`,
			expected: config{Max: 4 * lengthlimit.Kilobyte},
		},
	} {
		t.Run(c.label, func(t *testing.T) {
			var parsed config
			if err := yaml.Unmarshal([]byte(c.doc), &parsed); err != nil {
				t.Fatalf("yaml.Unmarshal failed: %v", err)
			}
			if diff := cmp.Diff(c.expected, parsed); diff != "" {
				t.Errorf("Parsed config mismatch (-want +got):\n%s", diff)
			}
		})
	}

	t.Run("invalid", func(t *testing.T) {
		var parsed config
		if err := yaml.Unmarshal([]byte("max: lots"), &parsed); err == nil {
			t.Errorf("Expected yaml.Unmarshal to fail, got %+v", parsed)
		}
	})
}

func TestSizeFlag(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	var limit lengthlimit.Size
	fs.Var(&limit, "limit", "")
	if err := fs.Parse([]string{"-limit", "4kb"}); err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if limit != 4*lengthlimit.Kilobyte {
		t.Errorf("Expected 4kb, got %v", limit)
	}
}

func TestSizeTextRoundTrip(t *testing.T) {
	for _, size := range []lengthlimit.Size{0, 1, 512, 4 * lengthlimit.Kilobyte, 10 * lengthlimit.Megabyte, 2 * lengthlimit.Gigabyte} {
		t.Run(size.String(), func(t *testing.T) {
			text, err := size.MarshalText()
			if err != nil {
				t.Fatalf("MarshalText failed: %v", err)
			}
			var parsed lengthlimit.Size
			if err := parsed.UnmarshalText(text); err != nil {
				t.Fatalf("UnmarshalText(%q) failed: %v", text, err)
			}
			if parsed != size {
				t.Errorf("Expected %d after round trip, got %d", size, parsed)
			}
		})
	}
}
