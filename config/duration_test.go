package config

import (
	"strings"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

type durationDoc struct {
	D Duration `yaml:"d"`
}

func TestDurationUnmarshalHumanReadable(t *testing.T) {
	tests := []struct {
		in   string
		want time.Duration
	}{
		{"d: 5m", 5 * time.Minute},
		{"d: 1h10m", time.Hour + 10*time.Minute},
		{"d: 90s", 90 * time.Second},
		{"d: 300", 300 * time.Second},
	}
	for _, tc := range tests {
		var doc durationDoc
		if err := yaml.Unmarshal([]byte(tc.in), &doc); err != nil {
			t.Errorf("unmarshal %q failed: %v", tc.in, err)
			continue
		}
		if doc.D.Std() != tc.want {
			t.Errorf("unmarshal %q = %v, want %v", tc.in, doc.D.Std(), tc.want)
		}
	}
}

func TestDurationUnmarshalRejectsGarbage(t *testing.T) {
	var doc durationDoc
	if err := yaml.Unmarshal([]byte("d: soon"), &doc); err == nil {
		t.Error("unmarshal accepted a non-duration string")
	}
}

func TestDurationMarshalRoundTrip(t *testing.T) {
	out, err := yaml.Marshal(durationDoc{D: Duration(90 * time.Second)})
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if !strings.Contains(string(out), "1m30s") {
		t.Errorf("got %q, want a human-readable duration", out)
	}
	var doc durationDoc
	if err := yaml.Unmarshal(out, &doc); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if doc.D.Std() != 90*time.Second {
		t.Errorf("round trip = %v, want 90s", doc.D.Std())
	}
}
