package log

import (
	"bytes"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want LogLevel
		err  bool
	}{
		{"debug", LogLevel_Debug, false},
		{"WARN", LogLevel_Warn, false},
		{"quiet", LogLevel_Warn, false},
		{"silent", LogLevel_None, false},
		{"", LogLevel_Info, false},
		{"loud", LogLevel_Info, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if (err != nil) != tt.err {
				t.Fatalf("ParseLevel(%q) error = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseLevel(%q) = %s want %s", tt.in, got, tt.want)
			}
		})
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	prev := SetOutput(&buf)
	prevLevel := Level
	defer func() {
		SetOutput(prev)
		Level = prevLevel
	}()

	Level = LogLevel_Warn
	Infof("hidden %d", 1)
	Debugf("hidden %d", 2)
	Warnf("shown %d", 3)
	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("unexpected message at warn level: %q", out)
	}
	if !strings.Contains(out, "[WARNING] shown 3") {
		t.Errorf("missing warning in %q", out)
	}

	buf.Reset()
	Level = LogLevel_Debug
	Enter()
	Debugf("nested")
	Leave()
	if !strings.Contains(buf.String(), "  nested") {
		t.Errorf("debug message not indented: %q", buf.String())
	}
}
