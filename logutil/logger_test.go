// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package logutil

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewLoggerCreatesWithComponent(t *testing.T) {
	var buf bytes.Buffer
	SetupLoggerWithWriter(&buf, false, false)

	logger := NewLogger("weburl")
	if logger.Component() != "weburl" {
		t.Errorf("expected component 'weburl', got %q", logger.Component())
	}

	logger.Info("hello")
	if !strings.Contains(buf.String(), "component=weburl") {
		t.Errorf("expected output to contain component=weburl, got: %s", buf.String())
	}
}

func TestChainingContexts(t *testing.T) {
	var buf bytes.Buffer
	SetupLoggerWithWriter(&buf, false, false)

	logger := NewLogger("weburl").
		WithOperation("set-host").
		WithInput("example.com:8080").
		WithFields("scheme", "https")
	logger.Info("chain test")

	output := buf.String()
	for _, want := range []string{
		"component=weburl",
		"operation=set-host",
		"input=example.com:8080",
		"scheme=https",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %s in output, got: %s", want, output)
		}
	}
	if logger.Component() != "weburl" {
		t.Errorf("expected component 'weburl' after chaining, got %q", logger.Component())
	}
}

func TestLogLevels(t *testing.T) {
	tests := []struct {
		name    string
		logFunc func(*ComponentLogger, string, ...any)
		level   string
	}{
		{"debug", (*ComponentLogger).Debug, "DEBUG"},
		{"info", (*ComponentLogger).Info, "INFO"},
		{"warn", (*ComponentLogger).Warn, "WARN"},
		{"error", (*ComponentLogger).Error, "ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			SetupLoggerWithWriter(&buf, true, false)

			tt.logFunc(NewLogger("lvl-test"), "level test msg", "k", "v")

			output := buf.String()
			if !strings.Contains(output, tt.level) {
				t.Errorf("expected level %s in output, got: %s", tt.level, output)
			}
			if !strings.Contains(output, "level test msg") {
				t.Errorf("expected message in output, got: %s", output)
			}
		})
	}
}

func TestLogLevelsStructured(t *testing.T) {
	var buf bytes.Buffer
	SetupLoggerWithWriter(&buf, true, true)

	NewLogger("weburl").WithInput("http://a/").Debug("validation error", "offset", 3)

	output := buf.String()
	for _, want := range []string{`"component":"weburl"`, `"input":"http://a/"`, `"offset":3`} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %s in JSON output, got: %s", want, output)
		}
	}
}
