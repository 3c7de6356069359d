// SPDX-License-Identifier: MIT
package log

import (
	"bytes"
	"encoding/json"
	"testing"
)

func TestConfigureAndDerivedLoggers(t *testing.T) {
	var buf bytes.Buffer
	Configure(Config{Level: "debug", Output: &buf, Service: "arxiv-sanity-test"})

	logger := Base()
	logger.Info().Msg("base entry")
	cfgLogger := WithComponent("config")
	cfgLogger.Debug().Str("path", "settings.ini").Msg("component entry")

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	if len(lines) != 2 {
		t.Fatalf("expected 2 log lines, got %d", len(lines))
	}

	var first map[string]any
	if err := json.Unmarshal(lines[0], &first); err != nil {
		t.Fatalf("first line is not valid JSON: %v", err)
	}
	if first["service"] != "arxiv-sanity-test" {
		t.Errorf("expected service arxiv-sanity-test, got %v", first["service"])
	}
	if first["message"] != "base entry" {
		t.Errorf("expected message %q, got %v", "base entry", first["message"])
	}

	var second map[string]any
	if err := json.Unmarshal(lines[1], &second); err != nil {
		t.Fatalf("second line is not valid JSON: %v", err)
	}
	if second["component"] != "config" {
		t.Errorf("expected component config, got %v", second["component"])
	}
	if second["level"] != "debug" {
		t.Errorf("expected debug level, got %v", second["level"])
	}

	// Configure is once-only. A second call must not redirect output.
	var other bytes.Buffer
	Configure(Config{Output: &other})
	logger = Base()
	logger.Info().Msg("still on the first writer")
	if other.Len() != 0 {
		t.Errorf("second Configure call should be a no-op, wrote %d bytes", other.Len())
	}
}
