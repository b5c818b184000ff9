package logger

import (
	"bytes"
	"encoding/json"
	"testing"
)

func TestNewWithEmitsTaggedJSON(t *testing.T) {
	var buf bytes.Buffer
	log := newWith(&buf)

	log.Info("hello", "key", "value")

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("expected JSON record, got %q: %v", buf.String(), err)
	}
	if record["service"] != serviceName {
		t.Fatalf("expected service attribute, got %v", record["service"])
	}
	if record["msg"] != "hello" || record["key"] != "value" {
		t.Fatalf("unexpected record: %v", record)
	}
}

func TestNewSuppressesDebug(t *testing.T) {
	var buf bytes.Buffer
	log := newWith(&buf)

	log.Debug("hidden")
	if buf.Len() != 0 {
		t.Fatalf("expected debug record to be suppressed, got %q", buf.String())
	}
}
