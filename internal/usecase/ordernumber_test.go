package usecase

import (
	"strconv"
	"strings"
	"testing"
	"time"
)

func TestGenerateOrderNumberFormat(t *testing.T) {
	number := generateOrderNumber()

	parts := strings.Split(number, "-")
	if len(parts) != 3 {
		t.Fatalf("expected three segments, got %q", number)
	}
	if parts[0] != "ORD" {
		t.Fatalf("expected ORD prefix, got %q", parts[0])
	}
	if len(parts[2]) != 4 {
		t.Fatalf("expected four character random segment, got %q", parts[2])
	}
	if number != strings.ToUpper(number) {
		t.Fatalf("expected uppercase number, got %q", number)
	}

	ts, err := strconv.ParseInt(strings.ToLower(parts[1]), 36, 64)
	if err != nil {
		t.Fatalf("timestamp segment does not parse as base36: %v", err)
	}
	now := time.Now().UnixMilli()
	if ts > now || ts < now-time.Minute.Milliseconds() {
		t.Fatalf("timestamp segment %d is not recent (now %d)", ts, now)
	}
}
