package core

import (
	"encoding/json"
	"testing"
	"time"
)

func TestTimestampJSONRoundTrip(t *testing.T) {
	original := NewTimestamp(time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC))

	raw, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var decoded Timestamp
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !decoded.Time().Equal(original.Time()) {
		t.Errorf("round trip changed value: %v != %v", decoded, original)
	}
}

func TestTimestampOrdering(t *testing.T) {
	earlier := NewTimestamp(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	later := NewTimestamp(time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC))

	if !earlier.Before(later) {
		t.Error("expected earlier.Before(later)")
	}
	if !later.After(earlier) {
		t.Error("expected later.After(earlier)")
	}
	if earlier.IsZero() {
		t.Error("non-zero timestamp reported as zero")
	}
}

func TestTimestampDatabaseRoundTrip(t *testing.T) {
	original := NewTimestamp(time.Date(2026, 6, 30, 18, 45, 12, 0, time.UTC))

	v, err := original.Value()
	if err != nil {
		t.Fatalf("value: %v", err)
	}

	var scanned Timestamp
	if err := scanned.Scan(v); err != nil {
		t.Fatalf("scan: %v", err)
	}
	if !scanned.Time().Equal(original.Time()) {
		t.Errorf("round trip changed value: %v != %v", scanned, original)
	}

	var fromNull Timestamp
	if err := fromNull.Scan(nil); err != nil {
		t.Fatalf("scan nil: %v", err)
	}
	if !fromNull.IsZero() {
		t.Error("scanning nil should yield a zero timestamp")
	}

	var bad Timestamp
	if err := bad.Scan(42); err == nil {
		t.Error("expected error scanning an int")
	}
}
