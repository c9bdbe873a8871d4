package metrics

import "testing"

func TestMetricFieldKeysAreStable(t *testing.T) {
	if AttrMethod == "" || AttrPath == "" || AttrStatus == "" || AttrFeed == "" || AttrOutcome == "" {
		t.Fatalf("expected metric attribute keys to be non-empty")
	}
	if OutcomeOK == OutcomeError || OutcomeError == OutcomeTimeout {
		t.Fatalf("expected distinct outcome values")
	}
}
