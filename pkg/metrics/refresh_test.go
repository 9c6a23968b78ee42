package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

func TestNilSafeWithoutRegisterer(t *testing.T) {
	m := NewRefreshMetrics(nil)
	m.ObserveDuration("snapshot", time.Second)
	m.IncSuccess("snapshot")
	m.IncFailure("snapshot")

	var empty *RefreshMetrics
	empty.IncSuccess("snapshot")
}

func TestRegistersCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewRefreshMetrics(reg)
	m.IncSuccess("Gold Poll")
	m.ObserveDuration("snapshot", 250*time.Millisecond)

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	if len(families) == 0 {
		t.Fatal("expected registered metric families")
	}
}

func TestNormalizeLabel(t *testing.T) {
	if got := normalizeLabel("  Gold Poll "); got != "gold_poll" {
		t.Fatalf("unexpected label %q", got)
	}
	if got := normalizeLabel(""); got != "unknown" {
		t.Fatalf("unexpected label %q", got)
	}
}
