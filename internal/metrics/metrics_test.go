package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestObserveRPC(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.ObserveRPC("/tripsplit.v1.TripService/GetTrip", "ok", 0.01)
	m.ObserveRPC("/tripsplit.v1.TripService/GetTrip", "ok", 0.02)
	m.ObserveRPC("/tripsplit.v1.TripService/GetTrip", "not_found", 0.01)

	if got := testutil.ToFloat64(m.RPCRequests.WithLabelValues("/tripsplit.v1.TripService/GetTrip", "ok")); got != 2 {
		t.Errorf("ok requests: expected 2, got %v", got)
	}
	if got := testutil.ToFloat64(m.RPCRequests.WithLabelValues("/tripsplit.v1.TripService/GetTrip", "not_found")); got != 1 {
		t.Errorf("not_found requests: expected 1, got %v", got)
	}
	if got := testutil.CollectAndCount(m.RPCDuration); got != 1 {
		t.Errorf("duration series: expected 1, got %d", got)
	}
}

func TestObserveDebts(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.ObserveDebts(3)

	if got := testutil.CollectAndCount(m.DebtsEmitted); got != 1 {
		t.Errorf("debts histogram: expected 1 series, got %d", got)
	}
	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("Gather failed: %v", err)
	}
	found := false
	for _, f := range families {
		if f.GetName() == "tripsplit_ledger_debts_emitted" {
			found = true
			if c := f.GetMetric()[0].GetHistogram().GetSampleCount(); c != 1 {
				t.Errorf("sample count: expected 1, got %d", c)
			}
		}
	}
	if !found {
		t.Error("tripsplit_ledger_debts_emitted not registered")
	}
}

func TestNilMetrics(t *testing.T) {
	var m *Metrics
	m.ObserveRPC("/x", "ok", 1)
	m.ObserveDebts(1)
}
