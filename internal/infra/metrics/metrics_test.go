package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
)

func gatheredNames(t *testing.T) map[string]bool {
	t.Helper()
	families, err := prometheus.DefaultGatherer.Gather()
	if err != nil {
		t.Fatalf("Gather() error: %v", err)
	}
	names := make(map[string]bool)
	for _, f := range families {
		names[f.GetName()] = true
	}
	return names
}

func TestOperationCounters(t *testing.T) {
	Operations.WithLabelValues("add", "applied").Inc()
	Operations.WithLabelValues("toggle", "noop").Inc()
	TasksRemoved.WithLabelValues("clear_completed").Add(3)

	names := gatheredNames(t)
	for _, name := range []string{"tasklist_operations_total", "tasklist_tasks_removed_total"} {
		if !names[name] {
			t.Errorf("metric %q not found", name)
		}
	}
}

func TestStoreMetrics(t *testing.T) {
	StoreWrites.WithLabelValues("ok").Inc()
	StoreWriteBytes.Observe(128)
	LoadFailures.WithLabelValues("malformed").Inc()

	names := gatheredNames(t)
	expected := []string{
		"tasklist_store_writes_total",
		"tasklist_store_write_bytes",
		"tasklist_load_failures_total",
	}
	for _, name := range expected {
		if !names[name] {
			t.Errorf("metric %q not found", name)
		}
	}
}

func TestObserveCounts(t *testing.T) {
	ObserveCounts(2, 5)

	families, err := prometheus.DefaultGatherer.Gather()
	if err != nil {
		t.Fatalf("Gather() error: %v", err)
	}
	got := map[string]float64{}
	for _, f := range families {
		if f.GetName() != "tasklist_tasks_current" {
			continue
		}
		for _, m := range f.GetMetric() {
			for _, l := range m.GetLabel() {
				if l.GetName() == "state" {
					got[l.GetValue()] = m.GetGauge().GetValue()
				}
			}
		}
	}
	if got["active"] != 2 || got["completed"] != 5 {
		t.Errorf("tasks_current = %v, want active=2 completed=5", got)
	}
}

func TestHealthMetrics(t *testing.T) {
	HealthCheckStatus.WithLabelValues("store").Set(1)

	if !gatheredNames(t)["tasklist_health_check_status"] {
		t.Error("tasklist_health_check_status not found")
	}
}
