package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func TestObserveRecordsCounterAndHistogram(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewHTTPMetrics(reg)

	m.Observe("GET", "/api/v1/products", 200, 150*time.Millisecond)
	m.Observe("GET", "/api/v1/products", 200, 50*time.Millisecond)
	m.Observe("POST", "/api/v1/products", 201, 20*time.Millisecond)

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather metrics: %v", err)
	}

	got := fetchCounterValue(t, families, "http_requests_total", map[string]string{
		"method": "GET",
		"route":  "/api/v1/products",
		"status": "200",
	})
	if got != 2 {
		t.Fatalf("expected 2 GET requests, got %v", got)
	}

	sum := fetchHistogramSum(t, families, "http_request_duration_seconds", map[string]string{
		"method": "GET",
		"route":  "/api/v1/products",
	})
	if sum < 0.19 || sum > 0.21 {
		t.Fatalf("unexpected duration sum %v", sum)
	}
}

func TestObserveNormalizesEmptyLabels(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewHTTPMetrics(reg)

	m.Observe("", "", 404, time.Millisecond)

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather metrics: %v", err)
	}

	got := fetchCounterValue(t, families, "http_requests_total", map[string]string{
		"method": "unknown",
		"route":  "unknown",
		"status": "404",
	})
	if got != 1 {
		t.Fatalf("expected 1 request, got %v", got)
	}
}

func TestObserveNilSafe(t *testing.T) {
	var m *HTTPMetrics
	m.Observe("GET", "/healthz", 200, time.Millisecond)

	empty := NewHTTPMetrics(nil)
	empty.Observe("GET", "/healthz", 200, time.Millisecond)
}

func fetchCounterValue(t *testing.T, families []*dto.MetricFamily, name string, labels map[string]string) float64 {
	t.Helper()
	family := findMetricFamily(families, name)
	if family == nil {
		t.Fatalf("metric family %q not found", name)
	}
	for _, metric := range family.GetMetric() {
		if matchesLabels(metric, labels) {
			return metric.GetCounter().GetValue()
		}
	}
	t.Fatalf("no %q sample with labels %v", name, labels)
	return 0
}

func fetchHistogramSum(t *testing.T, families []*dto.MetricFamily, name string, labels map[string]string) float64 {
	t.Helper()
	family := findMetricFamily(families, name)
	if family == nil {
		t.Fatalf("metric family %q not found", name)
	}
	for _, metric := range family.GetMetric() {
		if matchesLabels(metric, labels) {
			return metric.GetHistogram().GetSampleSum()
		}
	}
	t.Fatalf("no %q sample with labels %v", name, labels)
	return 0
}

func findMetricFamily(families []*dto.MetricFamily, name string) *dto.MetricFamily {
	for _, family := range families {
		if family.GetName() == name {
			return family
		}
	}
	return nil
}

func matchesLabels(metric *dto.Metric, labels map[string]string) bool {
	found := map[string]string{}
	for _, pair := range metric.GetLabel() {
		found[pair.GetName()] = pair.GetValue()
	}
	for key, value := range labels {
		if found[key] != value {
			return false
		}
	}
	return true
}
