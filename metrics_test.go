package qjson

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func TestMetricsNilReceiverIsNoOp(t *testing.T) {
	var m *Metrics
	parse := m.WrapParse()
	if _, err := parse([]byte("1"), AcceptAnyValue, BackendDefault); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ser := m.WrapSerialize()
	if _, err := ser(Int64(1), true, BareNullOk); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestMetricsCountersIncrement(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)

	parse := m.WrapParse()
	if _, err := parse([]byte("1"), AcceptAnyValue, BackendDefault); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := parse([]byte("["), AcceptAnyValue, BackendDefault); err == nil {
		t.Fatalf("expected a parse error")
	}

	var got dto.Metric
	if err := m.ParseTotal.Write(&got); err != nil {
		t.Fatalf("unexpected error reading metric: %v", err)
	}
	if got.GetCounter().GetValue() != 2 {
		t.Errorf("ParseTotal = %v, want 2", got.GetCounter().GetValue())
	}

	var gotErrs dto.Metric
	if err := m.ParseErrorsTotal.Write(&gotErrs); err != nil {
		t.Fatalf("unexpected error reading metric: %v", err)
	}
	if gotErrs.GetCounter().GetValue() != 1 {
		t.Errorf("ParseErrorsTotal = %v, want 1", gotErrs.GetCounter().GetValue())
	}
}
