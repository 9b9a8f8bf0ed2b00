package qjson

import "github.com/prometheus/client_golang/prometheus"

// Metrics is an optional, injectable set of counters and a histogram
// around parse/serialize calls. A nil *Metrics is a documented no-op,
// so instrumentation never touches the hot path unless a caller opts
// in by constructing one.
type Metrics struct {
	ParseTotal           prometheus.Counter
	ParseErrorsTotal     prometheus.Counter
	SerializeTotal       prometheus.Counter
	SerializeErrorsTotal prometheus.Counter
	ParseDurationSeconds prometheus.Histogram
}

// NewMetrics registers a standard set of qjson counters/histogram on
// reg and returns a *Metrics wired to them.
func NewMetrics(reg *prometheus.Registry) *Metrics {
	m := &Metrics{
		ParseTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "qjson_parse_total",
			Help: "Total number of ParseUtf8 calls.",
		}),
		ParseErrorsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "qjson_parse_errors_total",
			Help: "Total number of ParseUtf8 calls that returned an error.",
		}),
		SerializeTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "qjson_serialize_total",
			Help: "Total number of ToUTF8 calls.",
		}),
		SerializeErrorsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "qjson_serialize_errors_total",
			Help: "Total number of ToUTF8 calls that returned an error.",
		}),
		ParseDurationSeconds: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "qjson_parse_duration_seconds",
			Help:    "ParseUtf8 wall-clock duration.",
			Buckets: prometheus.DefBuckets,
		}),
	}
	reg.MustRegister(m.ParseTotal, m.ParseErrorsTotal, m.SerializeTotal, m.SerializeErrorsTotal, m.ParseDurationSeconds)
	return m
}

// WrapParse returns a ParseUtf8-shaped function that records m's
// counters and histogram around a call to ParseUtf8. A nil m returns
// ParseUtf8 unwrapped.
func (m *Metrics) WrapParse() func([]byte, ParseOption, Backend) (Value, error) {
	if m == nil {
		return ParseUtf8
	}
	return func(data []byte, opt ParseOption, backend Backend) (Value, error) {
		timer := prometheus.NewTimer(m.ParseDurationSeconds)
		defer timer.ObserveDuration()
		m.ParseTotal.Inc()
		v, err := ParseUtf8(data, opt, backend)
		if err != nil {
			m.ParseErrorsTotal.Inc()
		}
		return v, err
	}
}

// WrapSerialize returns a ToUTF8-shaped function that records m's
// counters around a call to ToUTF8. A nil m returns ToUTF8 unwrapped.
func (m *Metrics) WrapSerialize() func(Value, bool, SerOption) ([]byte, error) {
	if m == nil {
		return ToUTF8
	}
	return func(v Value, compact bool, opt SerOption) ([]byte, error) {
		m.SerializeTotal.Inc()
		b, err := ToUTF8(v, compact, opt)
		if err != nil {
			m.SerializeErrorsTotal.Inc()
		}
		return b, err
	}
}
