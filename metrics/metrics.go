package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/corpix/rle/errors"
)

type (
	Collector        = prometheus.Collector
	Counter          = prometheus.Counter
	CounterOpts      = prometheus.CounterOpts
	CounterVec       = prometheus.CounterVec
	Gatherer         = prometheus.Gatherer
	Histogram        = prometheus.Histogram
	HistogramOpts    = prometheus.HistogramOpts
	HistogramVec     = prometheus.HistogramVec
	Labels           = prometheus.Labels
	Registerer       = prometheus.Registerer
	Registry         = prometheus.Registry
	RegisterGatherer interface {
		Registerer
		Gatherer
	}
)

const Namespace = "rle"

var (
	NewCounter      = prometheus.NewCounter
	NewCounterVec   = prometheus.NewCounterVec
	NewHistogram    = prometheus.NewHistogram
	NewHistogramVec = prometheus.NewHistogramVec
	NewRegistry     = prometheus.NewRegistry
	WriteToTextfile = prometheus.WriteToTextfile
)

//

type Config struct {
	// Textfile is a path in node_exporter textfile collector format
	// the registry is written to after each command.
	Textfile string `yaml:"textfile"`
}

func (c *Config) Enabled() bool { return c.Textfile != "" }

// Write stores the gathered metrics of r into the configured textfile.
func (c *Config) Write(r Gatherer) error {
	if !c.Enabled() {
		return nil
	}
	err := WriteToTextfile(c.Textfile, r)
	if err != nil {
		return errors.Wrapf(err, "failed to write metrics to %q", c.Textfile)
	}
	return nil
}

//

const (
	ResultSuccess = "success"
	ResultFailure = "failure"
)

// Codec collects counters for encode and decode operations
// and fixture cases.
type Codec struct {
	Operations *CounterVec
	Tokens     *CounterVec
	Bytes      *CounterVec
	Duration   *HistogramVec
	Cases      *CounterVec
}

func NewCodec(r Registerer) *Codec {
	c := &Codec{
		Operations: NewCounterVec(CounterOpts{
			Namespace: Namespace,
			Name:      "operations_total",
			Help:      "Total number of codec operations by result.",
		}, []string{"op", "result"}),
		Tokens: NewCounterVec(CounterOpts{
			Namespace: Namespace,
			Name:      "tokens_total",
			Help:      "Total number of tokens written by encode or read by decode.",
		}, []string{"op"}),
		Bytes: NewCounterVec(CounterOpts{
			Namespace: Namespace,
			Name:      "bytes_total",
			Help:      "Total number of raw text bytes consumed by encode or produced by decode.",
		}, []string{"op"}),
		Duration: NewHistogramVec(HistogramOpts{
			Namespace: Namespace,
			Name:      "operation_duration_seconds",
			Help:      "Codec operation duration.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
		}, []string{"op"}),
		Cases: NewCounterVec(CounterOpts{
			Namespace: Namespace,
			Name:      "fixture_cases_total",
			Help:      "Total number of fixture cases by mode and result.",
		}, []string{"mode", "result"}),
	}
	r.MustRegister(
		c.Operations,
		c.Tokens,
		c.Bytes,
		c.Duration,
		c.Cases,
	)
	return c
}

// Observe records one operation which started at start.
func (c *Codec) Observe(op string, start time.Time, tokens int, size int64, err error) {
	result := ResultSuccess
	if err != nil {
		result = ResultFailure
	}
	c.Operations.WithLabelValues(op, result).Inc()
	c.Duration.WithLabelValues(op).Observe(time.Since(start).Seconds())
	if err == nil {
		c.Tokens.WithLabelValues(op).Add(float64(tokens))
		c.Bytes.WithLabelValues(op).Add(float64(size))
	}
}

func (c *Codec) ObserveCase(mode string, passed bool) {
	result := ResultSuccess
	if !passed {
		result = ResultFailure
	}
	c.Cases.WithLabelValues(mode, result).Inc()
}
