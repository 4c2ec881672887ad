package fixture

import (
	"bytes"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/google/uuid"

	"github.com/corpix/rle/errors"
	"github.com/corpix/rle/log"
	"github.com/corpix/rle/metrics"
	"github.com/corpix/rle/rle"
)

type Mode string

const (
	ModeCompress   Mode = "compress"
	ModeDecompress Mode = "decompress"
	ModeRoundTrip  Mode = "roundtrip"
)

func (m Mode) Validate() error {
	switch m {
	case ModeCompress, ModeDecompress, ModeRoundTrip:
		return nil
	default:
		return errors.Newf("unsupported fixture mode %q", string(m))
	}
}

//

type Config struct {
	Format   string `yaml:"format"`
	MaxCases int    `yaml:"max-cases"`
}

func (c *Config) Default() {
	if c.Format == "" {
		c.Format = FormatText
	}
}

func (c *Config) Validate() error {
	if c.MaxCases < 0 {
		return errors.Newf("max-cases should not be negative, got %d", c.MaxCases)
	}
	return ValidateFormat(c.Format)
}

//

type (
	Result struct {
		Index    int    `json:"index"    yaml:"index"    msgpack:"index"`
		Name     string `json:"name"     yaml:"name"     msgpack:"name"`
		Line     int    `json:"line"     yaml:"line"     msgpack:"line"`
		Passed   bool   `json:"passed"   yaml:"passed"   msgpack:"passed"`
		Error    string `json:"error,omitempty"    yaml:"error,omitempty"    msgpack:"error,omitempty"`
		Expected string `json:"expected" yaml:"expected" msgpack:"expected"`
		Actual   string `json:"actual"   yaml:"actual"   msgpack:"actual"`
	}
	Report struct {
		ID       string        `json:"id"       yaml:"id"       msgpack:"id"`
		Mode     Mode          `json:"mode"     yaml:"mode"     msgpack:"mode"`
		File     string        `json:"file,omitempty" yaml:"file,omitempty" msgpack:"file,omitempty"`
		Passed   int           `json:"passed"   yaml:"passed"   msgpack:"passed"`
		Total    int           `json:"total"    yaml:"total"    msgpack:"total"`
		Duration time.Duration `json:"duration" yaml:"duration" msgpack:"duration"`
		Results  []*Result     `json:"results"  yaml:"results"  msgpack:"results"`
	}
)

// OK reports whether every case passed.
func (r *Report) OK() bool { return r.Passed == r.Total }

//

type Runner struct {
	Codec    *rle.Codec
	Metrics  *metrics.Codec
	MaxCases int
}

func NewRunner(c *Config, codec *rle.Codec, m *metrics.Codec) *Runner {
	return &Runner{
		Codec:    codec,
		Metrics:  m,
		MaxCases: c.MaxCases,
	}
}

// RunFile parses the fixture file at path and runs its cases.
func (r *Runner) RunFile(mode Mode, path string) (*Report, error) {
	cases, err := ParseFile(path)
	if err != nil {
		return nil, err
	}
	report, err := r.Run(mode, cases)
	if err != nil {
		return nil, err
	}
	report.File = path
	return report, nil
}

// Run executes cases in order, each against its own buffers.
func (r *Runner) Run(mode Mode, cases []*Case) (*Report, error) {
	err := mode.Validate()
	if err != nil {
		return nil, err
	}

	report := &Report{
		ID:   uuid.NewString(),
		Mode: mode,
	}
	l := log.With().
		Str("run", report.ID).
		Str("mode", string(mode)).
		Logger()

	start := time.Now()
	for n, c := range cases {
		if r.MaxCases > 0 && n >= r.MaxCases {
			l.Warn().
				Int("skipped", len(cases)-n).
				Int("max-cases", r.MaxCases).
				Msg("case limit reached")
			break
		}

		result := r.runCase(mode, c)
		result.Index = n + 1
		report.Results = append(report.Results, result)
		report.Total++
		if result.Passed {
			report.Passed++
		}
		if r.Metrics != nil {
			r.Metrics.ObserveCase(string(mode), result.Passed)
		}

		if result.Passed {
			l.Debug().
				Int("case", result.Index).
				Str("name", result.Name).
				Msg("passed")
		} else {
			l.Warn().
				Int("case", result.Index).
				Str("name", result.Name).
				Str("error", result.Error).
				Msg("failed")
			l.Debug().
				Str("expected", spew.Sdump([]byte(result.Expected))).
				Str("actual", spew.Sdump([]byte(result.Actual))).
				Msg("mismatch")
		}
	}
	report.Duration = time.Since(start)

	return report, nil
}

func (r *Runner) runCase(mode Mode, c *Case) *Result {
	result := &Result{
		Name: c.Name,
		Line: c.Line,
	}

	switch mode {
	case ModeCompress:
		r.check(result, rle.OpEncode, c.Input, c.Expected)
	case ModeDecompress:
		r.check(result, rle.OpDecode, c.Input, c.Expected)
	case ModeRoundTrip:
		if r.check(result, rle.OpEncode, c.Input, c.Expected) {
			r.check(result, rle.OpDecode, c.Expected, c.Input)
		}
	}
	return result
}

func (r *Runner) check(result *Result, op string, input []byte, expected []byte) bool {
	var (
		out    = bytes.NewBuffer(make([]byte, 0, len(expected)))
		tokens int
		size   int64
		err    error
		start  = time.Now()
	)

	switch op {
	case rle.OpEncode:
		tokens, err = r.Codec.Encode(bytes.NewReader(input), out)
		size = int64(len(input))
	case rle.OpDecode:
		size, err = r.Codec.Decode(bytes.NewReader(input), out)
	}
	if r.Metrics != nil {
		r.Metrics.Observe(op, start, tokens, size, err)
	}

	result.Expected = string(expected)
	result.Actual = out.String()
	if err != nil {
		result.Passed = false
		result.Error = err.Error()
		return false
	}

	result.Passed = bytes.Equal(out.Bytes(), expected)
	return result.Passed
}
