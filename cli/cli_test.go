package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corpix/rle/config"
	"github.com/corpix/rle/fixture"
	"github.com/corpix/rle/log"
	"github.com/corpix/rle/metrics"
	"github.com/corpix/rle/rle"
)

type testConfig struct {
	Log     *log.Config     `yaml:"log"`
	Codec   *rle.Config     `yaml:"codec"`
	Fixture *fixture.Config `yaml:"fixture"`
	Metrics *metrics.Config `yaml:"metrics"`
}

func (c *testConfig) Default() {
	if c.Log == nil {
		c.Log = &log.Config{}
	}
	c.Log.Default()
	if c.Codec == nil {
		c.Codec = &rle.Config{}
	}
	c.Codec.Default()
	if c.Fixture == nil {
		c.Fixture = &fixture.Config{}
	}
	c.Fixture.Default()
	if c.Metrics == nil {
		c.Metrics = &metrics.Config{}
	}
}

func (c *testConfig) Validate() error {
	return c.Codec.Validate()
}

func newTestCli(out *bytes.Buffer) (*Cli, *testConfig) {
	conf := &testConfig{}
	conf.Default()

	c := New(
		WithName("rle"),
		WithLogTools(func() *log.Config { return conf.Log }, log.WithWriter(bytes.NewBuffer(nil))),
		WithMetricsTools(func() *metrics.Config { return conf.Metrics }),
		WithCodecTools(func() *rle.Config { return conf.Codec }),
		WithFixtureTools(func() *fixture.Config { return conf.Fixture }),
	)
	c.Writer = out
	c.ErrWriter = bytes.NewBuffer(nil)
	return c, conf
}

func TestCompressDecompress(t *testing.T) {
	var (
		dir        = t.TempDir()
		original   = filepath.Join(dir, "original.txt")
		compressed = filepath.Join(dir, "compressed.txt")
		restored   = filepath.Join(dir, "restored.txt")
		textfile   = filepath.Join(dir, "rle.prom")
	)
	require.NoError(t, os.WriteFile(original, []byte("ab\ncc\n"), 0o644))

	c, _ := newTestCli(bytes.NewBuffer(nil))
	require.NoError(t, c.Run([]string{"rle", "--metrics-textfile", textfile, "compress", original, compressed}))

	buf, err := os.ReadFile(compressed)
	require.NoError(t, err)
	assert.Equal(t, "a 1 b 1\nc 2\n", string(buf))

	buf, err = os.ReadFile(textfile)
	require.NoError(t, err)
	assert.Contains(t, string(buf), `rle_tokens_total{op="encode"} 3`)

	c, _ = newTestCli(bytes.NewBuffer(nil))
	require.NoError(t, c.Run(LegacyArgs([]string{"rle", "-decompress", compressed, restored})))

	buf, err = os.ReadFile(restored)
	require.NoError(t, err)
	assert.Equal(t, "ab\ncc\n", string(buf))
}

func TestCompressErrors(t *testing.T) {
	dir := t.TempDir()
	spaced := filepath.Join(dir, "spaced.txt")
	require.NoError(t, os.WriteFile(spaced, []byte("a b\n"), 0o644))

	c, _ := newTestCli(bytes.NewBuffer(nil))
	err := c.Run([]string{"rle", "compress", spaced, filepath.Join(dir, "out.txt")})
	assert.ErrorIs(t, err, rle.ErrDisallowedSymbol)
	assert.NoFileExists(t, filepath.Join(dir, "out.txt"))

	c, _ = newTestCli(bytes.NewBuffer(nil))
	err = c.Run([]string{"rle", "compress", spaced})
	assert.ErrorIs(t, err, ErrUsage)

	c, _ = newTestCli(bytes.NewBuffer(nil))
	err = c.Run([]string{"rle", "decompress", filepath.Join(dir, "missing.txt"), filepath.Join(dir, "out.txt")})
	assert.ErrorIs(t, err, rle.ErrIO)
}

func TestFixtures(t *testing.T) {
	samples := []struct {
		args   []string
		output string
		err    error
	}{
		{
			[]string{"rle", "-test-compress", "../fixture/testdata/compress.txt"},
			"Test Results: 4/4 passed",
			nil,
		},
		{
			[]string{"rle", "-test-decompress", "../fixture/testdata/decompress.txt"},
			"Test Results: 3/3 passed",
			nil,
		},
		{
			[]string{"rle", "-test", "../fixture/testdata/compress.txt"},
			"Roundtrip test case 4 (empty line in the middle): PASSED",
			nil,
		},
		{
			[]string{"rle", "test-compress", "--format", "yaml", "../fixture/testdata/failing.txt"},
			"passed: 1",
			ErrFixtures,
		},
	}

	for _, sample := range samples {
		t.Run(sample.args[1], func(t *testing.T) {
			out := bytes.NewBuffer(nil)
			c, _ := newTestCli(out)

			err := c.Run(LegacyArgs(sample.args))
			if sample.err != nil {
				assert.ErrorIs(t, err, sample.err)
			} else {
				require.NoError(t, err)
			}
			assert.Contains(t, out.String(), sample.output)
		})
	}
}

func TestConfigTools(t *testing.T) {
	var (
		dir  = t.TempDir()
		path = filepath.Join(dir, "config.yml")
		in   = filepath.Join(dir, "in.txt")
		out  = bytes.NewBuffer(nil)
		conf = &testConfig{}
	)
	require.NoError(t, os.WriteFile(path, []byte("codec:\n  buffer-size: 32\n"), 0o644))
	require.NoError(t, os.WriteFile(in, []byte("zzz"), 0o644))

	c := New(
		WithName("rle"),
		WithConfigTools(conf, config.YamlUnmarshaler, config.YamlMarshaler),
		WithCodecTools(func() *rle.Config { return conf.Codec }),
	)
	c.Writer = out

	require.NoError(t, c.Run([]string{"rle", "--config", path, "compress", in, filepath.Join(dir, "out.txt")}))
	assert.Equal(t, 32, conf.Codec.BufferSize)
	assert.Equal(t, fixture.FormatText, conf.Fixture.Format)

	c = New(
		WithName("rle"),
		WithConfigTools(&testConfig{}, config.YamlUnmarshaler, config.YamlMarshaler),
	)
	c.Writer = out
	require.NoError(t, c.Run([]string{"rle", "--config", path, "config", "validate"}))
	assert.Contains(t, out.String(), "configuration is valid")
}

func TestLegacyArgs(t *testing.T) {
	args := []string{"rle", "-compress", "in", "out"}
	assert.Equal(t, []string{"rle", "compress", "in", "out"}, LegacyArgs(args))
	assert.Equal(t, "-compress", args[1])

	assert.Equal(t, []string{"rle", "-x"}, LegacyArgs([]string{"rle", "-x"}))
	assert.Equal(t, []string{"rle"}, LegacyArgs([]string{"rle"}))
}
