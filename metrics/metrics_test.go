package metrics

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corpix/rle/errors"
)

func TestCodec(t *testing.T) {
	var (
		r = NewRegistry()
		c = NewCodec(r)
	)

	c.Observe("encode", time.Now(), 3, 8, nil)
	c.Observe("encode", time.Now(), 0, 0, errors.New("boom"))
	c.ObserveCase("compress", true)
	c.ObserveCase("compress", false)

	assert.Equal(t, 1.0, testutil.ToFloat64(c.Operations.WithLabelValues("encode", ResultSuccess)))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.Operations.WithLabelValues("encode", ResultFailure)))
	assert.Equal(t, 3.0, testutil.ToFloat64(c.Tokens.WithLabelValues("encode")))
	assert.Equal(t, 8.0, testutil.ToFloat64(c.Bytes.WithLabelValues("encode")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.Cases.WithLabelValues("compress", ResultFailure)))
}

func TestConfigWrite(t *testing.T) {
	var (
		r    = NewRegistry()
		c    = NewCodec(r)
		path = filepath.Join(t.TempDir(), "rle.prom")
	)
	c.Observe("decode", time.Now(), 2, 5, nil)

	require.NoError(t, (&Config{}).Write(r))

	conf := &Config{Textfile: path}
	require.NoError(t, conf.Write(r))

	buf, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(buf), `rle_bytes_total{op="decode"} 5`)
}
