package main

import (
	"github.com/corpix/rle/cli"
	"github.com/corpix/rle/config"
	"github.com/corpix/rle/errors"
	"github.com/corpix/rle/fixture"
	"github.com/corpix/rle/log"
	"github.com/corpix/rle/metrics"
	"github.com/corpix/rle/rle"
)

type Config struct {
	Log     *log.Config     `yaml:"log"`
	Codec   *rle.Config     `yaml:"codec"`
	Fixture *fixture.Config `yaml:"fixture"`
	Metrics *metrics.Config `yaml:"metrics"`
}

func (c *Config) Default() {
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

func (c *Config) Validate() error {
	err := c.Log.Validate()
	if err != nil {
		return errors.Wrap(err, "log")
	}
	err = c.Codec.Validate()
	if err != nil {
		return errors.Wrap(err, "codec")
	}
	err = c.Fixture.Validate()
	if err != nil {
		return errors.Wrap(err, "fixture")
	}
	return nil
}

func (c *Config) LogConfig() *log.Config         { return c.Log }
func (c *Config) CodecConfig() *rle.Config       { return c.Codec }
func (c *Config) FixtureConfig() *fixture.Config { return c.Fixture }
func (c *Config) MetricsConfig() *metrics.Config { return c.Metrics }

var conf = &Config{}

//

func main() {
	cli.New(
		cli.WithName("rle"),
		cli.WithUsage("line-oriented run-length encoding for text"),
		cli.WithDescription("Compress text into \"<symbol> <count>\" token lines and back, run golden fixtures"),
		cli.WithConfigTools(
			conf,
			config.YamlUnmarshaler,
			config.YamlMarshaler,
		),
		cli.WithLogTools(conf.LogConfig),
		cli.WithMetricsTools(conf.MetricsConfig),
		cli.WithCodecTools(conf.CodecConfig),
		cli.WithFixtureTools(conf.FixtureConfig),
	).RunAndExitOnError()
}
