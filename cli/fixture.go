package cli

import (
	"github.com/corpix/rle/di"
	"github.com/corpix/rle/errors"
	"github.com/corpix/rle/fixture"
	"github.com/corpix/rle/log"
)

type FixtureParams struct {
	di.In

	Runner *fixture.Runner
	Config *fixture.Config
}

// WithFixtureTools adds commands running golden fixture files against the codec.
// It expects WithCodecTools to provide the codec.
func WithFixtureTools(cfg func() *fixture.Config) Option {
	return func(c *Cli) {
		di.MustProvide(
			c.Container,
			cfg,
			func(conf *fixture.Config, p CodecParams) *fixture.Runner {
				return fixture.NewRunner(conf, p.Codec, p.Metrics)
			},
		)

		command := func(name string, mode fixture.Mode, usage string) *Command {
			return &Command{
				Name:      name,
				Usage:     usage,
				ArgsUsage: "<fixtures>",
				Flags: Flags{
					&StringFlag{
						Name:    "format",
						Aliases: []string{"f"},
						Usage:   "report format (text, yaml, json, msgpack)",
					},
				},
				Action: func(ctx *Context) error {
					args, err := argsExactly(ctx, "fixtures")
					if err != nil {
						return err
					}

					return di.Invoke(c.Container, func(p FixtureParams) error {
						format := ctx.String("format")
						if format == "" {
							format = p.Config.Format
						}
						err := fixture.ValidateFormat(format)
						if err != nil {
							return err
						}

						report, err := p.Runner.RunFile(mode, args[0])
						if err != nil {
							return err
						}

						err = report.Render(ctx.App.Writer, format)
						if err != nil {
							return err
						}

						log.Info().
							Str("run", report.ID).
							Str("file", report.File).
							Int("passed", report.Passed).
							Int("total", report.Total).
							Dur("duration", report.Duration).
							Msg("fixtures finished")

						if !report.OK() {
							return errors.Wrapf(
								ErrFixtures,
								"%d of %d cases failed",
								report.Total-report.Passed, report.Total,
							)
						}
						return nil
					})
				},
			}
		}

		c.Commands = append(c.Commands,
			command(
				CommandTestCompress, fixture.ModeCompress,
				"Run compression fixtures: raw text is compressed and compared to the token stream",
			),
			command(
				CommandTestDecompress, fixture.ModeDecompress,
				"Run decompression fixtures: the token stream is decompressed and compared to raw text",
			),
			command(
				CommandTest, fixture.ModeRoundTrip,
				"Run compression fixtures in both directions",
			),
		)
	}
}
