package cli

import (
	"time"

	"github.com/corpix/rle/di"
	"github.com/corpix/rle/log"
	"github.com/corpix/rle/metrics"
	"github.com/corpix/rle/rle"
)

const (
	CommandCompress       = "compress"
	CommandDecompress     = "decompress"
	CommandTestCompress   = "test-compress"
	CommandTestDecompress = "test-decompress"
	CommandTest           = "test"
)

type CodecParams struct {
	di.In

	Codec   *rle.Codec
	Metrics *metrics.Codec `optional:"true"`
}

// WithCodecTools adds compress and decompress commands working on files.
func WithCodecTools(cfg func() *rle.Config) Option {
	return func(c *Cli) {
		di.MustProvide(
			c.Container,
			func() *rle.Codec { return rle.New(cfg()) },
		)

		c.Commands = append(c.Commands,
			&Command{
				Name:      CommandCompress,
				Aliases:   []string{"c"},
				Usage:     "Encode a text file into a token stream",
				ArgsUsage: "<input> <output>",
				Action: func(ctx *Context) error {
					args, err := argsExactly(ctx, "input", "output")
					if err != nil {
						return err
					}

					return di.Invoke(c.Container, func(p CodecParams) error {
						start := time.Now()
						tokens, err := p.Codec.EncodeFile(args[0], args[1])
						observe(p.Metrics, rle.OpEncode, start, tokens, 0, err)
						if err != nil {
							return err
						}

						log.Info().
							Str("input", args[0]).
							Str("output", args[1]).
							Int("tokens", tokens).
							Msg("compression successful")
						return nil
					})
				},
			},
			&Command{
				Name:      CommandDecompress,
				Aliases:   []string{"d"},
				Usage:     "Decode a token stream file into text",
				ArgsUsage: "<input> <output>",
				Action: func(ctx *Context) error {
					args, err := argsExactly(ctx, "input", "output")
					if err != nil {
						return err
					}

					return di.Invoke(c.Container, func(p CodecParams) error {
						start := time.Now()
						written, err := p.Codec.DecodeFile(args[0], args[1])
						observe(p.Metrics, rle.OpDecode, start, 0, written, err)
						if err != nil {
							return err
						}

						log.Info().
							Str("input", args[0]).
							Str("output", args[1]).
							Int64("bytes", written).
							Msg("decompression successful")
						return nil
					})
				},
			},
		)
	}
}
