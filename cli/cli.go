package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/corpix/rle/config"
	"github.com/corpix/rle/di"
	"github.com/corpix/rle/errors"
	"github.com/corpix/rle/log"
	"github.com/corpix/rle/metrics"

	cli "github.com/urfave/cli/v2"
)

type (
	BoolFlag         = cli.BoolFlag
	Command          = cli.Command
	Commands         = cli.Commands
	Context          = cli.Context
	DurationFlag     = cli.DurationFlag
	Flag             = cli.Flag
	Flags            = []Flag
	Float64Flag      = cli.Float64Flag
	Float64SliceFlag = cli.Float64SliceFlag
	GenericFlag      = cli.GenericFlag
	Int64Flag        = cli.Int64Flag
	Int64SliceFlag   = cli.Int64SliceFlag
	IntFlag          = cli.IntFlag
	IntSliceFlag     = cli.IntSliceFlag
	PathFlag         = cli.PathFlag
	StringFlag       = cli.StringFlag
	StringSliceFlag  = cli.StringSliceFlag
	TimestampFlag    = cli.TimestampFlag
	Uint64Flag       = cli.Uint64Flag
	UintFlag         = cli.UintFlag

	App        = cli.App
	BeforeFunc = cli.BeforeFunc
	AfterFunc  = cli.AfterFunc
	ActionFunc = cli.ActionFunc
	Action     = func(*Context) error

	Config          = config.Config
	ConfigContainer = config.Container

	Cli struct {
		*App
		Config    *ConfigContainer
		Container *di.Container
	}

	Option func(*Cli)
)

//

func WithComposition(options ...Option) Option {
	return func(c *Cli) {
		for _, option := range options {
			option(c)
		}
	}
}

//

func WithName(name string) Option {
	return func(c *Cli) {
		c.Name = name
	}
}

func WithDescription(desc string) Option {
	return func(c *Cli) {
		c.Description = desc
	}
}

func WithUsage(usage string) Option {
	return func(c *Cli) {
		c.Usage = usage
	}
}

func WithVersion(version string) Option {
	return func(c *Cli) {
		c.Version = version
	}
}

func WithConfig(cfg Config) Option {
	return func(c *Cli) {
		c.Config = config.New(cfg)
	}
}

func WithContainer(cont *di.Container) Option {
	return func(c *Cli) {
		c.Container = cont
	}
}

//

func WithFlags(flags Flags) Option {
	return func(c *Cli) {
		c.Flags = append(c.Flags, flags...)
	}
}

func WithCommands(commands Commands) Option {
	return func(c *Cli) {
		c.Commands = append(c.Commands, commands...)
	}
}

//

func ActionChain(current Action, next Action) Action {
	if current != nil {
		return func(ctx *Context) error {
			err := current(ctx)
			if err != nil {
				return err
			}
			return next(ctx)
		}
	}
	return next
}

func WithBefore(fn BeforeFunc) Option {
	return func(c *Cli) {
		c.Before = ActionChain(c.Before, fn)
	}
}
func WithAfter(fn AfterFunc) Option {
	return func(c *Cli) {
		c.After = ActionChain(c.After, fn)
	}
}
func WithAction(fn ActionFunc) Option {
	return func(c *Cli) {
		c.Action = ActionChain(c.Action, fn)
	}
}

//

func ConfigFromContext(ctx *Context, cfg Config, unmarshaler config.Unmarshaler) error {
	sources := config.Sources(
		ctx.StringSlice("config"),
		ctx.IsSet("config"),
		unmarshaler,
	)

	_, err := config.Load(cfg, sources...)
	if err != nil {
		return err
	}
	return nil
}

func WithConfigTools(cfg Config, unmarshaler config.Unmarshaler, marshaler config.Marshaler) Option {
	return WithComposition(
		WithConfig(cfg),
		WithBefore(func(ctx *Context) error {
			err := ConfigFromContext(ctx, cfg, unmarshaler)
			if err != nil {
				return err
			}

			return config.Postprocess(
				cfg,
				config.WithDefaults(),
				config.WithExpansion(),
				config.WithValidation(),
			)
		}),
		func(c *Cli) {
			c.Flags = append(c.Flags, &StringSliceFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "path to application configuration file",
				Value:   cli.NewStringSlice("config.yml"),
			})

			commands := Commands{}

			if _, ok := c.Config.Unwrap().(config.Defaultable); ok {
				commands = append(commands, &Command{
					Name:    "show-default",
					Aliases: []string{"sd"},
					Usage:   "Show default configuration",
					Action: func(ctx *Context) error {
						defaults := c.Config.EmptyClone()
						err := config.Postprocess(
							defaults,
							config.WithDefaults(),
						)
						if err != nil {
							return err
						}
						return config.ToWriter(ctx.App.Writer, marshaler)(defaults)
					},
				})
			}

			if _, ok := c.Config.Unwrap().(config.Validatable); ok {
				commands = append(commands, &Command{
					Name:    "validate",
					Aliases: []string{"v"},
					Usage:   "Validate configuration and exit",
					Action: func(ctx *Context) error {
						fmt.Fprintln(ctx.App.Writer, "configuration is valid")
						return nil
					},
				})
			}

			commands = append(commands, &Command{
				Name:    "show",
				Aliases: []string{"s"},
				Usage:   "Show current configuration",
				Action: func(ctx *Context) error {
					return config.ToWriter(ctx.App.Writer, marshaler)(cfg)
				},
			})

			c.Commands = append(c.Commands, &Command{
				Name:        "config",
				Usage:       "Configuration tools",
				Subcommands: commands,
			})
		},
	)
}

func WithLogTools(cfg func() *log.Config, options ...log.Option) Option {
	return WithComposition(
		WithFlags(Flags{
			&StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "logging level (trace, debug, info, warn, error)",
			},
		}),
		func(c *Cli) {
			WithBefore(func(ctx *Context) error {
				conf := *cfg()
				if level := ctx.String("log-level"); level != "" {
					conf.Level = level
				}

				return log.Init(&conf, options...)
			})(c)
		},
	)
}

// WithMetricsTools writes the collected codec metrics into the configured
// textfile once the command finishes.
func WithMetricsTools(cfg func() *metrics.Config) Option {
	return WithComposition(
		WithFlags(Flags{
			&PathFlag{
				Name:  "metrics-textfile",
				Usage: "path to write prometheus metrics to in textfile collector format",
			},
		}),
		func(c *Cli) {
			di.MustProvide(
				c.Container,
				metrics.NewRegistry,
				func(r *metrics.Registry) *metrics.Codec { return metrics.NewCodec(r) },
			)

			WithAfter(func(ctx *Context) error {
				conf := metrics.Config{}
				if current := cfg(); current != nil {
					conf = *current
				}
				if path := ctx.Path("metrics-textfile"); path != "" {
					conf.Textfile = path
				}
				if !conf.Enabled() {
					return nil
				}
				return di.Invoke(c.Container, func(r *metrics.Registry) error {
					return conf.Write(r)
				})
			})(c)
		},
	)
}

//

func New(options ...Option) *Cli {
	c := &Cli{
		App:       &App{},
		Container: di.New(),
	}

	for _, option := range options {
		option(c)
	}

	return c
}

// RunAndExitOnError runs the application with os.Args, accepting the
// single dash mode spelling (-compress in out), and exits with code 1 on error.
func (c *Cli) RunAndExitOnError() {
	err := c.Run(LegacyArgs(os.Args))
	if err != nil {
		w := c.ErrWriter
		if w == nil {
			w = os.Stderr
		}
		fmt.Fprintln(w, err)
		cli.OsExiter(1)
	}
}

// LegacyArgs rewrites a leading "-mode" argument into the "mode" command.
func LegacyArgs(args []string) []string {
	if len(args) < 2 {
		return args
	}
	switch args[1] {
	case "-" + CommandCompress,
		"-" + CommandDecompress,
		"-" + CommandTestCompress,
		"-" + CommandTestDecompress,
		"-" + CommandTest:
		rewritten := make([]string, len(args))
		copy(rewritten, args)
		rewritten[1] = args[1][1:]
		return rewritten
	default:
		return args
	}
}

//

var (
	ErrUsage    = errors.New("usage error")
	ErrFixtures = errors.New("fixture cases failed")
)

func argsExactly(ctx *Context, names ...string) ([]string, error) {
	if ctx.NArg() != len(names) {
		return nil, errors.Wrapf(
			ErrUsage,
			"%s expects %d arguments %v, got %d",
			ctx.Command.Name, len(names), names, ctx.NArg(),
		)
	}
	return ctx.Args().Slice(), nil
}

func observe(m *metrics.Codec, op string, start time.Time, tokens int, size int64, err error) {
	if m != nil {
		m.Observe(op, start, tokens, size, err)
	}
}
