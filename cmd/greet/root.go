package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sghaida/luckydep/di"
	"github.com/sghaida/luckydep/examples"
	"github.com/sghaida/luckydep/source"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type options struct {
	records   string
	envFiles  []string
	prefixVar string
	prefix    string
	stats     bool
	verbose   bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:          "greet --records FILE USER_ID",
		Short:        "Greet a user by id",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid user id %q", args[0])
			}
			return run(cmd.OutOrStdout(), cmd.ErrOrStderr(), opts, userID)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.records, "records", "", "YAML file mapping user ids to names")
	f.StringSliceVar(&opts.envFiles, "env", []string{".env"}, "dotenv files, later ones override earlier ones")
	f.StringVar(&opts.prefixVar, "prefix-var", "GREET_PREFIX", "environment variable holding the greeting prefix")
	f.StringVar(&opts.prefix, "prefix-default", "Hi", "prefix used when the variable is unset")
	f.BoolVar(&opts.stats, "stats", false, "print registry resolution counters")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "log registry events to stderr")
	_ = cmd.MarkFlagRequired("records")

	return cmd
}

func run(stdout, stderr io.Writer, opts *options, userID int) error {
	logger := newLogger(stderr, opts.verbose)
	defer func() { _ = logger.Sync() }()

	reg := prometheus.NewRegistry()
	c := wire(opts, logger, reg)

	svc, err := di.Invoke[*examples.Service](c)
	if err != nil {
		return err
	}
	greeting, err := svc.Greeting(userID)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintln(stdout, greeting); err != nil {
		return err
	}

	if opts.stats {
		return printStats(stdout, reg)
	}
	return nil
}

// wire registers every provider. Nothing is read until Service is invoked.
func wire(opts *options, logger *zap.Logger, reg prometheus.Registerer) *di.Container {
	c := di.New(di.WithLogger(logger), di.WithMetrics(reg))

	di.Provide(c, source.LoadEnv(opts.envFiles...))
	di.ProvideNamed(c, examples.PrefixName, source.EnvString(opts.prefixVar, opts.prefix))
	di.Provide(c, source.YAML[examples.Records](opts.records))

	examples.ProvideRecordsStore(c)
	examples.ProvideService(c)
	return c
}

func newLogger(w io.Writer, verbose bool) *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}
	enc := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	return zap.New(zapcore.NewCore(enc, zapcore.AddSync(w), zapcore.DebugLevel))
}

func printStats(w io.Writer, g prometheus.Gatherer) error {
	mfs, err := g.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	for _, mf := range mfs {
		if mf.GetName() != "luckydep_resolutions_total" {
			continue
		}
		for _, m := range mf.GetMetric() {
			for _, lp := range m.GetLabel() {
				if lp.GetName() != "outcome" {
					continue
				}
				if _, err := fmt.Fprintf(w, "%s=%g\n", lp.GetValue(), m.GetCounter().GetValue()); err != nil {
					return err
				}
			}
		}
	}
	return nil
}
