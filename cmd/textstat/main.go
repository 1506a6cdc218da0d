package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/g-m-twostay/sortedcontainer/Stats"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newLogger(verbose bool) zerolog.Logger {
	lvl := zerolog.InfoLevel
	if verbose {
		lvl = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(lvl).With().Timestamp().Logger()
}

func main() {
	v := viper.New()
	cmd := &cobra.Command{
		Use:          "textstat <file>",
		Short:        "Word statistics of a text file",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newLogger(v.GetBool("verbose"))
			mode, err := Stats.ParseMode(v.GetString("mode"))
			if err != nil {
				return err
			}
			f, err := os.Open(args[0])
			if err != nil {
				return errors.Wrap(err, "cannot open file")
			}
			defer f.Close()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			c, err := Stats.Count(ctx, f, Stats.Options{
				Mode:    mode,
				Counter: v.GetString("map"),
				Workers: v.GetInt("workers"),
				Log:     log.With().Str("file", args[0]).Logger(),
			})
			if err != nil {
				return errors.Wrapf(err, "count words of %s", args[0])
			}
			_, err = Stats.Summarize(c, v.GetInt("top"), v.GetInt("lengths")).WriteTo(cmd.OutOrStdout())
			return err
		},
	}
	cmd.Flags().String("mode", string(Stats.ModeUTF8), "how the file is decoded (utf8|bytes)")
	cmd.Flags().Int("top", 10, "number of most used words to show")
	cmd.Flags().Int("lengths", 10, "number of word lengths to show")
	cmd.Flags().Int("workers", 0, "counting goroutines, 0 for GOMAXPROCS")
	cmd.Flags().String("map", Stats.CounterHaxMap, "concurrent map counting words (haxmap|hashmap|xsync)")
	cmd.Flags().BoolP("verbose", "v", false, "debug logging to stderr")
	v.SetEnvPrefix("TEXTSTAT")
	v.AutomaticEnv()
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		panic(err)
	}
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
