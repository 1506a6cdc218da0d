package main

import (
	"os"
	"strings"

	"github.com/g-m-twostay/sortedcontainer/Sets/TreeSet"
	"github.com/g-m-twostay/sortedcontainer/Sint"
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
		Use:   "sint",
		Short: "Interactive sorted container of (age, name) records",
		Long: `Reads commands from stdin, one per line:
  i <age> <name>   insert
  e <age> <name>   erase
  c <age> <name>   contains, answers y or n
  p                print the tree
  x                exit`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newLogger(v.GetBool("verbose"))
			set, err := TreeSet.New(v.GetString("backend"), Sint.ComparePersons)
			if err != nil {
				return err
			}
			log.Debug().Str("backend", v.GetString("backend")).Msg("starting")
			return Sint.NewShell(set, cmd.OutOrStdout(), log).Run(cmd.InOrStdin())
		},
	}
	cmd.Flags().String("backend", TreeSet.KindBST, "tree backing the container ("+strings.Join(TreeSet.Kinds, "|")+")")
	cmd.Flags().BoolP("verbose", "v", false, "log every command to stderr")
	v.SetEnvPrefix("SINT")
	v.AutomaticEnv()
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		panic(err)
	}
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
