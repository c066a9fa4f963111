package main

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

func main() {
	cmd := _newRootCommand(os.Stdout, os.Stderr)
	if err := cmd.Execute(); err != nil {
		fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func _newRootCommand(stdout, stderr io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "coalesce [input]",
		Short: "Count fresh IDs and the IDs covered by a list of ranges",
		Long: `coalesce reads a list of closed ID ranges ("3-5"), a blank line and a
list of IDs, then reports how many IDs fall within any range (part 1) and
how many distinct IDs the ranges cover (part 2).

Reads data/day05.dat by default; use "-" to read standard input.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := _loadConfig(cmd.Flags(), args)
			if err != nil {
				return err
			}
			logger := zerolog.New(zerolog.ConsoleWriter{Out: stderr}).
				Level(cfg.LogLevel).
				With().Timestamp().Logger()
			return _run(cfg, logger, stdout)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	_addFlags(cmd.Flags())

	return cmd
}

func _run(cfg *Config, logger zerolog.Logger, w io.Writer) error {
	logger.Debug().Str("input", cfg.Input).Int("part", cfg.Part).Msg("loading input")

	inv, err := _loadInventory(cfg.Input)
	if err != nil {
		return err
	}
	logger.Debug().
		Int("ranges", len(inv.Ranges)).
		Int("ids", len(inv.IDs)).
		Msg("input loaded")
	if logger.GetLevel() <= zerolog.DebugLevel {
		logger.Debug().Int("coalesced", inv.RangeSet().Len()).Msg("ranges coalesced")
	}
	if len(inv.Ranges) == 0 {
		logger.Warn().Str("input", cfg.Input).Msg("no ranges in input")
	}

	rep := Report{Input: cfg.Input, timing: cfg.Timing}
	for part := 1; part < len(_parts); part++ {
		if cfg.Part != 0 && cfg.Part != part {
			continue
		}
		t := time.Now()
		value := _parts[part](inv)
		took := time.Since(t)
		logger.Info().Int("part", part).Uint64("value", value).Dur("took", took).Msg("solved")

		a := Answer{Part: part, Value: value}
		if cfg.Timing {
			a.Took = took
		}
		rep.Answers = append(rep.Answers, a)
	}

	return rep.Render(w, cfg.Format)
}
