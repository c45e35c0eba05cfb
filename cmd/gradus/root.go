package main

import (
	"fmt"
	"math/rand"
	"strconv"
	"time"

	"github.com/npillmayer/schuko/tracing"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/caldera-edu/gradus/config"
)

var traceKeys = []string{"gradus.grammar", "gradus.ll1", "gradus.slr1", "gradus.factory"}

func traceLevelByName(name string) tracing.TraceLevel {
	switch name {
	case "debug":
		return tracing.LevelDebug
	case "error":
		return tracing.LevelError
	default:
		return tracing.LevelInfo
	}
}

func newRootCmd() *cobra.Command {
	var seed int64
	var retries int
	var traceLevel string
	var configPath string

	root := &cobra.Command{
		Use:   "gradus {ll|slr} level",
		Short: "Generate a grammar and build its LL(1) or SLR(1) tables",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind := args[0]
			if kind != "ll" && kind != "slr" {
				return fmt.Errorf("first argument must be %q or %q, got %q", "ll", "slr", kind)
			}
			level, err := strconv.Atoi(args[1])
			if err != nil || level < 1 {
				return fmt.Errorf("level must be an integer >= 1, got %q", args[1])
			}
			cfg, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("loading config %q: %w", configPath, err)
			}
			// Flags win over the config file, which wins over built-in
			// defaults — only fall back to cfg for a flag the user never
			// touched.
			if !cmd.Flags().Changed("retries") {
				retries = cfg.RetryBudget
			}
			if !cmd.Flags().Changed("trace-level") {
				traceLevel = cfg.TraceLevel
			}
			for _, key := range traceKeys {
				tracing.Select(key).SetTraceLevel(traceLevelByName(traceLevel))
			}
			if seed == 0 {
				seed = time.Now().UnixNano()
			}
			rng := rand.New(rand.NewSource(seed))
			return runGenerate(kind, level, rng, retries)
		},
	}

	root.Flags().Int64Var(&seed, "seed", 0, "random seed (default: time-derived)")
	root.Flags().IntVar(&retries, "retries", config.DefaultRetryBudget, "factory retry budget")
	root.Flags().StringVar(&traceLevel, "trace-level", config.DefaultTraceLevel, "trace verbosity: debug, info, error")
	root.Flags().StringVar(&configPath, "config", "", "path to an optional TOML config file (retry_budget, trace_level, terminal_pool_size)")
	return root
}

func runGenerate(kind string, level int, rng *rand.Rand, retries int) error {
	if kind == "ll" {
		return runLL1(level, rng, retries)
	}
	return runSLR1(level, rng, retries)
}

func printGenerationFailure(err error) {
	pterm.Error.Println(err.Error())
}
