/*
Exptwig CLI - Cobra Command Structure
========================================

A single no-subcommand cobra.Command, matching SPEC_FULL §6's "no
arguments, no flags" contract. This mirrors the teacher's cmd package
(rootCmd + Execute()) stripped of every REPL subcommand (convert, history,
precision) that this spec's Non-goals exclude.
*/

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"exptwig/driver"
	"exptwig/internal/alloc"
	"exptwig/internal/config"
	"exptwig/internal/diagnostics"
)

const configFileName = "exptwig.yaml"

var rootCmd = &cobra.Command{
	Use:   "exptwig",
	Short: "exptwig - infix expression tree factoring",
	Long: `exptwig reads one or more comma-separated infix expressions from
stdin, parses each into an operator tree, and greedily factors out every
repeated subtree across the whole set, printing each substitution as it is
found and the residual expressions at the end.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runRoot,
}

// Execute runs the root command and is the only thing main calls.
func Execute() error {
	return rootCmd.Execute()
}

func runRoot(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configFileName)
	if err != nil {
		return err
	}

	log := diagnostics.NewWithLevel(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogFormat)

	var budget *alloc.Budget
	if cfg.AllocatorBudget >= 0 {
		budget = alloc.New(cfg.AllocatorBudget)
	}

	if err := driver.Run(context.Background(), cmd.InOrStdin(), cmd.OutOrStdout(), log, budget); err != nil {
		return fmt.Errorf("exptwig: %w", err)
	}
	return nil
}

func init() {
	rootCmd.SetOut(os.Stdout)
	rootCmd.SetErr(os.Stderr)
}
