// Package main provides a command-line tool that replaces the emoji section
// headers of the checkout screen with icon rows.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/EchoTools/textpatch/pkg/patch"
	"github.com/EchoTools/textpatch/pkg/rules"
	"github.com/EchoTools/textpatch/pkg/snapshot"
	"github.com/EchoTools/textpatch/pkg/textfile"
)

// DefaultTarget is the file patched when --file is not given.
const DefaultTarget = "lib/screens/advanced_checkout_screen.dart"

// DoneMessage is printed once the whole rule set has been applied.
const DoneMessage = "Fixed all emoji headers!"

var (
	targetFile string
	rulesFile  string
	strict     bool
	dryRun     bool
	backup     bool
	verbose    bool

	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "fixheaders",
	Short: "Replace emoji section headers with icon rows",
	Long: `fixheaders rewrites one source file in place, applying an ordered list of
literal replacement rules. Rules whose text is not found are skipped.

With no flags it patches ` + DefaultTarget + ` using the
built-in header rules.`,
	Args:          cobra.NoArgs,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		l, err := config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		logger = l
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
	RunE: runPatch,
}

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Print the active rule set as YAML",
	Args:  cobra.NoArgs,
	RunE:  runDumpRules,
}

var restoreCmd = &cobra.Command{
	Use:   "restore <snapshot>",
	Short: "Restore the target file from a snapshot written by --backup",
	Args:  cobra.ExactArgs(1),
	RunE:  runRestore,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&targetFile, "file", "f", DefaultTarget, "File to patch or restore")
	pf.StringVarP(&rulesFile, "rules", "r", "", "YAML rule file (default: built-in header rules)")
	pf.BoolVarP(&verbose, "verbose", "v", false, "Log per-rule results and debug output")

	f := rootCmd.Flags()
	f.BoolVar(&strict, "strict", false, "Fail without writing if any rule does not match")
	f.BoolVar(&dryRun, "dry-run", false, "Apply rules in memory only")
	f.BoolVar(&backup, "backup", false, "Write a compressed snapshot of the original to <file>"+snapshot.Extension)

	rootCmd.AddCommand(rulesCmd, restoreCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func activeRules() (patch.RuleSet, error) {
	if rulesFile == "" {
		return rules.EmojiHeaders(), nil
	}
	return rules.LoadFile(rulesFile)
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func runPatch(cmd *cobra.Command, args []string) error {
	rs, err := activeRules()
	if err != nil {
		return err
	}

	p, err := patch.New(
		patch.WithRules(rs),
		patch.WithLogger(logger),
		patch.WithStrict(strict),
		patch.WithDryRun(dryRun),
		patch.WithBackup(backup),
	)
	if err != nil {
		return err
	}

	res, err := p.PatchFile(commandContext(cmd), targetFile)
	if err != nil {
		return err
	}

	logger.Info("Patch complete",
		zap.String("path", res.Path),
		zap.Int("applied", res.Report.Applied()),
		zap.Int("rules", len(res.Report)),
		zap.Bool("changed", res.Changed))

	if dryRun {
		fmt.Fprintf(cmd.OutOrStdout(), "Dry run: %d of %d rules would apply to %s\n",
			res.Report.Applied(), len(res.Report), res.Path)
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), DoneMessage)
	return nil
}

func runDumpRules(cmd *cobra.Command, args []string) error {
	rs, err := activeRules()
	if err != nil {
		return err
	}
	return rules.Dump(cmd.OutOrStdout(), rs)
}

func runRestore(cmd *cobra.Command, args []string) error {
	ctx := commandContext(cmd)
	store := textfile.NewStore()

	raw, err := store.ReadBytes(ctx, args[0])
	if err != nil {
		return fmt.Errorf("read snapshot: %w", err)
	}

	data, err := snapshot.Decode(raw)
	if err != nil {
		return fmt.Errorf("decode snapshot: %w", err)
	}

	if err := store.WriteBytes(ctx, targetFile, data, 0); err != nil {
		return err
	}
	logger.Debug("Restored target", zap.String("path", targetFile), zap.Int("bytes", len(data)))

	fmt.Fprintf(cmd.OutOrStdout(), "Restored %s from %s\n", targetFile, args[0])
	return nil
}
