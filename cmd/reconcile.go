package cmd

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"location-directory/core/config"
	"location-directory/core/logger"
	"location-directory/core/reconcile"
	"location-directory/feature/directory"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for reconcile entity command
	dryRunEntity bool
	yesConfirm   bool
)

// reconcileCmd is the parent command for all reconcile operations.
var reconcileCmd = &cobra.Command{
	Use:   "reconcile",
	Short: "Reconcile entities into the directory hierarchy",
}

// entityReconcileCmd reconciles a single entity.
var entityReconcileCmd = &cobra.Command{
	Use:   "entity <id>",
	Short: "Reconcile one entity (preview + optionally apply)",
	Long: `Reconcile one entity into the region and city node derived from its address.

The mutations are always previewed first. They are applied after confirmation,
unless --dry-run is given.

Examples:
  # Preview only
  reconcile entity loc1 --dry-run

  # Apply with auto-confirm (non-interactive)
  reconcile entity loc1 --yes`,
	Args: cobra.ExactArgs(1),
	RunE: runEntityReconcile,
}

func init() {
	reconcileCmd.AddCommand(entityReconcileCmd)

	entityReconcileCmd.Flags().BoolVar(&dryRunEntity, "dry-run", false, "Preview the mutations without applying them")
	entityReconcileCmd.Flags().BoolVar(&yesConfirm, "yes", false, "Auto-confirm the mutations (non-interactive)")

	RootCmd.AddCommand(reconcileCmd)
}

func runEntityReconcile(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	entityID := args[0]

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer l.Sync()

	engine, err := newEngine(cfg, l)
	if err != nil {
		return err
	}
	recorder, err := newRecorder(ctx, cfg, l)
	if err != nil {
		return err
	}
	svc := directory.NewService(engine, nil, recorder, l)

	// Step 1: Preview (always runs)
	preview, err := svc.Reconcile(ctx, entityID, reconcile.Options{Simulate: true})
	if err != nil {
		return fmt.Errorf("failed to preview reconciliation: %w", err)
	}
	if err := printResult(cmd.OutOrStdout(), preview); err != nil {
		return err
	}

	if dryRunEntity {
		l.Info("Dry-run mode: No changes were made.")
		return nil
	}
	if !preview.Changed() {
		l.Info("Entity is already in place.")
		return nil
	}

	// Step 2: Apply (if confirmed)
	if !confirmMutations(cmd.InOrStdin(), cmd.OutOrStdout()) {
		l.Warn("Operation cancelled by user. No changes were made.")
		return nil
	}

	result, err := svc.Reconcile(ctx, entityID, reconcile.Options{})
	if err != nil {
		return fmt.Errorf("failed to reconcile %s: %w", entityID, err)
	}

	l.Info("Successfully applied actions", zap.Int("count", len(result.Applied)))
	return printResult(cmd.OutOrStdout(), result)
}

func printResult(w io.Writer, result *reconcile.Result) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// confirmMutations prompts the user for confirmation or uses --yes flag.
func confirmMutations(in io.Reader, out io.Writer) bool {
	if yesConfirm {
		fmt.Fprintln(out, "\nAuto-confirmed via --yes flag")
		return true
	}

	fmt.Fprint(out, "\nType 'yes' to apply these mutations to the knowledge store: ")
	response, err := bufio.NewReader(in).ReadString('\n')
	if err != nil {
		return false
	}
	return strings.TrimSpace(response) == "yes"
}
