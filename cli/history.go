package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/solkit-labs/solkit/tool"
)

// NewHistoryCmd creates the "history" command for the invocation log.
func NewHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recorded tool invocations",
		RunE:  runHistoryList,
	}
	cmd.PersistentFlags().String("db", "", "Path to invocation log (default: ~/.solkit/solkit.db)")
	cmd.Flags().Int("limit", 20, "Maximum records to show (0 for all)")

	cmd.AddCommand(newHistoryPruneCmd())
	return cmd
}

func runHistoryList(cmd *cobra.Command, args []string) error {
	log, err := openHistoryLog(cmd)
	if err != nil {
		return err
	}
	defer log.Close()

	limit, _ := cmd.Flags().GetInt("limit")
	records, err := log.List(cmd.Context(), limit)
	if err != nil {
		return exitError(exitRuntime, "reading history: %v", err)
	}

	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 2, 2, ' ', 0)
	fmt.Fprintln(writer, "TIME\tTOOL\tRESULT\tCODE\tDURATION_MS")
	for _, record := range records {
		result := "success"
		if !record.Success {
			result = "error"
		}
		code := record.Code
		if code == "" {
			code = "-"
		}
		fmt.Fprintf(
			writer,
			"%s\t%s\t%s\t%s\t%d\n",
			record.At.Format(time.RFC3339),
			record.Tool,
			result,
			code,
			record.DurationMS,
		)
	}
	return writer.Flush()
}

func newHistoryPruneCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prune",
		Short: "Delete invocation records older than a retention window",
		RunE:  runHistoryPrune,
	}
	cmd.Flags().Duration("older-than", 30*24*time.Hour, "Delete records older than this duration")
	return cmd
}

func runHistoryPrune(cmd *cobra.Command, args []string) error {
	olderThan, _ := cmd.Flags().GetDuration("older-than")
	if olderThan <= 0 {
		return exitError(exitInputParse, "--older-than must be positive")
	}

	log, err := openHistoryLog(cmd)
	if err != nil {
		return err
	}
	defer log.Close()

	removed, err := log.Prune(cmd.Context(), time.Now().UTC().Add(-olderThan))
	if err != nil {
		return exitError(exitRuntime, "pruning history: %v", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Pruned %d record(s)\n", removed)
	return nil
}

func openHistoryLog(cmd *cobra.Command) (*tool.InvocationLog, error) {
	path, _ := cmd.Flags().GetString("db")
	if strings.TrimSpace(path) == "" {
		defaultPath, err := tool.DefaultLogPath()
		if err != nil {
			return nil, exitError(exitRuntime, "resolving log path: %v", err)
		}
		path = defaultPath
	}

	log, err := tool.OpenInvocationLog(path)
	if err != nil {
		return nil, exitError(exitRuntime, "opening invocation log: %v", err)
	}
	return log, nil
}
