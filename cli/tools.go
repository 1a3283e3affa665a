package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/solkit-labs/solkit/config"
	"github.com/solkit-labs/solkit/irisbridge"
	"github.com/solkit-labs/solkit/registry"
	"github.com/solkit-labs/solkit/tool"
)

// NewToolsCmd creates the "tools" command group.
func NewToolsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tools",
		Short: "Inspect the tool catalog",
	}
	cmd.PersistentFlags().String("config", "", "Path to config file (default: ./solkit.yaml, ~/.solkit/config.yaml)")

	cmd.AddCommand(newToolsListCmd())
	cmd.AddCommand(newToolsDescribeCmd())
	cmd.AddCommand(newToolsCheckCmd())

	return cmd
}

func newToolsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List available tools",
		RunE:  runToolsList,
	}
}

func runToolsList(cmd *cobra.Command, args []string) error {
	reg, err := resolveCatalog(cmd)
	if err != nil {
		return err
	}

	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 2, 2, ' ', 0)
	fmt.Fprintln(writer, "NAME\tFIELDS\tREQUIRED")
	for _, adapter := range reg.All() {
		required := 0
		for _, field := range adapter.Schema() {
			if field.Spec.Required {
				required++
			}
		}
		fmt.Fprintf(writer, "%s\t%d\t%d\n", adapter.Name(), len(adapter.Schema()), required)
	}
	return writer.Flush()
}

func newToolsDescribeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "describe <name>",
		Short: "Show a tool's description and input schema",
		Args:  cobra.ExactArgs(1),
		RunE:  runToolsDescribe,
	}
}

func runToolsDescribe(cmd *cobra.Command, args []string) error {
	reg, err := resolveCatalog(cmd)
	if err != nil {
		return err
	}

	name := strings.TrimSpace(args[0])
	adapter, ok := reg.Get(name)
	if !ok {
		return exitError(exitValidation, "unknown tool %q", name)
	}

	schema := irisbridge.Wrap(adapter).Schema()
	var pretty bytes.Buffer
	if err := json.Indent(&pretty, schema.JSONSchema, "", "  "); err != nil {
		return exitError(exitRuntime, "rendering schema for %q: %v", name, err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Tool: %s\n\n", adapter.Name())
	fmt.Fprintln(out, strings.TrimSpace(adapter.Description()))
	fmt.Fprintf(out, "\nInput schema:\n%s\n", pretty.String())
	return nil
}

func newToolsCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Verify every tool schema renders as valid JSON Schema",
		RunE:  runToolsCheck,
	}
}

func runToolsCheck(cmd *cobra.Command, args []string) error {
	reg, err := resolveCatalog(cmd)
	if err != nil {
		return err
	}

	checked := 0
	for _, adapter := range reg.All() {
		schema := irisbridge.Wrap(adapter).Schema()
		var rendered map[string]any
		if err := json.Unmarshal(schema.JSONSchema, &rendered); err != nil {
			return exitError(exitValidation, "tool %q renders invalid schema: %v", adapter.Name(), err)
		}
		if strings.TrimSpace(adapter.Description()) == "" {
			return exitError(exitValidation, "tool %q has no description", adapter.Name())
		}
		checked++
	}

	fmt.Fprintf(cmd.OutOrStdout(), "OK: %d tools checked\n", checked)
	return nil
}

// resolveCatalog builds the tool registry for inspection, honoring the
// disabled_tools list from configuration. The adapters are never invoked
// here, so no live kit is required.
func resolveCatalog(cmd *cobra.Command) (*registry.Registry, error) {
	configPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.LoadDiscovered(configPath)
	if err != nil {
		return nil, exitError(exitRuntime, "loading config: %v", err)
	}

	adapters := make([]*tool.Adapter, 0)
	for _, adapter := range registry.Tools(nil) {
		if cfg.Disabled(adapter.Name()) {
			continue
		}
		adapters = append(adapters, adapter)
	}

	reg, err := registry.New(adapters...)
	if err != nil {
		return nil, exitError(exitRuntime, "building tool catalog: %v", err)
	}
	return reg, nil
}
