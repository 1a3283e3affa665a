package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func runToolsCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewToolsCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestToolsListShowsCatalog(t *testing.T) {
	out, err := runToolsCommand(t, "list")
	if err != nil {
		t.Fatalf("tools list failed: %v", err)
	}
	if !strings.Contains(out, "NAME") {
		t.Error("missing table header")
	}
	for _, name := range []string{"solana_balance", "solana_trade", "solana_helius_create_webhook"} {
		if !strings.Contains(out, name) {
			t.Errorf("output missing tool %s", name)
		}
	}
}

func TestToolsListHonorsDisabledTools(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "solkit.yaml")
	content := "disabled_tools:\n  - solana_trade\n"
	if err := os.WriteFile(configPath, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	out, err := runToolsCommand(t, "list", "--config", configPath)
	if err != nil {
		t.Fatalf("tools list failed: %v", err)
	}
	if strings.Contains(out, "solana_trade") {
		t.Error("disabled tool still listed")
	}
	if !strings.Contains(out, "solana_balance") {
		t.Error("enabled tool missing")
	}
}

func TestToolsDescribe(t *testing.T) {
	out, err := runToolsCommand(t, "describe", "solana_transfer")
	if err != nil {
		t.Fatalf("tools describe failed: %v", err)
	}
	if !strings.Contains(out, "Tool: solana_transfer") {
		t.Error("missing tool name")
	}
	if !strings.Contains(out, `"required"`) {
		t.Error("missing required list in schema")
	}
	if !strings.Contains(out, `"to"`) {
		t.Error("missing field in schema")
	}
}

func TestToolsDescribeUnknownTool(t *testing.T) {
	_, err := runToolsCommand(t, "describe", "no_such_tool")
	if err == nil {
		t.Fatal("expected error for unknown tool")
	}
	var exitErr *ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("error type = %T, want *ExitError", err)
	}
	if exitErr.Code != exitValidation {
		t.Errorf("exit code = %d, want %d", exitErr.Code, exitValidation)
	}
}

func TestToolsCheck(t *testing.T) {
	out, err := runToolsCommand(t, "check")
	if err != nil {
		t.Fatalf("tools check failed: %v", err)
	}
	if !strings.Contains(out, "OK: 52 tools checked") {
		t.Errorf("unexpected check output: %q", out)
	}
}
