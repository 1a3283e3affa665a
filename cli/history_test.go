package cli

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/solkit-labs/solkit/tool"
)

func seedHistory(t *testing.T, records ...tool.InvocationRecord) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "history.db")
	log, err := tool.OpenInvocationLog(path)
	if err != nil {
		t.Fatalf("opening log: %v", err)
	}
	defer log.Close()
	for _, record := range records {
		if err := log.Append(context.Background(), record); err != nil {
			t.Fatalf("seeding record: %v", err)
		}
	}
	return path
}

func runHistoryCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewHistoryCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestHistoryListsRecords(t *testing.T) {
	path := seedHistory(t,
		tool.InvocationRecord{Tool: "solana_balance", Success: true, DurationMS: 12},
		tool.InvocationRecord{Tool: "solana_trade", Success: false, Code: "RATE_LIMITED", DurationMS: 40},
	)

	out, err := runHistoryCommand(t, "--db", path)
	if err != nil {
		t.Fatalf("history failed: %v", err)
	}
	if !strings.Contains(out, "solana_balance") || !strings.Contains(out, "solana_trade") {
		t.Errorf("output missing records: %q", out)
	}
	if !strings.Contains(out, "RATE_LIMITED") {
		t.Error("output missing error code")
	}
	if !strings.Contains(out, "success") || !strings.Contains(out, "error") {
		t.Error("output missing result column values")
	}
}

func TestHistoryLimit(t *testing.T) {
	path := seedHistory(t,
		tool.InvocationRecord{Tool: "first", Success: true, At: time.Now().UTC().Add(-time.Hour)},
		tool.InvocationRecord{Tool: "second", Success: true, At: time.Now().UTC()},
	)

	out, err := runHistoryCommand(t, "--db", path, "--limit", "1")
	if err != nil {
		t.Fatalf("history failed: %v", err)
	}
	if !strings.Contains(out, "second") {
		t.Error("newest record missing")
	}
	if strings.Contains(out, "first") {
		t.Error("limit not applied")
	}
}

func TestHistoryPrune(t *testing.T) {
	path := seedHistory(t,
		tool.InvocationRecord{Tool: "old", Success: true, At: time.Now().UTC().Add(-48 * time.Hour)},
		tool.InvocationRecord{Tool: "fresh", Success: true, At: time.Now().UTC()},
	)

	out, err := runHistoryCommand(t, "prune", "--db", path, "--older-than", "24h")
	if err != nil {
		t.Fatalf("history prune failed: %v", err)
	}
	if !strings.Contains(out, "Pruned 1 record(s)") {
		t.Errorf("unexpected prune output: %q", out)
	}

	listed, err := runHistoryCommand(t, "--db", path)
	if err != nil {
		t.Fatalf("history failed after prune: %v", err)
	}
	if strings.Contains(listed, "old") {
		t.Error("pruned record still listed")
	}
	if !strings.Contains(listed, "fresh") {
		t.Error("retained record missing")
	}
}
