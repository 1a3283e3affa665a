// Package tool defines the adapter contract between the Solana agent kit and
// an agent-orchestration host.
//
// The package is intentionally split by concern:
//   - schema: declarative per-field input contracts
//   - validate: schema enforcement with field-level errors
//   - adapter: the generic invocation wrapper every tool shares
//   - result: the normalized success/error envelope
//   - observability: invocation observation seam
//   - store: SQLite-backed invocation log
//
// Adapters are data, not types: one Spec per remote operation, all sharing a
// single Adapter implementation. The agent kit collaborator stays behind the
// kit package interfaces so CLI, bridge, and monitor paths share one contract.
package tool
