// Package kit declares the agent-kit collaborator contract consumed by the
// tool adapters. The kit performs the actual blockchain work (signing,
// networking, retries live behind these interfaces, never in the adapter
// layer); this package only fixes the call signatures, the structured error
// shape, and the small value types adapters transform inputs into.
package kit
