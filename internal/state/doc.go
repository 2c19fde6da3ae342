// Package state persists the artifact snapshot between sync runs. Each run
// loads the previous snapshot, builds a fresh one, and replaces the stored
// copy in a single transaction, so an interrupted run never leaves a partial
// snapshot behind.
package state
