// Package services provides shared error classification and context plumbing
// for sagelink components.
//
// Errors are tagged with sentinel markers (validation, configuration, not
// found, conflict, transient, external) via Wrap so callers can decide
// between skip-and-continue and run-level failure without string matching.
// Context carriers propagate the run correlation ID and the identity key of
// the record currently being processed into structured logs.
package services
