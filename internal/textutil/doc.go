// Package textutil provides filename sanitization and title derivation for
// generated library paths.
package textutil
