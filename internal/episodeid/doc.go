// Package episodeid derives season and episode numbers for TV records using
// a tiered policy: authoritative catalog hints first, filename inference as a
// safety net, and a constant unsorted bucket as the default.
package episodeid
