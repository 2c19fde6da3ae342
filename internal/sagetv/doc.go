// Package sagetv implements the read-only client for the SageTV SageX web
// API. It exposes paginated media file listings as Record values; pagination,
// transport, and authentication details stay inside this package.
package sagetv
