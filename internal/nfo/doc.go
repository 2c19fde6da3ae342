// Package nfo renders the XML sidecar metadata documents (episode, movie,
// and series) consumed by Kodi/Jellyfin-style library scanners.
package nfo
