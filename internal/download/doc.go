// Package download orchestrates the full pipeline: restore or establish a
// session, resolve input URLs into track sets, assemble metadata, fetch
// audio and artwork from the CDN with retries, tag AAC files, and write
// playlist files. Progress is reported through a callback so both the CLI
// and the TUI can render it their own way.
package download
