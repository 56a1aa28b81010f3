// Package probe reads the timestamp used to order files before renaming.
//
// Each file is stamped from a fallback chain: its birth (creation) time
// when the filesystem records one, else its modification time, else
// [Sentinel]. A stamp never fails; when the chain falls through to the
// sentinel the [Stamp] carries a Warning for the caller to log.
package probe
