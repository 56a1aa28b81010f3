// Package executor applies a checked rename plan with a two-phase batch
// rename.
//
// Phase 1 (stage) moves every source to a unique temporary name in the
// same directory. Phase 2 (commit) moves each temporary file to its
// destination. Because every source is vacated before any destination is
// written, plans whose destinations overlap their sources (A->B, B->C, or
// a swap) never overwrite a file.
//
// Every move is a single rename within one directory. A move whose target
// already exists is refused with [errs.ErrTargetExists]. On any failure the
// run stops without rollback and the returned [errs.RenameError] lists the
// files left under temporary names.
package executor
