package pipeline

// RunStats summarizes one RenameDirectory call.
type RunStats struct {
	Selected int   // files matched by the template
	Renamed  int   // files at their destination (or that would be, on a dry run)
	Warnings int   // files ordered by the sentinel timestamp
	Bytes    int64 // total size of selected files
	DryRun   bool
	Aborted  bool // confirmation declined; nothing was renamed
}
