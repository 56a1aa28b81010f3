// Package planner turns an ordered list of files into a [RenamePlan] and
// verifies that executing it cannot overwrite or lose a file.
//
//   - FileEntry, Entry, RenamePlan (types.go)
//   - Generate: sequence numbering and destination names (generate.go)
//   - Check: duplicate destinations and filesystem collisions (conflict.go)
//
// Nothing in this package mutates the filesystem.
package planner
