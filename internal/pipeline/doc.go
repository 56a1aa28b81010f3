// Package pipeline orchestrates a bulk rename of one directory.
//
// The stages run strictly in order and only the last one touches the
// filesystem:
//
//	check directory -> resolve template -> Select -> Order -> Generate ->
//	Check conflicts -> report -> confirm -> Execute
//
// Select and Order live in discover.go and order.go; the [Renamer] in
// runner.go drives the stages and returns a [RunStats].
package pipeline
