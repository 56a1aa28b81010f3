// Package naming defines rename templates and the name builders they
// resolve to.
//
// A [Definition] is a flat, TOML-decodable record describing a naming
// convention. Resolving it against a directory and user [Params] yields a
// [Spec]: the first sequence number, the accepted filename suffixes, and a
// [Counter] that builds destination names for one batch.
//
// Two kinds of counters exist:
//   - [FixedPrefix]: prefix + zero-padded sequence + extension. The width
//     grows to fit the batch.
//   - [StructuredPrefix]: tag + folder number + fixed-width sequence +
//     fixed extension, for camera-style conventions (P1010001.JPG).
//
// Built-in definitions live in a [Registry]; additional ones can be loaded
// from a TOML file with [LoadDefinitions].
package naming
