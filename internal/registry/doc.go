// Package registry accumulates glyph definitions into a single
// character to glyph mapping.
//
// A Registry is fed by one or more definition streams in a caller-chosen
// order. Every character may be registered once per registry; a second
// registration fails with a DuplicateCharacterError that names both
// locations, and the earlier glyph stays in place. Once all streams are
// loaded the registry is frozen and handed, read-only, to an emitter.
package registry
