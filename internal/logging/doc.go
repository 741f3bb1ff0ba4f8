// Package logging configures the process-wide structured logger.
//
// It sits above the codec layer, never inside it: internal/bitio,
// internal/codec, internal/atoms, and the decode/encode paths in
// internal/packet and internal/construct make no logging calls of their
// own — a malformed packet is reported to the caller, not logged here.
// Callers log around Decode/Encode results and registry construction,
// the same boundary the catalogue registries use.
package logging
