// Package bigend provides the fixed-width big-endian integer codec shared
// by package sequence (persisted high-water marks) and package sandwich
// (part prefixes): encoding as big-endian makes lexicographic byte order
// on the encoded form match the integer's numeric order, independent of
// host byte order, which both callers rely on.
//
// NextNet increments an encoded value in place and reports when the carry
// escapes (an all-0xFF input wraps to all zeros) instead of wrapping
// silently, so its caller — Part's SeekToLast bound — can distinguish
// "incremented" from "already at the maximum representable value."
// Sequence does its own saturating arithmetic on T and does not use NextNet.
package bigend
