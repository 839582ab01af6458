// Package kverrors defines the error taxonomy shared by every layer of the
// key-value store algebra, providing a consistent way to distinguish routine
// signals (a missing key, an invalid cursor) from genuine failures.
//
// # Overview
//
// Every operation in this module reports failure through a plain Go error.
// Concretely that error is always either nil (success) or a *Error carrying
// one of a small, fixed set of Kinds:
//
//   - NotFound       — a missing key, an exhausted cursor, a sequence
//     overflow. Routine; callers are expected to check for it.
//   - Corruption     — an on-disk invariant was violated (a record of the
//     wrong size, a concurrent-change mismatch). Not routine.
//   - NotSupported   — the backing store does not implement an operation.
//   - InvalidArgument — a caller passed a malformed argument.
//   - IOError        — the backing store failed for an unspecified reason.
//
// # Comparing kinds
//
// Use errors.Is against the exported sentinels (ErrNotFound, ErrCorruption,
// ...): *Error.Is compares only Kind, so a *Error carrying a specific Reason
// and Key still matches its sentinel.
//
//	if errors.Is(err, kverrors.ErrNotFound) {
//	    // routine: key absent, cursor past the end, sequence exhausted
//	}
//
// Use errors.As to recover the offending key when one was attached:
//
//	var kerr *kverrors.Error
//	if errors.As(err, &kerr) {
//	    log.Printf("failed on key %q: %s", kerr.Key, kerr.Reason)
//	}
package kverrors
