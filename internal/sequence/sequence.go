package sequence

import (
	"golang.org/x/exp/constraints"

	"github.com/ony/leveldb-tl/internal/bigend"
	"github.com/ony/leveldb-tl/internal/kverrors"
	"github.com/ony/leveldb-tl/internal/store"
)

// DefaultPageSize is the page size used when a caller has no reason to
// pick another.
const DefaultPageSize = 10

// Sequence hands out monotonically increasing values of T, backed by a
// single key in base. It is not safe for concurrent use by multiple
// goroutines, and at most one live Sequence should exist per key at a time
// (a second one sharing the key will observe its allocPage calls as
// "concurrent sequence entry change" corruption).
type Sequence[T constraints.Unsigned] struct {
	base      store.Store
	key       []byte
	width     int
	pageSize  T
	next      T
	allocated T
}

// New returns a Sequence reading and writing its state in base under key,
// serializing its high-water mark as a big-endian integer exactly width
// bytes wide. width must be large enough to hold T's full range (e.g. 1
// for uint8, 2 for uint16) or allocation will misbehave once values
// approach T's maximum. Nothing is allocated from base until the first
// Next call.
func New[T constraints.Unsigned](base store.Store, key []byte, width int, pageSize T) *Sequence[T] {
	return &Sequence[T]{base: base, key: append([]byte(nil), key...), width: width, pageSize: pageSize}
}

// Next assigns the next value in the sequence to *out. It touches base at
// most once (to allocate a fresh page), except on the last value of the
// current page, where it also pre-allocates the next page so later calls
// stay in memory.
func (s *Sequence[T]) Next(out *T) error {
	if s.allocated == 0 {
		if err := s.allocPage(); err != nil {
			return err
		}
	}

	atPageBoundary := s.next == s.allocated
	*out = s.next
	s.next++
	if atPageBoundary {
		_ = s.allocPage() // best-effort pre-allocation; a failure here just means the next call pays for it
	}
	return nil
}

// allocPage reconciles this Sequence's view of the high-water mark against
// base (detecting concurrent use of the same key as corruption) and then
// advances it by pageSize, saturating at T's maximum instead of wrapping.
func (s *Sequence[T]) allocPage() error {
	v, err := s.base.Get(s.key)
	switch {
	case err == nil:
		stored, decErr := bigend.Decode[T](v, s.width)
		if decErr != nil {
			return decErr
		}
		if s.allocated == 0 {
			s.allocated = stored
			if s.allocated == 0 {
				return kverrors.NotFound("sequence overflow", s.key)
			}
			s.next = s.allocated
		} else if stored != s.allocated {
			return kverrors.Corruption("concurrent sequence entry change (value mismatch)")
		}
	case kverrors.IsNotFound(err):
		if s.allocated != 0 {
			return kverrors.Corruption("concurrent sequence entry change (missing value)")
		}
	default:
		return err
	}

	maxT := ^T(0)
	nextAllocated := min(maxT-s.pageSize, s.allocated) + s.pageSize
	if nextAllocated == s.allocated {
		_ = s.base.Put(s.key, bigend.Encode(T(0), s.width))
		s.allocated = 0
		return kverrors.NotFound("sequence overflow", s.key)
	}
	if err := s.base.Put(s.key, bigend.Encode(nextAllocated, s.width)); err != nil {
		return err
	}
	s.allocated = nextAllocated
	return nil
}

// Sync flushes any allocated-but-unissued values back to base by lowering
// the persisted high-water mark to the next unissued value, so a future
// Sequence opened on the same key resumes there instead of skipping the
// rest of this one's page. Call it before discarding a
// Sequence whose Next calls have stopped.
func (s *Sequence[T]) Sync() error {
	if s.next >= s.allocated {
		return nil
	}

	v, err := s.base.Get(s.key)
	if kverrors.IsNotFound(err) {
		return kverrors.Corruption("concurrent sequence entry change (missing value)")
	}
	if err != nil {
		return err
	}
	stored, decErr := bigend.Decode[T](v, s.width)
	if decErr != nil {
		return decErr
	}
	if stored != s.allocated {
		return kverrors.Corruption("concurrent sequence entry change (value mismatch)")
	}

	if err := s.base.Put(s.key, bigend.Encode(s.next, s.width)); err != nil {
		return err
	}
	s.allocated = s.next
	return nil
}
