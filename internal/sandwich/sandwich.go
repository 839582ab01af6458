package sandwich

import (
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"

	"github.com/ony/leveldb-tl/internal/bigend"
	"github.com/ony/leveldb-tl/internal/kverrors"
	"github.com/ony/leveldb-tl/internal/sequence"
	"github.com/ony/leveldb-tl/internal/store"
)

// metaPrefix is reserved for the sandwich's own name->prefix records and
// its Sequence's high-water mark; no named part may ever be cooked to it.
const metaPrefix = 0

// SandwichDB multiplexes many named parts onto one physical store. T (and
// the matching width in bytes) bounds how many distinct parts can ever
// exist: width 1 (T = uint8) allows 255 parts before the sequence
// overflows the reserved-zero scheme described in Cook. base is held as a
// store.RefDB: the physical store is never owned by the SandwichDB, so it
// may be shared with other decorators (another SandwichDB view, a TxnDB)
// wrapping the same store concurrently.
type SandwichDB[T constraints.Unsigned] struct {
	base  store.RefDB
	width int
	meta  *Part[T]
	seq   *sequence.Sequence[T]
}

// New wraps base as a SandwichDB whose prefixes are width bytes wide,
// allocated in pages of pageSize.
func New[T constraints.Unsigned](base store.Store, width int, pageSize T) *SandwichDB[T] {
	ref := store.NewRefDB(base)
	meta := &Part[T]{base: ref, prefix: metaPrefix, width: width}
	return &SandwichDB[T]{
		base:  ref,
		width: width,
		meta:  meta,
		seq:   sequence.New[T](meta, []byte{}, width, pageSize),
	}
}

// Cook looks up name's prefix in the meta part, allocating and persisting
// a fresh one via the sequence if name has never been used before. A
// second Cook of the same name always returns the same prefix. Prefix 0
// (reserved for meta) is never handed out: if the sequence lands on it,
// Cook draws again immediately.
func (s *SandwichDB[T]) Cook(name []byte) (T, error) {
	if len(name) == 0 {
		return 0, kverrors.InvalidArgument("sandwich part name must not be empty")
	}

	v, err := s.meta.Get(name)
	if err == nil {
		cookie, decErr := bigend.Decode[T](v, s.width)
		if decErr != nil {
			return 0, decErr
		}
		return cookie, nil
	}
	if !kverrors.IsNotFound(err) {
		return 0, err
	}

	var cookie T
	if err := s.seq.Next(&cookie); err != nil {
		return 0, err
	}
	if cookie == metaPrefix {
		if err := s.seq.Next(&cookie); err != nil {
			return 0, err
		}
	}
	if err := s.meta.Put(name, bigend.Encode(cookie, s.width)); err != nil {
		return 0, err
	}
	return cookie, nil
}

// Use wraps cookie in a Part directly, without a meta lookup.
func (s *SandwichDB[T]) Use(cookie T) *Part[T] {
	return &Part[T]{base: s.base, prefix: cookie, width: s.width}
}

// Target returns the physical store this SandwichDB is multiplexed onto,
// for callers that need to hand the same underlying store to another
// decorator (e.g. a TxnDB) alongside this SandwichDB.
func (s *SandwichDB[T]) Target() store.Store { return s.base.Target() }

// UseName is Cook followed by Use: it returns the named part, allocating
// its prefix on first use.
func (s *SandwichDB[T]) UseName(name []byte) (*Part[T], error) {
	cookie, err := s.Cook(name)
	if err != nil {
		return nil, err
	}
	return s.Use(cookie), nil
}

// Sync flushes the part-allocation sequence's high-water mark back to
// base. Call it before discarding a SandwichDB.
func (s *SandwichDB[T]) Sync() error {
	return s.seq.Sync()
}

// Names lists every name ever Cook'd, sorted, by scanning the meta part's
// records and skipping the Sequence's own empty-key state entry.
func (s *SandwichDB[T]) Names() []string {
	var names []string
	cur := s.meta.NewCursor()
	for cur.SeekToFirst(); cur.Valid(); cur.Next() {
		if len(cur.Key()) == 0 {
			continue
		}
		names = append(names, string(cur.Key()))
	}
	slices.Sort(names)
	return names
}
