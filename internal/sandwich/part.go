package sandwich

import (
	"bytes"

	"golang.org/x/exp/constraints"

	"github.com/ony/leveldb-tl/internal/bigend"
	"github.com/ony/leveldb-tl/internal/kverrors"
	"github.com/ony/leveldb-tl/internal/store"
)

// Part is a logical store bound to one prefix of a SandwichDB's physical
// store: every key it sees is prefixed before delegating to base, and its
// cursor only ever sees the slice of base's key space starting with that
// prefix. base is a store.RefDB, a non-owning handle: a Part never assumes
// it has the physical store to itself, since every other Part cooked from
// the same SandwichDB (and any TxnDB wrapping the same physical store) is
// its own independent decorator over that same base.
type Part[T constraints.Unsigned] struct {
	base   store.RefDB
	prefix T
	width  int
}

// Cookie returns the prefix identifying this part.
func (p *Part[T]) Cookie() T { return p.prefix }

func (p *Part[T]) prefixed(key []byte) []byte {
	buf := make([]byte, 0, p.width+len(key))
	buf = append(buf, bigend.Encode(p.prefix, p.width)...)
	buf = append(buf, key...)
	return buf
}

func (p *Part[T]) Get(key []byte) ([]byte, error) {
	return p.base.Get(p.prefixed(key))
}

func (p *Part[T]) Put(key, value []byte) error {
	return p.base.Put(p.prefixed(key), value)
}

func (p *Part[T]) Delete(key []byte) error {
	return p.base.Delete(p.prefixed(key))
}

func (p *Part[T]) Write(batch store.Batch) error {
	return store.ApplyBatch(p, batch)
}

func (p *Part[T]) NewCursor() store.Cursor {
	return &Cursor{base: p.base.NewCursor(), prefix: bigend.Encode(p.prefix, p.width)}
}

// Cursor walks the slice of a physical store's key space that starts with
// a fixed prefix, presenting keys with that prefix stripped.
type Cursor struct {
	base   store.Cursor
	prefix []byte
}

func (c *Cursor) SeekToFirst() {
	c.base.Seek(c.prefix)
}

// SeekToLast positions at the last key in this part's slice by seeking
// the physical store to the lower bound of the *next* prefix and backing
// up one step; if this part's prefix is already the maximum representable
// value, there is no next prefix, so it falls back to the base's own
// SeekToLast.
func (c *Cursor) SeekToLast() {
	next := append([]byte(nil), c.prefix...)
	if bigend.NextNet(next) {
		c.base.SeekToLast()
		return
	}
	c.base.Seek(next)
	if c.base.Valid() {
		c.base.Prev()
	} else {
		c.base.SeekToLast()
	}
}

func (c *Cursor) Seek(target []byte) {
	buf := make([]byte, 0, len(c.prefix)+len(target))
	buf = append(buf, c.prefix...)
	buf = append(buf, target...)
	c.base.Seek(buf)
}

func (c *Cursor) Next() { c.base.Next() }
func (c *Cursor) Prev() { c.base.Prev() }

func (c *Cursor) Valid() bool {
	return c.base.Valid() && bytes.HasPrefix(c.base.Key(), c.prefix)
}

func (c *Cursor) Key() []byte {
	return c.base.Key()[len(c.prefix):]
}

func (c *Cursor) Value() []byte { return c.base.Value() }

func (c *Cursor) Status() error {
	err := c.base.Status()
	if err == nil && !c.Valid() {
		return kverrors.NotFound("out of sandwich slice", nil)
	}
	return err
}

var _ store.Store = (*Part[uint16])(nil)
var _ store.Cursor = (*Cursor)(nil)
