package subtract

import (
	"bytes"

	"github.com/ony/leveldb-tl/internal/store"
)

// Cursor presents keys(base) \ keys(tombstones) in order. It exposes
// base's value and status directly: while valid, base.Key() is guaranteed
// to be present in the base store and absent from the tombstone set.
type Cursor struct {
	base  store.Cursor
	white store.Cursor
}

// New builds a Subtract cursor over base and tombstones. Neither argument
// is positioned by New; the first Seek*/Seek call establishes position.
func New(base, tombstones store.Cursor) *Cursor {
	return &Cursor{base: base, white: tombstones}
}

func (c *Cursor) Valid() bool   { return c.base.Valid() }
func (c *Cursor) Key() []byte   { return c.base.Key() }
func (c *Cursor) Value() []byte { return c.base.Value() }
func (c *Cursor) Status() error { return c.base.Status() }

// skipFwd advances past any run of tombstoned keys at or ahead of base's
// current position, walking both cursors forward until base lands on a
// live key (or becomes invalid).
func (c *Cursor) skipFwd() {
	if !c.white.Valid() {
		c.white.Seek(c.base.Key())
		if !c.white.Valid() {
			return
		}
	}
	for {
		switch cmp := bytes.Compare(c.base.Key(), c.white.Key()); {
		case cmp < 0:
			return
		case cmp > 0:
			c.white.Next()
			if !c.white.Valid() {
				return
			}
		default:
			c.base.Next()
			c.white.Next()
			if !c.white.Valid() || !c.Valid() {
				return
			}
		}
	}
}

// skipRev is skipFwd's mirror image for reverse traversal.
func (c *Cursor) skipRev() {
	if !c.white.Valid() {
		c.white.Seek(c.base.Key())
		if !c.white.Valid() {
			return
		}
	}
	for {
		switch cmp := bytes.Compare(c.base.Key(), c.white.Key()); {
		case cmp > 0:
			return
		case cmp < 0:
			c.white.Prev()
			if !c.white.Valid() {
				return
			}
		default:
			c.base.Prev()
			c.white.Prev()
			if !c.white.Valid() || !c.Valid() {
				return
			}
		}
	}
}

func (c *Cursor) SeekToFirst() {
	c.base.SeekToFirst()
	if !c.Valid() {
		return
	}
	c.white.SeekToFirst()
	c.skipFwd()
}

func (c *Cursor) SeekToLast() {
	c.base.SeekToLast()
	if !c.Valid() {
		return
	}
	c.white.SeekToLast()
	c.skipRev()
}

func (c *Cursor) Seek(target []byte) {
	c.base.Seek(target)
	if !c.Valid() {
		return
	}
	c.white.Seek(target)
	c.skipFwd()
}

func (c *Cursor) Next() {
	c.base.Next()
	if c.Valid() {
		c.skipFwd()
	}
}

func (c *Cursor) Prev() {
	c.base.Prev()
	if c.Valid() {
		c.skipRev()
	}
}

var _ store.Cursor = (*Cursor)(nil)
