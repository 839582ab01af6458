package store

// RefDB is a non-owning handle to a Store, used whenever a layer needs to
// hold a reference to a store it does not own and must not outlive — e.g.
// TxnDB's reference to its base store, or a SandwichDB Part's reference to
// the physical store it is multiplexed onto.
//
// RefDB itself carries no state beyond the wrapped Store: it exists so that
// call sites read as documentation ("this field is a borrow") rather than
// implying ownership the way embedding a bare Store field would. It is not
// a decorator — Get/Put/Delete/NewCursor/Write all delegate unchanged.
type RefDB struct {
	target Store
}

// NewRefDB wraps target as a non-owning reference. Callers remain
// responsible for the lifetime of target; RefDB never closes it.
func NewRefDB(target Store) RefDB {
	return RefDB{target: target}
}

// Target returns the underlying Store this reference borrows.
func (r RefDB) Target() Store { return r.target }

func (r RefDB) Get(key []byte) ([]byte, error) { return r.target.Get(key) }
func (r RefDB) Put(key, value []byte) error    { return r.target.Put(key, value) }
func (r RefDB) Delete(key []byte) error        { return r.target.Delete(key) }
func (r RefDB) NewCursor() Cursor              { return r.target.NewCursor() }
func (r RefDB) Write(batch Batch) error        { return r.target.Write(batch) }
