package model

import "sync"

// FieldToPool returns a field to the pool for reuse
func FieldToPool(f *Field, pool *FieldPool) {
	if pool == nil || f == nil {
		return
	}

	pool.Put(f)
}

// FieldPool recycles field storage for memory efficiency
type FieldPool struct {
	pool sync.Pool
}

func NewFieldPool() *FieldPool {
	return &FieldPool{
		pool: sync.Pool{
			New: func() interface{} {
				return &Field{cells: make(map[Coordinate]bool)}
			},
		},
	}
}

// Get retrieves an empty field from the pool
func (p *FieldPool) Get() *Field {
	return p.pool.Get().(*Field)
}

// Put returns a field to the pool, clearing its state
func (p *FieldPool) Put(f *Field) {
	// Clear the storage before returning to pool
	clear(f.cells)
	p.pool.Put(f)
}
