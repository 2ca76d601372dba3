package ecs

// Entity encodes both the generation (upper 32 bits) and the pool slot index
// (lower 32 bits). The zero value is never a live entity.
type Entity uint64

// newEntity creates an Entity from a generation and a slot index.
func newEntity(generation uint32, index uint32) Entity {
	return Entity(uint64(generation)<<32 | uint64(index))
}

// Generation extracts the generation from the entity handle.
func (e Entity) Generation() uint32 {
	return uint32(e >> 32)
}

// Index extracts the pool slot index from the entity handle.
func (e Entity) Index() uint32 {
	return uint32(e & 0xFFFFFFFF)
}

// entityPool hands out entity handles for one world. Slot indices are
// recycled; each recycle bumps the slot's generation so a handle held past
// DestroyEntity no longer resolves anywhere.
type entityPool struct {
	generations []uint32
	alive       []bool
	free        []uint32
	liveCount   int
}

func newEntityPool() *entityPool {
	return &entityPool{}
}

func (p *entityPool) create() Entity {
	if n := len(p.free); n > 0 {
		idx := p.free[n-1]
		p.free = p.free[:n-1]
		p.alive[idx] = true
		p.liveCount++
		return newEntity(p.generations[idx], idx)
	}

	idx := uint32(len(p.generations))
	p.generations = append(p.generations, 1)
	p.alive = append(p.alive, true)
	p.liveCount++
	return newEntity(1, idx)
}

// destroy releases the handle's slot back to the pool. Returns false for a
// handle that is dead, stale, or belongs to another pool.
func (p *entityPool) destroy(e Entity) bool {
	if !p.contains(e) {
		return false
	}
	idx := e.Index()
	p.alive[idx] = false
	p.generations[idx]++
	p.free = append(p.free, idx)
	p.liveCount--
	return true
}

// contains reports whether e is a currently live handle of this pool.
func (p *entityPool) contains(e Entity) bool {
	idx := e.Index()
	if int(idx) >= len(p.generations) {
		return false
	}
	return p.alive[idx] && p.generations[idx] == e.Generation()
}

func (p *entityPool) count() int {
	return p.liveCount
}

// live returns all currently live entities in slot order.
func (p *entityPool) live() []Entity {
	result := make([]Entity, 0, p.liveCount)
	for idx, ok := range p.alive {
		if ok {
			result = append(result, newEntity(p.generations[idx], uint32(idx)))
		}
	}
	return result
}
