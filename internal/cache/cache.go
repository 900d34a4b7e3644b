package cache

import "github.com/qoifgo/qoif/internal/hash"

// Cache is the 64-slot table of recently seen pixels.
//
// Slots are addressed by hash.Index and overwritten unconditionally on Store,
// so a pixel is silently evicted when a different pixel hashes to its slot.
// There is no probing: a lookup after such an eviction is a miss.
//
// The zero value is an empty cache.
type Cache struct {
	slots    [hash.IndexSize]uint32
	occupied uint64 // bit i set when slots[i] holds a pixel
	evicted  int    // stores that replaced a different pixel
}

// Store writes p into its slot, replacing any previous occupant.
func (c *Cache) Store(p uint32) {
	idx := hash.Index(p)
	bit := uint64(1) << idx

	if c.occupied&bit != 0 && c.slots[idx] != p {
		c.evicted++
	}

	c.slots[idx] = p
	c.occupied |= bit
}

// Lookup returns the slot index of p when the slot is occupied by p.
func (c *Cache) Lookup(p uint32) (uint8, bool) {
	idx := hash.Index(p)
	if c.occupied&(uint64(1)<<idx) == 0 || c.slots[idx] != p {
		return 0, false
	}

	return idx, true
}

// Slot returns the pixel stored at idx and whether the slot is occupied.
func (c *Cache) Slot(idx uint8) (uint32, bool) {
	if idx >= hash.IndexSize || c.occupied&(uint64(1)<<idx) == 0 {
		return 0, false
	}

	return c.slots[idx], true
}

// Len returns the number of occupied slots.
func (c *Cache) Len() int {
	n := 0
	for bits := c.occupied; bits != 0; bits &= bits - 1 {
		n++
	}

	return n
}

// Evictions returns how many stores displaced a different pixel since the last Reset.
func (c *Cache) Evictions() int {
	return c.evicted
}

// Reset empties every slot.
func (c *Cache) Reset() {
	*c = Cache{}
}
