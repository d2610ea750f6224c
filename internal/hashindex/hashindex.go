// Package hashindex implements a generic open-addressed hash index from
// string keys to int64 values: init, insert (with an "already exists"
// return instead of an overwrite), find, delete, and grow. It backs a
// symbol table's by-name lookup structure.
//
// Hashing is done with SipHash-2-4 under a fixed key via
// github.com/dchest/siphash.
package hashindex

import "github.com/dchest/siphash"

// fixed key: this index never needs to resist an adversarial workload, only
// to spread symbol text across buckets.
const (
	key0 = uint64(0x736d6262_6c6962)
	key1 = uint64(0x68617368_696478)
)

const minSize = 16

type slot struct {
	used  bool
	key   string
	value int64
}

// Index is an open-addressed (linear probing) hash map from string to int64.
type Index struct {
	slots []slot
	count int
}

// New creates an empty Index with room for at least minSize entries.
func New() *Index {
	return &Index{slots: make([]slot, minSize)}
}

// Len returns the number of entries currently stored.
func (h *Index) Len() int { return h.count }

func hash(key string) uint64 {
	return siphash.Hash(key0, key1, []byte(key))
}

func (h *Index) bucket(key string) int {
	return int(hash(key) % uint64(len(h.slots)))
}

// Find looks up key, returning its value and true if present.
func (h *Index) Find(key string) (int64, bool) {
	if len(h.slots) == 0 {
		return 0, false
	}
	i := h.bucket(key)
	for n := 0; n < len(h.slots); n++ {
		s := &h.slots[(i+n)%len(h.slots)]
		if !s.used {
			return 0, false
		}
		if s.key == key {
			return s.value, true
		}
	}
	return 0, false
}

// Insert adds key→value if key is not already present. If key already
// exists, Insert leaves its value untouched and returns (existing, false),
// which callers treat as success rather than an error, since duplicate
// symbol text is legal and the lowest-SID declaration wins.
func (h *Index) Insert(key string, value int64) (existing int64, inserted bool) {
	if v, ok := h.Find(key); ok {
		return v, false
	}
	if h.count*2 >= len(h.slots) {
		h.Grow()
	}

	i := h.bucket(key)
	for {
		s := &h.slots[i]
		if !s.used {
			s.used = true
			s.key = key
			s.value = value
			h.count++
			return value, true
		}
		i = (i + 1) % len(h.slots)
	}
}

// Delete removes key, reporting whether it was present. Deletion uses
// backward-shift so later lookups along the probe chain are not broken.
func (h *Index) Delete(key string) bool {
	if len(h.slots) == 0 {
		return false
	}
	i := h.bucket(key)
	for n := 0; n < len(h.slots); n++ {
		idx := (i + n) % len(h.slots)
		s := &h.slots[idx]
		if !s.used {
			return false
		}
		if s.key == key {
			h.removeAt(idx)
			h.count--
			return true
		}
	}
	return false
}

func (h *Index) removeAt(idx int) {
	h.slots[idx] = slot{}
	// Re-insert every entry in the rest of this probe chain: a linear-probed
	// table can't just clear the slot, or later entries that probed past it
	// become unreachable.
	i := (idx + 1) % len(h.slots)
	for h.slots[i].used {
		s := h.slots[i]
		h.slots[i] = slot{}
		h.count--
		j := h.bucket(s.key)
		for {
			if !h.slots[j].used {
				h.slots[j] = s
				h.count++
				break
			}
			j = (j + 1) % len(h.slots)
		}
		i = (i + 1) % len(h.slots)
	}
}

// Grow doubles the table's capacity (minimum minSize) and rehashes every
// entry.
func (h *Index) Grow() {
	newSize := len(h.slots) * 2
	if newSize < minSize {
		newSize = minSize
	}
	old := h.slots
	h.slots = make([]slot, newSize)
	h.count = 0
	for _, s := range old {
		if s.used {
			h.Insert(s.key, s.value)
		}
	}
}
