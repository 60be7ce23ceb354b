package bimap

import (
	"golang.org/x/exp/maps"
)

type hashBiMap[K comparable, V comparable] struct {
	fwd map[K]V
	rev map[V]K
}

func New[K comparable, V comparable]() BiMap[K, V] {
	return &hashBiMap[K, V]{
		fwd: make(map[K]V),
		rev: make(map[V]K),
	}
}

// FromMap builds a bimap holding the pairs of fwd. The input map is not
// retained. If several keys share a value, one pair per value survives.
func FromMap[K comparable, V comparable](fwd map[K]V) BiMap[K, V] {
	m := New[K, V]()
	for k, v := range fwd {
		m.Put(k, v)
	}
	return m
}

// Put inserts the pair (k, v). Any existing pair holding k or holding v
// is removed from both directions first, so at most 2 pairs are evicted;
// the evicted pairs are returned. Re-putting an existing pair evicts
// nothing.
func (m *hashBiMap[K, V]) Put(k K, v V) []Entry[K, V] {
	var evicted []Entry[K, V]
	if oldV, ok := m.fwd[k]; ok && oldV != v {
		delete(m.fwd, k)
		delete(m.rev, oldV)
		evicted = append(evicted, Entry[K, V]{Key: k, Value: oldV})
	}
	if oldK, ok := m.rev[v]; ok && oldK != k {
		delete(m.fwd, oldK)
		delete(m.rev, v)
		evicted = append(evicted, Entry[K, V]{Key: oldK, Value: v})
	}
	m.fwd[k] = v
	m.rev[v] = k
	return evicted
}

func (m *hashBiMap[K, V]) GetFwd(k K) (v V, err error) {
	v, ok := m.fwd[k]
	if !ok {
		return v, ErrPairNotExisted
	}
	return v, nil
}

func (m *hashBiMap[K, V]) GetRev(v V) (k K, err error) {
	k, ok := m.rev[v]
	if !ok {
		return k, ErrPairNotExisted
	}
	return k, nil
}

func (m *hashBiMap[K, V]) DeleteFwd(k K) (v V, err error) {
	v, ok := m.fwd[k]
	if !ok {
		return v, ErrPairNotExisted
	}
	delete(m.fwd, k)
	delete(m.rev, v)
	return v, nil
}

func (m *hashBiMap[K, V]) DeleteRev(v V) (k K, err error) {
	k, ok := m.rev[v]
	if !ok {
		return k, ErrPairNotExisted
	}
	delete(m.rev, v)
	delete(m.fwd, k)
	return k, nil
}

func (m *hashBiMap[K, V]) ContainsFwd(k K) bool {
	if _, ok := m.fwd[k]; ok {
		return true
	}
	return false
}

func (m *hashBiMap[K, V]) ContainsRev(v V) bool {
	if _, ok := m.rev[v]; ok {
		return true
	}
	return false
}

func (m *hashBiMap[K, V]) Size() int {
	return len(m.fwd)
}

func (m *hashBiMap[K, V]) IsEmpty() bool {
	return len(m.fwd) == 0
}

func (m *hashBiMap[K, V]) Clear() {
	maps.Clear(m.fwd)
	maps.Clear(m.rev)
}

func (m *hashBiMap[K, V]) Clone() BiMap[K, V] {
	return &hashBiMap[K, V]{
		fwd: maps.Clone(m.fwd),
		rev: maps.Clone(m.rev),
	}
}
