// Package bimap provides a two-way map for comparable keys and values.
//
// Most operations come in Fwd and Rev variants; the Fwd variant acts on
// the value given the key, and Rev is the opposite. The map stores two
// copies of each pair, one per direction, so it is best for keys and
// values that are cheap to copy; wrap large payloads in a pointer.
package bimap

type Entry[K comparable, V comparable] struct {
	Key   K
	Value V
}

type BiMap[K comparable, V comparable] interface {
	Put(k K, v V) []Entry[K, V]
	GetFwd(k K) (V, error)
	GetRev(v V) (K, error)
	DeleteFwd(k K) (V, error)
	DeleteRev(v V) (K, error)
	ContainsFwd(k K) bool
	ContainsRev(v V) bool
	Size() int
	IsEmpty() bool
	Clear()
	Clone() BiMap[K, V]
}
