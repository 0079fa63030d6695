package dictionary

import (
	"fmt"
	"iter"
	"strings"

	"go.uber.org/zap"
)

var _ DeletelessDictionary[string, any] = (*ChainingHashTable[string, any])(nil)

// bucket is a chain of entries sharing a bucket index, in insertion order.
type bucket[K comparable, V any] []*Entry[K, V]

func (b bucket[K, V]) lookup(key K) *Entry[K, V] {
	for _, e := range b {
		if e.key == key {
			return e
		}
	}
	return nil
}

func (b bucket[K, V]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, e := range b {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(e.String())
	}
	sb.WriteByte(']')
	return sb.String()
}

// ChainingHashTable is a DeletelessDictionary that resolves collisions by
// chaining entries in per-bucket slices.
type ChainingHashTable[K comparable, V any] struct {
	table      []bucket[K, V]
	size       int
	growthStep int // position in capacities
	logger     *zap.Logger
}

// NewChainingHashTable returns an empty table with the initial capacity of 11 buckets.
func NewChainingHashTable[K comparable, V any](opts ...Option) *ChainingHashTable[K, V] {
	o := newOptions(opts)
	return &ChainingHashTable[K, V]{
		table:  make([]bucket[K, V], initialCapacity()),
		logger: o.logger,
	}
}

func (t *ChainingHashTable[K, V]) Size() int     { return t.size }
func (t *ChainingHashTable[K, V]) IsEmpty() bool { return t.size == 0 }

// Capacity returns the current number of buckets.
func (t *ChainingHashTable[K, V]) Capacity() int { return len(t.table) }

func (t *ChainingHashTable[K, V]) Insert(key K, value V) (prev V, replaced bool) {
	if isNilKey(key) {
		return
	}

	idx := bucketIndex(key, len(t.table))
	if e := t.table[idx].lookup(key); e != nil {
		prev, e.value = e.value, value
		return prev, true
	}

	t.table[idx] = append(t.table[idx], &Entry[K, V]{key: key, value: value})
	t.size++

	if exceedsLoadFactor(t.size, len(t.table)) {
		t.resize()
	}
	return
}

func (t *ChainingHashTable[K, V]) Find(key K) (value V, found bool, err error) {
	if t.IsEmpty() {
		t.logger.Debug("find on empty dictionary", zap.Any("key", key))
		err = fmt.Errorf("%w: find key %v", ErrEmptyDictionary, key)
		return
	}
	if e := t.entryOf(key); e != nil {
		return e.value, true, nil
	}
	return
}

func (t *ChainingHashTable[K, V]) Contains(key K) bool {
	return t.entryOf(key) != nil
}

func (t *ChainingHashTable[K, V]) entryOf(key K) *Entry[K, V] {
	if isNilKey(key) {
		return nil
	}
	return t.table[bucketIndex(key, len(t.table))].lookup(key)
}

// resize moves every entry into a table of the next capacity.
// The new table is built aside and swapped in once complete.
func (t *ChainingHashTable[K, V]) resize() {
	from := len(t.table)
	step := t.growthStep + 1
	resized := make([]bucket[K, V], capacityAt(step, from))

	for _, b := range t.table {
		for _, e := range b {
			idx := bucketIndex(e.key, len(resized))
			resized[idx] = append(resized[idx], e)
		}
	}

	t.table = resized
	t.growthStep = step

	t.logger.Debug("dictionary resized",
		zap.Int("from_capacity", from),
		zap.Int("to_capacity", len(resized)),
		zap.Int("size", t.size),
		zap.Int("growth_step", step),
	)
}

func (t *ChainingHashTable[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, b := range t.table {
			for _, e := range b {
				if !yield(e.key, e.value) {
					return
				}
			}
		}
	}
}

func (t *ChainingHashTable[K, V]) Keys() []K {
	keys := make([]K, 0, t.size)
	for k := range t.All() {
		keys = append(keys, k)
	}
	return keys
}

func (t *ChainingHashTable[K, V]) Values() []V {
	values := make([]V, 0, t.size)
	for _, v := range t.All() {
		values = append(values, v)
	}
	return values
}

// String renders every bucket, empty ones included. It is meant for debugging.
func (t *ChainingHashTable[K, V]) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, b := range t.table {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(b.String())
	}
	sb.WriteByte('}')
	return sb.String()
}
