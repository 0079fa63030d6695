package pure

import (
	"errors"
	"sync"

	"github.com/on-the-ground/deleteless_go/dictionary"
	"github.com/on-the-ground/deleteless_go/shared/helper"
)

// level is one node of the trie. Values are either *level or leaf.
type level = dictionary.ChainingHashTable[ComparableOrString, any]

type leaf[O any] struct {
	value O
}

func newLevel() *level {
	return dictionary.NewChainingHashTable[ComparableOrString, any]()
}

// Trie is a bounded memo store keyed by argument paths.
//
// It keeps two generations. Stores go to the head generation; once maxSize
// stores have landed there the older generation is dropped whole and a fresh
// head takes its place. Entries are never deleted one by one.
type Trie[O any] struct {
	mu      sync.Mutex
	memos   [2]*level
	headIdx int
	size    uint32
	maxSize uint32
}

func NewTrie[O any](maxSize uint32) *Trie[O] {
	if maxSize == 0 {
		panic("maxSize should be greater than 0")
	}
	return &Trie[O]{
		memos:   [2]*level{newLevel(), newLevel()},
		maxSize: maxSize,
	}
}

func (t *Trie[O]) Load(keys []ComparableOrString) (O, bool) {
	if len(keys) == 0 {
		panic("traverse: empty keys")
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	for _, idx := range [2]int{t.headIdx, 1 - t.headIdx} {
		if l, ok := helper.GetTypedValueOf2[leaf[O]](func() (any, bool) {
			return lookup(t.memos[idx], keys)
		}); ok {
			return l.value, true
		}
	}
	var zero O
	return zero, false
}

func (t *Trie[O]) Store(keys []ComparableOrString, value O) {
	if len(keys) == 0 {
		panic("traverse: empty keys")
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.size == t.maxSize {
		t.headIdx = 1 - t.headIdx
		t.memos[t.headIdx] = newLevel()
		t.size = 0
	}
	m, k := traverse(t.memos[t.headIdx], keys)
	m.Insert(k, leaf[O]{value: value})
	t.size++
}

// lookup walks the key path without creating nodes.
func lookup(m *level, keys []ComparableOrString) (any, bool) {
	last := len(keys) - 1
	for _, k := range keys[:last] {
		next, ok := helper.GetTypedValueOf2[*level](func() (any, bool) {
			return find(m, k)
		})
		if !ok {
			return nil, false
		}
		m = next
	}
	return find(m, keys[last])
}

func find(m *level, k ComparableOrString) (any, bool) {
	v, found, err := m.Find(k)
	if errors.Is(err, dictionary.ErrEmptyDictionary) {
		return nil, false
	}
	return v, found
}

// traverse walks the key path, creating intermediate nodes as needed, and
// returns the node holding the last key.
func traverse(m *level, keys []ComparableOrString) (*level, ComparableOrString) {
	last := len(keys) - 1
	for _, k := range keys[:last] {
		next, ok := helper.GetTypedValueOf2[*level](func() (any, bool) {
			return find(m, k)
		})
		if !ok {
			next = newLevel()
			m.Insert(k, next)
		}
		m = next
	}
	return m, keys[last]
}
