package dictionary

import (
	"errors"
	"fmt"
	"iter"
)

// ErrEmptyDictionary is returned by Find when the dictionary holds no keys.
var ErrEmptyDictionary = errors.New("dictionary is empty")

// DeletelessDictionary is a key-to-value dictionary that never removes keys.
type DeletelessDictionary[K comparable, V any] interface {
	// Insert associates value with key. If the key was already present its
	// value is replaced and the previous value is returned with replaced set.
	Insert(key K, value V) (prev V, replaced bool)

	// Find returns the value associated with key.
	// It returns an error wrapping ErrEmptyDictionary if the dictionary is empty.
	Find(key K) (value V, found bool, err error)

	// Contains reports whether key is present. It is false on an empty dictionary.
	Contains(key K) bool

	// Keys returns every key. Index i of Keys pairs with index i of Values.
	Keys() []K

	// Values returns every value. Index i of Values pairs with index i of Keys.
	Values() []V

	// All yields every key-value pair in the same order as Keys and Values.
	All() iter.Seq2[K, V]

	Size() int
	IsEmpty() bool

	fmt.Stringer
}

// Entry is a key-value pair stored in a bucket chain.
// Its key never changes after insertion; its value is replaced in place on update.
type Entry[K comparable, V any] struct {
	key   K
	value V
}

func (e *Entry[K, V]) Key() K   { return e.key }
func (e *Entry[K, V]) Value() V { return e.value }

func (e *Entry[K, V]) String() string {
	return fmt.Sprintf("%v=%v", e.key, e.value)
}
