package pure

import (
	"fmt"
	"reflect"
)

// ComparableOrStringer is an argument of a tableized function. It must be
// comparable or implement fmt.Stringer.
type ComparableOrStringer any

// ComparableOrString is the key a tableized argument is stored under.
type ComparableOrString any

// nilArg keys nil arguments, since the dictionary rejects nil keys.
type nilArg struct{}

func TableizeI1O1[I1 ComparableOrStringer, O1 any](
	pureFn func(I1) O1,
	maxTableSize uint32,
) func(I1) O1 {
	memo := NewTrie[O1](maxTableSize)
	return func(i1 I1) O1 {
		return tableized(memo, func() O1 { return pureFn(i1) }, i1)
	}
}

func TableizeI2O1[I1, I2 ComparableOrStringer, O1 any](
	pureFn func(I1, I2) O1,
	maxTableSize uint32,
) func(I1, I2) O1 {
	memo := NewTrie[O1](maxTableSize)
	return func(i1 I1, i2 I2) O1 {
		return tableized(memo, func() O1 { return pureFn(i1, i2) }, i1, i2)
	}
}

func TableizeI3O1[I1, I2, I3 ComparableOrStringer, O1 any](
	pureFn func(I1, I2, I3) O1,
	maxTableSize uint32,
) func(I1, I2, I3) O1 {
	memo := NewTrie[O1](maxTableSize)
	return func(i1 I1, i2 I2, i3 I3) O1 {
		return tableized(memo, func() O1 { return pureFn(i1, i2, i3) }, i1, i2, i3)
	}
}

func TableizeI4O1[I1, I2, I3, I4 ComparableOrStringer, O1 any](
	pureFn func(I1, I2, I3, I4) O1,
	maxTableSize uint32,
) func(I1, I2, I3, I4) O1 {
	memo := NewTrie[O1](maxTableSize)
	return func(i1 I1, i2 I2, i3 I3, i4 I4) O1 {
		return tableized(memo, func() O1 { return pureFn(i1, i2, i3, i4) }, i1, i2, i3, i4)
	}
}

func tableKey(i ComparableOrStringer) ComparableOrString {
	if i == nil {
		return nilArg{}
	}
	if stringer, ok := i.(fmt.Stringer); ok {
		return stringer.String()
	}
	if typ := reflect.TypeOf(i); !typ.Comparable() {
		panic(fmt.Sprintf("tableize: %s is neither comparable nor a fmt.Stringer", typ))
	}
	return i
}

// tableized returns the memoized result for args, calling compute on a miss.
// The lock is not held while compute runs, so recursive tableized functions work.
func tableized[O any](memo *Trie[O], compute func() O, args ...ComparableOrStringer) O {
	keys := make([]ComparableOrString, len(args))
	for i, arg := range args {
		keys[i] = tableKey(arg)
	}
	v, ok := memo.Load(keys)
	if !ok {
		v = compute()
		memo.Store(keys, v)
	}
	return v
}
