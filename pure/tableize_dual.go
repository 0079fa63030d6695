package pure

type result[O1 any, O2 any] struct {
	O1 O1
	O2 O2
}

func dual[O1, O2 any](fn func() (O1, O2)) func() result[O1, O2] {
	return func() result[O1, O2] {
		v1, v2 := fn()
		return result[O1, O2]{O1: v1, O2: v2}
	}
}

func TableizeI1O2[I1 ComparableOrStringer, O1, O2 any](
	pureFn func(I1) (O1, O2),
	maxTableSize uint32,
) func(I1) (O1, O2) {
	memo := NewTrie[result[O1, O2]](maxTableSize)
	return func(i1 I1) (O1, O2) {
		res := tableized(memo, dual(func() (O1, O2) { return pureFn(i1) }), i1)
		return res.O1, res.O2
	}
}

func TableizeI2O2[I1, I2 ComparableOrStringer, O1, O2 any](
	pureFn func(I1, I2) (O1, O2),
	maxTableSize uint32,
) func(I1, I2) (O1, O2) {
	memo := NewTrie[result[O1, O2]](maxTableSize)
	return func(i1 I1, i2 I2) (O1, O2) {
		res := tableized(memo, dual(func() (O1, O2) { return pureFn(i1, i2) }), i1, i2)
		return res.O1, res.O2
	}
}

func TableizeI3O2[I1, I2, I3 ComparableOrStringer, O1, O2 any](
	pureFn func(I1, I2, I3) (O1, O2),
	maxTableSize uint32,
) func(I1, I2, I3) (O1, O2) {
	memo := NewTrie[result[O1, O2]](maxTableSize)
	return func(i1 I1, i2 I2, i3 I3) (O1, O2) {
		res := tableized(memo, dual(func() (O1, O2) { return pureFn(i1, i2, i3) }), i1, i2, i3)
		return res.O1, res.O2
	}
}

func TableizeI4O2[I1, I2, I3, I4 ComparableOrStringer, O1, O2 any](
	pureFn func(I1, I2, I3, I4) (O1, O2),
	maxTableSize uint32,
) func(I1, I2, I3, I4) (O1, O2) {
	memo := NewTrie[result[O1, O2]](maxTableSize)
	return func(i1 I1, i2 I2, i3 I3, i4 I4) (O1, O2) {
		res := tableized(memo, dual(func() (O1, O2) { return pureFn(i1, i2, i3, i4) }), i1, i2, i3, i4)
		return res.O1, res.O2
	}
}
