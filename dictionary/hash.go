package dictionary

import (
	"hash/maphash"
	"math"

	"github.com/cespare/xxhash/v2"
)

// Hasher is implemented by keys that carry their own hash code.
// Keys that are equal under == must return the same hash.
type Hasher interface {
	Hash() uint64
}

// seed is fixed for the life of the process so hashes stay stable between resizes.
var seed = maphash.MakeSeed()

// hashOf returns the intrinsic, non-negative hash of key.
func hashOf[K comparable](key K) uint64 {
	switch k := any(key).(type) {
	case Hasher:
		return k.Hash()
	case int:
		return absHash(int64(k))
	case int8:
		return absHash(int64(k))
	case int16:
		return absHash(int64(k))
	case int32:
		return absHash(int64(k))
	case int64:
		return absHash(k)
	case uint:
		return uint64(k)
	case uint8:
		return uint64(k)
	case uint16:
		return uint64(k)
	case uint32:
		return uint64(k)
	case uint64:
		return k
	case uintptr:
		return uint64(k)
	case bool:
		if k {
			return 1
		}
		return 0
	case string:
		return xxhash.Sum64String(k)
	case float32:
		return floatHash(float64(k))
	case float64:
		return floatHash(k)
	default:
		return maphash.Comparable(seed, key)
	}
}

func absHash(v int64) uint64 {
	if v < 0 {
		return uint64(-v)
	}
	return uint64(v)
}

// floatHash folds +0 and -0 together since they compare equal.
func floatHash(f float64) uint64 {
	if f == 0 {
		return 0
	}
	return math.Float64bits(f)
}

// isNilKey reports whether key is a nil interface value, the only key that
// cannot be hashed meaningfully.
func isNilKey[K comparable](key K) bool {
	return any(key) == nil
}

func bucketIndex[K comparable](key K, capacity int) int {
	return int(hashOf(key) % uint64(capacity))
}
