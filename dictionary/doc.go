// Package dictionary provides a deleteless key-to-value dictionary backed by a
// chaining hash table.
//
// A ChainingHashTable keeps an array of buckets. Each key is hashed with its
// intrinsic hash (see Hasher), reduced modulo the bucket count, and stored in
// the chain of that bucket. Keys can be inserted and updated, never removed:
// the table only grows.
//
// Growth follows a fixed sequence of prime capacities
//
//	11, 23, 47, 97, 197, 397, 797, 1597, 3203, 6421, 12853
//
// and doubles the capacity once the sequence is exhausted. A resize happens
// inside the Insert that makes size reach twice the capacity, so
// size < 2*capacity holds whenever Insert returns.
//
// Features:
//   - Insert returns the previous value when a key is updated in place.
//   - Find fails with ErrEmptyDictionary on an empty dictionary.
//   - Keys and Values are index aligned snapshots.
//   - Optional zap logging of resizes through WithLogger.
//
// A ChainingHashTable is not safe for concurrent use. Callers that share one
// must serialize access themselves.
package dictionary
