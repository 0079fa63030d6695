package dictionary

// maxLoadFactor is the number of entries per bucket at which the table grows.
const maxLoadFactor = 2

// capacities is the growth sequence of bucket counts. Primes keep clustering low.
var capacities = [...]int{11, 23, 47, 97, 197, 397, 797, 1597, 3203, 6421, 12853}

func initialCapacity() int {
	return capacities[0]
}

// capacityAt returns the capacity for the given growth step.
// Past the end of the sequence the current capacity is doubled.
func capacityAt(step, current int) int {
	if step < len(capacities) {
		return capacities[step]
	}
	return 2 * current
}

func exceedsLoadFactor(size, capacity int) bool {
	return size >= capacity*maxLoadFactor
}
