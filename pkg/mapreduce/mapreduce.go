// Package mapreduce counts word frequencies with a three-stage
// map/shuffle/reduce pipeline executed on a bounded worker pool.
package mapreduce

// Pair is one unit of mapped work: a word and the value mapped to it.
type Pair struct {
	Key   string
	Value int
}

// MapWord emits the pair (word, 1) for a single token.
func MapWord(word string) Pair {
	return Pair{Key: word, Value: 1}
}

// Shuffle groups mapped pairs by key into per-key value lists.
// Grouping is inherently a shared-state merge, so it runs sequentially
// after the map phase has fully joined.
func Shuffle(pairs []Pair) map[string][]int {
	buckets := make(map[string][]int)
	for _, p := range pairs {
		buckets[p.Key] = append(buckets[p.Key], p.Value)
	}
	return buckets
}

// ReduceBucket sums one bucket's values into the key's final count.
func ReduceBucket(key string, values []int) Pair {
	sum := 0
	for _, v := range values {
		sum += v
	}
	return Pair{Key: key, Value: sum}
}
