package mapreduce

import "sync"

// DefaultWorkers is the pool size used when the caller does not set one.
const DefaultWorkers = 8

// Pipeline orchestrates tokenize -> map -> shuffle -> reduce. The map and
// reduce phases fan out across a bounded pool of Workers goroutines; each
// phase fully joins before the next one starts.
type Pipeline struct {
	Workers int
}

// NewPipeline returns a Pipeline with the given pool size, clamped to a
// minimum of 1.
func NewPipeline(workers int) *Pipeline {
	if workers < 1 {
		workers = 1
	}
	return &Pipeline{Workers: workers}
}

// Run executes the full pipeline over the text and returns the word count
// map. Text that tokenizes to nothing yields an empty map, not an error:
// callers treat it as "nothing to report".
func (p *Pipeline) Run(text string) map[string]int {
	tokens := Tokenize(text)
	if len(tokens) == 0 {
		return map[string]int{}
	}

	pairs := p.mapPhase(tokens)
	buckets := Shuffle(pairs)
	return p.reducePhase(buckets)
}

// mapPhase applies MapWord to every token using the worker pool and joins
// before returning. Result order is whatever the pool produced; nothing
// downstream depends on it.
func (p *Pipeline) mapPhase(tokens []string) []Pair {
	var wg sync.WaitGroup
	jobs := make(chan string, len(tokens))
	results := make(chan Pair, len(tokens))

	for w := 1; w <= p.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for token := range jobs {
				results <- MapWord(token)
			}
		}()
	}

	for _, token := range tokens {
		jobs <- token
	}
	close(jobs)

	wg.Wait()
	close(results)

	pairs := make([]Pair, 0, len(tokens))
	for pair := range results {
		pairs = append(pairs, pair)
	}
	return pairs
}

type bucket struct {
	key    string
	values []int
}

// reducePhase sums every bucket using the worker pool and joins before
// collecting the final count map.
func (p *Pipeline) reducePhase(buckets map[string][]int) map[string]int {
	var wg sync.WaitGroup
	jobs := make(chan bucket, len(buckets))
	results := make(chan Pair, len(buckets))

	for w := 1; w <= p.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for b := range jobs {
				results <- ReduceBucket(b.key, b.values)
			}
		}()
	}

	for key, values := range buckets {
		jobs <- bucket{key: key, values: values}
	}
	close(jobs)

	wg.Wait()
	close(results)

	counts := make(map[string]int, len(buckets))
	for pair := range results {
		counts[pair.Key] = pair.Value
	}
	return counts
}
