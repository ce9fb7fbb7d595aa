// Package split partitions a corpus into stratified train and test subsets.
//
// The partition is a pure function of the corpus and the seed: the same
// inputs always yield the same subsets, in the same order.
//
// Usage Example:
//
//	train, test, err := split.Stratified(corpus, 0.33, 42)
package split

import (
	"fmt"
	"log/slog"
	"math"
	"math/rand/v2"
	"sort"

	"github.com/chriscorrea/labelprep/internal/dataset"
)

// Stratified splits corpus so that about testFraction of the documents, and
// about testFraction of each class, go to the test subset.
//
// The test subset gets ceil(testFraction*n) documents and train the rest.
// Per-class shares are allocated by largest remainder, each class is shuffled,
// and both subsets are shuffled again before they are returned.
//
// It returns an *InsufficientSamplesError when a class has fewer than two
// documents or either subset would be smaller than the number of classes.
func Stratified(corpus dataset.Corpus, testFraction float64, seed uint64) (train, test dataset.Corpus, err error) {
	if !(testFraction > 0 && testFraction < 1) {
		return nil, nil, fmt.Errorf("test fraction must be between 0 and 1, got %v", testFraction)
	}

	n := len(corpus)
	nTest := int(math.Ceil(testFraction * float64(n)))
	nTrain := n - nTest

	// group document indices by label; labels sorted, indices in corpus order
	byLabel := make(map[string][]int)
	for i, doc := range corpus {
		byLabel[doc.Class] = append(byLabel[doc.Class], i)
	}
	labels := make([]string, 0, len(byLabel))
	for label := range byLabel {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	if n < 2 {
		return nil, nil, &InsufficientSamplesError{Count: n, Required: 2}
	}
	for _, label := range labels {
		if count := len(byLabel[label]); count < 2 {
			return nil, nil, &InsufficientSamplesError{Label: label, Count: count, Required: 2}
		}
	}
	if nTrain < len(labels) {
		return nil, nil, &InsufficientSamplesError{Count: nTrain, Required: len(labels)}
	}
	if nTest < len(labels) {
		return nil, nil, &InsufficientSamplesError{Count: nTest, Required: len(labels)}
	}

	rng := rand.New(rand.NewPCG(seed, seed))

	classCounts := make([]int, len(labels))
	for i, label := range labels {
		classCounts[i] = len(byLabel[label])
	}

	trainCounts := allocate(classCounts, nTrain, rng)
	remaining := make([]int, len(classCounts))
	for i := range classCounts {
		remaining[i] = classCounts[i] - trainCounts[i]
	}
	testCounts := allocate(remaining, nTest, rng)

	trainIdx := make([]int, 0, nTrain)
	testIdx := make([]int, 0, nTest)
	for i, label := range labels {
		members := byLabel[label]
		perm := rng.Perm(len(members))
		for j, p := range perm {
			switch {
			case j < trainCounts[i]:
				trainIdx = append(trainIdx, members[p])
			case j < trainCounts[i]+testCounts[i]:
				testIdx = append(testIdx, members[p])
			}
		}
	}

	train = pick(corpus, trainIdx, rng)
	test = pick(corpus, testIdx, rng)

	slog.Debug("Stratified split", "classes", len(labels), "train", len(train), "test", len(test), "seed", seed)
	return train, test, nil
}

// allocate distributes draws across classes in proportion to counts. Each
// class first gets the floor of its exact share; the leftover draws go to
// the classes with the largest remainders, ties broken by rng.
func allocate(counts []int, draws int, rng *rand.Rand) []int {
	total := 0
	for _, c := range counts {
		total += c
	}

	alloc := make([]int, len(counts))
	if total == 0 {
		return alloc
	}

	// exact share is c*draws/total; remainders are kept as integers to compare exactly
	remainders := make([]int, len(counts))
	assigned := 0
	for i, c := range counts {
		alloc[i] = c * draws / total
		remainders[i] = c * draws % total
		assigned += alloc[i]
	}

	need := draws - assigned
	if need <= 0 {
		return alloc
	}

	// group classes by remainder, largest first
	groups := make(map[int][]int)
	var values []int
	for i, r := range remainders {
		if _, ok := groups[r]; !ok {
			values = append(values, r)
		}
		groups[r] = append(groups[r], i)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(values)))

	for _, v := range values {
		inds := groups[v]
		take := min(len(inds), need)
		for _, p := range rng.Perm(len(inds))[:take] {
			alloc[inds[p]]++
		}
		need -= take
		if need == 0 {
			break
		}
	}
	return alloc
}

// pick returns the documents at idx in a shuffled order.
func pick(corpus dataset.Corpus, idx []int, rng *rand.Rand) dataset.Corpus {
	out := make(dataset.Corpus, len(idx))
	for i, p := range rng.Perm(len(idx)) {
		out[i] = corpus[idx[p]]
	}
	return out
}
