package main

import (
	"fmt"
	"math/rand"
	"time"

	smt "github.com/ethereum/go-smt"
)

func main() {
	benchmarkInsertInExisting()
}

func randomKey(rnd *rand.Rand) smt.Key {
	var key smt.Key
	for i := range key {
		key[i] = rnd.Uint32()
	}
	return key
}

func benchmarkInsertInExisting() {
	rnd := rand.New(rand.NewSource(time.Now().UnixNano()))

	// Number of existing leaves in tree
	n := 100000
	// Leaves to be inserted afterwards
	toInsert := 10000
	total := n + toInsert

	keys := make([]smt.Key, n)
	toInsertKeys := make([]smt.Key, toInsert)
	value := smt.Value{1, 2, 3, 4, 5, 6, 7, 8}

	for i := 0; i < 4; i++ {
		// Generate set of keys once
		for i := 0; i < total; i++ {
			if i < n {
				keys[i] = randomKey(rnd)
			} else {
				toInsertKeys[i-n] = randomKey(rnd)
			}
		}
		fmt.Printf("Generated key set %d\n", i)

		// Create tree from same keys multiple times
		for i := 0; i < 5; i++ {
			tree := smt.New()
			for _, k := range keys {
				tree.Insert(k, value)
			}

			// Now insert the 10k leaves and measure time
			start := time.Now()
			for _, k := range toInsertKeys {
				tree.Insert(k, value)
			}
			elapsed := time.Since(start)
			fmt.Printf("Took %v to insert %d leaves, root %x\n", elapsed, toInsert, tree.Root())
		}
	}
}
