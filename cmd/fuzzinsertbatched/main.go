package main

import (
	"fmt"
	"math/rand"

	smt "github.com/ethereum/go-smt"
)

// Endless differential loop: a tree built pair-by-pair must commit to
// the same root as one built with the batched constructor, for key
// sets that include forced leaf-index collisions. Afterwards removing
// everything must restore the empty root.
func main() {
	for attempt := 0; ; attempt++ {
		fmt.Println("attempt #", attempt)

		rnd := rand.New(rand.NewSource(int64(attempt)))
		entries := make([]smt.KV, 0, 15000)
		for i := 0; i < 10000; i++ {
			var kv smt.KV
			for j := range kv.Key {
				kv.Key[j] = rnd.Uint32()
			}
			for j := range kv.Value {
				kv.Value[j] = rnd.Uint32()
			}
			entries = append(entries, kv)

			// Every other key gets a colliding sibling: same last
			// two words, different leading words.
			if i%2 == 0 {
				collided := kv
				collided.Key[0] = rnd.Uint32()
				collided.Value[0]++
				entries = append(entries, collided)
			}
		}

		sequential := smt.New()
		for _, kv := range entries {
			sequential.Insert(kv.Key, kv.Value)
		}
		batched := smt.FromEntries(entries)

		if sequential.Root() != batched.Root() {
			panic(fmt.Sprintf("differing roots %x != %x", sequential.Root(), batched.Root()))
		}

		rnd.Shuffle(len(entries), func(i, j int) {
			entries[i], entries[j] = entries[j], entries[i]
		})
		for _, kv := range entries {
			sequential.Remove(kv.Key)
		}
		if sequential.Root() != smt.New().Root() {
			panic(fmt.Sprintf("root not restored after removals: %x", sequential.Root()))
		}
	}
}
