// Copyright 2014 Google Inc. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package fountain

import (
	"math/rand"
	"sort"
)

// sampleEdges is the deterministic index sampler of spec §4.2: given
// (seed, k, degree), draws `degree` indices uniformly over [0, k) with
// replacement, deterministic in seed, and XOR-reduces the draws to the set
// of odd-multiplicity indices (spec §4.2, "Edge interpretation" — an index
// drawn an even number of times cancels out of the droplet's edge set).
//
// Both the encoder (composing a droplet) and the decoder (reconstructing a
// droplet's edge set from its seed) call this with identical arguments and
// must see identical results; the teacher's MersenneTwister (mersenne.go)
// is the named PRNG that makes that reproducible across hosts.
func sampleEdges(seed uint64, k, degree int) []int {
	random := rand.New(NewMersenneTwister(int64(seed)))

	counts := make(map[int]int, degree)
	for i := 0; i < degree; i++ {
		counts[random.Intn(k)]++
	}

	edges := make([]int, 0, len(counts))
	for idx, c := range counts {
		if c%2 == 1 {
			edges = append(edges, idx)
		}
	}
	sort.Ints(edges)
	return edges
}
