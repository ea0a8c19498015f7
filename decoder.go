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

import "github.com/vihu/fountaincode/internal/flog"

// dropletHandle indexes into Decoder.arena. Adjacency lists store handles,
// not owning references, so the bipartite droplet/symbol graph never needs
// cyclic ownership (spec §9, "Adjacency representation without cyclic
// ownership").
type dropletHandle int

// pendingDroplet is the decoder-internal form of a droplet (spec §3): its
// still-unresolved edge set and the payload those edges XOR to.
type pendingDroplet struct {
	edges   []int
	payload []byte
	dead    bool // peeled or discarded; adjacency lists drop it lazily on pop
}

// Decoder incrementally reconstructs an L-byte message from a stream of
// droplets using belief-propagation peeling (spec §4.4). Not safe for
// concurrent use; independent Decoder instances require no coordination
// (spec §5).
type Decoder struct {
	length     int // L
	symbolSize int // B
	k          int // K = ceil(L/B)

	known       []bool
	data        [][]byte
	unknownCnt  int

	arena     []pendingDroplet
	adjacency [][]dropletHandle // adjacency[i] = handles whose edges contain i
	worklist  []dropletHandle

	dropletsReceived int
	terminal         bool
	reconstructed    []byte
}

// NewDecoder constructs a Decoder for a message of exactly length bytes,
// encoded with the given symbol size (spec §3, "Lifecycle": L and B are
// communicated out of band). Fails if either is <= 0.
func NewDecoder(length, symbolSize int) (*Decoder, error) {
	if symbolSize <= 0 {
		return nil, errorf(ErrZeroSymbolSize, "NewDecoder: symbolSize=%d", symbolSize)
	}
	if length <= 0 {
		return nil, errorf(ErrEmptyMessage, "NewDecoder: length=%d", length)
	}

	k := (length + symbolSize - 1) / symbolSize

	d := &Decoder{
		length:     length,
		symbolSize: symbolSize,
		k:          k,
		known:      make([]bool, k),
		data:       make([][]byte, k),
		unknownCnt: k,
		adjacency:  make([][]dropletHandle, k),
	}

	flog.Logger().Debug().Int("k", k).Int("length", length).Int("symbol_size", symbolSize).
		Msg("decoder constructed")

	return d, nil
}

// SourceSymbols returns K.
func (d *Decoder) SourceSymbols() int {
	return d.k
}

// Finished reports whether every source symbol has been recovered.
func (d *Decoder) Finished() bool {
	return d.terminal
}

// Reconstruct returns the decoded message and true once Finished reports
// true; otherwise returns (nil, false).
func (d *Decoder) Reconstruct() ([]byte, bool) {
	if !d.terminal {
		return nil, false
	}
	return d.reconstructed, true
}

// Catch feeds one droplet to the decoder (spec §4.4). It returns the
// decoder's current Statistics. A malformed droplet is reported as an
// error and discarded without changing decoder state; feeding a droplet to
// an already-terminal decoder is reported as ErrDecoderTerminated, also
// without a state change.
func (d *Decoder) Catch(drop Droplet) (*Statistics, error) {
	if d.terminal {
		return d.stats(), errorf(ErrDecoderTerminated, "Catch")
	}

	edges, err := d.resolveEdges(drop)
	if err != nil {
		flog.Logger().Warn().Err(err).Msg("discarding malformed droplet")
		return d.stats(), err
	}

	d.dropletsReceived++
	d.processDroplet(edges, drop.Data)
	d.drainWorklist()

	if d.unknownCnt == 0 && !d.terminal {
		d.finish()
	}

	return d.stats(), nil
}

// resolveEdges reconstructs a droplet's edge set from its wire tag (spec
// §4.4 step 1), validating it per spec §7 ("Malformed droplet").
func (d *Decoder) resolveEdges(drop Droplet) ([]int, error) {
	if len(drop.Data) != d.symbolSize {
		return nil, errorf(ErrMalformedDroplet, "Catch: payload length %d, want %d", len(drop.Data), d.symbolSize)
	}

	switch drop.Kind {
	case Indexed:
		if drop.Index < 0 || drop.Index >= d.k {
			return nil, errorf(ErrMalformedDroplet, "Catch: index %d out of range [0,%d)", drop.Index, d.k)
		}
		return []int{drop.Index}, nil

	case Seeded:
		if drop.Degree <= 0 || drop.Degree > d.k {
			return nil, errorf(ErrInvalidDegree, "Catch: degree %d out of range [1,%d]", drop.Degree, d.k)
		}
		return sampleEdges(drop.Seed, d.k, drop.Degree), nil

	default:
		return nil, errorf(ErrMalformedDroplet, "Catch: unknown droplet kind %v", drop.Kind)
	}
}

// processDroplet runs spec §4.4 steps 2-3: reduce the incoming droplet
// against already-known symbols, then either file it on the adjacency
// lists of its remaining unknown edges or push it onto the peel worklist.
func (d *Decoder) processDroplet(edges []int, payload []byte) {
	data := make([]byte, len(payload))
	copy(data, payload)

	remaining := make([]int, 0, len(edges))
	for _, i := range edges {
		if d.known[i] {
			xorBytes(data, d.data[i])
		} else {
			remaining = append(remaining, i)
		}
	}

	if len(remaining) == 0 {
		// All edges already known: this droplet carried no new information.
		return
	}

	h := dropletHandle(len(d.arena))
	d.arena = append(d.arena, pendingDroplet{edges: remaining, payload: data})

	if len(remaining) == 1 {
		d.worklist = append(d.worklist, h)
		return
	}

	for _, i := range remaining {
		d.adjacency[i] = append(d.adjacency[i], h)
	}
}

// drainWorklist runs spec §4.4 step 4: pop degree-1 droplets, recover the
// symbol they point at, and propagate that recovery into every droplet
// still waiting on it, pushing any that collapse to degree 1 as a result.
func (d *Decoder) drainWorklist() {
	for len(d.worklist) > 0 {
		n := len(d.worklist) - 1
		h := d.worklist[n]
		d.worklist = d.worklist[:n]

		drop := &d.arena[h]
		if drop.dead || len(drop.edges) != 1 {
			continue
		}
		j := drop.edges[0]
		drop.dead = true

		if d.known[j] {
			// Degree-1 droplet pointing at an already-known slot: discard.
			continue
		}

		d.data[j] = drop.payload
		d.known[j] = true
		d.unknownCnt--

		waiting := d.adjacency[j]
		d.adjacency[j] = nil
		for _, dh := range waiting {
			other := &d.arena[dh]
			if other.dead {
				continue
			}
			xorBytes(other.payload, d.data[j])
			other.edges = removeIndex(other.edges, j)

			switch len(other.edges) {
			case 0:
				other.dead = true
			case 1:
				d.worklist = append(d.worklist, dh)
			}
		}
	}
}

// removeIndex returns edges with idx's first occurrence removed.
func removeIndex(edges []int, idx int) []int {
	for i, e := range edges {
		if e == idx {
			return append(edges[:i], edges[i+1:]...)
		}
	}
	return edges
}

func (d *Decoder) finish() {
	out := make([]byte, 0, d.length)
	for i := 0; i < d.k; i++ {
		sym := d.data[i]
		if sym == nil {
			sym = make([]byte, d.symbolSize)
		}
		out = append(out, sym...)
	}
	if len(out) > d.length {
		out = out[:d.length]
	}
	d.reconstructed = out
	d.terminal = true

	flog.Logger().Debug().Int("droplets_received", d.dropletsReceived).Msg("decoder finished")
}

func (d *Decoder) stats() *Statistics {
	return &Statistics{
		DropletsReceived: d.dropletsReceived,
		SourceSymbols:    d.k,
		OverheadPercent:  float64(d.dropletsReceived) * 100.0 / float64(d.k),
		UnknownSymbols:   d.unknownCnt,
	}
}
