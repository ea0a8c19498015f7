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
	"encoding/binary"
	"math/rand"

	"github.com/dchest/siphash"

	"github.com/vihu/fountaincode/internal/flog"
)

// Mode selects how the Encoder composes droplets (spec §4.3).
type Mode int

const (
	// Random composes every droplet from a fresh Soliton-degree draw.
	Random Mode = iota

	// Systematic emits the K source symbols verbatim, in order, before
	// switching to Random for all subsequent droplets.
	Systematic
)

// EncoderParams configures a new Encoder.
type EncoderParams struct {
	// SymbolSize is B, the fixed payload size of every droplet and source
	// symbol.
	SymbolSize int

	// Mode selects Systematic or Random (spec §4.3).
	Mode Mode

	// Distribution supplies degrees for Random-mode droplets. Required even
	// when Mode is Systematic, since the encoder switches to it after K
	// droplets.
	Distribution Distribution

	// RandSource seeds the encoder's internal randomness (the Soliton
	// sampler's draws and the per-droplet seed stream). Leave nil to seed
	// from a process-local, non-reproducible source; supply one to make the
	// encoder's droplet sequence reproducible (spec §4.3, "Determinism").
	RandSource rand.Source
}

// Encoder owns a fixed source message and produces an unbounded stream of
// droplets, one per call to NextDroplet (spec §3, "Encoder state"). Not
// safe for concurrent use; independent Encoder instances require no
// coordination (spec §5).
type Encoder struct {
	symbols    []block
	symbolSize int
	k          int

	mode Mode
	dist Distribution
	rng  *rand.Rand

	// seedKey0/seedKey1 key the SipHash-2-4 PRF used to mint a fresh,
	// reproducible-but-independent 64-bit seed per Random-mode droplet
	// (spec §6, domain stack: keeps the seed stream decorrelated from the
	// degree-sampling stream drawn from the same rng).
	seedKey0, seedKey1 uint64

	cnt int // total droplets emitted so far
}

// NewEncoder splits message into K = ceil(len(message)/SymbolSize) symbols
// and returns an Encoder ready to produce droplets for it. Fails if
// SymbolSize == 0 or message is empty (spec §4.3).
func NewEncoder(message []byte, params EncoderParams) (*Encoder, error) {
	if params.SymbolSize <= 0 {
		return nil, errorf(ErrZeroSymbolSize, "NewEncoder: SymbolSize=%d", params.SymbolSize)
	}
	if len(message) == 0 {
		return nil, errorf(ErrEmptyMessage, "NewEncoder")
	}

	symbols := splitMessage(message, params.SymbolSize)

	source := params.RandSource
	if source == nil {
		source = NewMersenneTwister(int64(randomSeed()))
	}
	rng := rand.New(source)

	e := &Encoder{
		symbols:    symbols,
		symbolSize: params.SymbolSize,
		k:          len(symbols),
		mode:       params.Mode,
		dist:       params.Distribution,
		rng:        rng,
		seedKey0:   rng.Uint64(),
		seedKey1:   rng.Uint64(),
	}

	flog.Logger().Debug().
		Int("k", e.k).
		Int("symbol_size", e.symbolSize).
		Str("mode", modeName(e.mode)).
		Msg("encoder constructed")

	return e, nil
}

func modeName(m Mode) string {
	if m == Systematic {
		return "systematic"
	}
	return "random"
}

// SourceSymbols returns K, the number of source symbols the message was
// split into.
func (e *Encoder) SourceSymbols() int {
	return e.k
}

// NextDroplet emits one droplet. Never blocks, never fails once the encoder
// is constructed (spec §4.3, §5).
func (e *Encoder) NextDroplet() Droplet {
	var d Droplet
	if e.mode == Systematic && e.cnt < e.k {
		d = e.nextSystematic()
		if e.cnt+1 >= e.k {
			// Immediate switch after exactly K Indexed droplets; this spec
			// mandates no wraparound (spec §9, Open Questions).
			e.mode = Random
		}
	} else {
		d = e.nextRandom()
	}
	e.cnt++
	return d
}

func (e *Encoder) nextSystematic() Droplet {
	sym := e.symbols[e.cnt]
	data := make([]byte, e.symbolSize)
	copy(data, symbolBytes(sym, e.symbolSize))
	return NewIndexedDroplet(e.cnt, data)
}

func (e *Encoder) nextRandom() Droplet {
	degree := e.dist.SampleDegree(e.rng)
	seed := e.nextSeed()
	indices := sampleEdges(seed, e.k, degree)

	payload := newBlock(e.symbolSize)
	for _, idx := range indices {
		payload.xor(e.symbols[idx])
	}

	data := make([]byte, e.symbolSize)
	copy(data, symbolBytes(*payload, e.symbolSize))
	return NewSeededDroplet(seed, degree, data)
}

// nextSeed mints the next 64-bit droplet seed by evaluating SipHash-2-4,
// keyed once at construction, on the big-endian encoding of the droplet
// counter. Deterministic given the encoder's seed key, independent of the
// sequence of values drawn from rng for degree sampling.
func (e *Encoder) nextSeed() uint64 {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(e.cnt))
	return siphash.Hash(e.seedKey0, e.seedKey1, buf[:])
}

// symbolBytes returns the n-byte, zero-padded contents of a symbol block.
func symbolBytes(b block, n int) []byte {
	out := make([]byte, n)
	copy(out, b.data)
	return out
}

// randomSeed draws a non-reproducible 64-bit value to seed an Encoder that
// was not given an explicit RandSource. Not used for anything the wire
// contract requires to be reproducible across processes.
func randomSeed() uint64 {
	return uint64(rand.Int63())<<1 | uint64(rand.Int63()&1)
}
