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

import "math"

// A block represents a contiguous range of data being encoded or decoded:
// either one of the K source symbols or the payload of a droplet.
type block struct {
	// Data content of this source symbol or droplet payload.
	data []byte

	// How many padding bytes this block has at the end.
	padding int
}

// newBlock creates a new block with a given length. The block will initially be
// all padding.
func newBlock(len int) *block {
	return &block{padding: len}
}

// length returns the length of the block in bytes. Counts data bytes as well
// as any padding.
func (b *block) length() int {
	return len(b.data) + b.padding
}

func (b *block) empty() bool {
	return b.length() == 0
}

// A common operation is to XOR entire symbols together with other symbols.
// When this is done, padding bytes count as 0 (that is XOR identity), and the
// destination block will be modified so that its data is large enough to
// contain the result of the XOR.
func (b *block) xor(a block) {
	if len(b.data) < len(a.data) {
		var inc = len(a.data) - len(b.data)
		b.data = append(b.data, make([]byte, inc)...)
		if b.padding > inc {
			b.padding -= inc
		} else {
			b.padding = 0
		}
	}

	xorBytes(b.data[:len(a.data)], a.data)
}

// partition is the block partitioning function from RFC 5053 S.5.3.1.2
// (http://tools.ietf.org/html/rfc5053). It partitions a number i (a size)
// into j semi-equal pieces: jl longer pieces of size il, and js shorter
// pieces of size is. When j does not divide i, more than one piece can be
// short, so the pieces do not start at multiples of ceil(i/j); splitMessage
// does its own fixed-size split instead.
func partition(i, j int) (il int, is int, jl int, js int) {
	il = int(math.Ceil(float64(i) / float64(j)))
	is = int(math.Floor(float64(i) / float64(j)))
	jl = i - (is * j)
	js = j - jl

	if jl == 0 {
		il = 0
	}
	if js == 0 {
		is = 0
	}

	return
}

// partitionBytes partitions an input message into a sequence of p symbols.
// The sizes of the symbols are given by partition. The last symbol may have
// padding. Return values: the slice of longer symbols, the slice of shorter
// symbols. Within each symbol slice, all have uniform lengths.
func partitionBytes(in []byte, p int) ([]block, []block) {
	sliceIntoBlocks := func(in []byte, num, length int) ([]block, []byte) {
		blocks := make([]block, num)
		for i := range blocks {
			if len(in) > length {
				blocks[i].data, in = in[:length], in[length:]
			} else {
				blocks[i].data, in = in, []byte{}
			}
			if len(blocks[i].data) < length {
				blocks[i].padding = length - len(blocks[i].data)
			}
		}
		return blocks, in
	}

	lenLong, lenShort, numLong, numShort := partition(len(in), p)
	long, in := sliceIntoBlocks(in, numLong, lenLong)
	short, _ := sliceIntoBlocks(in, numShort, lenShort)
	return long, short
}

// equalizeBlockLengths adds padding to all short symbols to make them equal
// in size to the long symbols. The caller should ensure that all the
// longBlocks have the same length.
// Returns a symbol slice containing all the long and short symbols, in order.
func equalizeBlockLengths(longBlocks, shortBlocks []block) []block {
	if len(longBlocks) == 0 {
		return shortBlocks
	}
	if len(shortBlocks) == 0 {
		return longBlocks
	}

	for i := range shortBlocks {
		shortBlocks[i].padding += longBlocks[0].length() - shortBlocks[i].length()
	}

	blocks := make([]block, len(longBlocks)+len(shortBlocks))
	copy(blocks, longBlocks)
	copy(blocks[len(longBlocks):], shortBlocks)
	return blocks
}

// splitMessage splits message into exactly symbolCount = ceil(len(message)/
// symbolSize) symbols of symbolSize bytes each, zero-padding the final
// symbol when the message does not divide evenly (spec §3).
func splitMessage(message []byte, symbolSize int) []block {
	symbolCount := (len(message) + symbolSize - 1) / symbolSize
	if symbolCount == 0 {
		symbolCount = 1
	}
	symbols := make([]block, symbolCount)
	for i := range symbols {
		start := i * symbolSize
		end := start + symbolSize
		if end > len(message) {
			end = len(message)
		}
		symbols[i].data = message[start:end]
		symbols[i].padding = symbolSize - (end - start)
	}
	return symbols
}
