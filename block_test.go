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
	"bytes"
	"testing"
)

func TestBlockLength(t *testing.T) {
	var lengthTests = []struct {
		b   block
		len int
	}{
		{block{}, 0},
		{block{[]byte{1, 0, 1}, 0}, 3},
		{block{[]byte{1, 0, 1}, 1}, 4},
	}

	for _, i := range lengthTests {
		if i.b.length() != i.len {
			t.Errorf("Length of b is %d, should be %d", i.b.length(), i.len)
		}
		if (i.len == 0) != i.b.empty() {
			t.Errorf("Emptiness check error. Got %v, want %v", i.b.empty(), i.len == 0)
		}
	}
}

func TestBlockXor(t *testing.T) {
	var xorTests = []struct {
		a   block
		b   block
		out block
	}{
		{block{[]byte{1, 0, 1}, 0}, block{[]byte{1, 1, 1}, 0}, block{[]byte{0, 1, 0}, 0}},
		{block{[]byte{1}, 0}, block{[]byte{0, 14, 6}, 0}, block{[]byte{1, 14, 6}, 0}},
		{block{}, block{[]byte{100, 200}, 0}, block{[]byte{100, 200}, 0}},
		{block{[]byte{}, 5}, block{[]byte{0, 1, 0}, 0}, block{[]byte{0, 1, 0}, 2}},
		{block{[]byte{}, 5}, block{[]byte{0, 1, 0, 2, 3}, 0}, block{[]byte{0, 1, 0, 2, 3}, 0}},
		{block{[]byte{}, 5}, block{[]byte{0, 1, 0, 2, 3, 7}, 0}, block{[]byte{0, 1, 0, 2, 3, 7}, 0}},
		{block{[]byte{1}, 4}, block{[]byte{0, 1, 0, 2, 3, 7}, 0}, block{[]byte{1, 1, 0, 2, 3, 7}, 0}},
	}

	for _, i := range xorTests {
		t.Logf("...Testing %v XOR %v", i.a, i.b)
		originalLength := i.a.length()
		i.a.xor(i.b)
		if i.a.length() < originalLength {
			t.Errorf("Length shrunk. Got %d, want length >= %d", i.a.length(), originalLength)
		}
		if len(i.a.data) != len(i.b.data) {
			t.Errorf("a and b data should be same length after xor. a len=%d, b len=%d", len(i.a.data), len(i.b.data))
		}

		if !bytes.Equal(i.a.data, i.out.data) {
			t.Errorf("XOR value is %v : should be %v", i.a.data, i.out.data)
		}
	}
}

func TestPartitionBytes(t *testing.T) {
	a := make([]byte, 100)
	for i := 0; i < len(a); i++ {
		a[i] = byte(i)
	}

	var partitionTests = []struct {
		numPartitions     int
		lenLong, lenShort int
	}{
		{11, 1, 10},
		{3, 1, 2},
	}

	for _, i := range partitionTests {
		t.Logf("Partitioning %v into %d", a, i.numPartitions)
		long, short := partitionBytes(a, i.numPartitions)
		if len(long) != i.lenLong {
			t.Errorf("Got %d long blocks, should have %d", len(long), i.lenLong)
		}
		if len(short) != i.lenShort {
			t.Errorf("Got %d short blocks, should have %d", len(short), i.lenShort)
		}
		if short[len(short)-1].padding != 0 {
			t.Errorf("Should fit blocks exactly, have last padding %d", short[len(short)-1].padding)
		}
		if long[0].data[0] != 0 {
			t.Errorf("Long block should be first. First value is %v", long[0].data)
		}
	}
}

func TestEqualizeBlockLengths(t *testing.T) {
	b := []byte("abcdefghijklmnopq")
	var equalizeTests = []struct {
		numPartitions int
		length        int
		padding       int
	}{
		{1, 17, 0},
		{2, 9, 1},
		{3, 6, 1},
		{4, 5, 1},
		{5, 4, 1},
		{6, 3, 1},
		{7, 3, 1},
		{8, 3, 1},
		{9, 2, 1},
		{10, 2, 1},
		{16, 2, 1},
		{17, 1, 0},
	}

	for _, i := range equalizeTests {
		long, short := partitionBytes(b, i.numPartitions)
		blocks := equalizeBlockLengths(long, short)
		if len(blocks) != i.numPartitions {
			t.Errorf("Got %d blocks, should have %d", len(blocks), i.numPartitions)
		}
		for k := range blocks {
			if blocks[k].length() != i.length {
				t.Errorf("Got block length %d for block %d, should be %d",
					blocks[0].length(), k, i.length)
			}
		}
		if blocks[len(blocks)-1].padding != i.padding {
			t.Errorf("Padding of last block is %d, should be %d",
				blocks[len(blocks)-1].padding, i.padding)
		}
	}
}

func TestSplitMessage(t *testing.T) {
	var splitTests = []struct {
		message    []byte
		symbolSize int
		wantK      int
	}{
		{[]byte{0x41, 0x42, 0x43, 0x44}, 4, 1},
		{make([]byte, 8), 2, 4},
		{make([]byte, 17), 4, 5},
		{make([]byte, 1), 4, 1},
	}

	for _, i := range splitTests {
		symbols := splitMessage(i.message, i.symbolSize)
		if len(symbols) != i.wantK {
			t.Errorf("splitMessage(len=%d, B=%d) = %d symbols, want %d",
				len(i.message), i.symbolSize, len(symbols), i.wantK)
		}
		for _, s := range symbols {
			if s.length() != i.symbolSize {
				t.Errorf("symbol length %d, want %d", s.length(), i.symbolSize)
			}
		}
	}
}
