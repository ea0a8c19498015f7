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

import "encoding/binary"

// Kind distinguishes the two tagged forms a Droplet's header can take.
type Kind byte

const (
	// Seeded droplets carry a seed and degree; the combined source symbol
	// indices are re-derived from them by the deterministic index sampler.
	Seeded Kind = 0x01

	// Indexed droplets carry a single, unmodified source symbol. Used by
	// the encoder's Systematic mode.
	Indexed Kind = 0x00
)

func (k Kind) String() string {
	switch k {
	case Seeded:
		return "Seeded"
	case Indexed:
		return "Indexed"
	default:
		return "Unknown"
	}
}

// Droplet is one unit of encoder output (spec §3, "Droplet (transmitted
// form)"). Exactly one of the Seed/Degree pair or Index is meaningful,
// selected by Kind.
type Droplet struct {
	Kind Kind

	// Seed and Degree are set when Kind == Seeded. The combined indices are
	// the first Degree draws of the deterministic index sampler seeded with
	// Seed over [0, K).
	Seed   uint64
	Degree int

	// Index is set when Kind == Indexed: the payload is source symbol Index,
	// unmodified.
	Index int

	// Data is the droplet payload, always exactly B bytes.
	Data []byte
}

// NewSeededDroplet builds a Seeded droplet.
func NewSeededDroplet(seed uint64, degree int, data []byte) Droplet {
	return Droplet{Kind: Seeded, Seed: seed, Degree: degree, Data: data}
}

// NewIndexedDroplet builds an Indexed droplet.
func NewIndexedDroplet(index int, data []byte) Droplet {
	return Droplet{Kind: Indexed, Index: index, Data: data}
}

// headerLen is the encoded length of a droplet's fixed header, per spec §6:
// 1 tag byte, plus either 4 bytes (Indexed index) or 12 bytes (Seeded seed +
// degree).
func (d Droplet) headerLen() int {
	switch d.Kind {
	case Indexed:
		return 1 + 4
	default:
		return 1 + 8 + 4
	}
}

// Marshal encodes a droplet using the recommended bit-exact wire format of
// spec §6: a 1-byte tag, a tag-specific header, then exactly len(d.Data)
// bytes of payload.
func (d Droplet) Marshal() []byte {
	buf := make([]byte, d.headerLen()+len(d.Data))
	buf[0] = byte(d.Kind)
	switch d.Kind {
	case Indexed:
		binary.BigEndian.PutUint32(buf[1:5], uint32(d.Index))
		copy(buf[5:], d.Data)
	default:
		binary.BigEndian.PutUint64(buf[1:9], d.Seed)
		binary.BigEndian.PutUint32(buf[9:13], uint32(d.Degree))
		copy(buf[13:], d.Data)
	}
	return buf
}

// UnmarshalDroplet decodes a droplet encoded by Marshal. symbolSize is the
// expected payload length B; a payload of any other length is a malformed
// droplet (spec §7).
func UnmarshalDroplet(buf []byte, symbolSize int) (Droplet, error) {
	if len(buf) < 1 {
		return Droplet{}, errorf(ErrMalformedDroplet, "empty droplet")
	}

	switch Kind(buf[0]) {
	case Indexed:
		if len(buf) != 1+4+symbolSize {
			return Droplet{}, errorf(ErrMalformedDroplet, "indexed droplet has length %d, want %d", len(buf), 1+4+symbolSize)
		}
		index := int(binary.BigEndian.Uint32(buf[1:5]))
		data := make([]byte, symbolSize)
		copy(data, buf[5:])
		return NewIndexedDroplet(index, data), nil

	case Seeded:
		if len(buf) != 1+8+4+symbolSize {
			return Droplet{}, errorf(ErrMalformedDroplet, "seeded droplet has length %d, want %d", len(buf), 1+8+4+symbolSize)
		}
		seed := binary.BigEndian.Uint64(buf[1:9])
		degree := int(binary.BigEndian.Uint32(buf[9:13]))
		data := make([]byte, symbolSize)
		copy(data, buf[13:])
		return NewSeededDroplet(seed, degree, data), nil

	default:
		return Droplet{}, errorf(ErrMalformedDroplet, "unknown droplet tag 0x%02x", buf[0])
	}
}
