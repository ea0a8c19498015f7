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

/*
Package fountain implements an LT (Luby Transform) rateless erasure code.

A source message is split into K equal-size symbols. An Encoder turns
that fixed-size message into an unbounded stream of droplets: the first
K droplets (in Systematic mode) carry the source symbols verbatim, and
every droplet after that XORs together a random-degree selection of
source symbols chosen by a Soliton degree distribution. A Decoder
consumes droplets in whatever order and quantity they arrive in a lossy
channel, peeling degree-1 droplets to recover source symbols and
propagating each recovery through the droplets still waiting on it,
until every symbol is known and the original message can be
reconstructed.

There is no channel coding here beyond erasures, and no Raptor precode
or inactivation decoding: this package implements plain LT codes only.
The transport that carries droplets between peers, any length-delimited
framing on the wire, and chunking of messages larger than a single
fountain are all left to the caller.
*/
package fountain
