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

// Statistics is the observational view returned alongside every droplet the
// Decoder catches (spec §4.6). Purely observational: nothing here exerts
// back-pressure on the caller.
type Statistics struct {
	// DropletsReceived is the total number of droplets caught so far.
	DropletsReceived int

	// SourceSymbols is K.
	SourceSymbols int

	// OverheadPercent is DropletsReceived * 100 / SourceSymbols.
	OverheadPercent float64

	// UnknownSymbols is the number of source symbols not yet recovered.
	UnknownSymbols int
}
