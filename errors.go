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

import "github.com/pkg/errors"

// Construction-time errors (spec §7, "Invalid construction"): fatal to the
// instance being built, returned from NewEncoder/NewDecoder/the Distribution
// constructors.
var (
	ErrZeroSymbolSize  = errors.New("fountain: symbol size B must be > 0")
	ErrEmptyMessage    = errors.New("fountain: message must be non-empty")
	ErrZeroSymbolCount = errors.New("fountain: source symbol count K must be > 0")
	ErrInvalidCDelta   = errors.New("fountain: robust soliton c and delta must be in (0, 1]/(0, 1)")
	ErrNonFiniteParam  = errors.New("fountain: degree distribution parameters produced a non-finite r or beta")
)

// Per-droplet errors (spec §7, "Malformed droplet" / "Done after done"):
// local to one call, never corrupt decoder state.
var (
	ErrMalformedDroplet  = errors.New("fountain: malformed droplet")
	ErrInvalidDegree     = errors.New("fountain: droplet degree out of range")
	ErrDecoderTerminated = errors.New("fountain: decoder already finished")
)

// errorf wraps a sentinel with additional, call-site context while
// preserving errors.Is(err, sentinel) for callers that only care about the
// error kind.
func errorf(sentinel error, format string, args ...interface{}) error {
	return errors.Wrapf(sentinel, format, args...)
}
