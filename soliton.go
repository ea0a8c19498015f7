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
	"math"
	"math/rand"
)

// Distribution is the shared capability of a degree distribution: given a
// random source, sample a degree in [1, K]. Ideal and Robust Soliton share
// this one entry point; dispatch cost is negligible next to the XOR work a
// droplet requires (spec §9, "Polymorphism over degree distributions").
type Distribution interface {
	SampleDegree(random *rand.Rand) int
}

// idealSoliton implements the Ideal Soliton distribution (spec §4.1):
// rho(1) = 1/K, rho(i) = 1/(i(i-1)) for 2 <= i <= K.
type idealSoliton struct {
	k int
}

// NewIdealSoliton constructs the Ideal Soliton distribution over [1, K].
func NewIdealSoliton(k int) (Distribution, error) {
	if k <= 0 {
		return nil, errorf(ErrZeroSymbolCount, "NewIdealSoliton: k=%d", k)
	}
	return &idealSoliton{k: k}, nil
}

// SampleDegree draws y uniformly in [0,1); returns 1 if y < 1/K, else
// ceil(1/y) clamped to K (spec §4.1).
func (s *idealSoliton) SampleDegree(random *rand.Rand) int {
	limit := 1.0 / float64(s.k)
	y := random.Float64()
	if y < limit {
		return 1
	}
	d := int(math.Ceil(1.0 / y))
	if d > s.k {
		d = s.k
	}
	if d < 1 {
		d = 1
	}
	return d
}

// RobustSolitonParams configures the Robust Soliton distribution (spec
// §4.1). C is the tuning constant c in (0, 1] (typical 0.1-0.3). Delta is
// the failure probability bound delta in (0, 1) (typical 0.01-0.1). Spike,
// if non-zero, overrides the computed spike position m (then r is
// recomputed as K/m); leave it zero to let the distribution compute m from
// C and Delta.
type RobustSolitonParams struct {
	C     float64
	Delta float64
	Spike int
}

// robustSoliton implements the Robust Soliton distribution: the Ideal
// Soliton plus a spike tau concentrated at position m, normalized by beta
// (spec §4.1).
type robustSoliton struct {
	k     int
	m     int
	r     float64
	delta float64
	beta  float64
}

// NewRobustSoliton constructs the Robust Soliton distribution over [1, K]
// with the given parameters. Rejects K == 0 and parameters that would
// produce a non-finite r or beta (spec §4.1, "Failure modes").
func NewRobustSoliton(k int, params RobustSolitonParams) (Distribution, error) {
	if k <= 0 {
		return nil, errorf(ErrZeroSymbolCount, "NewRobustSoliton: k=%d", k)
	}
	if params.C <= 0 || params.C > 1 || params.Delta <= 0 || params.Delta >= 1 {
		return nil, errorf(ErrInvalidCDelta, "NewRobustSoliton: c=%v delta=%v", params.C, params.Delta)
	}

	r := params.C * math.Log(float64(k)/params.Delta) * math.Sqrt(float64(k))
	if math.IsNaN(r) || math.IsInf(r, 0) || r <= 0 {
		return nil, errorf(ErrNonFiniteParam, "NewRobustSoliton: r=%v", r)
	}

	m := params.Spike
	if m == 0 {
		// This spec picks floor(K/r) for the spike position (spec §9, Open
		// Questions).
		m = int(math.Floor(float64(k) / r))
		if m < 1 {
			m = 1
		}
		if m > k {
			m = k
		}
	} else {
		r = float64(k) / float64(m)
	}

	beta := robustSolitonBeta(k, m, r, params.Delta)
	if math.IsNaN(beta) || math.IsInf(beta, 0) || beta <= 0 {
		return nil, errorf(ErrNonFiniteParam, "NewRobustSoliton: beta=%v", beta)
	}

	return &robustSoliton{k: k, m: m, r: r, delta: params.Delta, beta: beta}, nil
}

// rho is the Ideal Soliton probability mass at i, for 1 <= i <= k.
func rho(k, i int) float64 {
	if i == 1 {
		return 1.0 / float64(k)
	}
	return 1.0 / (float64(i) * float64(i-1))
}

// tau is the Robust Soliton spike mass at i (spec §4.1).
func tau(i, m int, r, delta float64) float64 {
	switch {
	case i >= 1 && i < m:
		return 1.0 / (float64(i) * float64(m))
	case i == m:
		return math.Log(r/delta) / float64(m)
	default:
		return 0
	}
}

// robustSolitonBeta computes beta = sum_{i=1..k}(rho(i) + tau(i)), the
// normalization factor for mu(i) = (rho(i) + tau(i)) / beta.
func robustSolitonBeta(k, m int, r, delta float64) float64 {
	var sum float64
	for i := 1; i <= k; i++ {
		sum += rho(k, i) + tau(i, m, r, delta)
	}
	return sum
}

// SampleDegree draws u uniformly in (0,1) and returns the first index whose
// cumulative mu mass strictly exceeds u (spec §4.1, inverse-CDF sampling).
func (s *robustSoliton) SampleDegree(random *rand.Rand) int {
	u := random.Float64()
	var sum float64
	for i := 1; i <= s.k; i++ {
		sum += (rho(s.k, i) + tau(i, s.m, s.r, s.delta)) / s.beta
		if sum > u {
			return i
		}
	}
	// Floating-point rounding can leave the accumulated mass a hair under u
	// at i == k; the spike at m should make this vanishingly rare, but
	// return the top of the range rather than 0.
	return s.k
}
