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
	"testing"
)

func almostEqual(a, b, tolerance float64) bool {
	return math.Abs(a-b) < tolerance
}

func TestNewIdealSolitonRejectsZero(t *testing.T) {
	if _, err := NewIdealSoliton(0); err == nil {
		t.Errorf("NewIdealSoliton(0) succeeded, want error")
	}
}

func TestIdealSolitonRange(t *testing.T) {
	tests := []int{1, 2, 10, 1000}
	for _, k := range tests {
		dist, err := NewIdealSoliton(k)
		if err != nil {
			t.Fatalf("NewIdealSoliton(%d): %v", k, err)
		}
		random := rand.New(NewMersenneTwister(1))
		for i := 0; i < 1000; i++ {
			d := dist.SampleDegree(random)
			if d < 1 || d > k {
				t.Errorf("k=%d: SampleDegree() = %d, want in [1, %d]", k, d, k)
			}
		}
	}
}

// TestIdealSolitonMean checks the "Soliton sum law" (spec §8): the empirical
// mean of rho matches the analytic harmonic-number mean within O(1/sqrt(N)).
func TestIdealSolitonMean(t *testing.T) {
	const k = 50
	const n = 200000

	dist, err := NewIdealSoliton(k)
	if err != nil {
		t.Fatalf("NewIdealSoliton(%d): %v", k, err)
	}
	random := rand.New(NewMersenneTwister(99))

	var sum float64
	for i := 0; i < n; i++ {
		sum += float64(dist.SampleDegree(random))
	}
	mean := sum / n

	// E[degree] under the Ideal Soliton is the k-th harmonic number H_k.
	var wantMean float64
	for i := 1; i <= k; i++ {
		wantMean += 1.0 / float64(i)
	}

	tolerance := 10.0 / math.Sqrt(n)
	if !almostEqual(mean, wantMean, tolerance) {
		t.Errorf("empirical mean degree = %f, want close to H_%d = %f (tolerance %f)", mean, k, wantMean, tolerance)
	}
}

func TestNewRobustSolitonRejectsZero(t *testing.T) {
	if _, err := NewRobustSoliton(0, RobustSolitonParams{C: 0.1, Delta: 0.05}); err == nil {
		t.Errorf("NewRobustSoliton(0, ...) succeeded, want error")
	}
}

func TestNewRobustSolitonRejectsInvalidCDelta(t *testing.T) {
	var tests = []RobustSolitonParams{
		{C: 0, Delta: 0.05},
		{C: 1.5, Delta: 0.05},
		{C: 0.1, Delta: 0},
		{C: 0.1, Delta: 1},
	}
	for _, p := range tests {
		if _, err := NewRobustSoliton(10, p); err == nil {
			t.Errorf("NewRobustSoliton(10, %+v) succeeded, want error", p)
		}
	}
}

func TestRobustSolitonRange(t *testing.T) {
	const k = 1000
	dist, err := NewRobustSoliton(k, RobustSolitonParams{C: 0.2, Delta: 0.05})
	if err != nil {
		t.Fatalf("NewRobustSoliton(%d, ...): %v", k, err)
	}
	random := rand.New(NewMersenneTwister(2))
	for i := 0; i < 5000; i++ {
		d := dist.SampleDegree(random)
		if d < 1 || d > k {
			t.Errorf("SampleDegree() = %d, want in [1, %d]", d, k)
		}
	}
}

func TestRobustSolitonSpikeOverride(t *testing.T) {
	dist, err := NewRobustSoliton(10, RobustSolitonParams{C: 0.1, Delta: 0.5, Spike: 8})
	if err != nil {
		t.Fatalf("NewRobustSoliton(10, spike=8): %v", err)
	}
	rs, ok := dist.(*robustSoliton)
	if !ok {
		t.Fatalf("NewRobustSoliton did not return *robustSoliton")
	}
	if rs.m != 8 {
		t.Errorf("spike override m = %d, want 8", rs.m)
	}
}

func TestRobustSolitonBetaNormalizes(t *testing.T) {
	const k = 20
	rs := &robustSoliton{k: k, m: 5, r: float64(k) / 5, delta: 0.1}
	rs.beta = robustSolitonBeta(k, rs.m, rs.r, rs.delta)

	var sum float64
	for i := 1; i <= k; i++ {
		sum += (rho(k, i) + tau(i, rs.m, rs.r, rs.delta)) / rs.beta
	}
	if !almostEqual(sum, 1, 1e-9) {
		t.Errorf("sum of mu(i) = %f, want 1", sum)
	}
}
