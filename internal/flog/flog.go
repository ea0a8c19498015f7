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

// Package flog provides the package-level structured logger used by the
// fountain codec for a handful of observable-but-not-erroring events:
// constructing an encoder or decoder, discarding a malformed droplet, and
// terminating a decoder. Duplicate droplets, droplets that collapse to no
// unknown edges, and degree-distribution construction are not logged.
// Disabled by default so the library stays silent
// unless a caller opts in, following the LoggerConfig/Logger split in
// jhkimqd-chaos-utils's pkg/reporting/logger.go.
package flog

import (
	"io"
	"sync"

	"github.com/rs/zerolog"
)

var (
	mu     sync.RWMutex
	logger = zerolog.New(io.Discard).Level(zerolog.Disabled)
)

// Config configures the package-level logger. Output defaults to
// io.Discard and Level to zerolog.Disabled when left zero, so a caller
// that never touches this package gets a silent library.
type Config struct {
	Output io.Writer
	Level  zerolog.Level
}

// Configure installs a new package-level logger built from cfg. Safe to
// call concurrently with Logger(), but not intended to be called from
// multiple goroutines racing each other — callers typically configure
// logging once at startup.
func Configure(cfg Config) {
	out := cfg.Output
	if out == nil {
		out = io.Discard
	}

	l := zerolog.New(out).With().Timestamp().Logger().Level(cfg.Level)

	mu.Lock()
	logger = l
	mu.Unlock()
}

// Logger returns the current package-level logger.
func Logger() *zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return &logger
}
