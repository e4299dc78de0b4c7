// Copyright (c) 2026 The rig Authors
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package rig

import "sync"

// Lifetime is the cache policy attached to a registration. The container
// consults Fetch before constructing and calls Store after a successful
// construction and injection. A cache hit is returned as-is: construction,
// injection, and interception wrapping are all skipped.
type Lifetime interface {
	// Fetch returns the cached instance, if any.
	Fetch() (interface{}, bool)
	// Store offers an instance to the cache. Policies are free to ignore it.
	Store(interface{})
}

// Transient returns the non-caching policy: every resolve constructs and
// injects a fresh instance. It is the default for all registrations.
func Transient() Lifetime {
	return transient{}
}

type transient struct{}

func (transient) Fetch() (interface{}, bool) { return nil, false }
func (transient) Store(interface{})          {}

// Singleton returns a policy that caches the first stored instance forever.
func Singleton() Lifetime {
	return &singleton{}
}

type singleton struct {
	mu       sync.Mutex
	instance interface{}
	stored   bool
}

func (s *singleton) Fetch() (interface{}, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.instance, s.stored
}

func (s *singleton) Store(instance interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stored {
		return
	}
	s.instance = instance
	s.stored = true
}

// Scoped returns a singleton-like policy whose cache can be cleared with
// [ScopedLifetime.Reset], starting a fresh instance generation.
func Scoped() *ScopedLifetime {
	return &ScopedLifetime{}
}

// ScopedLifetime caches one instance per scope generation.
type ScopedLifetime struct {
	mu       sync.Mutex
	instance interface{}
	stored   bool
}

// Fetch returns the instance cached in the current generation, if any.
func (s *ScopedLifetime) Fetch() (interface{}, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.instance, s.stored
}

// Store caches the instance for the current generation.
func (s *ScopedLifetime) Store(instance interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stored {
		return
	}
	s.instance = instance
	s.stored = true
}

// Reset drops the cached instance. The next resolve constructs anew.
func (s *ScopedLifetime) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.instance = nil
	s.stored = false
}
