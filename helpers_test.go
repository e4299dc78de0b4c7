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

import (
	"testing"

	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// Fixture types for the container tests. Constructors count their calls so
// tests can assert that cached resolutions skip construction entirely.

type Clock struct {
	ID int
}

type Journal struct {
	Clock *Clock
}

type Ledger struct {
	Journal *Journal
	Clock   *Clock
}

type fixtures struct {
	clockCalls   int
	journalCalls int
	ledgerCalls  int
}

func (f *fixtures) NewClock() *Clock {
	f.clockCalls++
	return &Clock{ID: f.clockCalls}
}

func (f *fixtures) NewJournal(c *Clock) *Journal {
	f.journalCalls++
	return &Journal{Clock: c}
}

func (f *fixtures) NewLedger(j *Journal, c *Clock) *Ledger {
	f.ledgerCalls++
	return &Ledger{Journal: j, Clock: c}
}

// Cycle fixtures. None of these constructors must ever run.

type CycleA struct{ B *CycleB }
type CycleB struct{ A *CycleA }
type CycleC struct{ A *CycleA }
type SelfRef struct{ Self *SelfRef }

func newCycleA(t *testing.T) interface{} {
	return func(b *CycleB) *CycleA {
		t.Error("CycleA constructor must never run")
		return &CycleA{B: b}
	}
}

func newCycleB(t *testing.T) interface{} {
	return func(a *CycleA) *CycleB {
		t.Error("CycleB constructor must never run")
		return &CycleB{A: a}
	}
}

func newSelfRef(t *testing.T) interface{} {
	return func(s *SelfRef) *SelfRef {
		t.Error("SelfRef constructor must never run")
		return &SelfRef{Self: s}
	}
}

// countingExtractor wraps the default extractor and counts Extract calls.
type countingExtractor struct {
	calls int
	inner Extractor
}

func (e *countingExtractor) Extract(descriptor interface{}, keyOverride Key) (TypeInfo, error) {
	e.calls++
	return e.inner.Extract(descriptor, keyOverride)
}
