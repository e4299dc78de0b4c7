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

import "fmt"

// MissingKeyError is returned by registration when no resolution key is
// derivable from the registered value and no explicit key was supplied.
type MissingKeyError struct {
	// Descriptor describes the value that could not be keyed.
	Descriptor string
}

func (e *MissingKeyError) Error() string {
	return fmt.Sprintf("rig: no resolution key derivable for %s; register with WithKey", e.Descriptor)
}

// UnresolvedParameterError is returned by registration when the type of a
// constructor parameter cannot be determined.
type UnresolvedParameterError struct {
	// Owner is the resolution key of the type whose constructor declares
	// the offending parameter.
	Owner Key
	// Position is the zero-based index of the parameter.
	Position int
}

func (e *UnresolvedParameterError) Error() string {
	return fmt.Sprintf("rig: cannot determine type of parameter %d of %s", e.Position, e.Owner)
}

// CyclicDependencyError is returned by registration when adding a type's
// dependency edges would close a cycle in the dependency graph. From and To
// are the two adjacent nodes on the edge that closes the loop, not the full
// cycle.
type CyclicDependencyError struct {
	From Key
	To   Key
}

func (e *CyclicDependencyError) Error() string {
	return fmt.Sprintf("rig: cyclic dependency: edge %s -> %s closes a cycle", e.From, e.To)
}

// UnregisteredKeyError is returned by resolution or injection against a key
// with no registration.
type UnregisteredKeyError struct {
	Key Key
}

func (e *UnregisteredKeyError) Error() string {
	return fmt.Sprintf("rig: no registration for key %q", e.Key)
}
