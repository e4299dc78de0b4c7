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

package rigevent

// Event defines an event emitted by the container.
type Event interface {
	event() // Only rigevent can implement this interface.
}

// Passing events by type to make Event hashable in the future.
func (*Registered) event()   {}
func (*Replaced) event()     {}
func (*Resolved) event()     {}
func (*ResolveError) event() {}
func (*Injected) event()     {}
func (*InjectError) event()  {}
func (*Intercepted) event()  {}
func (*ChildCreated) event() {}
func (*Validated) event()    {}

// Registered is emitted when a registration is committed to the container.
type Registered struct {
	// Key is the resolution key the registration is stored under.
	Key string
	// Kind is "type", "instance", or "factory".
	Kind string
	// Dependencies holds the constructor dependency keys of a type
	// registration, in declared order.
	Dependencies []string
}

// Replaced is emitted when a registration shadows a previous one under the
// same key.
type Replaced struct {
	Key string
	// PriorKind is the kind of the registration being replaced.
	PriorKind string
}

// Resolved is emitted whenever a resolve completes successfully.
type Resolved struct {
	Key string
	// Cached reports whether the lifetime policy satisfied the resolve
	// without construction.
	Cached bool
}

// ResolveError is emitted whenever a resolve fails.
type ResolveError struct {
	Key string
	Err error
}

// Injected is emitted after a registration's injection list has run to
// completion against an instance.
type Injected struct {
	Key string
	// Injections is the number of injections that ran.
	Injections int
}

// InjectError is emitted when the injection pipeline reports failure.
type InjectError struct {
	Key string
	Err error
}

// Intercepted is emitted when a constructed instance's method is wrapped
// with a handler chain.
type Intercepted struct {
	// Type is the runtime type name of the instance.
	Type string
	// Method is the wrapped method's name.
	Method string
	// Handlers is the number of handlers in the chain.
	Handlers int
}

// ChildCreated is emitted when a child container forks off.
type ChildCreated struct {
	// Registrations is the number of registrations snapshotted from the
	// parent.
	Registrations int
}

// Validated is emitted after a whole-container validation pass.
type Validated struct {
	Err error
}
