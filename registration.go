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

// Done signals completion of a suspend-capable operation. Exactly one call
// delivers either the produced instance or the failure; an instance may
// accompany an error when injection failed after construction.
type Done func(instance interface{}, err error)

// Factory is a user-supplied construction function invoked with the owning
// container on every cache miss.
type Factory func(c *Container) (interface{}, error)

// AsyncFactory is the suspend-capable form of [Factory]; it reports its
// result through done instead of returning.
type AsyncFactory func(c *Container, done Done)

type registrationKind int

const (
	kindType registrationKind = iota
	kindInstance
	kindFactory
)

func (k registrationKind) String() string {
	switch k {
	case kindType:
		return "type"
	case kindInstance:
		return "instance"
	case kindFactory:
		return "factory"
	default:
		return "unknown"
	}
}

// registration is the tagged union held per resolution key. Exactly one kind
// is active; the shared fields are hoisted.
type registration struct {
	key        Key
	kind       registrationKind
	lifetime   Lifetime
	injections []Injection

	// kindType
	typeInfo   TypeInfo
	descriptor interface{}

	// kindInstance
	instance interface{}

	// kindFactory; exactly one of the two is set.
	factory      Factory
	asyncFactory AsyncFactory
}

// registerOptions is the normalized form all registration calls reduce to.
type registerOptions struct {
	key        Key
	lifetime   Lifetime
	injections []Injection
}

func applyRegisterOptions(opts []RegisterOption) registerOptions {
	var o registerOptions
	for _, opt := range opts {
		opt(&o)
	}
	if o.lifetime == nil {
		o.lifetime = Transient()
	}
	return o
}

// RegisterOption configures a single registration.
type RegisterOption func(*registerOptions)

// WithKey overrides the derived resolution key. It is mandatory for factory
// registrations, which have no inherent name.
func WithKey(key string) RegisterOption {
	return func(o *registerOptions) {
		o.key = Key(key)
	}
}

// WithLifetime sets the cache policy. The default is [Transient].
func WithLifetime(l Lifetime) RegisterOption {
	return func(o *registerOptions) {
		o.lifetime = l
	}
}

// WithInjections appends post-construction injections, applied in order on
// every construction and never on cache hits.
func WithInjections(injections ...Injection) RegisterOption {
	return func(o *registerOptions) {
		o.injections = append(o.injections, injections...)
	}
}
