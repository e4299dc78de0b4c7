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
	"fmt"
	"reflect"
)

// Invocation carries one call through a handler chain to the original
// method body.
type Invocation struct {
	// Target is the instance whose method is being invoked.
	Target interface{}
	// Method is the invoked method's name.
	Method string
	// Args are the call arguments. Handlers may rewrite them before
	// delegating to next.
	Args []interface{}
}

// Invoker advances an invocation to the next handler in the chain, or to the
// original method body at the end of it.
type Invoker func(*Invocation) (interface{}, error)

// Handler wraps a synchronous method call. It runs around the rest of the
// chain: anything before next runs before the method body, anything after
// runs after it. A handler that never calls next short-circuits the call.
type Handler func(inv *Invocation, next Invoker) (interface{}, error)

// AsyncInvoker is the suspend-capable form of [Invoker].
type AsyncInvoker func(*Invocation, Done)

// AsyncHandler wraps a suspend-capable method call, reporting its result
// through done.
type AsyncHandler func(inv *Invocation, next AsyncInvoker, done Done)

// MatchFunc decides whether a handler chain applies to a method of a
// constructed instance.
type MatchFunc func(instance interface{}, method string) bool

// OfType matches methods declared by instances assignable to a type. Type is
// given as a nil pointer of the desired type, e.g. OfType{Type: (*Repo)(nil)}.
// An empty Method matches every intercepted method of such instances.
type OfType struct {
	Type   interface{}
	Method string
}

// Interceptable is the capability an instance declares to opt its methods
// into interception. Constructors should build fresh [Method] values per
// instance; wrapping mutates them in place.
type Interceptable interface {
	InterceptedMethods() []*Method
}

// MethodFunc is the bound implementation of a synchronous interceptable
// method.
type MethodFunc func(args ...interface{}) (interface{}, error)

// AsyncMethodFunc is the bound implementation of a suspend-capable
// interceptable method.
type AsyncMethodFunc func(args []interface{}, done Done)

// Method is one interceptable method of an instance: a name, a call mode,
// and the bound implementation. The zero value is unusable; construct with
// [NewMethod] or [NewAsyncMethod].
type Method struct {
	name   string
	target interface{}

	call  Invoker      // nil iff the method is async
	acall AsyncInvoker // nil iff the method is sync
}

// NewMethod declares a synchronous interceptable method.
func NewMethod(name string, fn MethodFunc) *Method {
	return &Method{
		name: name,
		call: func(inv *Invocation) (interface{}, error) {
			return fn(inv.Args...)
		},
	}
}

// NewAsyncMethod declares a suspend-capable interceptable method.
func NewAsyncMethod(name string, fn AsyncMethodFunc) *Method {
	return &Method{
		name: name,
		acall: func(inv *Invocation, done Done) {
			fn(inv.Args, done)
		},
	}
}

// Name returns the method's name.
func (m *Method) Name() string { return m.name }

// Async reports whether the method is invoked from suspend-capable call
// sites.
func (m *Method) Async() bool { return m.acall != nil }

// Invoke calls the method through whatever handler chain has been attached.
// It panics if the method was declared asynchronous.
func (m *Method) Invoke(args ...interface{}) (interface{}, error) {
	if m.Async() {
		panic(fmt.Sprintf("rig: Invoke called on async method %q; use InvokeAsync", m.name))
	}
	return m.call(&Invocation{Target: m.target, Method: m.name, Args: args})
}

// InvokeAsync calls the method through whatever handler chain has been
// attached, reporting the result through done. It panics if the method was
// declared synchronous.
func (m *Method) InvokeAsync(args []interface{}, done Done) {
	if !m.Async() {
		panic(fmt.Sprintf("rig: InvokeAsync called on sync method %q; use Invoke", m.name))
	}
	m.acall(&Invocation{Target: m.target, Method: m.name, Args: args}, done)
}

// bind records the owning instance so handler chains can see their target.
func (m *Method) bind(instance interface{}) {
	m.target = instance
}

// wrapSync layers handlers over the current implementation, first handler
// outermost.
func (m *Method) wrapSync(handlers []Handler) {
	for i := len(handlers) - 1; i >= 0; i-- {
		h, next := handlers[i], m.call
		m.call = func(inv *Invocation) (interface{}, error) {
			return h(inv, next)
		}
	}
}

// wrapAsync layers handlers over the current implementation, first handler
// outermost.
func (m *Method) wrapAsync(handlers []AsyncHandler) {
	for i := len(handlers) - 1; i >= 0; i-- {
		h, next := handlers[i], m.acall
		m.acall = func(inv *Invocation, done Done) {
			h(inv, next, done)
		}
	}
}

// handlerConfig is one committed interception rule: a predicate and the
// handler chain to attach wherever it matches. Exactly one of the two
// handler slices is set, per the committed mode.
type handlerConfig struct {
	match         MatchFunc
	async         bool
	handlers      []Handler
	asyncHandlers []AsyncHandler
}

// InterceptBuilder is an uncommitted interception rule. It has no effect
// until exactly one of [InterceptBuilder.Sync] or [InterceptBuilder.Async]
// commits it to the container.
type InterceptBuilder struct {
	c       *Container
	match   MatchFunc
	raw     []interface{}
	matched string // original matcher description, for error messages
}

// Intercept begins configuring a handler chain. matcher accepts:
//
//   - a string: exact method-name match
//   - a bool: unconditional match or no-match
//   - an [OfType]: instance type match, with optional method name
//   - a [MatchFunc] (or any func(interface{}, string) bool): custom predicate
//
// handlers are [Handler] values when committed with Sync, [AsyncHandler]
// values when committed with Async. Intercept panics on an unsupported
// matcher; handler types are checked at commit time.
func (c *Container) Intercept(matcher interface{}, handlers ...interface{}) *InterceptBuilder {
	return &InterceptBuilder{
		c:       c,
		match:   normalizeMatcher(matcher),
		raw:     handlers,
		matched: fmt.Sprintf("%v", matcher),
	}
}

// Sync commits the rule for synchronous methods and returns the container
// for chaining. It panics if any handler is not a [Handler].
func (b *InterceptBuilder) Sync() *Container {
	cfg := &handlerConfig{match: b.match}
	for i, h := range b.raw {
		switch h := h.(type) {
		case Handler:
			cfg.handlers = append(cfg.handlers, h)
		case func(*Invocation, Invoker) (interface{}, error):
			cfg.handlers = append(cfg.handlers, h)
		default:
			panic(fmt.Sprintf("rig: Intercept(%s).Sync: handler %d is %T, not a rig.Handler", b.matched, i, h))
		}
	}
	b.c.commitInterception(cfg)
	return b.c
}

// Async commits the rule for suspend-capable methods and returns the
// container for chaining. It panics if any handler is not an [AsyncHandler].
func (b *InterceptBuilder) Async() *Container {
	cfg := &handlerConfig{match: b.match, async: true}
	for i, h := range b.raw {
		switch h := h.(type) {
		case AsyncHandler:
			cfg.asyncHandlers = append(cfg.asyncHandlers, h)
		case func(*Invocation, AsyncInvoker, Done):
			cfg.asyncHandlers = append(cfg.asyncHandlers, h)
		default:
			panic(fmt.Sprintf("rig: Intercept(%s).Async: handler %d is %T, not a rig.AsyncHandler", b.matched, i, h))
		}
	}
	b.c.commitInterception(cfg)
	return b.c
}

func normalizeMatcher(matcher interface{}) MatchFunc {
	switch m := matcher.(type) {
	case string:
		return func(_ interface{}, method string) bool { return method == m }
	case bool:
		return func(interface{}, string) bool { return m }
	case MatchFunc:
		return m
	case func(interface{}, string) bool:
		return m
	case OfType:
		want := reflect.TypeOf(m.Type)
		if want == nil {
			panic("rig: Intercept: OfType.Type is untyped nil")
		}
		// A nil pointer to an interface selects the interface itself.
		if want.Kind() == reflect.Ptr && want.Elem().Kind() == reflect.Interface {
			want = want.Elem()
		}
		return func(instance interface{}, method string) bool {
			if m.Method != "" && method != m.Method {
				return false
			}
			t := reflect.TypeOf(instance)
			if t == nil {
				return false
			}
			if want.Kind() == reflect.Interface {
				return t.Implements(want)
			}
			return t.AssignableTo(want)
		}
	default:
		panic(fmt.Sprintf("rig: Intercept: unsupported matcher type %T", matcher))
	}
}
