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

// Package rig is a lifetime-aware dependency-injection container.
//
// A [Container] holds registrations keyed by a stable resolution [Key] and
// produces fully-constructed, fully-injected object graphs on demand.
// Registrations come in three kinds: constructible types
// ([Container.RegisterType]), pre-built values
// ([Container.RegisterInstance]), and user factories
// ([Container.RegisterFactory]). Structurally invalid registrations — a
// missing key, an undeterminable parameter, or a dependency cycle — fail
// fast at registration time, before any instance is ever built.
//
// # Quick Start
//
//	c := rig.New()
//	c.RegisterType(NewStore, rig.WithLifetime(rig.Singleton()))
//	c.RegisterType(NewServer)
//
//	srv, err := rig.As[*Server](c, NewServer)
//
// # Lifetimes
//
// Every registration carries a cache policy. [Transient] (the default)
// constructs a fresh instance per resolve; [Singleton] caches the first
// instance forever; [Scoped] caches until reset. On a cache hit the instance
// is returned as-is: injections ran on first construction and are never
// re-applied.
//
// # Blocking and Suspend-Capable Resolution
//
// Every operation has a blocking form and a suspend-capable form with
// identical observable semantics: [Container.ResolveSync] and
// [Container.Resolve], [Container.InjectSync] and [Container.Inject]. The
// suspend-capable forms differ in one documented way: constructor arguments
// and injection lists are processed concurrently rather than in declared
// order, and nothing in flight is ever canceled.
//
// # Interception
//
// Instances that implement [Interceptable] declare which of their methods
// may be wrapped. [Container.Intercept] builds a predicate-matched handler
// chain; committing it with Sync or Async attaches it to every matching
// method of subsequently constructed instances:
//
//	c.Intercept("Save", logCalls, retryTwice).Sync()
//
// # Child Containers
//
// [Container.CreateChildContainer] snapshots the parent's registrations,
// dependency graph, and handler chains. The two containers evolve
// independently afterwards; re-registering a key in the child shadows the
// parent's version for the child only.
package rig
