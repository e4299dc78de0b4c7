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
	"sync"

	"go.uber.org/multierr"

	"github.com/rigdi/rig/internal/rigreflect"
	"github.com/rigdi/rig/rigevent"
)

// Container holds registrations and produces fully-constructed,
// fully-injected object graphs on demand. Use [New] to create one.
//
// Registration is expected from a single goroutine; resolution may happen
// concurrently once registration has settled.
type Container struct {
	// parent is provenance only; it is never consulted during resolution.
	parent *Container

	extractor    Extractor
	instantiator Instantiator
	logger       rigevent.Logger

	mu             sync.RWMutex
	registrations  map[Key]*registration
	handlerConfigs []*handlerConfig
	graph          *graph
}

// Option configures a container at construction time.
type Option func(*Container)

// WithLogger sets the event logger. The default discards all events.
func WithLogger(l rigevent.Logger) Option {
	return func(c *Container) {
		c.logger = l
	}
}

// WithExtractor replaces the default reflection-based type-info extractor.
func WithExtractor(e Extractor) Option {
	return func(c *Container) {
		c.extractor = e
	}
}

// WithInstantiator replaces the default reflection-based instantiation
// mechanism.
func WithInstantiator(i Instantiator) Option {
	return func(c *Container) {
		c.instantiator = i
	}
}

// New creates an empty container.
func New(opts ...Option) *Container {
	c := &Container{
		extractor:     reflectExtractor{},
		instantiator:  reflectInstantiator{},
		logger:        rigevent.NopLogger,
		registrations: make(map[Key]*registration),
		graph:         newGraph(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ---------------------------------------------------------------------------
// Registration
// ---------------------------------------------------------------------------

// RegisterType registers a constructible type. The descriptor is handed to
// the container's extractor, which derives the resolution key and the
// ordered constructor dependencies; with the default extractor that means a
// constructor function func(deps...) T or func(deps...) (T, error).
//
// One dependency edge is recorded per constructor argument and the graph is
// checked incrementally: a registration that would close a cycle fails with
// [CyclicDependencyError] and leaves the container untouched.
func (c *Container) RegisterType(descriptor interface{}, opts ...RegisterOption) error {
	o := applyRegisterOptions(opts)

	info, err := c.extractor.Extract(descriptor, o.key)
	if err != nil {
		return err
	}

	deps := make([]Key, len(info.Args))
	for i, arg := range info.Args {
		deps[i] = arg.Type
	}

	c.mu.Lock()
	if err := c.graph.connect(info.Name, deps); err != nil {
		c.mu.Unlock()
		return err
	}
	prior := c.registrations[info.Name]
	c.registrations[info.Name] = &registration{
		key:        info.Name,
		kind:       kindType,
		lifetime:   o.lifetime,
		injections: o.injections,
		typeInfo:   info,
		descriptor: descriptor,
	}
	c.mu.Unlock()

	c.logRegistered(info.Name, kindType, prior, depStrings(deps))
	return nil
}

// RegisterInstance registers a pre-built value. The key defaults to the
// value's runtime type name.
func (c *Container) RegisterInstance(instance interface{}, opts ...RegisterOption) error {
	o := applyRegisterOptions(opts)

	key := o.key
	if key == "" {
		key = instanceKey(instance)
	}
	if key == "" {
		return &MissingKeyError{Descriptor: rigreflect.TypeName(instance)}
	}

	c.mu.Lock()
	prior := c.registrations[key]
	c.registrations[key] = &registration{
		key:        key,
		kind:       kindInstance,
		lifetime:   o.lifetime,
		injections: o.injections,
		instance:   instance,
	}
	c.mu.Unlock()

	c.logRegistered(key, kindInstance, prior, nil)
	return nil
}

// RegisterFactory registers a user-supplied construction function, either a
// [Factory] or an [AsyncFactory]. Factories have no inherent name, so
// [WithKey] is mandatory; omitting it fails with [MissingKeyError].
func (c *Container) RegisterFactory(factory interface{}, opts ...RegisterOption) error {
	o := applyRegisterOptions(opts)
	if o.key == "" {
		return &MissingKeyError{Descriptor: rigreflect.FuncName(factory)}
	}

	reg := &registration{
		key:        o.key,
		kind:       kindFactory,
		lifetime:   o.lifetime,
		injections: o.injections,
	}
	switch f := factory.(type) {
	case Factory:
		reg.factory = f
	case func(*Container) (interface{}, error):
		reg.factory = f
	case AsyncFactory:
		reg.asyncFactory = f
	case func(*Container, Done):
		reg.asyncFactory = f
	default:
		return fmt.Errorf("rig: RegisterFactory: %T is neither a rig.Factory nor a rig.AsyncFactory", factory)
	}

	c.mu.Lock()
	prior := c.registrations[o.key]
	c.registrations[o.key] = reg
	c.mu.Unlock()

	c.logRegistered(o.key, kindFactory, prior, nil)
	return nil
}

// IsRegistered reports whether a registration exists for the given key,
// string, or constructor-like value.
func (c *Container) IsRegistered(keyOrType interface{}) bool {
	key, err := c.keyFor(keyOrType)
	if err != nil {
		return false
	}
	_, ok := c.lookup(key)
	return ok
}

func (c *Container) logRegistered(key Key, kind registrationKind, prior *registration, deps []string) {
	if prior != nil {
		c.logger.LogEvent(&rigevent.Replaced{Key: string(key), PriorKind: prior.kind.String()})
	}
	c.logger.LogEvent(&rigevent.Registered{Key: string(key), Kind: kind.String(), Dependencies: deps})
}

func depStrings(deps []Key) []string {
	if len(deps) == 0 {
		return nil
	}
	out := make([]string, len(deps))
	for i, d := range deps {
		out[i] = string(d)
	}
	return out
}

// ---------------------------------------------------------------------------
// Resolution
// ---------------------------------------------------------------------------

// ResolveSync returns a fully-constructed, fully-injected instance for the
// given key, string, or constructor-like value.
//
// A lifetime cache hit returns the cached instance as-is, with no
// re-construction and no re-injection. On an injection failure the
// partially-injected instance is still returned alongside the error; it is
// not cached.
func (c *Container) ResolveSync(keyOrType interface{}) (interface{}, error) {
	key, err := c.keyFor(keyOrType)
	if err != nil {
		return nil, err
	}

	reg, ok := c.lookup(key)
	if !ok {
		err := &UnregisteredKeyError{Key: key}
		c.logger.LogEvent(&rigevent.ResolveError{Key: string(key), Err: err})
		return nil, err
	}

	if instance, ok := reg.lifetime.Fetch(); ok {
		c.logger.LogEvent(&rigevent.Resolved{Key: string(key), Cached: true})
		return instance, nil
	}

	instance, err := c.constructSync(reg)
	if err != nil {
		c.logger.LogEvent(&rigevent.ResolveError{Key: string(key), Err: err})
		return nil, err
	}

	if err := c.runInjectionsSync(instance, reg); err != nil {
		// Deliberate: the half-injected instance is surfaced, not
		// swallowed, and stays out of the cache.
		return instance, err
	}

	reg.lifetime.Store(instance)
	c.logger.LogEvent(&rigevent.Resolved{Key: string(key)})
	return instance, nil
}

// Resolve is the suspend-capable form of [ResolveSync]. All failures are
// delivered through done, never panicked. Constructor arguments are resolved
// concurrently rather than in declared order, and injections run
// concurrently per [Container.Inject]; the observable results are otherwise
// identical to ResolveSync.
func (c *Container) Resolve(keyOrType interface{}, done Done) {
	key, err := c.keyFor(keyOrType)
	if err != nil {
		done(nil, err)
		return
	}

	reg, ok := c.lookup(key)
	if !ok {
		err := &UnregisteredKeyError{Key: key}
		c.logger.LogEvent(&rigevent.ResolveError{Key: string(key), Err: err})
		done(nil, err)
		return
	}

	if instance, ok := reg.lifetime.Fetch(); ok {
		c.logger.LogEvent(&rigevent.Resolved{Key: string(key), Cached: true})
		done(instance, nil)
		return
	}

	c.construct(reg, func(instance interface{}, err error) {
		if err != nil {
			c.logger.LogEvent(&rigevent.ResolveError{Key: string(key), Err: err})
			done(nil, err)
			return
		}
		c.runInjections(instance, reg, func(_ interface{}, err error) {
			if err != nil {
				done(instance, err)
				return
			}
			reg.lifetime.Store(instance)
			c.logger.LogEvent(&rigevent.Resolved{Key: string(key)})
			done(instance, nil)
		})
	})
}

// TryResolveSync converts any resolution failure into a nil result. It
// exists solely for callers that treat absence and failure alike.
func (c *Container) TryResolveSync(keyOrType interface{}) interface{} {
	instance, err := c.ResolveSync(keyOrType)
	if err != nil {
		return nil
	}
	return instance
}

func (c *Container) constructSync(reg *registration) (interface{}, error) {
	switch reg.kind {
	case kindInstance:
		return reg.instance, nil
	case kindType:
		return c.buildSync(reg)
	default:
		if reg.factory != nil {
			return reg.factory(c)
		}
		// Sync resolution of an async factory waits for its signal.
		type result struct {
			instance interface{}
			err      error
		}
		ch := make(chan result, 1)
		reg.asyncFactory(c, func(instance interface{}, err error) {
			ch <- result{instance, err}
		})
		r := <-ch
		return r.instance, r.err
	}
}

func (c *Container) construct(reg *registration, done Done) {
	switch reg.kind {
	case kindInstance:
		done(reg.instance, nil)
	case kindType:
		c.build(reg, done)
	default:
		if reg.asyncFactory != nil {
			reg.asyncFactory(c, done)
			return
		}
		done(reg.factory(c))
	}
}

// keyFor normalizes a key, string, or constructor-like value to its
// resolution key.
func (c *Container) keyFor(keyOrType interface{}) (Key, error) {
	switch k := keyOrType.(type) {
	case Key:
		return k, nil
	case string:
		return Key(k), nil
	}
	if reflect.ValueOf(keyOrType).Kind() == reflect.Func {
		info, err := c.extractor.Extract(keyOrType, "")
		if err != nil {
			return "", err
		}
		return info.Name, nil
	}
	return instanceKey(keyOrType), nil
}

func (c *Container) lookup(key Key) (*registration, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	reg, ok := c.registrations[key]
	return reg, ok
}

func (c *Container) snapshotInterceptions() []*handlerConfig {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.handlerConfigs
}

func (c *Container) commitInterception(cfg *handlerConfig) {
	c.mu.Lock()
	// Copy-on-write so snapshots held by in-flight builds stay stable.
	configs := make([]*handlerConfig, len(c.handlerConfigs), len(c.handlerConfigs)+1)
	copy(configs, c.handlerConfigs)
	c.handlerConfigs = append(configs, cfg)
	c.mu.Unlock()
}

// instanceKey derives a resolution key from a value's runtime type name.
func instanceKey(instance interface{}) Key {
	if instance == nil {
		return ""
	}
	return Key(rigreflect.TypeName(instance))
}

// ---------------------------------------------------------------------------
// Composition and diagnostics
// ---------------------------------------------------------------------------

// CreateChildContainer forks a new container holding an independent snapshot
// of the parent's registrations, graph edges, and handler configurations at
// the moment of the call. Later mutation on either side is isolated;
// re-registering a key in the child shadows the parent's version for the
// child and its descendants only. The child retains the parent reference for
// provenance and shares its extractor, instantiator, and logger.
func (c *Container) CreateChildContainer() *Container {
	c.mu.RLock()
	registrations := make(map[Key]*registration, len(c.registrations))
	for k, reg := range c.registrations {
		registrations[k] = reg
	}
	configs := append([]*handlerConfig(nil), c.handlerConfigs...)
	graph := c.graph.clone()
	c.mu.RUnlock()

	child := &Container{
		parent:         c,
		extractor:      c.extractor,
		instantiator:   c.instantiator,
		logger:         c.logger,
		registrations:  registrations,
		handlerConfigs: configs,
		graph:          graph,
	}
	c.logger.LogEvent(&rigevent.ChildCreated{Registrations: len(registrations)})
	return child
}

// Parent returns the container this one was forked from, or nil.
func (c *Container) Parent() *Container {
	return c.parent
}

// Validate checks every type registration's declared dependencies without
// constructing anything and reports all missing registrations as one
// combined error.
func (c *Container) Validate() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var err error
	for key, reg := range c.registrations {
		if reg.kind != kindType {
			continue
		}
		for _, arg := range reg.typeInfo.Args {
			if _, ok := c.registrations[arg.Type]; !ok {
				err = multierr.Append(err, fmt.Errorf("rig: %s: missing dependency: %w",
					key, &UnregisteredKeyError{Key: arg.Type}))
			}
		}
	}

	c.logger.LogEvent(&rigevent.Validated{Err: err})
	return err
}

// DotGraph renders the container's dependency graph in Graphviz DOT form.
func (c *Container) DotGraph() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.graph.dot()
}

// As resolves keyOrType through c and asserts the result to T:
//
//	repo, err := rig.As[*Repo](c, "repo")
func As[T any](c *Container, keyOrType interface{}) (T, error) {
	var zero T
	instance, err := c.ResolveSync(keyOrType)
	if err != nil {
		return zero, err
	}
	out, ok := instance.(T)
	if !ok {
		return zero, fmt.Errorf("rig: resolved value is %T, not %s",
			instance, reflect.TypeOf((*T)(nil)).Elem())
	}
	return out, nil
}
