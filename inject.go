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
	"sync"

	"go.uber.org/multierr"

	"github.com/rigdi/rig/rigevent"
)

// Injection is a post-construction mutator applied to a freshly constructed
// instance, typically a setter or property injector. Injections are owned by
// their registration and run fresh on every construction; they never run on
// cache hits.
type Injection interface {
	// InjectSync mutates instance, fully completing before returning.
	InjectSync(instance interface{}, c *Container) error

	// Inject is the suspend-capable form; it reports completion through
	// done. Implementations may complete synchronously.
	Inject(instance interface{}, c *Container, done Done)
}

// InjectFunc adapts a plain function to [Injection]. Its suspend-capable
// form runs the function and signals done immediately.
type InjectFunc func(instance interface{}, c *Container) error

// InjectSync calls f.
func (f InjectFunc) InjectSync(instance interface{}, c *Container) error {
	return f(instance, c)
}

// Inject calls f and signals done with its result.
func (f InjectFunc) Inject(instance interface{}, c *Container, done Done) {
	done(instance, f(instance, c))
}

// InjectSync runs the injection list of the registration under key against
// instance, strictly in list order; the first failure aborts the remainder.
// An empty key derives one from the instance's runtime type name. Fails with
// [UnregisteredKeyError] if the key has no registration.
func (c *Container) InjectSync(instance interface{}, key Key) error {
	reg, err := c.injectionTarget(instance, key)
	if err != nil {
		return err
	}
	return c.runInjectionsSync(instance, reg)
}

// Inject is the suspend-capable form of [Container.InjectSync] with one
// deliberate difference: all injections in the list are started
// concurrently, not sequentially. The pipeline completes only once every
// injection has signaled; the first observed failure is reported, but
// in-flight injections are not canceled and their side effects may land
// after done has already been called. Callers must assert on final state,
// not completion order.
func (c *Container) Inject(instance interface{}, key Key, done Done) {
	reg, err := c.injectionTarget(instance, key)
	if err != nil {
		done(nil, err)
		return
	}
	c.runInjections(instance, reg, done)
}

func (c *Container) injectionTarget(instance interface{}, key Key) (*registration, error) {
	if key == "" {
		key = instanceKey(instance)
	}
	reg, ok := c.lookup(key)
	if !ok {
		return nil, &UnregisteredKeyError{Key: key}
	}
	return reg, nil
}

func (c *Container) runInjectionsSync(instance interface{}, reg *registration) error {
	for _, inj := range reg.injections {
		if err := inj.InjectSync(instance, c); err != nil {
			c.logger.LogEvent(&rigevent.InjectError{Key: string(reg.key), Err: err})
			return err
		}
	}
	if len(reg.injections) > 0 {
		c.logger.LogEvent(&rigevent.Injected{Key: string(reg.key), Injections: len(reg.injections)})
	}
	return nil
}

// runInjections starts every injection concurrently and calls done exactly
// once, after the last one signals. Failures are combined in observation
// order, so a lone failure passes through unchanged.
func (c *Container) runInjections(instance interface{}, reg *registration, done Done) {
	if len(reg.injections) == 0 {
		done(instance, nil)
		return
	}

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs []error
	)

	for _, inj := range reg.injections {
		inj := inj
		wg.Add(1)
		go inj.Inject(instance, c, func(_ interface{}, err error) {
			defer wg.Done()
			if err == nil {
				return
			}
			mu.Lock()
			errs = append(errs, err)
			mu.Unlock()
		})
	}

	go func() {
		wg.Wait()
		err := multierr.Combine(errs...)
		if err != nil {
			c.logger.LogEvent(&rigevent.InjectError{Key: string(reg.key), Err: err})
		} else {
			c.logger.LogEvent(&rigevent.Injected{Key: string(reg.key), Injections: len(reg.injections)})
		}
		done(instance, err)
	}()
}
