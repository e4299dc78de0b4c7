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

	"github.com/rigdi/rig/internal/rigreflect"
	"github.com/rigdi/rig/rigevent"
)

// Instantiator is the low-level object construction mechanism: given a type
// descriptor and the resolved argument values, it produces a new instance.
// The default reflects over constructor functions; replace it with
// [WithInstantiator].
type Instantiator interface {
	Instantiate(descriptor interface{}, args []interface{}) (interface{}, error)
}

// reflectInstantiator is the default Instantiator. It calls constructor
// functions with the signature func(deps...) T or func(deps...) (T, error).
type reflectInstantiator struct{}

func (reflectInstantiator) Instantiate(descriptor interface{}, args []interface{}) (interface{}, error) {
	fnV := reflect.ValueOf(descriptor)
	if fnV.Kind() != reflect.Func {
		return nil, fmt.Errorf("rig: cannot instantiate %s: descriptor is not a constructor function", rigreflect.TypeName(descriptor))
	}

	fn := fnV.Type()
	in := make([]reflect.Value, len(args))
	for i, arg := range args {
		if arg == nil {
			in[i] = reflect.Zero(fn.In(i))
			continue
		}
		in[i] = reflect.ValueOf(arg)
	}

	results := fnV.Call(in)
	for i := len(results) - 1; i >= 0; i-- {
		if rigreflect.IsErr(results[i].Type()) {
			if !results[i].IsNil() {
				return nil, results[i].Interface().(error)
			}
			continue
		}
		return results[i].Interface(), nil
	}
	return nil, fmt.Errorf("rig: constructor %s returned no value", rigreflect.FuncName(descriptor))
}

// buildSync constructs a type registration's instance, resolving each
// constructor argument through the owning container in declared order. The
// first resolution failure aborts construction and propagates unchanged.
func (c *Container) buildSync(reg *registration) (interface{}, error) {
	args := make([]interface{}, len(reg.typeInfo.Args))
	for i, arg := range reg.typeInfo.Args {
		dep, err := c.ResolveSync(arg.Type)
		if err != nil {
			return nil, err
		}
		args[i] = dep
	}

	instance, err := c.instantiator.Instantiate(reg.descriptor, args)
	if err != nil {
		return nil, err
	}
	if err := c.applyInterception(instance); err != nil {
		return nil, err
	}
	return instance, nil
}

// build is the suspend-capable form of buildSync. All argument resolutions
// are issued eagerly; the constructor is invoked only after every one has
// completed. The first observed failure wins, but in-flight resolutions run
// to completion.
func (c *Container) build(reg *registration, done Done) {
	n := len(reg.typeInfo.Args)
	if n == 0 {
		done(c.instantiateWrapped(reg))
		return
	}

	var (
		wg    sync.WaitGroup
		mu    sync.Mutex
		first error
	)
	args := make([]interface{}, n)

	for i, arg := range reg.typeInfo.Args {
		i, arg := i, arg
		wg.Add(1)
		go c.Resolve(arg.Type, func(dep interface{}, err error) {
			defer wg.Done()
			if err != nil {
				mu.Lock()
				if first == nil {
					first = err
				}
				mu.Unlock()
				return
			}
			args[i] = dep
		})
	}

	go func() {
		wg.Wait()
		if first != nil {
			done(nil, first)
			return
		}
		instance, err := c.instantiator.Instantiate(reg.descriptor, args)
		if err != nil {
			done(nil, err)
			return
		}
		if err := c.applyInterception(instance); err != nil {
			done(nil, err)
			return
		}
		done(instance, nil)
	}()
}

func (c *Container) instantiateWrapped(reg *registration) (interface{}, error) {
	instance, err := c.instantiator.Instantiate(reg.descriptor, nil)
	if err != nil {
		return nil, err
	}
	if err := c.applyInterception(instance); err != nil {
		return nil, err
	}
	return instance, nil
}

// applyInterception binds and wraps the instance's declared methods with
// every matching committed handler chain, in commit order. Attaching a chain
// whose mode disagrees with the method's is a configuration error and fails
// the construction.
func (c *Container) applyInterception(instance interface{}) error {
	in, ok := instance.(Interceptable)
	if !ok {
		return nil
	}

	configs := c.snapshotInterceptions()
	for _, m := range in.InterceptedMethods() {
		m.bind(instance)
		for _, cfg := range configs {
			if !cfg.match(instance, m.Name()) {
				continue
			}
			if cfg.async != m.Async() {
				if m.Async() {
					return fmt.Errorf("rig: async method %s.%s matched a Sync handler chain; commit it with Async",
						rigreflect.TypeName(instance), m.Name())
				}
				return fmt.Errorf("rig: sync method %s.%s matched an Async handler chain; commit it with Sync",
					rigreflect.TypeName(instance), m.Name())
			}
			if cfg.async {
				m.wrapAsync(cfg.asyncHandlers)
				c.logger.LogEvent(&rigevent.Intercepted{
					Type:     rigreflect.TypeName(instance),
					Method:   m.Name(),
					Handlers: len(cfg.asyncHandlers),
				})
			} else {
				m.wrapSync(cfg.handlers)
				c.logger.LogEvent(&rigevent.Intercepted{
					Type:     rigreflect.TypeName(instance),
					Method:   m.Name(),
					Handlers: len(cfg.handlers),
				})
			}
		}
	}
	return nil
}
