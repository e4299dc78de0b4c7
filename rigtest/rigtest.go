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

// Package rigtest provides a container harness for unit tests: registration
// errors fail the test immediately and container events are written through
// the test's logger.
package rigtest

import (
	"github.com/rigdi/rig"
	"github.com/rigdi/rig/rigevent"
)

// TB is the subset of testing.TB that rigtest consumes.
type TB interface {
	Logf(string, ...interface{})
	Errorf(string, ...interface{})
	FailNow()
}

// Container wraps a rig.Container with test-failing registration helpers.
type Container struct {
	*rig.Container
	tb TB
}

// New creates a container whose events log through tb.
func New(tb TB, opts ...rig.Option) *Container {
	opts = append([]rig.Option{rig.WithLogger(NewTestLogger(tb))}, opts...)
	return &Container{
		Container: rig.New(opts...),
		tb:        tb,
	}
}

// MustRegisterType is RegisterType, failing the test on error.
func (c *Container) MustRegisterType(descriptor interface{}, opts ...rig.RegisterOption) {
	if err := c.RegisterType(descriptor, opts...); err != nil {
		c.tb.Errorf("rigtest: RegisterType failed: %v", err)
		c.tb.FailNow()
	}
}

// MustRegisterInstance is RegisterInstance, failing the test on error.
func (c *Container) MustRegisterInstance(instance interface{}, opts ...rig.RegisterOption) {
	if err := c.RegisterInstance(instance, opts...); err != nil {
		c.tb.Errorf("rigtest: RegisterInstance failed: %v", err)
		c.tb.FailNow()
	}
}

// MustRegisterFactory is RegisterFactory, failing the test on error.
func (c *Container) MustRegisterFactory(factory interface{}, opts ...rig.RegisterOption) {
	if err := c.RegisterFactory(factory, opts...); err != nil {
		c.tb.Errorf("rigtest: RegisterFactory failed: %v", err)
		c.tb.FailNow()
	}
}

// MustResolve is ResolveSync, failing the test on error.
func (c *Container) MustResolve(keyOrType interface{}) interface{} {
	instance, err := c.ResolveSync(keyOrType)
	if err != nil {
		c.tb.Errorf("rigtest: ResolveSync failed: %v", err)
		c.tb.FailNow()
	}
	return instance
}

// testLogger writes container events through a test's logger.
type testLogger struct {
	tb TB
}

// NewTestLogger returns a rigevent.Logger that logs through tb.
func NewTestLogger(tb TB) rigevent.Logger {
	return &testLogger{tb: tb}
}

func (l *testLogger) LogEvent(event rigevent.Event) {
	switch e := event.(type) {
	case *rigevent.Registered:
		l.tb.Logf("[Rig] REGISTER %s (%s)", e.Key, e.Kind)
	case *rigevent.Replaced:
		l.tb.Logf("[Rig] REPLACE %s (was %s)", e.Key, e.PriorKind)
	case *rigevent.Resolved:
		l.tb.Logf("[Rig] RESOLVE %s (cached=%v)", e.Key, e.Cached)
	case *rigevent.ResolveError:
		l.tb.Logf("[Rig] ERROR resolving %s: %v", e.Key, e.Err)
	case *rigevent.Injected:
		l.tb.Logf("[Rig] INJECT %s (%d injections)", e.Key, e.Injections)
	case *rigevent.InjectError:
		l.tb.Logf("[Rig] ERROR injecting %s: %v", e.Key, e.Err)
	case *rigevent.Intercepted:
		l.tb.Logf("[Rig] INTERCEPT %s.%s (%d handlers)", e.Type, e.Method, e.Handlers)
	case *rigevent.ChildCreated:
		l.tb.Logf("[Rig] CHILD %d registrations", e.Registrations)
	case *rigevent.Validated:
		l.tb.Logf("[Rig] VALIDATE err=%v", e.Err)
	}
}
