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

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Repo is an interceptable fixture with one sync method.
type Repo struct {
	trace []string
	save  *Method
}

func NewRepo() *Repo {
	r := &Repo{}
	r.save = NewMethod("Save", func(args ...interface{}) (interface{}, error) {
		r.trace = append(r.trace, "body")
		return "saved", nil
	})
	return r
}

func (r *Repo) InterceptedMethods() []*Method { return []*Method{r.save} }

// Save invokes the method through whatever chain was attached at
// construction.
func (r *Repo) Save() (interface{}, error) { return r.save.Invoke() }

// Mailer is an interceptable fixture with one async method.
type Mailer struct {
	trace []string
	send  *Method
}

func NewMailer() *Mailer {
	m := &Mailer{}
	m.send = NewAsyncMethod("Send", func(args []interface{}, done Done) {
		m.trace = append(m.trace, "body")
		done("sent", nil)
	})
	return m
}

func (m *Mailer) InterceptedMethods() []*Method { return []*Method{m.send} }

func (m *Mailer) Send(done Done) { m.send.InvokeAsync(nil, done) }

func traceHandler(name string) Handler {
	return func(inv *Invocation, next Invoker) (interface{}, error) {
		repo := inv.Target.(*Repo)
		repo.trace = append(repo.trace, name+"-before")
		out, err := next(inv)
		repo.trace = append(repo.trace, name+"-after")
		return out, err
	}
}

func TestInterceptSync(t *testing.T) {
	t.Run("HandlersRunInDeclaredOrder", func(t *testing.T) {
		c := New()
		c.Intercept("Save", traceHandler("outer"), traceHandler("inner")).Sync()
		require.NoError(t, c.RegisterType(NewRepo))

		got, err := c.ResolveSync("*rig.Repo")
		require.NoError(t, err)
		repo := got.(*Repo)

		out, err := repo.Save()
		require.NoError(t, err)
		assert.Equal(t, "saved", out)
		assert.Equal(t, []string{
			"outer-before", "inner-before", "body", "inner-after", "outer-after",
		}, repo.trace)

		// Exactly once per call.
		repo.trace = nil
		_, err = repo.Save()
		require.NoError(t, err)
		assert.Equal(t, []string{
			"outer-before", "inner-before", "body", "inner-after", "outer-after",
		}, repo.trace)
	})
	t.Run("UncommittedConfigurationHasNoEffect", func(t *testing.T) {
		c := New()
		c.Intercept("Save", traceHandler("never")) // neither Sync nor Async
		require.NoError(t, c.RegisterType(NewRepo))

		got, err := c.ResolveSync("*rig.Repo")
		require.NoError(t, err)
		repo := got.(*Repo)

		_, err = repo.Save()
		require.NoError(t, err)
		assert.Equal(t, []string{"body"}, repo.trace)
	})
	t.Run("HandlerMayShortCircuit", func(t *testing.T) {
		c := New()
		c.Intercept("Save", Handler(func(inv *Invocation, next Invoker) (interface{}, error) {
			return "cached", nil // never calls next
		})).Sync()
		require.NoError(t, c.RegisterType(NewRepo))

		got, err := c.ResolveSync("*rig.Repo")
		require.NoError(t, err)
		repo := got.(*Repo)

		out, err := repo.Save()
		require.NoError(t, err)
		assert.Equal(t, "cached", out)
		assert.Empty(t, repo.trace, "method body must not run")
	})
	t.Run("CommitReturnsContainerForChaining", func(t *testing.T) {
		c := New()
		assert.Same(t, c, c.Intercept(true, traceHandler("x")).Sync())
	})
}

func TestInterceptMatchers(t *testing.T) {
	resolveRepo := func(t *testing.T, c *Container) *Repo {
		t.Helper()
		require.NoError(t, c.RegisterType(NewRepo))
		got, err := c.ResolveSync("*rig.Repo")
		require.NoError(t, err)
		return got.(*Repo)
	}

	t.Run("MethodName", func(t *testing.T) {
		c := New()
		c.Intercept("Save", traceHandler("h")).Sync()
		repo := resolveRepo(t, c)
		repo.Save()
		assert.Equal(t, []string{"h-before", "body", "h-after"}, repo.trace)
	})
	t.Run("MethodNameMismatch", func(t *testing.T) {
		c := New()
		c.Intercept("Delete", traceHandler("h")).Sync()
		repo := resolveRepo(t, c)
		repo.Save()
		assert.Equal(t, []string{"body"}, repo.trace)
	})
	t.Run("BoolUnconditional", func(t *testing.T) {
		c := New()
		c.Intercept(true, traceHandler("h")).Sync()
		repo := resolveRepo(t, c)
		repo.Save()
		assert.Equal(t, []string{"h-before", "body", "h-after"}, repo.trace)
	})
	t.Run("BoolNever", func(t *testing.T) {
		c := New()
		c.Intercept(false, traceHandler("h")).Sync()
		repo := resolveRepo(t, c)
		repo.Save()
		assert.Equal(t, []string{"body"}, repo.trace)
	})
	t.Run("OfType", func(t *testing.T) {
		c := New()
		c.Intercept(OfType{Type: (*Repo)(nil)}, traceHandler("h")).Sync()
		repo := resolveRepo(t, c)
		repo.Save()
		assert.Equal(t, []string{"h-before", "body", "h-after"}, repo.trace)
	})
	t.Run("OfTypeWithMethod", func(t *testing.T) {
		c := New()
		c.Intercept(OfType{Type: (*Repo)(nil), Method: "Delete"}, traceHandler("h")).Sync()
		repo := resolveRepo(t, c)
		repo.Save()
		assert.Equal(t, []string{"body"}, repo.trace)
	})
	t.Run("OfTypeDifferentType", func(t *testing.T) {
		c := New()
		c.Intercept(OfType{Type: (*Mailer)(nil)}, traceHandler("h")).Sync()
		repo := resolveRepo(t, c)
		repo.Save()
		assert.Equal(t, []string{"body"}, repo.trace)
	})
	t.Run("CustomPredicate", func(t *testing.T) {
		c := New()
		c.Intercept(MatchFunc(func(instance interface{}, method string) bool {
			_, isRepo := instance.(*Repo)
			return isRepo && method == "Save"
		}), traceHandler("h")).Sync()
		repo := resolveRepo(t, c)
		repo.Save()
		assert.Equal(t, []string{"h-before", "body", "h-after"}, repo.trace)
	})
	t.Run("UnsupportedMatcherPanics", func(t *testing.T) {
		c := New()
		assert.Panics(t, func() { c.Intercept(42, traceHandler("h")) })
	})
}

func TestInterceptAsync(t *testing.T) {
	t.Run("HandlersWrapAsyncMethods", func(t *testing.T) {
		logging := AsyncHandler(func(inv *Invocation, next AsyncInvoker, done Done) {
			mailer := inv.Target.(*Mailer)
			mailer.trace = append(mailer.trace, "before")
			next(inv, func(out interface{}, err error) {
				mailer.trace = append(mailer.trace, "after")
				done(out, err)
			})
		})

		c := New()
		c.Intercept("Send", logging).Async()
		require.NoError(t, c.RegisterType(NewMailer))

		got, err := c.ResolveSync("*rig.Mailer")
		require.NoError(t, err)
		mailer := got.(*Mailer)

		done := make(chan interface{}, 1)
		mailer.Send(func(out interface{}, err error) {
			require.NoError(t, err)
			done <- out
		})
		assert.Equal(t, "sent", <-done)
		assert.Equal(t, []string{"before", "body", "after"}, mailer.trace)
	})
	t.Run("ModeMismatchFailsConstruction", func(t *testing.T) {
		c := New()
		// A Sync chain matched against Mailer's async Send.
		c.Intercept("Send", traceHandler("h")).Sync()
		require.NoError(t, c.RegisterType(NewMailer))

		_, err := c.ResolveSync("*rig.Mailer")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "async method")
	})
	t.Run("SyncMethodRejectsAsyncChain", func(t *testing.T) {
		c := New()
		c.Intercept("Save", AsyncHandler(func(inv *Invocation, next AsyncInvoker, done Done) {
			next(inv, done)
		})).Async()
		require.NoError(t, c.RegisterType(NewRepo))

		_, err := c.ResolveSync("*rig.Repo")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "sync method")
	})
	t.Run("WrongHandlerTypePanicsAtCommit", func(t *testing.T) {
		c := New()
		assert.Panics(t, func() { c.Intercept("Save", "not a handler").Sync() })
		assert.Panics(t, func() { c.Intercept("Send", traceHandler("h")).Async() })
	})
}
