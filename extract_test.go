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

func TestReflectExtractor(t *testing.T) {
	ext := reflectExtractor{}

	t.Run("ConstructorWithDependencies", func(t *testing.T) {
		info, err := ext.Extract(func(c *Clock, j *Journal) *Ledger { return nil }, "")
		require.NoError(t, err)

		assert.Equal(t, Key("*rig.Ledger"), info.Name)
		assert.Equal(t, []Arg{{Type: "*rig.Clock"}, {Type: "*rig.Journal"}}, info.Args)
	})
	t.Run("ErrorReturnIsNotTheName", func(t *testing.T) {
		info, err := ext.Extract(func() (*Clock, error) { return nil, nil }, "")
		require.NoError(t, err)
		assert.Equal(t, Key("*rig.Clock"), info.Name)
	})
	t.Run("OverrideWins", func(t *testing.T) {
		info, err := ext.Extract(func() *Clock { return nil }, "wall-clock")
		require.NoError(t, err)
		assert.Equal(t, Key("wall-clock"), info.Name)
	})
	t.Run("AnonymousResultNeedsOverride", func(t *testing.T) {
		_, err := ext.Extract(func() struct{ N int } { return struct{ N int }{} }, "")

		var missing *MissingKeyError
		assert.ErrorAs(t, err, &missing)
	})
	t.Run("EmptyInterfaceParameterIsUnresolved", func(t *testing.T) {
		_, err := ext.Extract(func(dep interface{}) *Clock { return nil }, "")

		var unresolved *UnresolvedParameterError
		require.ErrorAs(t, err, &unresolved)
		assert.Equal(t, Key("*rig.Clock"), unresolved.Owner)
		assert.Equal(t, 0, unresolved.Position)
	})
	t.Run("SecondParameterPositionReported", func(t *testing.T) {
		_, err := ext.Extract(func(c *Clock, dep interface{}) *Ledger { return nil }, "")

		var unresolved *UnresolvedParameterError
		require.ErrorAs(t, err, &unresolved)
		assert.Equal(t, 1, unresolved.Position)
	})
	t.Run("VariadicParameterIsUnresolved", func(t *testing.T) {
		_, err := ext.Extract(func(clocks ...*Clock) *Journal { return nil }, "")

		var unresolved *UnresolvedParameterError
		assert.ErrorAs(t, err, &unresolved)
	})
	t.Run("NonFuncNeedsOverride", func(t *testing.T) {
		_, err := ext.Extract(&Clock{}, "")
		var missing *MissingKeyError
		assert.ErrorAs(t, err, &missing)

		info, err := ext.Extract(&Clock{}, "clock")
		require.NoError(t, err)
		assert.Equal(t, Key("clock"), info.Name)
		assert.Empty(t, info.Args)
	})
}

func TestRegisterTypeExtractionErrors(t *testing.T) {
	t.Run("MissingKeyRejectsRegistration", func(t *testing.T) {
		c := New()
		err := c.RegisterType(func() struct{ N int } { return struct{ N int }{} })

		var missing *MissingKeyError
		assert.ErrorAs(t, err, &missing)
	})
	t.Run("UnresolvedParameterRejectsRegistration", func(t *testing.T) {
		c := New()
		err := c.RegisterType(func(dep interface{}) *Clock { return nil })

		var unresolved *UnresolvedParameterError
		require.ErrorAs(t, err, &unresolved)
		assert.False(t, c.IsRegistered("*rig.Clock"))
	})
}
