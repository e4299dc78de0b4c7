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

package rigreflect

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type sample struct{}

func newSample() *sample { return &sample{} }

func TestTypeName(t *testing.T) {
	assert.Equal(t, "*rigreflect.sample", TypeName(&sample{}))
	assert.Equal(t, "rigreflect.sample", TypeName(sample{}))
	assert.Equal(t, "int", TypeName(42))
	assert.Equal(t, "nil", TypeName(nil))
}

func TestFuncName(t *testing.T) {
	assert.True(t, strings.HasSuffix(FuncName(newSample), "newSample()"))
	assert.Equal(t, "n/a", FuncName(42))
}

func TestReturnTypes(t *testing.T) {
	assert.Equal(t, []string{"*rigreflect.sample"}, ReturnTypes(newSample))
	assert.Equal(t, []string{"int"}, ReturnTypes(func() (int, error) { return 0, nil }))
}
