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
	"reflect"

	"github.com/rigdi/rig/internal/rigreflect"
)

// Key is a stable string identifying a registration within a container.
type Key string

// Arg describes one constructor dependency.
type Arg struct {
	// Type is the resolution key of the dependency.
	Type Key
}

// TypeInfo is the extracted description of a constructible type: its
// resolution key and its ordered constructor dependencies. It is immutable
// once produced.
type TypeInfo struct {
	Name Key
	Args []Arg
}

// Extractor turns a constructor-like descriptor into a TypeInfo. The default
// implementation reflects over constructor functions; replace it with
// [WithExtractor] to key types differently.
type Extractor interface {
	// Extract returns the TypeInfo for descriptor. keyOverride, when
	// non-empty, wins over any derived name. Extract fails with
	// [MissingKeyError] if no name is derivable and with
	// [UnresolvedParameterError] if a constructor parameter's type cannot
	// be keyed.
	Extract(descriptor interface{}, keyOverride Key) (TypeInfo, error)
}

// reflectExtractor is the default Extractor. It accepts constructor
// functions with the signature func(deps...) T or func(deps...) (T, error)
// and keys every type by its reflect.Type string.
type reflectExtractor struct{}

func (reflectExtractor) Extract(descriptor interface{}, keyOverride Key) (TypeInfo, error) {
	fnV := reflect.ValueOf(descriptor)
	if fnV.Kind() != reflect.Func {
		if keyOverride == "" {
			return TypeInfo{}, &MissingKeyError{Descriptor: rigreflect.TypeName(descriptor)}
		}
		// Non-func descriptors carry no parameter list; an explicit key
		// makes them a dependency-free type.
		return TypeInfo{Name: keyOverride}, nil
	}

	fn := fnV.Type()

	name := keyOverride
	if name == "" {
		for i := 0; i < fn.NumOut(); i++ {
			if out := fn.Out(i); !rigreflect.IsErr(out) {
				name = keyForType(out)
				break
			}
		}
	}
	if name == "" {
		return TypeInfo{}, &MissingKeyError{Descriptor: rigreflect.FuncName(descriptor)}
	}

	args := make([]Arg, 0, fn.NumIn())
	for i := 0; i < fn.NumIn(); i++ {
		if fn.IsVariadic() && i == fn.NumIn()-1 {
			return TypeInfo{}, &UnresolvedParameterError{Owner: name, Position: i}
		}
		k := keyForType(fn.In(i))
		if k == "" {
			return TypeInfo{}, &UnresolvedParameterError{Owner: name, Position: i}
		}
		args = append(args, Arg{Type: k})
	}

	return TypeInfo{Name: name, Args: args}, nil
}

// keyForType returns the resolution key for a static type, or "" if the type
// cannot be keyed. The empty interface and anonymous types have no stable
// name.
func keyForType(t reflect.Type) Key {
	base := t
	for base.Kind() == reflect.Ptr {
		base = base.Elem()
	}
	if base.Kind() == reflect.Interface && base.NumMethod() == 0 {
		return ""
	}
	if base.Name() == "" {
		switch base.Kind() {
		case reflect.Struct, reflect.Interface, reflect.Func:
			return ""
		}
	}
	return Key(t.String())
}
