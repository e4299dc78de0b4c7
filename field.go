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

// InjectField returns an [Injection] that resolves key through the container
// and assigns the result to the named exported field of the target. The
// target must be a pointer to a struct.
//
//	c.RegisterType(NewServer, rig.WithInjections(
//		rig.InjectField("Metrics", "metrics"),
//	))
func InjectField(field string, key Key) Injection {
	return InjectFunc(func(instance interface{}, c *Container) error {
		v := reflect.ValueOf(instance)
		if v.Kind() != reflect.Ptr || v.Elem().Kind() != reflect.Struct {
			return fmt.Errorf("rig: InjectField %q: target is %T, not a pointer to a struct", field, instance)
		}

		f := v.Elem().FieldByName(field)
		if !f.IsValid() {
			return fmt.Errorf("rig: InjectField: %T has no field %q", instance, field)
		}
		if !f.CanSet() {
			return fmt.Errorf("rig: InjectField: field %q of %T is not settable", field, instance)
		}

		dep, err := c.ResolveSync(key)
		if err != nil {
			return err
		}
		if dep == nil {
			f.Set(reflect.Zero(f.Type()))
			return nil
		}

		dv := reflect.ValueOf(dep)
		if !dv.Type().AssignableTo(f.Type()) {
			return fmt.Errorf("rig: InjectField: cannot assign %s to field %q of %T", dv.Type(), field, instance)
		}
		f.Set(dv)
		return nil
	})
}
