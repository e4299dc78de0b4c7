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

package rigevent

import (
	"fmt"
	"io"
	"strings"
)

// ConsoleLogger is a [Logger] that writes plain-text events to an io.Writer.
// It is primarily useful during development; production callers should
// prefer [ZapLogger].
type ConsoleLogger struct {
	W io.Writer
}

var _ Logger = (*ConsoleLogger)(nil)

// LogEvent writes the given event to the logger's writer.
func (l *ConsoleLogger) LogEvent(event Event) {
	switch e := event.(type) {
	case *Registered:
		if len(e.Dependencies) == 0 {
			l.logf("REGISTER\t%s (%s)", e.Key, e.Kind)
		} else {
			l.logf("REGISTER\t%s (%s) <- %s", e.Key, e.Kind, strings.Join(e.Dependencies, ", "))
		}
	case *Replaced:
		l.logf("REPLACE\t%s (was %s)", e.Key, e.PriorKind)
	case *Resolved:
		if e.Cached {
			l.logf("RESOLVE\t%s (cached)", e.Key)
		} else {
			l.logf("RESOLVE\t%s", e.Key)
		}
	case *ResolveError:
		l.logf("ERROR\tresolving %s: %v", e.Key, e.Err)
	case *Injected:
		l.logf("INJECT\t%s (%d injections)", e.Key, e.Injections)
	case *InjectError:
		l.logf("ERROR\tinjecting %s: %v", e.Key, e.Err)
	case *Intercepted:
		l.logf("INTERCEPT\t%s.%s (%d handlers)", e.Type, e.Method, e.Handlers)
	case *ChildCreated:
		l.logf("CHILD\tsnapshotted %d registrations", e.Registrations)
	case *Validated:
		if e.Err != nil {
			l.logf("ERROR\tvalidation: %v", e.Err)
		} else {
			l.logf("VALIDATE\tok")
		}
	}
}

func (l *ConsoleLogger) logf(msg string, args ...interface{}) {
	fmt.Fprintf(l.W, "[Rig] "+msg+"\n", args...)
}
