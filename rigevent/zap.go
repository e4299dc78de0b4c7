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
	"strings"

	"go.uber.org/zap"
)

// ZapLogger is a container event logger that logs events to Zap.
type ZapLogger struct {
	Logger *zap.Logger
}

var _ Logger = (*ZapLogger)(nil)

// LogEvent logs the given event to the provided Zap logger.
func (l *ZapLogger) LogEvent(event Event) {
	switch e := event.(type) {
	case *Registered:
		l.Logger.Info("registered",
			zap.String("key", e.Key),
			zap.String("kind", e.Kind),
			zap.String("dependencies", strings.Join(e.Dependencies, ", ")),
		)
	case *Replaced:
		l.Logger.Info("registration replaced",
			zap.String("key", e.Key),
			zap.String("prior_kind", e.PriorKind),
		)
	case *Resolved:
		l.Logger.Info("resolved",
			zap.String("key", e.Key),
			zap.Bool("cached", e.Cached),
		)
	case *ResolveError:
		l.Logger.Error("resolve failed",
			zap.String("key", e.Key),
			zap.Error(e.Err),
		)
	case *Injected:
		l.Logger.Info("injected",
			zap.String("key", e.Key),
			zap.Int("injections", e.Injections),
		)
	case *InjectError:
		l.Logger.Error("injection failed",
			zap.String("key", e.Key),
			zap.Error(e.Err),
		)
	case *Intercepted:
		l.Logger.Info("method intercepted",
			zap.String("type", e.Type),
			zap.String("method", e.Method),
			zap.Int("handlers", e.Handlers),
		)
	case *ChildCreated:
		l.Logger.Info("child container created",
			zap.Int("registrations", e.Registrations),
		)
	case *Validated:
		if e.Err != nil {
			l.Logger.Error("validation failed", zap.Error(e.Err))
		} else {
			l.Logger.Info("validated")
		}
	}
}
