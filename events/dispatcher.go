/*
 * Copyright 2026 the bedrock authors.
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package events provides a minimal in-process event dispatcher. Handlers
// run synchronously in registration order; a failing handler does not stop
// delivery to the rest.
package events

import (
	"context"
	"sync"

	"bedrock/utils"
)

// Handler processes one delivered event. The returned value is collected by
// Emit; errors are logged and skipped.
type Handler func(ctx context.Context, payload any) (any, error)

type listener struct {
	handler Handler
	once    bool
}

// Dispatcher routes named events to registered handlers. Safe for
// concurrent use.
type Dispatcher struct {
	mu        sync.Mutex
	listeners map[string][]*listener
	logger    *utils.Logger
}

// NewDispatcher returns an empty dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[string][]*listener),
		logger:    utils.NewLogger("EVENTS"),
	}
}

// On registers a handler for every delivery of the event.
func (d *Dispatcher) On(event string, handler Handler) {
	d.add(event, handler, false)
}

// Once registers a handler delivered at most one time. The handler is
// removed before it runs, so re-entrant emits cannot trigger it twice.
func (d *Dispatcher) Once(event string, handler Handler) {
	d.add(event, handler, true)
}

func (d *Dispatcher) add(event string, handler Handler, once bool) {
	if handler == nil {
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.listeners[event] = append(d.listeners[event], &listener{handler: handler, once: once})
}

// Off removes every handler registered for the event.
func (d *Dispatcher) Off(event string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.listeners, event)
}

// ListenerCount returns the number of handlers currently registered for the
// event.
func (d *Dispatcher) ListenerCount(event string) int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.listeners[event])
}

// Emit delivers payload to the event's handlers in registration order and
// returns their results. Handler errors are logged, their results dropped,
// and delivery continues.
func (d *Dispatcher) Emit(ctx context.Context, event string, payload any) []any {
	d.mu.Lock()
	registered := d.listeners[event]
	toRun := make([]*listener, len(registered))
	copy(toRun, registered)

	remaining := registered[:0:0]
	for _, l := range registered {
		if !l.once {
			remaining = append(remaining, l)
		}
	}
	if len(remaining) == 0 {
		delete(d.listeners, event)
	} else {
		d.listeners[event] = remaining
	}
	d.mu.Unlock()

	results := make([]any, 0, len(toRun))
	for _, l := range toRun {
		result, err := l.handler(ctx, payload)
		if err != nil {
			d.logger.Warnf("event handler failed: event=%s error=%v", event, err)
			continue
		}
		results = append(results, result)
	}
	return results
}

var (
	defaultDispatcher     *Dispatcher
	defaultDispatcherOnce sync.Once
)

// Default returns the process-wide dispatcher.
func Default() *Dispatcher {
	defaultDispatcherOnce.Do(func() {
		defaultDispatcher = NewDispatcher()
	})
	return defaultDispatcher
}
