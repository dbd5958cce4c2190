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

package events

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmitOrder(t *testing.T) {
	d := NewDispatcher()
	ctx := context.Background()

	d.On("saved", func(ctx context.Context, payload any) (any, error) {
		return "first", nil
	})
	d.On("saved", func(ctx context.Context, payload any) (any, error) {
		return "second", nil
	})

	results := d.Emit(ctx, "saved", nil)
	assert.Equal(t, []any{"first", "second"}, results)

	// A second emit delivers again: On handlers persist.
	results = d.Emit(ctx, "saved", nil)
	assert.Len(t, results, 2)
}

func TestEmitPayload(t *testing.T) {
	d := NewDispatcher()

	d.On("saved", func(ctx context.Context, payload any) (any, error) {
		return payload.(int) * 2, nil
	})

	results := d.Emit(context.Background(), "saved", 21)
	assert.Equal(t, []any{42}, results)
}

func TestOnce(t *testing.T) {
	d := NewDispatcher()
	ctx := context.Background()

	calls := 0
	d.Once("boot", func(ctx context.Context, payload any) (any, error) {
		calls++
		return nil, nil
	})
	assert.Equal(t, 1, d.ListenerCount("boot"))

	d.Emit(ctx, "boot", nil)
	d.Emit(ctx, "boot", nil)
	assert.Equal(t, 1, calls)
	assert.Equal(t, 0, d.ListenerCount("boot"))
}

func TestOnceRemovedBeforeDelivery(t *testing.T) {
	d := NewDispatcher()
	ctx := context.Background()

	calls := 0
	d.Once("boot", func(ctx context.Context, payload any) (any, error) {
		calls++
		// Re-entrant emit must not see this handler again.
		d.Emit(ctx, "boot", nil)
		return nil, nil
	})

	d.Emit(ctx, "boot", nil)
	assert.Equal(t, 1, calls)
}

func TestOff(t *testing.T) {
	d := NewDispatcher()

	d.On("saved", func(ctx context.Context, payload any) (any, error) { return nil, nil })
	d.On("saved", func(ctx context.Context, payload any) (any, error) { return nil, nil })
	d.Off("saved")

	assert.Equal(t, 0, d.ListenerCount("saved"))
	assert.Empty(t, d.Emit(context.Background(), "saved", nil))
}

func TestHandlerErrorDoesNotStopDelivery(t *testing.T) {
	d := NewDispatcher()

	d.On("saved", func(ctx context.Context, payload any) (any, error) {
		return nil, errors.New("boom")
	})
	d.On("saved", func(ctx context.Context, payload any) (any, error) {
		return "ok", nil
	})

	results := d.Emit(context.Background(), "saved", nil)
	assert.Equal(t, []any{"ok"}, results)
}

func TestEmitWithoutListeners(t *testing.T) {
	d := NewDispatcher()
	assert.Empty(t, d.Emit(context.Background(), "nothing", nil))
}

func TestDefaultDispatcher(t *testing.T) {
	assert.Same(t, Default(), Default())
}
