//go:build unit
// +build unit

package eventbus

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wesrioswart/nervecontract/internal/pkg/testutil"
)

func TestBus_Emit_RegistrationOrder(t *testing.T) {
	bus := NewBus(testutil.SetupTestLogger(t))

	var calls []string
	for i := 0; i < 3; i++ {
		i := i
		bus.Register(EventEarlyWarningRaised, func(ctx context.Context, payload interface{}) error {
			calls = append(calls, fmt.Sprintf("handler-%d", i))
			return nil
		})
	}

	bus.Emit(context.Background(), EventEarlyWarningRaised, nil)

	require.Equal(t, []string{"handler-0", "handler-1", "handler-2"}, calls)
}

func TestBus_Emit_HandlerErrorDoesNotStopOthers(t *testing.T) {
	bus := NewBus(testutil.SetupTestLogger(t))

	var secondCalled bool
	bus.Register(EventEmailClassified, func(ctx context.Context, payload interface{}) error {
		return fmt.Errorf("boom")
	})
	bus.Register(EventEmailClassified, func(ctx context.Context, payload interface{}) error {
		secondCalled = true
		return nil
	})

	bus.Emit(context.Background(), EventEmailClassified, nil)

	assert.True(t, secondCalled, "second handler should run despite first handler error")
}

func TestBus_Emit_HandlerPanicIsRecovered(t *testing.T) {
	bus := NewBus(testutil.SetupTestLogger(t))

	var secondCalled bool
	bus.Register(EventCompensationEventRaised, func(ctx context.Context, payload interface{}) error {
		panic("handler exploded")
	})
	bus.Register(EventCompensationEventRaised, func(ctx context.Context, payload interface{}) error {
		secondCalled = true
		return nil
	})

	assert.NotPanics(t, func() {
		bus.Emit(context.Background(), EventCompensationEventRaised, nil)
	})
	assert.True(t, secondCalled)
}

func TestBus_Emit_NoHandlers(t *testing.T) {
	bus := NewBus(testutil.SetupTestLogger(t))

	assert.NotPanics(t, func() {
		bus.Emit(context.Background(), EventNotificationCreated, nil)
	})
}

func TestBus_Emit_HandlerMayEmitFollowUp(t *testing.T) {
	bus := NewBus(testutil.SetupTestLogger(t))

	var followUpSeen bool
	bus.Register(EventNotificationCreated, func(ctx context.Context, payload interface{}) error {
		followUpSeen = true
		return nil
	})
	bus.Register(EventEarlyWarningRaised, func(ctx context.Context, payload interface{}) error {
		bus.Emit(ctx, EventNotificationCreated, nil)
		return nil
	})

	bus.Emit(context.Background(), EventEarlyWarningRaised, nil)

	assert.True(t, followUpSeen, "follow-up event emitted from a handler should be dispatched")
}

func TestBus_Register_NilHandlerIgnored(t *testing.T) {
	bus := NewBus(testutil.SetupTestLogger(t))

	bus.Register(EventEmailClassified, nil)

	assert.Equal(t, 0, bus.HandlerCount(EventEmailClassified))
}

func TestBus_HandlerCount(t *testing.T) {
	bus := NewBus(testutil.SetupTestLogger(t))

	bus.Register(EventEmailClassified, func(ctx context.Context, payload interface{}) error { return nil })
	bus.Register(EventEmailClassified, func(ctx context.Context, payload interface{}) error { return nil })

	assert.Equal(t, 2, bus.HandlerCount(EventEmailClassified))
	assert.Equal(t, 0, bus.HandlerCount(EventEarlyWarningRaised))
}
