package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderStatus_Valid(t *testing.T) {
	t.Parallel()

	for _, s := range []OrderStatus{
		OrderStatusPending,
		OrderStatusAccepted,
		OrderStatusPreparing,
		OrderStatusReady,
		OrderStatusOutForDelivery,
		OrderStatusCompleted,
		OrderStatusCancelled,
	} {
		assert.True(t, s.Valid(), string(s))
	}

	for _, s := range []OrderStatus{"", "unknown", "PENDING", "done"} {
		assert.False(t, s.Valid(), string(s))
	}
}
