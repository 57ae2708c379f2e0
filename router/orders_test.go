package router

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cloudkitchen/cloudkitchen/model"
)

func TestPostOrderRequest_Validate(t *testing.T) {
	t.Parallel()

	items := model.OrderItems{{ID: "f1", Name: "Margherita", Price: 12.5, Quantity: 1}}

	cases := []struct {
		name    string
		req     PostOrderRequest
		wantErr bool
	}{
		{"ok", PostOrderRequest{UserID: "guest_g1", Items: items, Total: 12.5}, false},
		{"empty user", PostOrderRequest{Items: items, Total: 12.5}, true},
		{"no items", PostOrderRequest{UserID: "guest_g1", Total: 12.5}, true},
		{"negative total", PostOrderRequest{UserID: "guest_g1", Items: items, Total: -1}, true},
	}
	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()
			if c.wantErr {
				assert.Error(t, c.req.Validate())
			} else {
				assert.NoError(t, c.req.Validate())
			}
		})
	}
}

func TestPatchOrderStatusRequest_Validate(t *testing.T) {
	t.Parallel()

	assert.NoError(t, PatchOrderStatusRequest{Status: model.OrderStatusAccepted}.Validate())
	assert.Error(t, PatchOrderStatusRequest{}.Validate())
	assert.Error(t, PatchOrderStatusRequest{Status: "unknown"}.Validate())
}
