package router

import (
	"strings"
	"testing"

	"github.com/guregu/null"
	"github.com/stretchr/testify/assert"
)

func TestPostFoodRequest_Validate(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		req     PostFoodRequest
		wantErr bool
	}{
		{"ok", PostFoodRequest{Name: "Margherita", Price: 12.5}, false},
		{"empty name", PostFoodRequest{Price: 12.5}, true},
		{"negative price", PostFoodRequest{Name: "Margherita", Price: -1}, true},
		{"zero price", PostFoodRequest{Name: "Free Sample"}, false},
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

func TestPutFoodRequest_Validate(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		req     PutFoodRequest
		wantErr bool
	}{
		{"empty", PutFoodRequest{}, false},
		{"ok", PutFoodRequest{Name: null.StringFrom("Margherita"), Price: null.FloatFrom(9.0)}, false},
		{"long name", PutFoodRequest{Name: null.StringFrom(strings.Repeat("a", 101))}, true},
		{"negative price", PutFoodRequest{Price: null.FloatFrom(-0.5)}, true},
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
