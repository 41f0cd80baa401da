package geo

import (
	"context"
	"errors"
	"testing"

	"github.com/kelvins/geocoder"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stubGeocoder(addresses []geocoder.Address, err error) *GoogleGeocoder {
	return &GoogleGeocoder{reverse: func(geocoder.Location) ([]geocoder.Address, error) {
		return addresses, err
	}}
}

func TestLabel(t *testing.T) {
	tests := []struct {
		name string
		in   geocoder.Address
		want string
	}{
		{"City and country", geocoder.Address{City: "New Delhi", State: "Delhi", Country: "India"}, "New Delhi, India"},
		{"County fallback", geocoder.Address{County: "Kathmandu", Country: "Nepal"}, "Kathmandu, Nepal"},
		{"State only", geocoder.Address{State: "Uttar Pradesh"}, "Uttar Pradesh"},
		{"Formatted address", geocoder.Address{FormattedAddress: " Mid-Atlantic Ridge "}, "Mid-Atlantic Ridge"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, label(tt.in))
		})
	}
}

func TestReverseLabel(t *testing.T) {
	ctx := context.Background()

	g := stubGeocoder([]geocoder.Address{{City: "Paris", Country: "France"}, {City: "ignored"}}, nil)
	got, err := g.ReverseLabel(ctx, 48.85, 2.35)
	require.NoError(t, err)
	assert.Equal(t, "Paris, France", got)

	_, err = stubGeocoder(nil, nil).ReverseLabel(ctx, 0, 0)
	assert.ErrorIs(t, err, ErrNoResult)

	upstream := errors.New("OVER_QUERY_LIMIT")
	_, err = stubGeocoder(nil, upstream).ReverseLabel(ctx, 1, 2)
	assert.ErrorIs(t, err, upstream)

	canceled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = g.ReverseLabel(canceled, 48.85, 2.35)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewGoogleGeocoder(t *testing.T) {
	prev := geocoder.ApiKey
	t.Cleanup(func() { geocoder.ApiKey = prev })

	assert.Nil(t, NewGoogleGeocoder(""))
	assert.Equal(t, prev, geocoder.ApiKey)

	g := NewGoogleGeocoder("maps-key")
	require.NotNil(t, g)
	assert.Equal(t, "maps-key", geocoder.ApiKey)
	assert.NotNil(t, g.reverse)
}
