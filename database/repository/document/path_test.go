package documentRepo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitCollectionPath(t *testing.T) {
	tests := []struct {
		path    string
		want    []string
		wantErr bool
	}{
		{path: "bookings", want: []string{"bookings"}},
		{path: "users/u123/orders", want: []string{"users", "u123", "orders"}},
		{path: "/users/u123/orders/", want: []string{"users", "u123", "orders"}},
		{path: "users/u123", wantErr: true},
		{path: "users//orders", wantErr: true},
		{path: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := splitCollectionPath(tt.path)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidCollectionPath)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFlatCollectionName(t *testing.T) {
	name, err := flatCollectionName("users/u123/orders")
	require.NoError(t, err)
	assert.Equal(t, "users.u123.orders", name)

	_, err = flatCollectionName("users/u123")
	assert.ErrorIs(t, err, ErrInvalidCollectionPath)
}
