package mcp

import (
	"context"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/feedme/internal/core/services"
)

func TestNewServer(t *testing.T) {
	t.Run("nil quantity service returns error", func(t *testing.T) {
		server, err := NewServer(&Ports{})
		require.Error(t, err)
		assert.Nil(t, server)
		assert.ErrorIs(t, err, ErrMissingQuantityService)
	})

	t.Run("valid ports creates server", func(t *testing.T) {
		server, err := NewServer(&Ports{Quantity: services.NewQuantityService(nil)})
		require.NoError(t, err)
		assert.NotNil(t, server)
	})
}

func TestPorts_Validate(t *testing.T) {
	t.Run("quantity only is valid", func(t *testing.T) {
		ports := &Ports{Quantity: services.NewQuantityService(nil)}
		assert.NoError(t, ports.Validate())
	})

	t.Run("all ports is valid", func(t *testing.T) {
		ports := &Ports{
			Quantity: services.NewQuantityService(nil),
			Grocery:  &mockGroceryService{},
			Recipe:   &mockRecipeService{},
		}
		assert.NoError(t, ports.Validate())
	})
}

// newTestServer builds a server with real quantity and grocery services.
func newTestServer(t *testing.T, recipes *mockRecipeService) *Server {
	t.Helper()
	ports := &Ports{
		Quantity: services.NewQuantityService(nil),
		Grocery:  services.NewGroceryService(nil, nil, nil),
	}
	if recipes != nil {
		ports.Recipe = recipes
	}
	server, err := NewServer(ports)
	require.NoError(t, err)
	return server
}

func TestServer_RunHTTP_StopsOnCancel(t *testing.T) {
	server, err := NewServer(&Ports{Quantity: services.NewQuantityService(nil)})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.NoError(t, server.RunHTTP(ctx, "127.0.0.1:0"))
}

func TestServer_RunHTTP_AddressInUse(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	server, err := NewServer(&Ports{Quantity: services.NewQuantityService(nil)})
	require.NoError(t, err)

	err = server.RunHTTP(context.Background(), ln.Addr().String())
	assert.Error(t, err)
}
