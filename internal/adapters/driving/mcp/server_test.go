package mcp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServer(t *testing.T) {
	t.Run("nil interpreter returns error", func(t *testing.T) {
		server, err := NewServer(&Ports{NewConsole: newByteConsole})
		require.Error(t, err)
		assert.Nil(t, server)
		assert.ErrorIs(t, err, ErrMissingInterpreterService)
	})

	t.Run("nil console factory returns error", func(t *testing.T) {
		server, err := NewServer(&Ports{Interpreter: &mockInterpreter{}})
		require.Error(t, err)
		assert.Nil(t, server)
		assert.ErrorIs(t, err, ErrMissingConsoleFactory)
	})

	t.Run("valid ports creates server", func(t *testing.T) {
		server, err := NewServer(validPorts(&mockInterpreter{}))
		require.NoError(t, err)
		assert.NotNil(t, server)
	})

	t.Run("history port registers resources", func(t *testing.T) {
		ports := validPorts(&mockInterpreter{})
		ports.History = &mockHistory{}
		server, err := NewServer(ports)
		require.NoError(t, err)
		assert.NotNil(t, server)
	})
}

func TestPorts_Validate(t *testing.T) {
	t.Run("empty ports", func(t *testing.T) {
		ports := &Ports{}
		assert.ErrorIs(t, ports.Validate(), ErrMissingInterpreterService)
	})

	t.Run("required ports only", func(t *testing.T) {
		assert.NoError(t, validPorts(&mockInterpreter{}).Validate())
	})

	t.Run("all ports", func(t *testing.T) {
		ports := validPorts(&mockInterpreter{})
		ports.History = &mockHistory{}
		assert.NoError(t, ports.Validate())
	})
}
