package protocol_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/axwm/axwm/internal/layout"
	"github.com/axwm/axwm/pkg/protocol"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	msg := protocol.SocketMessage{Kind: protocol.KindFocusWindow, Direction: layout.Right}
	raw, err := msg.Encode()
	require.NoError(t, err)

	got, err := protocol.Decode(raw)
	require.NoError(t, err)
	assert.Equal(t, msg, got)
}

func TestDecodeRejectsMissingType(t *testing.T) {
	_, err := protocol.Decode([]byte(`{"direction":1}`))
	assert.Error(t, err)
}

func TestDecodeRejectsMalformedJSON(t *testing.T) {
	_, err := protocol.Decode([]byte(`not json`))
	assert.Error(t, err)
}

func TestStateIsTheOnlyQuery(t *testing.T) {
	assert.True(t, protocol.SocketMessage{Kind: protocol.KindState}.IsQuery())
	assert.False(t, protocol.SocketMessage{Kind: protocol.KindTogglePause}.IsQuery())
}

func TestChangeLayoutRoundTrip(t *testing.T) {
	msg := protocol.SocketMessage{Kind: protocol.KindChangeLayout, Layout: layout.BSP}
	raw, err := msg.Encode()
	require.NoError(t, err)

	got, err := protocol.Decode(raw)
	require.NoError(t, err)
	assert.Equal(t, layout.BSP, got.Layout)
}
