package ir

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// ==============================================================================
// Signal / Presence stringers
// ==============================================================================

func TestSignal_String(t *testing.T) {
	require.Equal(t, "BeginMessage", SignalBeginMessage.String())
	require.Equal(t, "EndVarData", SignalEndVarData.String())
	require.Equal(t, "Unknown", Signal(255).String())
}

func TestPresence_String(t *testing.T) {
	require.Equal(t, "required", PresenceRequired.String())
	require.Equal(t, "optional", PresenceOptional.String())
	require.Equal(t, "constant", PresenceConstant.String())
}

func TestVarLengthSentinel_IsNegativeOne(t *testing.T) {
	require.Equal(t, -1, VarLengthSentinel)
}
