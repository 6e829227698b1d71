package jail

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Attach on a live handle is irreversible for the calling process, so the
// success path is only exercised from child processes; see the jailexec
// package tests.

func TestAttachInvalidHandlePanics(t *testing.T) {
	assert.Panics(t, func() { _ = Jail{}.Attach() })
	assert.Panics(t, func() { _ = Jail{JID: -3}.Attach() })
}

func TestAttachDeadJail(t *testing.T) {
	before, err := Jailed()
	require.NoError(t, err)

	// a jid beyond anything live: attach must fail cleanly, not panic
	err = Jail{JID: 1 << 20}.Attach()
	require.Error(t, err)
	var ae *AttachError
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, 1<<20, ae.JID)

	after, err := Jailed()
	require.NoError(t, err)
	assert.Equal(t, before, after, "failed attach must not change our membership")
}
