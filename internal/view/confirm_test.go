// ABOUTME: Tests for the confirmation modal
// ABOUTME: Covers accept, decline, and out-of-order requests

package view

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConfirmation_Accept(t *testing.T) {
	var c Confirmation
	require.NoError(t, c.Request(DeleteIntent{ID: "x"}))

	pending, ok := c.Pending()
	require.True(t, ok)
	require.Equal(t, DeleteIntent{ID: "x"}, pending)
	require.Equal(t, "Are you sure you want to delete this workout?", c.Prompt())

	action, err := c.Resolve(true)
	require.NoError(t, err)
	require.Equal(t, DeleteIntent{ID: "x"}, action)

	_, ok = c.Pending()
	require.False(t, ok)
}

func TestConfirmation_Decline(t *testing.T) {
	var c Confirmation
	require.NoError(t, c.Request(DeleteAllIntent{}))
	require.Contains(t, c.Prompt(), "all of your workouts")

	action, err := c.Resolve(false)
	require.NoError(t, err)
	require.Nil(t, action)

	_, ok := c.Pending()
	require.False(t, ok)
}

func TestConfirmation_Misuse(t *testing.T) {
	var c Confirmation

	_, err := c.Resolve(true)
	require.ErrorIs(t, err, ErrNoPendingConfirmation)

	require.NoError(t, c.Request(DeleteIntent{ID: "a"}))
	require.ErrorIs(t, c.Request(DeleteIntent{ID: "b"}), ErrConfirmationPending)

	pending, _ := c.Pending()
	require.Equal(t, DeleteIntent{ID: "a"}, pending)
}
