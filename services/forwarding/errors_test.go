package forwarding

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestForwardErrorClassification(t *testing.T) {
	cause := errors.New("deadline exceeded")
	failed := NewForwardingFailedError(StagePrimaryWritten, cause)
	wrapped := fmt.Errorf("handler: %w", failed)

	assert.True(t, IsForwardingFailed(wrapped))
	assert.False(t, IsUnauthenticated(wrapped))
	assert.ErrorIs(t, wrapped, cause)
	assert.Contains(t, failed.Error(), "deadline exceeded")

	unauth := NewUnauthenticatedError()
	assert.True(t, IsUnauthenticated(unauth))
	assert.Equal(t, "unauthenticated: "+MessageUnauthenticated, unauth.Error())

	assert.False(t, IsForwardingFailed(cause))
	assert.False(t, IsUnauthenticated(nil))
}
