package translateController

import (
	"context"
	"errors"
	"fmt"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
)

type timeoutNetError struct{}

func (timeoutNetError) Error() string   { return "i/o timeout" }
func (timeoutNetError) Timeout() bool   { return true }
func (timeoutNetError) Temporary() bool { return true }

func TestIsTimeoutError(t *testing.T) {
	assert.True(t, isTimeoutError(context.DeadlineExceeded))
	assert.True(t, isTimeoutError(fmt.Errorf("request failed: %w", context.DeadlineExceeded)))
	assert.True(t, isTimeoutError(&net.OpError{Op: "dial", Err: timeoutNetError{}}))

	assert.False(t, isTimeoutError(errors.New("connection refused")))
	assert.False(t, isTimeoutError(&net.OpError{Op: "dial", Err: errors.New("no route to host")}))
	assert.False(t, isTimeoutError(context.Canceled))
}
