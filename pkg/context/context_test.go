package context

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequestIDRoundTrip(t *testing.T) {
	ctx := WithRequestID(context.Background(), "req-123")
	assert.Equal(t, "req-123", GetRequestID(ctx))
}

func TestGetRequestIDMissing(t *testing.T) {
	assert.Equal(t, "unknown", GetRequestID(context.Background()))
}

func TestGetRequestIDEmpty(t *testing.T) {
	ctx := WithRequestID(context.Background(), "")
	assert.Equal(t, "unknown", GetRequestID(ctx))
}
