package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBucketExhaustion(t *testing.T) {
	tb := NewTokenBucket(2, 1, time.Minute)

	ok, _ := tb.Allow()
	assert.True(t, ok)
	ok, _ = tb.Allow()
	assert.True(t, ok)

	ok, wait := tb.Allow()
	assert.False(t, ok)
	assert.Greater(t, wait, time.Duration(0))
}

func TestBucketsArePerUserAndAction(t *testing.T) {
	rl := NewRateLimiter()

	for i := 0; i < 5; i++ {
		ok, _ := rl.Allow("comp-1", "submit_bid")
		assert.True(t, ok)
	}
	ok, _ := rl.Allow("comp-1", "submit_bid")
	assert.False(t, ok)

	// other users and other actions have their own buckets
	ok, _ = rl.Allow("comp-2", "submit_bid")
	assert.True(t, ok)
	ok, _ = rl.Allow("comp-1", "send_message")
	assert.True(t, ok)
}

func TestGetStatusReportsRemainingTokens(t *testing.T) {
	rl := NewRateLimiter()

	tokens, maxTokens := rl.GetStatus("work-1", "send_message")
	assert.Zero(t, tokens)
	assert.Zero(t, maxTokens)

	rl.Allow("work-1", "send_message")
	tokens, maxTokens = rl.GetStatus("work-1", "send_message")
	assert.Equal(t, 9, tokens)
	assert.Equal(t, 10, maxTokens)
}
