// Copyright 2021 The httpx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnlimited_NeverBlocks(t *testing.T) {
	ctx := context.Background()
	require.NoError(t, Unlimited.Wait(ctx))
}

func TestUnlimited_RespectsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.Error(t, Unlimited.Wait(ctx))
}

func TestTokenBucket_AllowsBurst(t *testing.T) {
	tb := NewTokenBucket(1, 3)
	ctx := context.Background()
	for i := 0; i < 3; i++ {
		require.NoError(t, tb.Wait(ctx))
	}
}

func TestTokenBucket_BlocksBeyondBurst(t *testing.T) {
	tb := NewTokenBucket(1, 1)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	require.NoError(t, tb.Wait(context.Background()))
	err := tb.Wait(ctx)
	assert.Error(t, err)
}

func TestTokenBucket_SetRate(t *testing.T) {
	tb := NewTokenBucket(1, 1)
	tb.SetRate(1000)
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	require.NoError(t, tb.Wait(context.Background()))
	require.NoError(t, tb.Wait(ctx))
}
