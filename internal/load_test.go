package internal

import (
	"context"
	"testing"
	"time"

	"github.com/fullstorydev/grpchan/inprocgrpc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/echostream/grpcecho"
)

func TestSendLoad(t *testing.T) {
	var ch inprocgrpc.Channel
	grpcecho.NewEchoServiceHandler().RegisterWith(&ch)
	client := grpcecho.NewClient(&ch)

	stats, err := SendLoad(context.Background(), client, LoadOptions{
		Workers:        2,
		Duration:       100 * time.Millisecond,
		StreamMessages: 2,
	})
	require.NoError(t, err)
	assert.Positive(t, stats.UnaryCalls)
	assert.Positive(t, stats.StreamCalls)
	// each stream gets one response per request plus the trailing one
	assert.Equal(t, stats.UnaryCalls+3*stats.StreamCalls, stats.Responses)
}

func TestSendLoadFails(t *testing.T) {
	var ch inprocgrpc.Channel
	grpcecho.NewEchoServiceHandler(grpcecho.WithErrorDetails(true)).RegisterWith(&ch)
	client := grpcecho.NewClient(&ch)

	_, err := SendLoad(context.Background(), client, LoadOptions{
		Duration:       time.Minute,
		StreamMessages: 1,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load run failed")
}
