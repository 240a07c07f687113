package github_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/forgeapi-io/gh3/pkg/github"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingLogger struct {
	entries []string
}

func (l *recordingLogger) Debug(msg string, _ map[string]interface{}) {
	l.entries = append(l.entries, "debug:"+msg)
}

func (l *recordingLogger) Info(msg string, _ map[string]interface{}) {
	l.entries = append(l.entries, "info:"+msg)
}

func (l *recordingLogger) Warn(msg string, _ map[string]interface{}) {
	l.entries = append(l.entries, "warn:"+msg)
}

func (l *recordingLogger) Error(msg string, _ map[string]interface{}) {
	l.entries = append(l.entries, "error:"+msg)
}

func TestInterceptorChain_Order(t *testing.T) {
	t.Parallel()

	var order []string

	chain := github.NewInterceptorChain()
	chain.AddRequestInterceptor(func(ctx context.Context, req *github.Request) error {
		order = append(order, "first")

		return nil
	})
	chain.AddRequestInterceptor(func(ctx context.Context, req *github.Request) error {
		order = append(order, "second")

		return nil
	})

	req := &github.Request{Method: "GET", Path: "/user", Headers: http.Header{}}

	err := chain.ExecuteRequestInterceptors(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, []string{"first", "second"}, order)
}

func TestInterceptorChain_StopsOnError(t *testing.T) {
	t.Parallel()

	errBlocked := errors.New("blocked")

	var reached bool

	chain := github.NewInterceptorChain()
	chain.AddRequestInterceptor(func(ctx context.Context, req *github.Request) error {
		return errBlocked
	})
	chain.AddRequestInterceptor(func(ctx context.Context, req *github.Request) error {
		reached = true

		return nil
	})

	req := &github.Request{Method: "GET", Path: "/user", Headers: http.Header{}}

	err := chain.ExecuteRequestInterceptors(context.Background(), req)
	require.ErrorIs(t, err, errBlocked)
	assert.False(t, reached)
}

func TestLoggingInterceptors(t *testing.T) {
	t.Parallel()

	logger := &recordingLogger{}
	req := &github.Request{Method: "GET", Path: "/user", Headers: http.Header{}}

	err := github.LoggingInterceptor(logger)(context.Background(), req)
	require.NoError(t, err)

	resp := &github.Response{StatusCode: 200}
	err = github.LoggingResponseInterceptor(logger)(context.Background(), req, resp)
	require.NoError(t, err)

	failed := &github.Response{StatusCode: 500, Error: errors.New("boom")}
	err = github.LoggingResponseInterceptor(logger)(context.Background(), req, failed)
	require.NoError(t, err)

	assert.Equal(t, []string{"debug:API Request", "debug:API Response", "error:API Response Error"}, logger.entries)
}

func TestThrottleInterceptor(t *testing.T) {
	t.Parallel()

	throttle := github.ThrottleInterceptor(context.Background(), 2)
	req := &github.Request{Method: "GET", Path: "/user", Headers: http.Header{}}

	// The bucket starts full, so the first calls pass immediately
	require.NoError(t, throttle(context.Background(), req))
	require.NoError(t, throttle(context.Background(), req))

	// With the bucket drained, a canceled context aborts the wait
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	err := throttle(ctx, req)
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestThrottleInterceptor_RefillStopsAfterCancel(t *testing.T) {
	t.Parallel()

	req := &github.Request{Method: "GET", Path: "/user", Headers: http.Header{}}

	t.Run("live context keeps refilling", func(t *testing.T) {
		t.Parallel()

		lifecycle, stop := context.WithCancel(context.Background())
		defer stop()

		throttle := github.ThrottleInterceptor(lifecycle, 50)

		// Drain the initial tokens, then a short wait is refilled
		for i := 0; i < 50; i++ {
			require.NoError(t, throttle(context.Background(), req))
		}

		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()

		require.NoError(t, throttle(ctx, req))
	})

	t.Run("canceled context stops refills", func(t *testing.T) {
		t.Parallel()

		lifecycle, stop := context.WithCancel(context.Background())
		stop()

		throttle := github.ThrottleInterceptor(lifecycle, 50)

		// The initial tokens are still there, but nothing refills them
		for i := 0; i < 50; i++ {
			require.NoError(t, throttle(context.Background(), req))
		}

		ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
		defer cancel()

		err := throttle(ctx, req)
		require.ErrorIs(t, err, context.DeadlineExceeded)
	})
}
