package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/fwojciec/webclip"
	"github.com/fwojciec/webclip/mock"
	webslog "github.com/fwojciec/webclip/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func staticFetcher(html string, err error) *mock.Fetcher {
	return &mock.Fetcher{
		FetchFn: func(_ context.Context, _ string) (string, error) {
			return html, err
		},
		CloseFn: func() error { return nil },
	}
}

func TestLoggingFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("logs the page size at info", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		f := webslog.NewLoggingFetcher(staticFetcher("<p>clip me</p>", nil), slog.New(slog.NewTextHandler(&buf, nil)))

		html, err := f.Fetch(context.Background(), "https://example.com/post")

		require.NoError(t, err)
		assert.Equal(t, "<p>clip me</p>", html)
		out := buf.String()
		assert.Contains(t, out, "level=INFO msg=fetch")
		assert.Contains(t, out, "url=https://example.com/post")
		assert.Contains(t, out, "bytes=14")
		assert.NotContains(t, out, "err=")
	})

	t.Run("logs failures at warn with their code", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		f := webslog.NewLoggingFetcher(
			staticFetcher("", webclip.Errorf(webclip.ENOTFOUND, "page not found")),
			slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn})),
		)

		_, err := f.Fetch(context.Background(), "https://example.com/gone")

		assert.Equal(t, webclip.ENOTFOUND, webclip.ErrorCode(err))
		out := buf.String()
		assert.Contains(t, out, "level=WARN msg=fetch")
		assert.Contains(t, out, "code=not_found")
		assert.Contains(t, out, "message=page not found")
	})
}

func TestLoggingFetcher_Close(t *testing.T) {
	t.Parallel()

	var closed bool
	inner := &mock.Fetcher{
		CloseFn: func() error {
			closed = true
			return nil
		},
	}

	require.NoError(t, webslog.NewLoggingFetcher(inner, slog.Default()).Close())
	assert.True(t, closed)
}
