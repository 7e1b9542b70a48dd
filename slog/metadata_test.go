package slog_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/fwojciec/webclip"
	"github.com/fwojciec/webclip/mock"
	webslog "github.com/fwojciec/webclip/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingMetadataFetcher_FetchMetadata(t *testing.T) {
	t.Parallel()

	t.Run("logs found fields", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.MetadataFetcher{
			FetchMetadataFn: func(_ context.Context, _ string) (*webclip.Metadata, error) {
				return &webclip.Metadata{Author: "Rob", Keywords: "go"}, nil
			},
		}

		f := webslog.NewLoggingMetadataFetcher(inner, debugLogger(&buf))
		meta, err := f.FetchMetadata(context.Background(), "https://example.com/a")

		require.NoError(t, err)
		assert.Equal(t, "Rob", meta.Author)
		output := buf.String()
		assert.Contains(t, output, `msg="fetch metadata"`)
		assert.Contains(t, output, "found=\"[author keywords]\"")
	})

	t.Run("logs failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.MetadataFetcher{
			FetchMetadataFn: func(_ context.Context, _ string) (*webclip.Metadata, error) {
				return nil, webclip.Errorf(webclip.EMETADATA, "timeout")
			},
		}

		f := webslog.NewLoggingMetadataFetcher(inner, debugLogger(&buf))
		_, err := f.FetchMetadata(context.Background(), "https://example.com/a")

		require.Error(t, err)
		assert.Contains(t, buf.String(), "metadata_fetch_failed")
	})
}
