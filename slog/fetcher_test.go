package slog_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"testing"

	"github.com/fwojciec/docpull"
	"github.com/fwojciec/docpull/mock"
	dpslog "github.com/fwojciec/docpull/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingFetcher_Fetch(t *testing.T) {
	t.Parallel()

	m := &docpull.Manifest{BaseURL: "https://docs.example.com"}
	pageURL := m.ResolveURL("/guide/intro")

	t.Run("logs resolved url and body size", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "<main><h1>Intro</h1></main>", nil
			},
		}

		html, err := dpslog.NewLoggingFetcher(inner, slog.New(slog.NewTextHandler(&buf, nil))).
			Fetch(context.Background(), pageURL)

		require.NoError(t, err)
		assert.Equal(t, "<main><h1>Intro</h1></main>", html)
		output := buf.String()
		assert.Contains(t, output, "level=INFO")
		assert.Contains(t, output, "url=https://docs.example.com/guide/intro")
		assert.Contains(t, output, "bytes=27")
		assert.NotContains(t, output, "err=")
	})

	t.Run("logs status failure at error level", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "", fmt.Errorf("HTTP %d for %s", 404, url)
			},
		}

		_, err := dpslog.NewLoggingFetcher(inner, slog.New(slog.NewTextHandler(&buf, nil))).
			Fetch(context.Background(), pageURL)

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "level=ERROR")
		assert.Contains(t, output, `err="HTTP 404 for https://docs.example.com/guide/intro"`)
		assert.NotContains(t, output, "bytes=")
	})

	t.Run("returns timeout error unchanged", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "", context.DeadlineExceeded
			},
		}

		_, err := dpslog.NewLoggingFetcher(inner, slog.New(slog.NewTextHandler(&buf, nil))).
			Fetch(context.Background(), pageURL)

		require.ErrorIs(t, err, context.DeadlineExceeded)
		assert.Contains(t, buf.String(), `err="context deadline exceeded"`)
	})
}

func TestLoggingFetcher_Close(t *testing.T) {
	t.Parallel()

	inner := &mock.Fetcher{
		CloseFn: func() error {
			return errors.New("already closed")
		},
	}

	err := dpslog.NewLoggingFetcher(inner, slog.New(slog.DiscardHandler)).Close()

	assert.EqualError(t, err, "already closed")
}
