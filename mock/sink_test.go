package mock_test

import (
	"context"
	"testing"

	"github.com/fwojciec/webclip"
	"github.com/fwojciec/webclip/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSink_ImplementsInterface(t *testing.T) {
	t.Parallel()

	// Verify mock can be used where Sink is expected
	var _ webclip.Sink = &mock.Sink{}
}

func TestSink_Deliver(t *testing.T) {
	t.Parallel()

	t.Run("delegates to DeliverFn", func(t *testing.T) {
		t.Parallel()

		var calledWith *webclip.Result
		s := &mock.Sink{
			DeliverFn: func(_ context.Context, result *webclip.Result) error {
				calledWith = result
				return nil
			},
			NameFn: func() string { return "test" },
		}

		result := &webclip.Result{
			Title:    "Test Doc",
			Markdown: "---\ntitle: Test Doc\n---\n\nBody",
		}

		err := s.Deliver(context.Background(), result)

		require.NoError(t, err)
		assert.Equal(t, result, calledWith)
		assert.Equal(t, "test", s.Name())
	})
}
