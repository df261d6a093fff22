package app

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettle3_ReportsEachOutcome(t *testing.T) {
	boom := errors.New("boom")

	o1, o2, o3 := Settle3(context.Background(),
		func(context.Context) (int, error) { return 1, nil },
		func(context.Context) (string, error) { return "", boom },
		func(ctx context.Context) (bool, error) { return ctx.Err() == nil, nil },
	)

	require.NoError(t, o1.Err)
	assert.Equal(t, 1, o1.Value)
	require.ErrorIs(t, o2.Err, boom)
	require.NoError(t, o3.Err)
	assert.True(t, o3.Value, "a failure does not cancel the other calls")
}
