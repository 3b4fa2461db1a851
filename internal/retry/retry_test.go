package retry

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTimes_StopsOnFirstSuccess(t *testing.T) {
	t.Parallel()

	// arrange
	calls := 0
	f := func() error {
		calls++
		if calls < 3 {
			return errors.New("not yet")
		}
		return nil
	}

	// act
	err := Times(5, 0, f, "probing")

	// assert
	require.NoError(t, err)
	require.Equal(t, 3, calls)
}

func TestTimes_ReturnsLastError(t *testing.T) {
	t.Parallel()

	// arrange
	sentinel := errors.New("unreachable")
	calls := 0
	f := func() error {
		calls++
		return sentinel
	}

	// act
	err := Times(2, 0, f, "probing")

	// assert
	require.ErrorIs(t, err, sentinel)
	require.Equal(t, 2, calls)
}
