package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestRecordEvaluation(t *testing.T) {
	// arrange
	Init()
	Init()
	before := testutil.ToFloat64(PasswordEvaluations.WithLabelValues("Strong", "true"))

	// act
	RecordEvaluation("Strong", true)

	// assert
	after := testutil.ToFloat64(PasswordEvaluations.WithLabelValues("Strong", "true"))
	require.InDelta(t, before+1, after, 0.0001)
}
