package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitTracerDisabled(t *testing.T) {
	shutdown, err := InitTracer(context.Background(), "jobstats-test", "")
	require.NoError(t, err)
	require.NotNil(t, shutdown)
	assert.NoError(t, shutdown(context.Background()))

	_, span := GetTracer("jobstats/test").Start(context.Background(), "noop")
	defer span.End()
	assert.False(t, span.SpanContext().IsValid())
}

func TestAttributeHelpers(t *testing.T) {
	assert.Equal(t, "salary.count", string(Int("salary.count", 3).Key))
	assert.Equal(t, int64(3), Int("salary.count", 3).Value.AsInt64())
	assert.Equal(t, "jobs_data.csv", String("file", "jobs_data.csv").Value.AsString())
	assert.Equal(t, 105.0, Float64("salary.mean", 105).Value.AsFloat64())
}
