package queries_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cmdrwatch/cmdrwatch/internal/application/tracking/queries"
)

func TestAssessBounty(t *testing.T) {
	handler := queries.NewAssessBountyHandler(10000)

	assessment, err := handler.Handle(context.Background(), &queries.AssessBountyQuery{Value: 9999})
	require.NoError(t, err)
	assert.Equal(t, "10.0 k", assessment.Label)
	assert.False(t, assessment.Significant)

	assessment, err = handler.Handle(context.Background(), &queries.AssessBountyQuery{Value: 10000})
	require.NoError(t, err)
	assert.Equal(t, "10 k", assessment.Label)
	assert.True(t, assessment.Significant)

	assessment, err = handler.Handle(context.Background(), &queries.AssessBountyQuery{Value: 1000000})
	require.NoError(t, err)
	assert.Equal(t, "1.0 m", assessment.Label)
	assert.True(t, assessment.Significant)

	_, err = handler.Handle(context.Background(), &queries.AssessBountyQuery{Value: -1})
	assert.Error(t, err)
}
