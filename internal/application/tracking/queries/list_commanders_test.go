package queries_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cmdrwatch/cmdrwatch/internal/application/tracking/queries"
	"github.com/cmdrwatch/cmdrwatch/internal/domain/commander"
	"github.com/cmdrwatch/cmdrwatch/test/helpers"
)

func TestListCommanders_SortedByName(t *testing.T) {
	// Arrange
	repo := helpers.NewMockCommanderRepository()
	ctx := context.Background()

	zoe := commander.NewCommander("Zoe")
	zoe.SetShip("python")
	require.NoError(t, repo.Save(ctx, zoe))
	require.NoError(t, repo.Save(ctx, commander.NewCommander("Jameson")))

	handler := queries.NewListCommandersHandler(repo)

	// Act
	statuses, err := handler.Handle(ctx, &queries.ListCommandersQuery{})

	// Assert
	require.NoError(t, err)
	require.Len(t, statuses, 2)
	assert.Equal(t, "Jameson", statuses[0].Name)
	assert.Equal(t, "Zoe", statuses[1].Name)
	assert.Equal(t, "Unknown", statuses[0].Ship)
	assert.Equal(t, "Python", statuses[1].Ship)
}

func TestListCommanders_Empty(t *testing.T) {
	repo := helpers.NewMockCommanderRepository()
	handler := queries.NewListCommandersHandler(repo)

	statuses, err := handler.Handle(context.Background(), &queries.ListCommandersQuery{})

	require.NoError(t, err)
	assert.Empty(t, statuses)
}
