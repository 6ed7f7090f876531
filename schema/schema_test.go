package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeletionOrderCoversEveryTable(t *testing.T) {
	assert.Len(t, DeletionOrder, len(Parents))

	seen := map[Table]bool{}
	for _, table := range DeletionOrder {
		assert.False(t, seen[table], "table %s appears twice", table)
		seen[table] = true

		_, known := Parents[table]
		assert.True(t, known, "table %s missing from Parents", table)
	}
}

func TestChildrenPrecedeParentsInDeletionOrder(t *testing.T) {
	index := map[Table]int{}
	for i, table := range DeletionOrder {
		index[table] = i
	}

	for table, parents := range Parents {
		for _, parent := range parents {
			assert.Greater(t, index[parent], index[table],
				"%s must be deleted before its parent %s", table, parent)
		}
	}
}

func TestCreationOrderIsReverseOfDeletionOrder(t *testing.T) {
	creation := CreationOrder()
	require.Len(t, creation, len(DeletionOrder))
	for i, table := range creation {
		assert.Equal(t, DeletionOrder[len(DeletionOrder)-1-i], table)
	}
}

func TestModelDispatch(t *testing.T) {
	for _, table := range DeletionOrder {
		assert.NotNil(t, table.Model(), "no model for table %s", table)
	}
	assert.Nil(t, Table("no_such_table").Model())
}
