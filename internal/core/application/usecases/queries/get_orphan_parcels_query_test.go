package queries

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetOrphanParcelsQuery(t *testing.T) {
	t.Run("should be constructed without parameters", func(t *testing.T) {
		query := NewGetOrphanParcelsQuery()

		assert.NoError(t, query.Validate())
	})

	t.Run("should reject zero value query", func(t *testing.T) {
		var query GetOrphanParcelsQuery

		assert.ErrorIs(t, query.Validate(), ErrGetOrphanParcelsQueryIsNotConstructed)
	})
}
