package participant_test

import (
	"testing"

	"parcelmarket/internal/core/domain/model/kernel"
	"parcelmarket/internal/core/domain/model/participant"
	"parcelmarket/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewParticipant(t *testing.T) {
	t.Run("should create a participant", func(t *testing.T) {
		p, err := participant.NewParticipant(kernel.NewUUID(), "Amira Haddad", participant.RoleClient)

		require.NoError(t, err)
		require.NoError(t, p.Validate())
		assert.Equal(t, "Amira Haddad", p.Name())
		assert.False(t, p.CanAdministrate())
	})

	t.Run("should fail with empty name", func(t *testing.T) {
		_, err := participant.NewParticipant(kernel.NewUUID(), "", participant.RoleClient)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail with unknown role", func(t *testing.T) {
		_, err := participant.NewParticipant(kernel.NewUUID(), "Amira Haddad", participant.RoleUnknown)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should grant administration to admins only", func(t *testing.T) {
		admin, err := participant.NewParticipant(kernel.NewUUID(), "ops", participant.RoleAdmin)
		require.NoError(t, err)

		assert.True(t, admin.CanAdministrate())
	})
}

func TestRoleFromString(t *testing.T) {
	t.Run("should round-trip every role", func(t *testing.T) {
		for _, r := range []participant.Role{participant.RoleClient, participant.RoleTraveler, participant.RoleAdmin} {
			parsed, err := participant.RoleFromString(r.String())
			require.NoError(t, err)
			assert.Equal(t, r, parsed)
		}
	})

	t.Run("should reject garbage", func(t *testing.T) {
		_, err := participant.RoleFromString("COURIER")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
