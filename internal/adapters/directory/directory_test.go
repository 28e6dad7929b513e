package directory

import (
	"testing"

	"github.com/nileshvk/adhikar/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLawyersDatasetParses(t *testing.T) {
	t.Parallel()

	lawyers, err := Lawyers()
	require.NoError(t, err)
	require.NotEmpty(t, lawyers)

	seen := map[int]bool{}
	for _, lawyer := range lawyers {
		assert.False(t, seen[lawyer.ID], "duplicate lawyer id %d", lawyer.ID)
		seen[lawyer.ID] = true
		assert.NotEmpty(t, lawyer.Name)
		assert.NotEmpty(t, lawyer.Specialization)
		assert.NotEmpty(t, lawyer.Email)
	}
}

func TestLegalHelpDatasetPartitionsIntoKnownRoles(t *testing.T) {
	t.Parallel()

	profiles, err := LegalHelp()
	require.NoError(t, err)
	require.NotEmpty(t, profiles)

	consultants, helpers := 0, 0
	for _, profile := range profiles {
		switch profile.Role {
		case domain.RoleConsultant:
			consultants++
		case domain.RoleHelper:
			helpers++
		default:
			t.Fatalf("unknown role %q", profile.Role)
		}
		assert.NotEmpty(t, profile.Expertise)
		assert.Positive(t, profile.Rate)
	}

	assert.Positive(t, consultants)
	assert.Positive(t, helpers)
}
