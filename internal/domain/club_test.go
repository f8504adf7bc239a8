package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClub() *Club {
	return &Club{
		ID:      "club-1",
		Name:    "robotics",
		OwnerID: "owner-1",
		Ranks:   DefaultRanks(),
		Members: []Member{
			{UserID: "owner-1", RankID: RankAdmin},
			{UserID: "member-1", RankID: RankDefault},
		},
	}
}

func TestHasCapability_AdminHasEverything(t *testing.T) {
	club := testClub()
	for _, p := range AllPermissions {
		ok, err := club.HasCapability("owner-1", p)
		require.NoError(t, err)
		assert.True(t, ok, "admin should hold %s", p)
	}
}

func TestHasCapability_DefaultRank(t *testing.T) {
	club := testClub()

	ok, err := club.HasCapability("member-1", PermPostCreate)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = club.HasCapability("member-1", PermBudgetRead)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = club.HasCapability("member-1", PermBudgetCreate)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = club.HasCapability("member-1", PermApplicantAccept)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestHasCapability_NonMemberAlwaysDenied(t *testing.T) {
	club := testClub()
	for _, p := range AllPermissions {
		ok, err := club.HasCapability("stranger", p)
		require.NoError(t, err)
		assert.False(t, ok)
	}
}

// Ownership without a membership row confers no capability. The owner
// normally holds the admin membership, but if that row is gone the
// evaluation answers plain false, same as any non-member.
func TestHasCapability_OwnerWithoutMembership(t *testing.T) {
	club := testClub()
	club.Members = []Member{{UserID: "member-1", RankID: RankDefault}}

	ok, err := club.HasCapability("owner-1", PermPostRead)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.True(t, club.IsOwner("owner-1"))
	assert.False(t, club.IsAdmin("owner-1"))
}

func TestHasCapability_UnresolvedRankIsInvalidState(t *testing.T) {
	club := testClub()
	club.Members = append(club.Members, Member{UserID: "ghost", RankID: 99})

	ok, err := club.HasCapability("ghost", PermPostRead)
	assert.False(t, ok)
	require.Error(t, err)
	assert.Equal(t, KindInvalidState, KindOf(err))
}

func TestIsAdmin(t *testing.T) {
	club := testClub()
	assert.True(t, club.IsAdmin("owner-1"))
	assert.False(t, club.IsAdmin("member-1"))
	assert.False(t, club.IsAdmin("stranger"))
}

func TestRankHas_AdminImpliesAll(t *testing.T) {
	r := Rank{ID: RankAdmin, Name: "admin", IsAdmin: true}
	for _, p := range AllPermissions {
		assert.True(t, r.Has(p))
	}
}

func TestDefaultRanks(t *testing.T) {
	ranks := DefaultRanks()
	require.Len(t, ranks, 2)
	assert.Equal(t, RankAdmin, ranks[0].ID)
	assert.True(t, ranks[0].IsAdmin)
	assert.Equal(t, RankDefault, ranks[1].ID)
	assert.False(t, ranks[1].IsAdmin)
	for _, p := range ranks[1].Capabilities {
		assert.True(t, p.Valid())
	}
}

func TestClubUpdate_AppliesOnlySetFields(t *testing.T) {
	club := testClub()
	club.Description = "old"
	club.ImgPath = "old.png"

	desc := "new"
	ClubUpdate{Description: &desc}.Apply(club)
	assert.Equal(t, "new", club.Description)
	assert.Equal(t, "old.png", club.ImgPath)
}
