package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveTier(t *testing.T) {
	cases := []struct {
		points int64
		want   TierType
	}{
		{points: -10, want: TierBronze},
		{points: 0, want: TierBronze},
		{points: 499, want: TierBronze},
		{points: 500, want: TierSilver},
		{points: 510, want: TierSilver},
		{points: 999, want: TierSilver},
		{points: 1000, want: TierGold},
		{points: 1999, want: TierGold},
		{points: 2000, want: TierPlatinum},
		{points: 1_000_000, want: TierPlatinum},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, DeriveTier(c.points), "points=%d", c.points)
	}
}

func TestDeriveTier_Monotonic(t *testing.T) {
	rank := map[TierType]int{
		TierBronze:   0,
		TierSilver:   1,
		TierGold:     2,
		TierPlatinum: 3,
	}
	prev := DeriveTier(0)
	for points := int64(1); points <= 2500; points++ {
		current := DeriveTier(points)
		require.GreaterOrEqual(t, rank[current], rank[prev], "points=%d", points)
		prev = current
	}
}

func TestTierPerks(t *testing.T) {
	cases := []struct {
		tier           TierType
		wantDiscount   string
		wantMultiplier string
	}{
		{tier: TierBronze, wantDiscount: "5", wantMultiplier: "1"},
		{tier: TierSilver, wantDiscount: "10", wantMultiplier: "1.5"},
		{tier: TierGold, wantDiscount: "15", wantMultiplier: "2"},
		{tier: TierPlatinum, wantDiscount: "20", wantMultiplier: "2.5"},
	}
	for _, c := range cases {
		discount, discountErr := DiscountFor(c.tier)
		require.NoError(t, discountErr)
		assert.Equal(t, c.wantDiscount, discount.String())

		multiplier, multiplierErr := MultiplierFor(c.tier)
		require.NoError(t, multiplierErr)
		assert.Equal(t, c.wantMultiplier, multiplier.String())
	}
}

func TestTierPerks_UnknownTier(t *testing.T) {
	_, err := DiscountFor("diamond")
	require.ErrorIs(t, err, ErrUnknownTier)

	_, err = MultiplierFor("")
	require.ErrorIs(t, err, ErrUnknownTier)
}

func TestTierTypeValid(t *testing.T) {
	for _, tier := range []TierType{TierBronze, TierSilver, TierGold, TierPlatinum} {
		assert.True(t, tier.Valid(), "tier=%s", tier)
	}
	assert.False(t, TierType("diamond").Valid())
	assert.False(t, TierType("").Valid())
}
