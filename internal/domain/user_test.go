package domain

import "testing"

func TestCanUseAIAnalysisNilIdentity(t *testing.T) {
	if CanUseAIAnalysis(nil) {
		t.Fatal("expected nil identity to be denied")
	}
}

func TestCanUseAIAnalysisByTier(t *testing.T) {
	cases := []struct {
		tier Tier
		want bool
	}{
		{TierFree, false},
		{TierStandard, true},
		{TierPremium, true},
	}
	for _, tc := range cases {
		u := &UserIdentity{Name: "Trader", Tier: tc.tier}
		if got := CanUseAIAnalysis(u); got != tc.want {
			t.Fatalf("CanUseAIAnalysis(%s) = %v, want %v", tc.tier, got, tc.want)
		}
	}
}

func TestIsFree(t *testing.T) {
	if !(UserIdentity{Tier: TierFree}).IsFree() {
		t.Fatal("expected free tier to report IsFree")
	}
	if (UserIdentity{Tier: TierPremium}).IsFree() {
		t.Fatal("expected premium tier to not report IsFree")
	}
}
