package textsearch

import "testing"

type findTest struct {
	name   string
	block  string
	search string
	found  bool
	tier   Tier
	want   string
}

var findTests = []findTest{
	{
		name:  "exact",
		block: "The price is £500, payable on demand.", search: "payable on",
		found: true, tier: TierExact, want: "payable on",
	},
	{
		name:  "case folded",
		block: "The Supplier shall deliver.", search: "the supplier",
		found: true, tier: TierNormalized, want: "The Supplier",
	},
	{
		name:  "whitespace collapsed",
		block: "payable  \t on demand", search: "payable on",
		found: true, tier: TierNormalized, want: "payable  \t on",
	},
	{
		name:  "punctuation blind",
		block: "payable, on demand", search: "payable on",
		found: true, tier: TierTolerant, want: "payable, on",
	},
	{
		name:  "absent",
		block: "The price is £500.", search: "delivery date",
		found: false,
	},
	{
		name:  "empty search",
		block: "anything", search: "",
		found: false,
	},
}

func TestFind(t *testing.T) {
	var s Default
	for _, tc := range findTests {
		t.Run(tc.name, func(t *testing.T) {
			m := s.Find(tc.block, tc.search)
			if m.Found != tc.found {
				t.Fatalf("found = %v, want %v (%+v)", m.Found, tc.found, m)
			}
			if !tc.found {
				return
			}
			if m.Tier != tc.tier {
				t.Errorf("tier = %s, want %s", m.Tier, tc.tier)
			}
			if got := tc.block[m.From:m.To]; got != tc.want {
				t.Errorf("span = %q, want %q", got, tc.want)
			}
		})
	}
}
