package service

import (
	"testing"
)

func TestNextVisibility(t *testing.T) {
	cases := []struct {
		name     string
		match    int64
		mismatch int64
		want     visibilityTransition
	}{
		{"no votes", 0, 0, stayPending},
		{"below quorum", 2, 2, stayPending},
		{"match quorum reached", 3, 0, makeVisible},
		{"match quorum with noise", 3, 2, makeVisible},
		{"many matches", 10, 1, makeVisible},
		{"mismatch quorum reached", 0, 3, makeHidden},
		{"mismatch dominates", 1, 5, makeHidden},
		{"both at quorum hides", 3, 3, makeHidden},
		{"both above quorum hides", 5, 4, makeHidden},
		{"match without quorum stays", 2, 0, stayPending},
	}
	for _, c := range cases {
		if got := nextVisibility(c.match, c.mismatch); got != c.want {
			t.Errorf("%s: nextVisibility(%d, %d) = %v, want %v",
				c.name, c.match, c.mismatch, got, c.want)
		}
	}
}

// mismatch 一旦到达阈值,再多的 match 票也不能阻止隐藏
func TestNextVisibilityHiddenPrecedence(t *testing.T) {
	for match := int64(3); match <= 20; match++ {
		if got := nextVisibility(match, 3); got != makeHidden {
			t.Fatalf("nextVisibility(%d, 3) = %v, want makeHidden", match, got)
		}
	}
}
