package services

import "testing"

func TestGrade(t *testing.T) {
	cases := []struct {
		activityID  int
		given       string
		wantScore   int
		wantCorrect bool
	}{
		{1, "5", 1, true},
		{1, "", 0, false},
		{1, "6", -1, false},
		{2, "<", 1, true},
		{4, "නැත", 1, true},
		{9, "-", 1, true},
		{10, "0,8", 1, true},
		{10, "8,0", 1, true},
		{10, "0,8,8", 1, true}, // duplicates collapse
		{10, "0", -1, false},
		{10, "0,8,9", -1, false},
		{10, "", 0, false},
		{12, "3", 1, true},
		{12, "4", -1, false},
		{13, "1", 1, true},
		{99, "anything", -1, false}, // unknown activity is never correct
		{99, "", 0, false},          // but an empty answer is still a skip
	}
	for _, c := range cases {
		score, correct := Grade(c.activityID, c.given)
		if score != c.wantScore || correct != c.wantCorrect {
			t.Fatalf("Grade(%d,%q)=(%d,%v), want (%d,%v)",
				c.activityID, c.given, score, correct, c.wantScore, c.wantCorrect)
		}
	}
}
