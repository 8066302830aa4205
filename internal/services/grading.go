package services

import "strings"

// Score values for a graded attempt.
const (
	ScoreCorrect   = 1
	ScoreIncorrect = -1
	ScoreSkipped   = 0
)

// answerRule decides whether a non-empty answer is correct for one
// activity. The skip policy (empty answer scores 0) is uniform and
// handled in Grade, outside the rules.
type answerRule interface {
	match(given string) bool
}

// exactAnswer accepts one literal string.
type exactAnswer string

func (a exactAnswer) match(given string) bool { return given == string(a) }

// tokenSet accepts a comma-separated list whose token set equals the
// expected set. Order-independent; duplicate tokens collapse.
type tokenSet map[string]struct{}

func (s tokenSet) match(given string) bool {
	seen := map[string]struct{}{}
	for _, tok := range strings.Split(given, ",") {
		seen[tok] = struct{}{}
	}
	if len(seen) != len(s) {
		return false
	}
	for tok := range s {
		if _, ok := seen[tok]; !ok {
			return false
		}
	}
	return true
}

// answerRules is the closed key of graded activities. Adding a new
// special-cased activity means adding a rule here, not touching Grade.
var answerRules = map[int]answerRule{
	1:  exactAnswer("5"),
	2:  exactAnswer("<"),
	3:  exactAnswer("7"),
	4:  exactAnswer("නැත"),
	5:  exactAnswer("7"),
	6:  exactAnswer("3"),
	7:  exactAnswer("1"),
	8:  exactAnswer("1"),
	9:  exactAnswer("-"),
	10: tokenSet{"0": {}, "8": {}},
	11: exactAnswer("1"),
	12: exactAnswer("3"),
	13: exactAnswer("1"),
}

// Grade scores a given answer for an activity. An empty answer is a
// skip (score 0), never wrong. A non-empty answer for an unknown
// activity id is wrong.
func Grade(activityID int, given string) (score int, correct bool) {
	if given == "" {
		return ScoreSkipped, false
	}
	rule, ok := answerRules[activityID]
	if ok && rule.match(given) {
		return ScoreCorrect, true
	}
	return ScoreIncorrect, false
}
