package domain

import "strings"

// Condition is the ordered port readiness code used by the Coast Guard:
// NORMAL < WHISKEY < X-RAY < YANKEE < ZULU.
type Condition string

const (
	ConditionNormal  Condition = "NORMAL"
	ConditionWhiskey Condition = "WHISKEY"
	ConditionXRay    Condition = "X-RAY"
	ConditionYankee  Condition = "YANKEE"
	ConditionZulu    Condition = "ZULU"
)

var severity = map[Condition]int{
	ConditionNormal:  0,
	ConditionWhiskey: 1,
	ConditionXRay:    2,
	ConditionYankee:  3,
	ConditionZulu:    4,
}

// Severity returns the integer rank of the condition; unknown values rank
// as NORMAL so comparisons stay total.
func (c Condition) Severity() int {
	return severity[c]
}

// Worse reports whether c outranks other.
func (c Condition) Worse(other Condition) bool {
	return c.Severity() > other.Severity()
}

// Max returns the higher-severity of the two conditions.
func Max(a, b Condition) Condition {
	if b.Worse(a) {
		return b
	}
	return a
}

// conditionVocabulary is scanned in descending severity so the first hit is
// also the worst one mentioned.
var conditionVocabulary = []struct {
	keyword string
	code    Condition
}{
	{"ZULU", ConditionZulu},
	{"YANKEE", ConditionYankee},
	{"X-RAY", ConditionXRay},
	{"XRAY", ConditionXRay},
	{"WHISKEY", ConditionWhiskey},
}

// ConditionFromStatus maps the raw status cell text to a condition code.
// NAVCEN writes things like "Open", "Closed", "Open with Restrictions"; the
// fallback for anything unrecognized is NORMAL, never an error.
func ConditionFromStatus(raw string) Condition {
	t := strings.ToUpper(strings.TrimSpace(raw))

	switch {
	case t == "" || t == "OPEN":
		return ConditionNormal
	case t == "CLOSED":
		return ConditionZulu
	case strings.Contains(t, "RESTRICTION"):
		// "Open with Restrictions" is at least WHISKEY; comments may
		// upgrade it further.
		return ConditionWhiskey
	}

	for _, v := range conditionVocabulary {
		if strings.Contains(t, v.keyword) {
			return v.code
		}
	}

	return ConditionNormal
}

// UpgradeFromComments raises the condition when the comments column mentions
// a worse one, e.g. Status=Open with Comments="Port Condition IV" is X-RAY.
// Comments can only upgrade, never downgrade.
func (c Condition) UpgradeFromComments(comments string) Condition {
	text := strings.ToUpper(strings.TrimSpace(comments))
	if text == "" {
		return c
	}

	result := c
	for _, v := range conditionVocabulary {
		if strings.Contains(text, v.keyword) {
			result = Max(result, v.code)
		}
	}

	if strings.Contains(text, "RESTRICTION") {
		result = Max(result, ConditionWhiskey)
	}

	if strings.Contains(text, "CONDITION IV") || strings.Contains(text, "CONDITION 4") {
		result = Max(result, ConditionXRay)
	}

	return result
}
