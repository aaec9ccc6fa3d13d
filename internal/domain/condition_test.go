package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeverityOrdering(t *testing.T) {
	t.Parallel()

	ordered := []Condition{ConditionNormal, ConditionWhiskey, ConditionXRay, ConditionYankee, ConditionZulu}
	for i := 1; i < len(ordered); i++ {
		assert.Greater(t, ordered[i].Severity(), ordered[i-1].Severity(),
			"%s must outrank %s", ordered[i], ordered[i-1])
		assert.True(t, ordered[i].Worse(ordered[i-1]))
		assert.False(t, ordered[i-1].Worse(ordered[i]))
	}

	assert.Equal(t, ConditionZulu, Max(ConditionWhiskey, ConditionZulu))
	assert.Equal(t, ConditionZulu, Max(ConditionZulu, ConditionWhiskey))
}

func TestConditionFromStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		want Condition
	}{
		{"empty", "", ConditionNormal},
		{"open", "Open", ConditionNormal},
		{"open padded", "  open  ", ConditionNormal},
		{"closed", "Closed", ConditionZulu},
		{"open with restrictions", "Open with Restrictions", ConditionWhiskey},
		{"explicit zulu", "Port Condition ZULU set", ConditionZulu},
		{"explicit yankee", "Condition YANKEE", ConditionYankee},
		{"explicit x-ray", "Port Condition X-RAY", ConditionXRay},
		{"xray without hyphen", "setting XRAY", ConditionXRay},
		{"explicit whiskey", "Port Condition Whiskey", ConditionWhiskey},
		{"unrecognized", "See MSIB 04-25", ConditionNormal},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ConditionFromStatus(tc.raw))
		})
	}
}

func TestUpgradeFromComments(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		base     Condition
		comments string
		want     Condition
	}{
		{"empty comments keep base", ConditionWhiskey, "", ConditionWhiskey},
		{"restrictions bump normal", ConditionNormal, "Open WITH RESTRICTIONS - see MSIB", ConditionWhiskey},
		{"condition IV bumps to x-ray", ConditionNormal, "Port Condition IV in effect", ConditionXRay},
		{"condition 4 bumps to x-ray", ConditionWhiskey, "condition 4 set by COTP", ConditionXRay},
		{"explicit zulu wins", ConditionWhiskey, "Port Condition ZULU", ConditionZulu},
		{"never downgrade from vocabulary", ConditionZulu, "returning to WHISKEY soon", ConditionZulu},
		{"never downgrade from restrictions", ConditionYankee, "restrictions apply", ConditionYankee},
		{"unrelated text keeps base", ConditionXRay, "channel dredging complete", ConditionXRay},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.base.UpgradeFromComments(tc.comments)
			assert.Equal(t, tc.want, got)
			assert.GreaterOrEqual(t, got.Severity(), tc.base.Severity(), "comments must never lower the code")
		})
	}
}
