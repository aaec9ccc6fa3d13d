package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAggregateWorstSubPort(t *testing.T) {
	t.Parallel()

	zone := Zone{
		Name: "CHARLESTON",
		SubPorts: []SubPort{
			{Name: "Beaufort", Condition: ConditionFromStatus("Open").UpgradeFromComments("")},
			{Name: "Charleston", Condition: ConditionFromStatus("Open with Restrictions").UpgradeFromComments("See advisory 01-25")},
		},
	}

	assert.Equal(t, ConditionWhiskey, zone.Aggregate())
}

func TestAggregateAllNormal(t *testing.T) {
	t.Parallel()

	zone := Zone{
		Name: "MIAMI",
		SubPorts: []SubPort{
			{Name: "Miami", Condition: ConditionNormal},
			{Name: "Port Everglades", Condition: ConditionNormal},
		},
	}

	assert.Equal(t, ConditionNormal, zone.Aggregate())
}

func TestAggregateEmptyZone(t *testing.T) {
	t.Parallel()

	assert.Equal(t, ConditionNormal, Zone{Name: "GUAM"}.Aggregate())
}

func TestAggregatePicksMaximum(t *testing.T) {
	t.Parallel()

	zone := Zone{
		Name: "NEW ORLEANS",
		SubPorts: []SubPort{
			{Name: "New Orleans", Condition: ConditionWhiskey},
			{Name: "Baton Rouge", Condition: ConditionZulu},
			{Name: "Gramercy", Condition: ConditionXRay},
		},
	}

	assert.Equal(t, ConditionZulu, zone.Aggregate())
}

func TestPortKeyNormalization(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "CHARLESTON|BEAUFORT", PortKey("Charleston", "  Beaufort "))
	assert.Equal(t, PortKey("MIAMI", "Miami River"), PortKey("miami", "miami river"))
}
