package engine

import (
	"testing"

	"callsheet/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(v float64) *float64 { return &v }

func TestComposeDescription_Crew(t *testing.T) {
	snap := Snapshot{Name: "Ana Reyes", Role: "Gaffer"}
	assert.Equal(t, "Ana Reyes - Gaffer", ComposeDescription(domain.KindCrew, snap))

	// Role is optional; the name stands alone.
	snap.Role = ""
	assert.Equal(t, "Ana Reyes", ComposeDescription(domain.KindCrew, snap))
}

func TestComposeDescription_Cast(t *testing.T) {
	snap := Snapshot{ActorName: "Marta Voss", CharacterName: "Det. Hale"}
	assert.Equal(t, "Marta Voss as Det. Hale", ComposeDescription(domain.KindCast, snap))

	// One-sided fallbacks.
	assert.Equal(t, "Marta Voss", ComposeDescription(domain.KindCast, Snapshot{ActorName: "Marta Voss"}))
	assert.Equal(t, "Det. Hale", ComposeDescription(domain.KindCast, Snapshot{CharacterName: "Det. Hale"}))
}

func TestComposeDescription_Equipment(t *testing.T) {
	snap := Snapshot{Name: "ARRI Alexa 35"}
	assert.Equal(t, "ARRI Alexa 35", ComposeDescription(domain.KindEquipment, snap))
}

func TestRateForUnit_CrewAndCastUseDailyRate(t *testing.T) {
	snap := Snapshot{DailyRate: floatPtr(650)}

	for _, kind := range []domain.ResourceKind{domain.KindCrew, domain.KindCast} {
		rate := RateForUnit(kind, snap, "anything")
		require.NotNil(t, rate)
		assert.Equal(t, 650.0, *rate)
	}
}

func TestRateForUnit_EquipmentMatchesUnitSubstring(t *testing.T) {
	snap := Snapshot{DailyRate: floatPtr(500), WeeklyRate: floatPtr(2000)}

	tests := []struct {
		unit string
		want *float64
	}{
		{"days", floatPtr(500)},
		{"Day", floatPtr(500)},
		{"per day", floatPtr(500)},
		{"weeks", floatPtr(2000)},
		{"WEEKLY", floatPtr(2000)},
		{"flat", nil},
		{"", nil},
	}
	for _, tt := range tests {
		got := RateForUnit(domain.KindEquipment, snap, tt.unit)
		if tt.want == nil {
			assert.Nil(t, got, "unit %q", tt.unit)
			continue
		}
		require.NotNil(t, got, "unit %q", tt.unit)
		assert.Equal(t, *tt.want, *got, "unit %q", tt.unit)
	}
}

func TestRateForUnit_NilRatesPassThrough(t *testing.T) {
	assert.Nil(t, RateForUnit(domain.KindCrew, Snapshot{}, "days"))
	assert.Nil(t, RateForUnit(domain.KindEquipment, Snapshot{}, "days"))
}

func TestChange_Relevant(t *testing.T) {
	assert.False(t, Change{}.Relevant())
	assert.True(t, Change{DisplayChanged: true}.Relevant())
	assert.True(t, Change{RateChanged: true}.Relevant())
}
