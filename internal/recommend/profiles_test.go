package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wayfare/internal/model"
)

func TestProfileByName(t *testing.T) {
	tests := []struct {
		name string
		want model.Profile
	}{
		{"value", model.Profile{Name: "value", Cost: 0.4, Rating: 0.4, Visa: 0.2}},
		{"rating", model.Profile{Name: "rating", Cost: 0.2, Rating: 0.6, Visa: 0.2}},
		{"budget", model.Profile{Name: "budget", Cost: 0.6, Rating: 0.25, Visa: 0.15}},
		{"BUDGET", model.Profile{Name: "budget", Cost: 0.6, Rating: 0.25, Visa: 0.15}},
		{"", model.Profile{Name: "value", Cost: 0.4, Rating: 0.4, Visa: 0.2}},
		{"xyz", model.Profile{Name: "value", Cost: 0.4, Rating: 0.4, Visa: 0.2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ProfileByName(tt.name))
		})
	}
}

func TestUnknownProfileRanksLikeValue(t *testing.T) {
	in := []model.Destination{
		{Country: "A", CostPerDay: 50, VisaFree: "Yes", Rating: 4.8},
		{Country: "B", CostPerDay: 100, VisaFree: "No", Rating: 4.0},
		{Country: "C", CostPerDay: 70, VisaFree: "No", Rating: 4.6},
	}
	want, _ := Rank(in, ProfileByName("value"))
	got, _ := Rank(in, ProfileByName("xyz"))
	assert.Equal(t, want, got)
}

func TestNewProfiles(t *testing.T) {
	ps, err := NewProfiles(map[string]model.Profile{
		"Visa":  {Cost: 0.1, Rating: 0.1, Visa: 0.8},
		"beach": {Cost: 0.5, Rating: 0.3, Visa: 0.2},
		"  ":    {Cost: 1},
	}, "visa")
	require.NoError(t, err)

	assert.Equal(t, []string{"beach", "budget", "rating", "value", "visa"}, ps.Names())

	p, ok := ps.Lookup("visa")
	assert.True(t, ok)
	assert.Equal(t, model.Profile{Name: "visa", Cost: 0.1, Rating: 0.1, Visa: 0.8}, p)

	// an empty name selects the preferred profile
	p, ok = ps.Lookup("")
	assert.False(t, ok)
	assert.Equal(t, "visa", p.Name)
	assert.Equal(t, "visa", ps.Preferred().Name)

	// unknown names always land on value, whatever is preferred
	p, ok = ps.Lookup("nope")
	assert.False(t, ok)
	assert.Equal(t, builtin["value"], p)
}

func TestNewProfiles_BuiltinsAreFixed(t *testing.T) {
	for _, name := range []string{"value", "Budget", " rating "} {
		t.Run(name, func(t *testing.T) {
			_, err := NewProfiles(map[string]model.Profile{name: {Cost: 1}}, "")
			assert.ErrorIs(t, err, ErrBuiltinProfile)
		})
	}
	assert.Equal(t, model.Profile{Name: "value", Cost: 0.4, Rating: 0.4, Visa: 0.2}, ProfileByName("value"))
}

func TestNewProfiles_PreferredMustExist(t *testing.T) {
	_, err := NewProfiles(nil, "missing")
	assert.ErrorIs(t, err, ErrUnknownProfile)

	ps, err := NewProfiles(nil, "")
	require.NoError(t, err)
	assert.Equal(t, "value", ps.Preferred().Name)
	assert.Len(t, ps.All(), 3)

	ps, err = NewProfiles(nil, "BUDGET")
	require.NoError(t, err)
	p, _ := ps.Lookup("")
	assert.Equal(t, "budget", p.Name)
}
