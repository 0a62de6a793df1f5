package recommend

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"wayfare/internal/model"
)

// DefaultProfile is the fallback for unknown profile names.
const DefaultProfile = "value"

var builtin = map[string]model.Profile{
	"value":  {Name: "value", Cost: 0.4, Rating: 0.4, Visa: 0.2},
	"rating": {Name: "rating", Cost: 0.2, Rating: 0.6, Visa: 0.2},
	"budget": {Name: "budget", Cost: 0.6, Rating: 0.25, Visa: 0.15},
}

// ErrBuiltinProfile is returned when configuration tries to redefine one of
// the built-in profiles.
var ErrBuiltinProfile = errors.New("built-in profile cannot be redefined")

// ErrUnknownProfile is returned when the preferred profile is not in the table.
var ErrUnknownProfile = errors.New("unknown profile")

// Profiles is a lookup table of weighting profiles keyed by lower-case name.
type Profiles struct {
	byName    map[string]model.Profile
	preferred string
}

// DefaultProfiles returns the built-in value, rating and budget profiles.
func DefaultProfiles() *Profiles {
	m := make(map[string]model.Profile, len(builtin))
	for k, v := range builtin {
		m[k] = v
	}
	return &Profiles{byName: m, preferred: DefaultProfile}
}

// NewProfiles adds extra to the built-in table. preferred is the profile used
// when no name is given; empty keeps DefaultProfile. Unknown names always
// resolve to DefaultProfile.
func NewProfiles(extra map[string]model.Profile, preferred string) (*Profiles, error) {
	ps := DefaultProfiles()
	for name, p := range extra {
		key := normalize(name)
		if key == "" {
			continue
		}
		if _, ok := builtin[key]; ok {
			return nil, fmt.Errorf("%w: %q", ErrBuiltinProfile, key)
		}
		p.Name = key
		ps.byName[key] = p
	}
	if key := normalize(preferred); key != "" {
		if _, ok := ps.byName[key]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownProfile, key)
		}
		ps.preferred = key
	}
	return ps, nil
}

func normalize(name string) string { return strings.ToLower(strings.TrimSpace(name)) }

// Lookup resolves name. An empty name selects the preferred profile and an
// unknown one selects DefaultProfile. ok reports whether name itself was found.
func (ps *Profiles) Lookup(name string) (p model.Profile, ok bool) {
	key := normalize(name)
	if key == "" {
		return ps.byName[ps.preferred], false
	}
	if p, ok = ps.byName[key]; ok {
		return p, true
	}
	return ps.byName[DefaultProfile], false
}

// Preferred returns the profile used when no name is given.
func (ps *Profiles) Preferred() model.Profile { return ps.byName[ps.preferred] }

// Names lists the known profile names in sorted order.
func (ps *Profiles) Names() []string {
	names := make([]string, 0, len(ps.byName))
	for k := range ps.byName {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// All returns every profile sorted by name.
func (ps *Profiles) All() []model.Profile {
	out := make([]model.Profile, 0, len(ps.byName))
	for _, n := range ps.Names() {
		out = append(out, ps.byName[n])
	}
	return out
}

// ProfileByName looks up name in the built-in table, falling back to "value".
func ProfileByName(name string) model.Profile {
	p, _ := DefaultProfiles().Lookup(name)
	return p
}
