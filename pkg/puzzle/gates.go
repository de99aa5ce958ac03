package puzzle

import "strings"

// Gate is one of the four unlockable gates. Each gate blocks a single
// internal corridor until its control panel has been visited.
type Gate uint8

const (
	GateStarting Gate = 1 << iota
	GateEarthTemple
	GateMiniBoss
	GateFireSanctuary
)

var gateNames = map[Gate]string{
	GateStarting:      "starting",
	GateEarthTemple:   "earth-temple",
	GateMiniBoss:      "mini-boss",
	GateFireSanctuary: "fire-sanctuary",
}

// String returns the gate's name.
func (g Gate) String() string {
	if n, ok := gateNames[g]; ok {
		return n
	}
	return "invalid"
}

// GateSet is a set of open gates. Gates only ever open, so sets grow
// monotonically during a walk.
type GateSet uint8

// With returns the set extended by g.
func (s GateSet) With(g Gate) GateSet { return s | GateSet(g) }

// Contains reports whether gate g is open in s.
func (s GateSet) Contains(g Gate) bool { return s&GateSet(g) != 0 }

// Union returns the union of both sets.
func (s GateSet) Union(o GateSet) GateSet { return s | o }

// ContainsAll reports whether s is a superset of o.
func (s GateSet) ContainsAll(o GateSet) bool { return s&o == o }

// String renders the open gates as a comma-separated list, or "none".
func (s GateSet) String() string {
	if s == 0 {
		return "none"
	}
	var names []string
	for _, g := range []Gate{GateStarting, GateEarthTemple, GateMiniBoss, GateFireSanctuary} {
		if s.Contains(g) {
			names = append(names, g.String())
		}
	}
	return strings.Join(names, ",")
}
