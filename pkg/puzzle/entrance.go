package puzzle

// Entrance identifies one of the fifteen room entrances. Each entrance
// belongs to exactly one room and sits on exactly one of its walls.
type Entrance uint8

const (
	StartDown Entrance = iota
	StartRight
	SkyviewLeft
	SkyviewUp
	EarthTempleRight
	EarthTempleDown
	LanayruMiningFacilityDown
	LanayruMiningFacilityUp
	MiniBossLeft
	MiniBossDown
	AncientCisternRight
	AncientCisternDown
	FireSanctuaryLeft
	FireSanctuaryRight
	SandshipLeft

	// NumEntrances is the number of distinct entrances.
	NumEntrances = 15
)

var entranceNames = [NumEntrances]string{
	"start/down",
	"start/right",
	"skyview/left",
	"skyview/up",
	"earth-temple/right",
	"earth-temple/down",
	"lanayru-mining-facility/down",
	"lanayru-mining-facility/up",
	"mini-boss/left",
	"mini-boss/down",
	"ancient-cistern/right",
	"ancient-cistern/down",
	"fire-sanctuary/left",
	"fire-sanctuary/right",
	"sandship/left",
}

// String returns the entrance name as "room/wall".
func (e Entrance) String() string {
	if int(e) < len(entranceNames) {
		return entranceNames[e]
	}
	return "invalid"
}

// entranceLoc is the (room, wall) pair an entrance occupies.
type entranceLoc struct {
	room Room
	wall Direction
}

// entranceLocs is indexed by Entrance and is the total inverse of
// EntranceAt: every entrance has exactly one location.
var entranceLocs = [NumEntrances]entranceLoc{
	StartDown:                 {Start, Down},
	StartRight:                {Start, Right},
	SkyviewLeft:               {Skyview, Left},
	SkyviewUp:                 {Skyview, Up},
	EarthTempleRight:          {EarthTemple, Right},
	EarthTempleDown:           {EarthTemple, Down},
	LanayruMiningFacilityDown: {LanayruMiningFacility, Down},
	LanayruMiningFacilityUp:   {LanayruMiningFacility, Up},
	MiniBossLeft:              {MiniBoss, Left},
	MiniBossDown:              {MiniBoss, Down},
	AncientCisternRight:       {AncientCistern, Right},
	AncientCisternDown:        {AncientCistern, Down},
	FireSanctuaryLeft:         {FireSanctuary, Left},
	FireSanctuaryRight:        {FireSanctuary, Right},
	SandshipLeft:              {Sandship, Left},
}

// Room returns the room the entrance belongs to.
func (e Entrance) Room() Room { return entranceLocs[e].room }

// Wall returns the wall the entrance sits on.
func (e Entrance) Wall() Direction { return entranceLocs[e].wall }

// EntranceAt returns the entrance on the given wall of the given room.
// Most (room, wall) pairs are solid; ok is false for those and for the
// empty tile.
func EntranceAt(room Room, wall Direction) (Entrance, bool) {
	for e, loc := range entranceLocs {
		if loc.room == room && loc.wall == wall {
			return Entrance(e), true
		}
	}
	return 0, false
}

// internalLink describes a room's fixed corridor out of one entrance:
// the destination entrance in the same room, and the gate (if any) that
// must be open for the corridor to be passable.
type internalLink struct {
	to    Entrance
	gated bool
	gate  Gate
}

// internalLinks is indexed by the entrance being entered. Entrances
// absent from the map dead-end.
var internalLinks = map[Entrance]internalLink{
	StartDown:                 {to: StartRight},
	StartRight:                {to: StartDown, gated: true, gate: GateStarting},
	SkyviewLeft:               {to: SkyviewUp},
	SkyviewUp:                 {to: SkyviewLeft},
	EarthTempleRight:          {to: EarthTempleDown, gated: true, gate: GateEarthTemple},
	EarthTempleDown:           {to: EarthTempleRight},
	LanayruMiningFacilityDown: {to: LanayruMiningFacilityUp},
	LanayruMiningFacilityUp:   {to: LanayruMiningFacilityDown},
	MiniBossLeft:              {to: MiniBossDown, gated: true, gate: GateMiniBoss},
	MiniBossDown:              {to: MiniBossLeft},
	AncientCisternRight:       {to: AncientCisternDown},
	AncientCisternDown:        {to: AncientCisternRight},
	FireSanctuaryLeft:         {to: FireSanctuaryRight, gated: true, gate: GateFireSanctuary},
	FireSanctuaryRight:        {to: FireSanctuaryLeft},
}

// TraverseInternal follows the room-internal corridor out of entrance e
// under the given open gates. It returns the exit entrance, or ok=false
// when the corridor dead-ends or its gate is closed. Opening more gates
// never removes a link, only adds the gated ones.
func TraverseInternal(e Entrance, gates GateSet) (Entrance, bool) {
	link, ok := internalLinks[e]
	if !ok {
		return 0, false
	}
	if link.gated && !gates.Contains(link.gate) {
		return 0, false
	}
	return link.to, true
}

// panelEntrances lists the entrances that hold a control panel, in the
// fixed operator enumeration order.
var panelEntrances = [4]Entrance{
	StartRight,
	LanayruMiningFacilityDown,
	EarthTempleDown,
	MiniBossLeft,
}

// HasControlPanel reports whether entrance e holds a control panel.
func HasControlPanel(e Entrance) bool {
	for _, p := range panelEntrances {
		if p == e {
			return true
		}
	}
	return false
}

// gateOpeners maps an entrance to the gate visiting it opens.
var gateOpeners = map[Entrance]Gate{
	StartDown:          GateStarting,
	EarthTempleDown:    GateEarthTemple,
	MiniBossDown:       GateMiniBoss,
	FireSanctuaryRight: GateFireSanctuary,
}

// OpensGate returns the gate that visiting entrance e opens, if any.
func OpensGate(e Entrance) (Gate, bool) {
	g, ok := gateOpeners[e]
	return g, ok
}
