package puzzle

// Room identifies one of the eight sliding rooms, or the empty tile.
type Room uint8

const (
	Empty Room = iota
	Start
	Skyview
	EarthTemple
	LanayruMiningFacility
	MiniBoss
	AncientCistern
	FireSanctuary
	Sandship
)

// roomCodes holds the short display codes, indexed by Room. The empty
// tile renders as "--".
var roomCodes = [9]string{"--", "STR", "SV", "ET", "LMF", "BOS", "AC", "FS", "SSH"}

// roomNames holds the long names, indexed by Room.
var roomNames = [9]string{
	"Empty",
	"Start",
	"Skyview",
	"Earth Temple",
	"Lanayru Mining Facility",
	"Mini Boss",
	"Ancient Cistern",
	"Fire Sanctuary",
	"Sandship",
}

// Code returns the short display code (e.g. "LMF"), or "--" for Empty.
func (r Room) Code() string {
	if int(r) < len(roomCodes) {
		return roomCodes[r]
	}
	return "??"
}

// String returns the long room name.
func (r Room) String() string {
	if int(r) < len(roomNames) {
		return roomNames[r]
	}
	return "invalid"
}

// RoomFromCode maps a short display code back to its Room. The match is
// exact and case-sensitive; ok is false for unknown codes.
func RoomFromCode(code string) (Room, bool) {
	for i, c := range roomCodes {
		if c == code {
			return Room(i), true
		}
	}
	return Empty, false
}
