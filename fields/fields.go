// Package fields holds the static layout tables that describe where each
// named player and team attribute lives in a record. Every offset here is
// data, not a branch: accessor code in the player and team packages walks
// these tables instead of switching on field identifiers.
package fields

// PlayerRecordSize is the fixed byte width of one player record.
const PlayerRecordSize = 1023

// TeamRecordSize is the fixed byte width of one team record.
const TeamRecordSize = 716

// CFIDOffset is the byte offset of a player's 16-bit little-endian CFID.
const CFIDOffset = 28

// Codec identifies how a raw field value maps to its logical value.
type Codec int

const (
	// CodecIdentity passes the raw value through unchanged.
	CodecIdentity Codec = iota
	// CodecDisplayRating maps between the on-disk rating byte and the
	// 25..99-ish display scale via display = raw/3 + 25.
	CodecDisplayRating
	// CodecTendency masks off the game-owned high bit on read and
	// preserves it via read-modify-write on write.
	CodecTendency
	// CodecASCII treats the field as a fixed-width byte string.
	CodecASCII
)

// RatingOffsets gives the byte offset of each of the 43 one-byte rating
// fields, indexed by rating id. The values sit in the 409..451 block,
// reflecting a 2K13-to-2K14 anchor shift rather than a contiguous layout.
var RatingOffsets = [43]int{
	409, 410, 411, 424, 423, 412, 425, 413, 414, 415,
	416, 417, 418, 419, 420, 421, 422, 426, 428, 429,
	430, 431, 432, 433, 434, 435, 436, 437, 438, 439,
	440, 441, 442, 443, 444, 427, 445, 446, 447, 448,
	449, 450, 451,
}

// TendencyCount is the number of 8-bit tendency fields.
const TendencyCount = 58

// TendencyBaseByte and TendencyBaseBit anchor the sequential tendency block;
// tendency i occupies 8 bits starting at bit (TendencyBaseByte*8+TendencyBaseBit) + i*8.
const (
	TendencyBaseByte = 144
	TendencyBaseBit  = 3
)

// TendencyOffset returns the (byteOff, bitOff) of tendency id within its record.
func TendencyOffset(id int) (byteOff int, bitOff uint8) {
	total := TendencyBaseByte*8 + TendencyBaseBit + id*8
	return total / 8, uint8(total % 8)
}

// HotZoneCount is the number of 2-bit hot zone fields.
const HotZoneCount = 14

// hotZoneBaseBits is the bit position immediately after the tendency block.
const hotZoneBaseBits = TendencyBaseByte*8 + TendencyBaseBit + TendencyCount*8

// HotZoneOffset returns the (byteOff, bitOff) of hot zone id within its record.
func HotZoneOffset(id int) (byteOff int, bitOff uint8) {
	total := hotZoneBaseBits + id*2
	return total / 8, uint8(total % 8)
}

// SigSkillCount is the number of 6-bit signature skill slots.
const SigSkillCount = 5

// SigSkillBaseByte and SigSkillBaseBit anchor the sequential sig-skill block.
const (
	SigSkillBaseByte = 14
	SigSkillBaseBit  = 3
)

// SigSkillOffset returns the (byteOff, bitOff) of sig-skill slot within its record.
func SigSkillOffset(slot int) (byteOff int, bitOff uint8) {
	total := SigSkillBaseByte*8 + SigSkillBaseBit + slot*6
	return total / 8, uint8(total % 8)
}

// GearDef describes one mixed-width gear bit field, relative to GearBaseByte/GearBaseBit.
type GearDef struct {
	BitOffset int
	BitWidth  int
}

// GearCount is the number of gear fields.
const GearCount = 48

// GearBaseByte and GearBaseBit anchor the gear bit-field block.
const (
	GearBaseByte = 129
	GearBaseBit  = 7
)

// GearDefs enumerates the 48 gear fields in declaration order.
var GearDefs = [GearCount]GearDef{
	{0, 1}, {1, 3}, {4, 2}, {6, 2}, {8, 3}, {11, 2}, {13, 3}, {16, 2},
	{18, 4}, {22, 2}, {24, 2}, {26, 2}, {28, 2}, {30, 3}, {33, 2}, {35, 3},
	{38, 2}, {40, 4}, {44, 2}, {46, 2}, {48, 2}, {50, 2}, {52, 1}, {53, 2},
	{55, 3}, {58, 2}, {60, 2}, {62, 2}, {64, 2}, {66, 2}, {68, 3}, {71, 2},
	{73, 2}, {75, 2}, {77, 2}, {79, 2}, {81, 3}, {84, 4}, {88, 4}, {92, 32},
	{124, 32}, {156, 32}, {188, 32}, {220, 2}, {222, 2}, {224, 2}, {226, 2}, {228, 2},
}

// GearOffset returns the (byteOff, bitOff, width) of gear field id within its record.
func GearOffset(id int) (byteOff int, bitOff uint8, width int) {
	d := GearDefs[id]
	total := GearBaseByte*8 + GearBaseBit + d.BitOffset
	return total / 8, uint8(total % 8), d.BitWidth
}

// AnimationCount is the number of logical animation slots, unifying three
// on-disk sub-blocks (shots/signatures, dunks, layup) behind one id space.
const AnimationCount = 40

const (
	animShotsBase = 193 // ids 0..18 at +0..18, plus pregame intro ids 35..39 at +19..23
	animDunksBase = 178 // ids 20..34
)

// AnimationLayupByte, AnimationLayupBit, and AnimationLayupWidth locate the
// single 4-bit layup package field at animation id 19.
const (
	AnimationLayupByte  = 274
	AnimationLayupBit   = 2
	AnimationLayupWidth = 4
)

// AnimationKind classifies how an animation id is stored on disk.
type AnimationKind int

const (
	AnimationKindByte AnimationKind = iota
	AnimationKindBits
)

// AnimationPlacement resolves animation id to its storage location.
func AnimationPlacement(id int) (kind AnimationKind, byteOff int, bitOff uint8, width int) {
	switch {
	case id >= 0 && id <= 18:
		return AnimationKindByte, animShotsBase + id, 0, 8
	case id == 19:
		return AnimationKindBits, AnimationLayupByte, AnimationLayupBit, AnimationLayupWidth
	case id >= 20 && id <= 34:
		return AnimationKindByte, animDunksBase + (id - 20), 0, 8
	case id >= 35 && id <= 39:
		return AnimationKindByte, animShotsBase + 19 + (id - 35), 0, 8
	default:
		return AnimationKindByte, 0, 0, 0
	}
}

// VitalKind classifies how a vital field is stored.
type VitalKind int

const (
	VitalKindByte VitalKind = iota
	VitalKindU16LE
	VitalKindBits
)

// VitalDef describes one named, non-rating/tendency player attribute.
type VitalDef struct {
	Kind    VitalKind
	Byte    int
	Bit     uint8
	Width   int // only meaningful for VitalKindBits
}

// Vital identifiers, in the order RosterEditor.cpp's switch enumerated them.
const (
	VitalPosition = iota
	VitalHeight
	VitalWeight
	VitalBirthDay
	VitalBirthMonth
	VitalBirthYear
	VitalHand
	VitalDunkHand
	VitalYearsPro
	VitalJerseyNum
	VitalTeamID1
	VitalTeamID2
	VitalContractY1
	VitalContractY2
	VitalContractY3
	VitalContractY4
	VitalContractY5
	VitalContractY6
	VitalContractY7
	VitalContractOpt
	VitalNoTrade
	VitalInjuryType
	VitalInjuryDays
	VitalPlayStyle
	VitalPlayType1
	VitalPlayType2
	VitalPlayType3
	VitalPlayType4
	VitalBodyType
	VitalMuscleTone
	VitalSkinTone
	VitalHairType
	VitalHairColor
	VitalEyeColor
	VitalEyebrow
	VitalMustache
	VitalFaceHairColor
	VitalBeard
	VitalGoatee
	VitalSecondaryPosition
	VitalDraftYear
	VitalDraftRound
	VitalDraftPick
	VitalDraftTeam
	VitalNickname
	VitalPlayInitiator
	VitalGoesTo3pt
	VitalPeakAgeStart
	VitalPeakAgeEnd
	VitalPotential
	VitalLoyalty
	VitalFinancialSecurity
	VitalPlayForWinner

	vitalCount
)

// VitalDefs maps each vital id to its on-disk placement.
var VitalDefs = map[int]VitalDef{
	VitalPosition:          {VitalKindByte, 33, 0, 0},
	VitalHeight:            {VitalKindByte, 34, 0, 0},
	VitalWeight:            {VitalKindByte, 35, 0, 0},
	VitalBirthDay:          {VitalKindByte, 37, 0, 0},
	VitalBirthMonth:        {VitalKindByte, 38, 0, 0},
	VitalBirthYear:         {VitalKindU16LE, 39, 0, 0},
	VitalHand:              {VitalKindByte, 41, 0, 0},
	VitalDunkHand:          {VitalKindByte, 42, 0, 0},
	VitalYearsPro:          {VitalKindByte, 43, 0, 0},
	VitalJerseyNum:         {VitalKindBits, 13, 4, 8},
	VitalTeamID1:           {VitalKindBits, 1, 0, 8},
	VitalTeamID2:           {VitalKindBits, 267, 0, 8},
	VitalContractY1:        {VitalKindBits, 222, 0, 32},
	VitalContractY2:        {VitalKindBits, 226, 0, 32},
	VitalContractY3:        {VitalKindBits, 230, 0, 32},
	VitalContractY4:        {VitalKindBits, 234, 0, 32},
	VitalContractY5:        {VitalKindBits, 238, 0, 32},
	VitalContractY6:        {VitalKindBits, 242, 0, 32},
	VitalContractY7:        {VitalKindBits, 246, 0, 32},
	VitalContractOpt:       {VitalKindBits, 162, 0, 2},
	VitalNoTrade:           {VitalKindBits, 185, 5, 1},
	VitalInjuryType:        {VitalKindBits, 32, 1, 7},
	VitalInjuryDays:        {VitalKindBits, 36, 0, 16},
	VitalPlayStyle:         {VitalKindBits, 162, 5, 5},
	VitalPlayType1:         {VitalKindBits, 151, 5, 4},
	VitalPlayType2:         {VitalKindBits, 152, 1, 4},
	VitalPlayType3:         {VitalKindBits, 152, 5, 4},
	VitalPlayType4:         {VitalKindBits, 153, 1, 4},
	VitalBodyType:          {VitalKindBits, 134, 3, 2},
	VitalMuscleTone:        {VitalKindBits, 134, 5, 1},
	VitalSkinTone:          {VitalKindBits, 134, 6, 3},
	VitalHairType:          {VitalKindBits, 135, 1, 6},
	VitalHairColor:         {VitalKindBits, 135, 7, 4},
	VitalEyeColor:          {VitalKindBits, 136, 3, 3},
	VitalEyebrow:           {VitalKindBits, 136, 6, 4},
	VitalMustache:          {VitalKindBits, 138, 0, 3},
	VitalFaceHairColor:     {VitalKindBits, 138, 3, 4},
	VitalBeard:             {VitalKindBits, 138, 7, 4},
	VitalGoatee:            {VitalKindBits, 139, 3, 5},
	VitalSecondaryPosition: {VitalKindByte, 44, 0, 0},
	VitalDraftYear:         {VitalKindByte, 48, 0, 0},
	VitalDraftRound:        {VitalKindBits, 49, 0, 4},
	VitalDraftPick:         {VitalKindBits, 49, 4, 6},
	VitalDraftTeam:         {VitalKindByte, 51, 0, 0},
	VitalNickname:          {VitalKindByte, 54, 0, 0},
	VitalPlayInitiator:     {VitalKindBits, 96, 0, 1},
	VitalGoesTo3pt:         {VitalKindBits, 96, 1, 1},
	VitalPeakAgeStart:      {VitalKindByte, 60, 0, 0},
	VitalPeakAgeEnd:        {VitalKindByte, 61, 0, 0},
	VitalPotential:         {VitalKindByte, 267, 0, 0},
	VitalLoyalty:           {VitalKindByte, 58, 0, 0},
	VitalFinancialSecurity: {VitalKindByte, 59, 0, 0},
	VitalPlayForWinner:     {VitalKindByte, 57, 0, 0},
}

// VitalCount is the number of known vital identifiers.
const VitalCount = vitalCount

// Team field offsets, all relative to a team record's base.
const (
	TeamIDOffset        = 0
	TeamCityOffset       = 1
	TeamCityWidth        = 32
	TeamNameOffset       = 33
	TeamNameWidth        = 32
	TeamAbbrOffset       = 65
	TeamAbbrWidth        = 4
	TeamColor1Offset     = 40
	TeamColor2Offset     = 44
	TeamRosterBaseOffset = 108
	TeamRosterSlots      = 15
)

// RosterToDisplay converts an on-disk rating byte to its display value.
func RosterToDisplay(raw byte) int {
	return int(raw)/3 + 25
}

// DisplayToRaw converts a display rating back to its on-disk byte, clamped
// to 0..255.
func DisplayToRaw(display int) byte {
	v := (display - 25) * 3
	if v < 0 {
		v = 0
	}
	if v > 255 {
		v = 255
	}
	return byte(v)
}
