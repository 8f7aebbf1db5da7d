// Package player implements attribute accessors for a single player
// record, delegating all byte and bit placement to the fields package's
// static tables.
package player

import (
	"errors"
	"fmt"

	"rosedit/fields"
	"rosedit/recordview"
)

// ErrInvalidArgument is returned for a value outside a field's valid domain,
// such as a CFID outside 0..65535.
var ErrInvalidArgument = errors.New("player: invalid argument")

// View wraps one player record.
type View struct {
	rv recordview.View
}

// New constructs a player View over buf at base byte offset.
func New(buf []byte, base int) (View, error) {
	rv, err := recordview.New(buf, base, fields.PlayerRecordSize)
	if err != nil {
		return View{}, err
	}
	return View{rv: rv}, nil
}

// Base returns the record's absolute base offset into the buffer.
func (v View) Base() int { return v.rv.Base() }

// CFID returns the player's roster-wide identifier.
func (v View) CFID() (int, error) {
	val, err := v.rv.U16LEAt(fields.CFIDOffset)
	if err != nil {
		return 0, err
	}
	return int(val), nil
}

// SetCFID sets the player's roster-wide identifier. newCFID must be in 0..65535.
func (v View) SetCFID(newCFID int) error {
	if newCFID < 0 || newCFID > 65535 {
		return fmt.Errorf("%w: cfid %d not in 0..65535", ErrInvalidArgument, newCFID)
	}
	return v.rv.WriteU16LEAt(fields.CFIDOffset, uint16(newCFID))
}

// GetRating returns the display-scale value of rating id (0..42). Unknown
// ids, and bounds failures, yield the rating codec's neutral value (25)
// rather than 0.
func (v View) GetRating(id int) int {
	if id < 0 || id >= len(fields.RatingOffsets) {
		return fields.RosterToDisplay(0)
	}
	raw, err := v.rv.ByteAt(fields.RatingOffsets[id])
	if err != nil {
		return fields.RosterToDisplay(0)
	}
	return fields.RosterToDisplay(raw)
}

// SetRating writes the display-scale value of rating id. Unknown ids are a no-op.
func (v View) SetRating(id int, display int) {
	if id < 0 || id >= len(fields.RatingOffsets) {
		return
	}
	_ = v.rv.WriteByteAt(fields.RatingOffsets[id], fields.DisplayToRaw(display))
}

// GetTendency returns the 7-bit value of tendency id (0..57), masking off
// the game-owned flag bit. Unknown ids yield 0.
func (v View) GetTendency(id int) int {
	if id < 0 || id >= fields.TendencyCount {
		return 0
	}
	bo, bi := fields.TendencyOffset(id)
	raw, err := v.rv.BitsAt(bo, bi, 8)
	if err != nil {
		return 0
	}
	return int(raw & 0x7F)
}

// SetTendency writes the 7-bit value of tendency id, preserving the
// existing game-owned flag bit via read-modify-write. Unknown ids are a no-op.
func (v View) SetTendency(id int, value int) {
	if id < 0 || id >= fields.TendencyCount {
		return
	}
	bo, bi := fields.TendencyOffset(id)
	current, err := v.rv.BitsAt(bo, bi, 8)
	if err != nil {
		return
	}
	flag := current & 0x80
	_ = v.rv.WriteBitsAt(bo, bi, 8, (uint32(value)&0x7F)|flag)
}

// GetHotZone returns the 2-bit value of hot zone id (0..13): 0=cold,
// 1=neutral, 2=hot, 3=burned. Unknown ids yield 0.
func (v View) GetHotZone(id int) int {
	if id < 0 || id >= fields.HotZoneCount {
		return 0
	}
	bo, bi := fields.HotZoneOffset(id)
	raw, err := v.rv.BitsAt(bo, bi, 2)
	if err != nil {
		return 0
	}
	return int(raw)
}

// SetHotZone writes the 2-bit value of hot zone id. Unknown ids are a no-op.
func (v View) SetHotZone(id int, value int) {
	if id < 0 || id >= fields.HotZoneCount {
		return
	}
	bo, bi := fields.HotZoneOffset(id)
	_ = v.rv.WriteBitsAt(bo, bi, 2, uint32(value)&0x3)
}

// GetSigSkill returns the 6-bit value of signature skill slot (0..4).
// Unknown slots yield 0.
func (v View) GetSigSkill(slot int) int {
	if slot < 0 || slot >= fields.SigSkillCount {
		return 0
	}
	bo, bi := fields.SigSkillOffset(slot)
	raw, err := v.rv.BitsAt(bo, bi, 6)
	if err != nil {
		return 0
	}
	return int(raw)
}

// SetSigSkill writes the 6-bit value of signature skill slot. Unknown slots are a no-op.
func (v View) SetSigSkill(slot int, value int) {
	if slot < 0 || slot >= fields.SigSkillCount {
		return
	}
	bo, bi := fields.SigSkillOffset(slot)
	_ = v.rv.WriteBitsAt(bo, bi, 6, uint32(value)&0x3F)
}

// GetGear returns the value of gear field id (0..47), widths vary per
// fields.GearDefs. Unknown ids yield 0.
func (v View) GetGear(id int) uint32 {
	if id < 0 || id >= fields.GearCount {
		return 0
	}
	bo, bi, width := fields.GearOffset(id)
	raw, err := v.rv.BitsAt(bo, bi, width)
	if err != nil {
		return 0
	}
	return raw
}

// SetGear writes the value of gear field id, masked to its declared width. Unknown ids are a no-op.
func (v View) SetGear(id int, value uint32) {
	if id < 0 || id >= fields.GearCount {
		return
	}
	bo, bi, width := fields.GearOffset(id)
	var mask uint32
	if width >= 32 {
		mask = 0xFFFFFFFF
	} else {
		mask = (uint32(1) << width) - 1
	}
	_ = v.rv.WriteBitsAt(bo, bi, width, value&mask)
}

// GetAnimation returns the value of animation id (0..39), unifying the
// shots/signatures, dunks, and layup sub-blocks behind one id space.
// Unknown ids yield 0.
func (v View) GetAnimation(id int) int {
	if id < 0 || id >= fields.AnimationCount {
		return 0
	}
	kind, byteOff, bitOff, width := fields.AnimationPlacement(id)
	switch kind {
	case fields.AnimationKindByte:
		raw, err := v.rv.ByteAt(byteOff)
		if err != nil {
			return 0
		}
		return int(raw)
	case fields.AnimationKindBits:
		raw, err := v.rv.BitsAt(byteOff, bitOff, width)
		if err != nil {
			return 0
		}
		return int(raw)
	default:
		return 0
	}
}

// SetAnimation writes the value of animation id. Unknown ids are a no-op.
func (v View) SetAnimation(id int, value int) {
	if id < 0 || id >= fields.AnimationCount {
		return
	}
	kind, byteOff, bitOff, width := fields.AnimationPlacement(id)
	switch kind {
	case fields.AnimationKindByte:
		_ = v.rv.WriteByteAt(byteOff, byte(value))
	case fields.AnimationKindBits:
		mask := (uint32(1) << width) - 1
		_ = v.rv.WriteBitsAt(byteOff, bitOff, width, uint32(value)&mask)
	}
}

// GetVital returns the value of vital id per fields.VitalDefs. Unknown ids yield 0.
func (v View) GetVital(id int) uint32 {
	def, ok := fields.VitalDefs[id]
	if !ok {
		return 0
	}
	switch def.Kind {
	case fields.VitalKindByte:
		raw, err := v.rv.ByteAt(def.Byte)
		if err != nil {
			return 0
		}
		return uint32(raw)
	case fields.VitalKindU16LE:
		raw, err := v.rv.U16LEAt(def.Byte)
		if err != nil {
			return 0
		}
		return uint32(raw)
	case fields.VitalKindBits:
		raw, err := v.rv.BitsAt(def.Byte, def.Bit, def.Width)
		if err != nil {
			return 0
		}
		return raw
	default:
		return 0
	}
}

// SetVital writes the value of vital id per fields.VitalDefs. Unknown ids are a no-op.
func (v View) SetVital(id int, value uint32) {
	def, ok := fields.VitalDefs[id]
	if !ok {
		return
	}
	switch def.Kind {
	case fields.VitalKindByte:
		_ = v.rv.WriteByteAt(def.Byte, byte(value))
	case fields.VitalKindU16LE:
		_ = v.rv.WriteU16LEAt(def.Byte, uint16(value))
	case fields.VitalKindBits:
		var mask uint32
		if def.Width >= 32 {
			mask = 0xFFFFFFFF
		} else {
			mask = (uint32(1) << def.Width) - 1
		}
		_ = v.rv.WriteBitsAt(def.Byte, def.Bit, def.Width, value&mask)
	}
}
