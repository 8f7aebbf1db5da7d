// Package team implements attribute accessors for a single team record.
package team

import (
	"rosedit/fields"
	"rosedit/recordview"
)

// View wraps one team record.
type View struct {
	rv recordview.View
}

// New constructs a team View over buf at base byte offset.
func New(buf []byte, base int) (View, error) {
	rv, err := recordview.New(buf, base, fields.TeamRecordSize)
	if err != nil {
		return View{}, err
	}
	return View{rv: rv}, nil
}

// Base returns the record's absolute base offset into the buffer.
func (v View) Base() int { return v.rv.Base() }

// ID returns the team's identifier byte.
func (v View) ID() (byte, error) {
	return v.rv.ByteAt(fields.TeamIDOffset)
}

// SetID writes the team's identifier byte.
func (v View) SetID(id byte) error {
	return v.rv.WriteByteAt(fields.TeamIDOffset, id)
}

// City returns the team's city name, trimmed at its first NUL or other
// unprintable byte.
func (v View) City() (string, error) {
	raw, err := v.rv.BytesAt(fields.TeamCityOffset, fields.TeamCityWidth)
	if err != nil {
		return "", err
	}
	return trimASCII(raw), nil
}

// SetCity writes the team's city name, truncated or zero-padded to the field width.
func (v View) SetCity(city string) error {
	return v.rv.WriteBytesAt(fields.TeamCityOffset, fields.TeamCityWidth, []byte(city))
}

// Name returns the team's nickname, trimmed at its first NUL or other
// unprintable byte.
func (v View) Name() (string, error) {
	raw, err := v.rv.BytesAt(fields.TeamNameOffset, fields.TeamNameWidth)
	if err != nil {
		return "", err
	}
	return trimASCII(raw), nil
}

// SetName writes the team's nickname, truncated or zero-padded to the field width.
func (v View) SetName(name string) error {
	return v.rv.WriteBytesAt(fields.TeamNameOffset, fields.TeamNameWidth, []byte(name))
}

// Abbreviation returns the team's short code, trimmed at its first NUL or
// other unprintable byte.
func (v View) Abbreviation() (string, error) {
	raw, err := v.rv.BytesAt(fields.TeamAbbrOffset, fields.TeamAbbrWidth)
	if err != nil {
		return "", err
	}
	return trimASCII(raw), nil
}

// SetAbbreviation writes the team's short code, truncated or zero-padded to the field width.
func (v View) SetAbbreviation(abbr string) error {
	return v.rv.WriteBytesAt(fields.TeamAbbrOffset, fields.TeamAbbrWidth, []byte(abbr))
}

// Color1 returns the team's primary ARGB color.
func (v View) Color1() (uint32, error) {
	return v.rv.U32LEAt(fields.TeamColor1Offset)
}

// SetColor1 writes the team's primary ARGB color.
func (v View) SetColor1(argb uint32) error {
	return v.rv.WriteU32LEAt(fields.TeamColor1Offset, argb)
}

// Color2 returns the team's secondary ARGB color.
func (v View) Color2() (uint32, error) {
	return v.rv.U32LEAt(fields.TeamColor2Offset)
}

// SetColor2 writes the team's secondary ARGB color.
func (v View) SetColor2(argb uint32) error {
	return v.rv.WriteU32LEAt(fields.TeamColor2Offset, argb)
}

// RosterPlayerID returns the player id stored at active-roster slot index
// (0..14). Out-of-range slots silently yield 0.
func (v View) RosterPlayerID(index int) int {
	if index < 0 || index >= fields.TeamRosterSlots {
		return 0
	}
	off := fields.TeamRosterBaseOffset + index*2
	val, err := v.rv.U16LEAt(off)
	if err != nil {
		return 0
	}
	return int(val)
}

// SetRosterPlayerID writes the player id at active-roster slot index.
// Out-of-range slots are a no-op.
func (v View) SetRosterPlayerID(index int, playerID int) {
	if index < 0 || index >= fields.TeamRosterSlots {
		return
	}
	off := fields.TeamRosterBaseOffset + index*2
	_ = v.rv.WriteU16LEAt(off, uint16(playerID))
}

// trimASCII truncates raw at its first unreadable byte: NUL or any
// control/high-bit byte outside the printable range 32..=126.
func trimASCII(raw []byte) string {
	for i, b := range raw {
		if b < 32 || b > 126 {
			return string(raw[:i])
		}
	}
	return string(raw)
}
