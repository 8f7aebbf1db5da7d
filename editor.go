// Package rosedit binds bit-level record access, static field layout, and
// heuristic table discovery into a single editor over an in-memory .ROS
// roster buffer.
package rosedit

import (
	"errors"
	"fmt"

	"rosedit/checksum"
	"rosedit/discovery"
	"rosedit/fields"
	"rosedit/player"
	"rosedit/team"
)

// ErrInvalidBuffer is returned when a buffer is shorter than 16 bytes.
var ErrInvalidBuffer = errors.New("rosedit: invalid buffer")

// ErrIndexOutOfRange is returned by Player/Team for an index outside the
// discovered table.
var ErrIndexOutOfRange = errors.New("rosedit: index out of range")

// Editor is a bound view over one roster buffer: discovery has already
// run, and Player/Team index into the discovered tables.
type Editor struct {
	buf []byte

	playerTableOffset int
	playerCount       int
	teamTableOffset   int
	teamCount         int
}

// New discovers the player and team tables within buf using discovery's
// default heuristic parameters and returns an Editor bound to it. buf is
// held by reference, not copied; writes through the returned Editor's
// accessors mutate it directly.
func New(buf []byte) (*Editor, error) {
	return NewWithConfig(buf, discovery.DefaultConfig())
}

// NewWithConfig is New with caller-supplied discovery heuristics, for a
// host that overrides the validation depth or CFID ceiling (e.g. from an
// ini file) ahead of a future format revision.
func NewWithConfig(buf []byte, cfg discovery.Config) (*Editor, error) {
	if len(buf) < 16 {
		return nil, fmt.Errorf("%w: need at least 16 bytes, got %d", ErrInvalidBuffer, len(buf))
	}

	e := &Editor{buf: buf}
	e.playerTableOffset, e.playerCount = discovery.DiscoverPlayers(buf, cfg)
	e.teamTableOffset, e.teamCount = discovery.DiscoverTeams(buf, cfg)
	return e, nil
}

// PlayerCount returns the number of player records discovery found.
func (e *Editor) PlayerCount() int { return e.playerCount }

// TeamCount returns the number of team records discovery found.
func (e *Editor) TeamCount() int { return e.teamCount }

// Player returns a view over the player record at index (0..PlayerCount()-1).
func (e *Editor) Player(index int) (player.View, error) {
	if index < 0 || index >= e.playerCount {
		return player.View{}, fmt.Errorf("%w: player index %d, have %d", ErrIndexOutOfRange, index, e.playerCount)
	}
	base := e.playerTableOffset + index*fields.PlayerRecordSize
	return player.New(e.buf, base)
}

// Team returns a view over the team record at index (0..TeamCount()-1).
func (e *Editor) Team(index int) (team.View, error) {
	if index < 0 || index >= e.teamCount {
		return team.View{}, fmt.Errorf("%w: team index %d, have %d", ErrIndexOutOfRange, index, e.teamCount)
	}
	base := e.teamTableOffset + index*fields.TeamRecordSize
	return team.New(e.buf, base)
}

// SaveAndRecalculateChecksum recomputes and writes the buffer's CRC32
// header (bytes 0..3). It never re-runs discovery: the checksum covers the payload as a
// whole and is indifferent to how the tables inside it were located.
func (e *Editor) SaveAndRecalculateChecksum() error {
	return checksum.Recalculate(e.buf)
}
