package rosedit

import (
	"errors"
	"testing"

	"rosedit/discovery"
	"rosedit/fields"
)

func buildTestRoster(t *testing.T) []byte {
	t.Helper()
	recSize := fields.PlayerRecordSize
	buf := make([]byte, 8+recSize*6+fields.TeamRecordSize*4)

	playerBase := 8
	writeU16LE(buf, playerBase+fields.CFIDOffset, 0)
	writeU16LE(buf, playerBase+recSize+fields.CFIDOffset, 1013)
	writeU16LE(buf, playerBase+recSize*2+fields.CFIDOffset, 2451)

	teamBase := playerBase + recSize*6
	signature := []uint16{1, 9, 17, 25, 33}
	rosterOff := teamBase + fields.TeamRecordSize + fields.TeamRosterBaseOffset
	for i, id := range signature {
		writeU16LE(buf, rosterOff+i*2, id)
	}
	copy(buf[teamBase+fields.TeamCityOffset:], []byte("Philadelphia"))
	copy(buf[teamBase+fields.TeamRecordSize+fields.TeamCityOffset:], []byte("Milwaukee"))

	return buf
}

func writeU16LE(buf []byte, off int, val uint16) {
	buf[off] = byte(val)
	buf[off+1] = byte(val >> 8)
}

func Test_New_RejectsUndersizedBuffer(t *testing.T) {
	if _, err := New(make([]byte, 4)); !errors.Is(err, ErrInvalidBuffer) {
		t.Errorf("got %v, want ErrInvalidBuffer", err)
	}
}

func Test_Editor_DiscoversTables(t *testing.T) {
	buf := buildTestRoster(t)
	ed, err := New(buf)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if ed.PlayerCount() < 3 {
		t.Errorf("player count got %d, want at least 3", ed.PlayerCount())
	}
	if ed.TeamCount() < 2 {
		t.Errorf("team count got %d, want at least 2", ed.TeamCount())
	}
}

func Test_Editor_Player_IndexOutOfRange(t *testing.T) {
	buf := buildTestRoster(t)
	ed, err := New(buf)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if _, err := ed.Player(ed.PlayerCount() + 5); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("got %v, want ErrIndexOutOfRange", err)
	}
}

func Test_Editor_Player_AttributeAccess(t *testing.T) {
	buf := buildTestRoster(t)
	ed, err := New(buf)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	p, err := ed.Player(1)
	if err != nil {
		t.Fatalf("Player failed: %v", err)
	}
	cfid, err := p.CFID()
	if err != nil {
		t.Fatalf("CFID failed: %v", err)
	}
	if cfid != 1013 {
		t.Errorf("got %d, want 1013", cfid)
	}
}

func Test_Editor_Team_AttributeAccess(t *testing.T) {
	buf := buildTestRoster(t)
	ed, err := New(buf)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	tm, err := ed.Team(0)
	if err != nil {
		t.Fatalf("Team failed: %v", err)
	}
	city, err := tm.City()
	if err != nil {
		t.Fatalf("City failed: %v", err)
	}
	if city != "Philadelphia" {
		t.Errorf("got %q, want %q", city, "Philadelphia")
	}
}

func Test_Editor_SaveAndRecalculateChecksum(t *testing.T) {
	buf := buildTestRoster(t)
	ed, err := New(buf)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if err := ed.SaveAndRecalculateChecksum(); err != nil {
		t.Fatalf("SaveAndRecalculateChecksum failed: %v", err)
	}
}

func Test_NewWithConfig_HonorsLowerCFIDCeiling(t *testing.T) {
	buf := buildTestRoster(t)
	cfg := discovery.Config{CFIDCeiling: 2000, AnchorDepth: 3}
	ed, err := NewWithConfig(buf, cfg)
	if err != nil {
		t.Fatalf("NewWithConfig failed: %v", err)
	}
	// The second seed record's CFID (2451) exceeds the lowered ceiling, so
	// the default-config anchor this buffer satisfies must not be found.
	if ed.PlayerCount() != 0 {
		t.Errorf("player count got %d, want 0 under a ceiling below the seeded CFIDs", ed.PlayerCount())
	}
}
