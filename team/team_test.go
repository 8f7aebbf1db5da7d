package team

import (
	"testing"

	"rosedit/fields"
)

func newTestRecord(t *testing.T) (View, []byte) {
	t.Helper()
	buf := make([]byte, fields.TeamRecordSize)
	v, err := New(buf, 0)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return v, buf
}

func Test_City_RoundTrip(t *testing.T) {
	v, _ := newTestRecord(t)
	if err := v.SetCity("Miami"); err != nil {
		t.Fatalf("SetCity failed: %v", err)
	}
	got, err := v.City()
	if err != nil {
		t.Fatalf("City failed: %v", err)
	}
	if got != "Miami" {
		t.Errorf("got %q, want %q", got, "Miami")
	}
}

func Test_Name_RoundTrip(t *testing.T) {
	v, _ := newTestRecord(t)
	if err := v.SetName("Heat"); err != nil {
		t.Fatalf("SetName failed: %v", err)
	}
	got, err := v.Name()
	if err != nil {
		t.Fatalf("Name failed: %v", err)
	}
	if got != "Heat" {
		t.Errorf("got %q, want %q", got, "Heat")
	}
}

func Test_Abbreviation_RoundTrip(t *testing.T) {
	v, _ := newTestRecord(t)
	if err := v.SetAbbreviation("MIA"); err != nil {
		t.Fatalf("SetAbbreviation failed: %v", err)
	}
	got, err := v.Abbreviation()
	if err != nil {
		t.Fatalf("Abbreviation failed: %v", err)
	}
	if got != "MIA" {
		t.Errorf("got %q, want %q", got, "MIA")
	}
}

func Test_City_TrimsAtUnreadableByte(t *testing.T) {
	v, buf := newTestRecord(t)
	copy(buf[fields.TeamCityOffset:], []byte("Mia"))
	buf[fields.TeamCityOffset+3] = 0x01 // control byte, no NUL in sight
	copy(buf[fields.TeamCityOffset+4:], []byte("mi"))

	got, err := v.City()
	if err != nil {
		t.Fatalf("City failed: %v", err)
	}
	if got != "Mia" {
		t.Errorf("got %q, want %q", got, "Mia")
	}
}

func Test_Colors_RoundTrip(t *testing.T) {
	v, _ := newTestRecord(t)
	if err := v.SetColor1(0xFF98002E); err != nil {
		t.Fatalf("SetColor1 failed: %v", err)
	}
	if err := v.SetColor2(0xFFF9A01B); err != nil {
		t.Fatalf("SetColor2 failed: %v", err)
	}
	c1, err := v.Color1()
	if err != nil {
		t.Fatalf("Color1 failed: %v", err)
	}
	if c1 != 0xFF98002E {
		t.Errorf("got %#x, want 0xFF98002E", c1)
	}
	c2, err := v.Color2()
	if err != nil {
		t.Fatalf("Color2 failed: %v", err)
	}
	if c2 != 0xFFF9A01B {
		t.Errorf("got %#x, want 0xFFF9A01B", c2)
	}
}

func Test_Roster_BucksSignature(t *testing.T) {
	v, _ := newTestRecord(t)
	signature := []int{1, 9, 17, 25, 33}
	for i, id := range signature {
		v.SetRosterPlayerID(i, id)
	}
	for i, want := range signature {
		if got := v.RosterPlayerID(i); got != want {
			t.Errorf("slot %d: got %d, want %d", i, got, want)
		}
	}
}

func Test_Roster_OutOfRangeSlotIsNeutral(t *testing.T) {
	v, _ := newTestRecord(t)
	if got := v.RosterPlayerID(15); got != 0 {
		t.Errorf("got %d, want 0", got)
	}
	v.SetRosterPlayerID(-1, 99) // must not panic
}
