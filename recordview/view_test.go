package recordview

import (
	"errors"
	"testing"
)

func Test_New_RejectsBaseBeyondBuffer(t *testing.T) {
	buf := make([]byte, 10)
	if _, err := New(buf, 11, 0); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("got %v, want ErrOutOfRange", err)
	}
}

func Test_New_RejectsRecordPastEnd(t *testing.T) {
	buf := make([]byte, 10)
	if _, err := New(buf, 5, 10); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("got %v, want ErrOutOfRange", err)
	}
}

func Test_ByteAt_RespectsBase(t *testing.T) {
	buf := []byte{0, 0, 0, 0xAB, 0, 0}
	v, err := New(buf, 3, 0)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	got, err := v.ByteAt(0)
	if err != nil {
		t.Fatalf("ByteAt failed: %v", err)
	}
	if got != 0xAB {
		t.Errorf("got %#02x, want 0xAB", got)
	}
}

func Test_ByteAt_OutOfRange(t *testing.T) {
	buf := make([]byte, 4)
	v, _ := New(buf, 2, 0)
	if _, err := v.ByteAt(2); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("got %v, want ErrOutOfRange", err)
	}
}

func Test_U16LEAt_RoundTrip(t *testing.T) {
	buf := make([]byte, 8)
	v, _ := New(buf, 2, 0)
	if err := v.WriteU16LEAt(1, 0xBEEF); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	if buf[3] != 0xEF || buf[4] != 0xBE {
		t.Errorf("bytes got %#02x %#02x, want 0xEF 0xBE", buf[3], buf[4])
	}
	got, err := v.U16LEAt(1)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if got != 0xBEEF {
		t.Errorf("got %#x, want 0xBEEF", got)
	}
}

func Test_U16LEAt_RejectsTrailingByte(t *testing.T) {
	buf := make([]byte, 4)
	v, _ := New(buf, 0, 0)
	if _, err := v.U16LEAt(3); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("got %v, want ErrOutOfRange", err)
	}
}

func Test_U32LEAt_RoundTrip(t *testing.T) {
	buf := make([]byte, 8)
	v, _ := New(buf, 0, 0)
	if err := v.WriteU32LEAt(2, 0xDEADBEEF); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	got, err := v.U32LEAt(2)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if got != 0xDEADBEEF {
		t.Errorf("got %#x, want 0xDEADBEEF", got)
	}
}

func Test_BitsAt_RespectsBase(t *testing.T) {
	buf := make([]byte, 8)
	v, _ := New(buf, 4, 0)
	if err := v.WriteBitsAt(0, 3, 9, 0x1F3); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	want := []byte{0x1F, 0x60}
	if buf[4] != want[0] || buf[5] != want[1] {
		t.Errorf("got %#02x %#02x, want %#02x %#02x", buf[4], buf[5], want[0], want[1])
	}
	got, err := v.BitsAt(0, 3, 9)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if got != 0x1F3 {
		t.Errorf("got %#x, want 0x1F3", got)
	}
}

func Test_BytesAt_RoundTrip(t *testing.T) {
	buf := make([]byte, 16)
	v, _ := New(buf, 4, 0)
	if err := v.WriteBytesAt(2, 5, []byte("Heat")); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	got, err := v.BytesAt(2, 5)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	want := []byte{'H', 'e', 'a', 't', 0}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("byte %d: got %#02x, want %#02x", i, got[i], want[i])
		}
	}
}

func Test_BytesAt_OutOfRange(t *testing.T) {
	buf := make([]byte, 4)
	v, _ := New(buf, 0, 0)
	if _, err := v.BytesAt(0, 5); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("got %v, want ErrOutOfRange", err)
	}
}
