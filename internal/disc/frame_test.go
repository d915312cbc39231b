package disc

import "testing"

func TestRawFrameAccessors(t *testing.T) {
	f := new(RawFrame)
	f[submodeByteOffset] = 0x02
	f[xaFlagsByteOffset] = 0x20

	if got := f.SubmodeIndicator(); got != 0x02 {
		t.Errorf("SubmodeIndicator() = %#02x, want 0x02", got)
	}
	if got := f.XAFlags(); got != 0x20 {
		t.Errorf("XAFlags() = %#02x, want 0x20", got)
	}
}

func TestRawFrameWindow(t *testing.T) {
	f := new(RawFrame)
	copy(f[0x11:], "CD001")

	tests := []struct {
		name        string
		off, length int
		wantNil     bool
	}{
		{"signature window", 0x11, 5, false},
		{"zero length", 0, 0, false},
		{"whole frame", 0, RawFrameSize, false},
		{"negative offset", -1, 5, true},
		{"negative length", 0, -1, true},
		{"past the end", RawFrameSize - 2, 5, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := f.Window(tt.off, tt.length)
			if (got == nil) != tt.wantNil {
				t.Errorf("Window(%d, %d) nil = %v, want %v", tt.off, tt.length, got == nil, tt.wantNil)
			}
			if !tt.wantNil && len(got) != tt.length {
				t.Errorf("Window(%d, %d) length = %d", tt.off, tt.length, len(got))
			}
		})
	}

	if got := string(f.Window(0x11, 5)); got != "CD001" {
		t.Errorf("Window(0x11, 5) = %q, want CD001", got)
	}
}
