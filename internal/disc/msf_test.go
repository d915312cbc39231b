package disc

import "testing"

func TestMSFSector(t *testing.T) {
	tests := []struct {
		msf  MSF
		want int
	}{
		{MSF{0, 0, 0}, 0},
		{MSF{0, 0, 1}, 1},
		{MSF{0, 1, 0}, 75},
		{MSF{1, 0, 0}, 4500},
		{MSF{0, 2, 0}, 150},
		{MSF{0, 32, 0}, 2400},
		{MSF{59, 59, 74}, 59*4500 + 59*75 + 74},
	}
	for _, tt := range tests {
		t.Run(tt.msf.String(), func(t *testing.T) {
			if got := tt.msf.Sector(); got != tt.want {
				t.Errorf("MSF%v.Sector() = %d, want %d", tt.msf, got, tt.want)
			}
		})
	}
}

func TestSectorToMSF(t *testing.T) {
	tests := []struct {
		sector int
		want   MSF
	}{
		{0, MSF{0, 0, 0}},
		{74, MSF{0, 0, 74}},
		{75, MSF{0, 1, 0}},
		{150, MSF{0, 2, 0}},
		{2400, MSF{0, 32, 0}},
		{4500, MSF{1, 0, 0}},
	}
	for _, tt := range tests {
		if got := SectorToMSF(tt.sector); got != tt.want {
			t.Errorf("SectorToMSF(%d) = %v, want %v", tt.sector, got, tt.want)
		}
	}
}

func TestMSFRoundTrip(t *testing.T) {
	// Conversion must be invertible across the full addressable range of a
	// 80-minute disc.
	for sector := 0; sector < 80*SecondsPerMinute*FramesPerSecond; sector += 7 {
		msf := SectorToMSF(sector)
		if msf.Second >= SecondsPerMinute || msf.Frame >= FramesPerSecond {
			t.Fatalf("SectorToMSF(%d) produced out-of-range components %v", sector, msf)
		}
		if got := msf.Sector(); got != sector {
			t.Fatalf("round trip of sector %d via %v yielded %d", sector, msf, got)
		}
	}
}

func TestMSFString(t *testing.T) {
	if got := (MSF{0, 2, 0}).String(); got != "00:02:00" {
		t.Errorf("String() = %q, want %q", got, "00:02:00")
	}
}
