package utils

import "testing"

func TestNormalizeTime(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"10:00", "10:00:00", false},
		{"10:00:00", "10:00:00", false},
		{"09:30", "09:30:00", false},
		{"23:59:59", "23:59:59", false},
		{"00:00", "00:00:00", false},
		{"24:00", "", true},
		{"10:61", "", true},
		{"10", "", true},
		{"ten o'clock", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		got, err := NormalizeTime(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("NormalizeTime(%q): expected error, got %q", tt.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("NormalizeTime(%q): unexpected error %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("NormalizeTime(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestValidDate(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"2025-03-10", true},
		{"2025-12-31", true},
		{"2025-13-01", false},
		{"2025-02-30", false},
		{"10-03-2025", false},
		{"not a date", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := ValidDate(tt.in); got != tt.want {
			t.Errorf("ValidDate(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
