package numberutils

import "testing"

func TestToNonNegativeInt(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"0", 0, false},
		{" 7 ", 7, false},
		{"-1", 0, true},
		{"two", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		got, err := ToNonNegativeInt(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("ToNonNegativeInt(%q) = %d, %v", tt.in, got, err)
		}
	}
}
