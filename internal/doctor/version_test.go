package doctor

import (
	"testing"
)

func TestExtractVersion(t *testing.T) {
	tests := []struct {
		output  string
		want    string
		wantErr bool
	}{
		{"git version 2.43.0", "2.43.0", false},
		{"git version 2.39.3 (Apple Git-146)", "2.39.3", false},
		{"tmux 3.3a", "3.3", false},
		{"tmux next-3.5", "3.5", false},
		{"tmux master", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.output, func(t *testing.T) {
			got, err := ExtractVersion(tt.output)
			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error, got %q", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ExtractVersion(%q) = %q, want %q", tt.output, got, tt.want)
			}
		})
	}
}

func TestCompareVersions(t *testing.T) {
	tests := []struct {
		name     string
		a, b     string
		expected int
		wantErr  bool
	}{
		{"older patch", "2.0.0", "2.0.1", -1, false},
		{"older minor", "2.0.0", "2.1.0", -1, false},
		{"equal", "2.1.0", "2.1.0", 0, false},
		{"newer", "3.3", "2.1.0", 1, false},
		{"two component", "2.1", "2.1.0", 0, false},
		{"v prefix", "v2.0.0", "2.0.0", 0, false},
		{"invalid", "master", "2.0.0", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CompareVersions(tt.a, tt.b)
			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("CompareVersions(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.expected)
			}
		})
	}
}

func TestMeetsMinimum(t *testing.T) {
	ok, err := MeetsMinimum("1.9", MinTmuxVersion)
	if err != nil || ok {
		t.Errorf("MeetsMinimum(1.9) = %v, %v; want false, nil", ok, err)
	}
	ok, err = MeetsMinimum("3.3", MinTmuxVersion)
	if err != nil || !ok {
		t.Errorf("MeetsMinimum(3.3) = %v, %v; want true, nil", ok, err)
	}
}
