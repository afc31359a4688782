package manifest

import (
	"testing"
)

func TestCheckEngine(t *testing.T) {
	tests := []struct {
		name       string
		constraint string
		host       string
		wantErr    bool
	}{
		{"no constraint", "", "1.0.0", false},
		{"wildcard", "*", "0.1.0", false},
		{"caret satisfied", "^1.2.0", "1.4.0", false},
		{"caret major mismatch", "^1.2.0", "2.0.0", true},
		{"range satisfied", ">=1.0.0 <2.0.0", "1.9.9", false},
		{"below minimum", ">=1.5.0", "1.4.0", true},
		{"v prefix host", "^1.0.0", "v1.2.3", false},
		{"dev host", "^9.0.0", "dev", false},
		{"invalid constraint", "not a constraint", "1.0.0", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &Manifest{Name: "ext", Publisher: "acme"}
			if tt.constraint != "" {
				m.Engines = map[string]string{EngineName: tt.constraint}
			}
			err := m.CheckEngine(tt.host)
			if tt.wantErr && err == nil {
				t.Errorf("CheckEngine(%q) against %q: expected error, got nil", tt.host, tt.constraint)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("CheckEngine(%q) against %q: unexpected error: %v", tt.host, tt.constraint, err)
			}
		})
	}
}

func TestSemVer(t *testing.T) {
	tests := []struct {
		version string
		want    string
		wantErr bool
	}{
		{"1.2.3", "1.2.3", false},
		{"v0.4.0", "0.4.0", false},
		{"1.0.0-beta.1", "1.0.0-beta.1", false},
		{"latest", "", true},
	}

	for _, tt := range tests {
		m := &Manifest{Name: "ext", Version: tt.version}
		v, err := m.SemVer()
		if tt.wantErr {
			if err == nil {
				t.Errorf("SemVer(%q): expected error, got nil", tt.version)
			}
			continue
		}
		if err != nil {
			t.Fatalf("SemVer(%q): unexpected error: %v", tt.version, err)
		}
		if v.String() != tt.want {
			t.Errorf("SemVer(%q) = %q, want %q", tt.version, v.String(), tt.want)
		}
	}
}
