package version

import "testing"

func TestParse(t *testing.T) {
	tests := []struct {
		in      string
		want    SpecVersion
		wantErr bool
	}{
		{"1.0", SpecVersion{1, 0}, false},
		{"2.15", SpecVersion{2, 15}, false},
		{"1", SpecVersion{}, true},
		{"1.0.0", SpecVersion{}, true},
		{"a.b", SpecVersion{}, true},
		{".", SpecVersion{}, true},
		{"", SpecVersion{}, true},
	}

	for _, tt := range tests {
		got, err := Parse(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("Parse(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("Parse(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestCurrentParses(t *testing.T) {
	if _, err := Parse(Current); err != nil {
		t.Errorf("Current %q does not parse: %v", Current, err)
	}
}

func TestCompatible(t *testing.T) {
	a := SpecVersion{1, 0}
	b := SpecVersion{1, 7}
	c := SpecVersion{2, 0}

	if !a.Compatible(b) {
		t.Error("same major should be compatible")
	}
	if a.Compatible(c) {
		t.Error("different major should be incompatible")
	}
}

func TestString(t *testing.T) {
	if got := (SpecVersion{1, 4}).String(); got != "1.4" {
		t.Errorf("String() = %q, want %q", got, "1.4")
	}
}
