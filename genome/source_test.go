package genome

import "testing"

func TestSourceSameKindIgnoresPayload(t *testing.T) {
	empty := CustomSource(nil)
	loaded := CustomSource([]byte(">x\nACGT\n"))

	if !empty.SameKind(loaded) {
		t.Error("custom sources with different payloads should share the toggle state")
	}
	if empty.Equal(loaded) {
		t.Error("Equal must compare payload")
	}
	if !loaded.Equal(CustomSource([]byte(">x\nACGT\n"))) {
		t.Error("identical custom sources not Equal")
	}
	if BundledSource().SameKind(loaded) {
		t.Error("bundled and custom share a kind")
	}
}

func TestSourceHasData(t *testing.T) {
	tests := []struct {
		name string
		src  Source
		want bool
	}{
		{"bundled", BundledSource(), true},
		{"custom empty", CustomSource(nil), false},
		{"custom loaded", CustomSource([]byte("ACGT")), true},
	}
	for _, tt := range tests {
		if got := tt.src.HasData(); got != tt.want {
			t.Errorf("%s: HasData = %v, want %v", tt.name, got, tt.want)
		}
	}
}
