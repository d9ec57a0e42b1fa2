package component

import "testing"

func TestLabelRoles(t *testing.T) {
	tests := []struct {
		label   Label
		name    string
		landing bool
		lethal  bool
	}{
		{LabelPlayer, "player", false, false},
		{LabelBlock, "block", true, false},
		{LabelGround, "ground", true, false},
		{LabelSpike, "spike", false, true},
		{LabelSpikeBlock, "spikeBlock", false, false},
	}
	if len(tests) != len(Labels) {
		t.Fatalf("table covers %d labels, Labels has %d", len(tests), len(Labels))
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.label.String() != tt.name {
				t.Fatalf("String() = %q", tt.label.String())
			}
			parsed, err := ParseLabel(tt.name)
			if err != nil || parsed != tt.label {
				t.Fatalf("ParseLabel(%q) = %v, %v", tt.name, parsed, err)
			}
			if tt.label.Landing() != tt.landing {
				t.Fatalf("Landing() = %v", tt.label.Landing())
			}
			if tt.label.Lethal() != tt.lethal {
				t.Fatalf("Lethal() = %v", tt.label.Lethal())
			}
		})
	}
}

func TestParseLabelUnknown(t *testing.T) {
	for _, s := range []string{"", "none", "Spike", "lava"} {
		if _, err := ParseLabel(s); err == nil {
			t.Fatalf("expected error for %q", s)
		}
	}
}
