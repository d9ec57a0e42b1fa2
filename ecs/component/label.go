package component

import "fmt"

// Label identifies the gameplay role of a body or body part.
type Label uint8

const (
	LabelNone Label = iota
	LabelPlayer
	LabelBlock
	LabelGround
	LabelSpike
	LabelSpikeBlock
)

// Labels lists every role a body can carry.
var Labels = []Label{LabelPlayer, LabelBlock, LabelGround, LabelSpike, LabelSpikeBlock}

func (l Label) String() string {
	switch l {
	case LabelPlayer:
		return "player"
	case LabelBlock:
		return "block"
	case LabelGround:
		return "ground"
	case LabelSpike:
		return "spike"
	case LabelSpikeBlock:
		return "spikeBlock"
	case LabelNone:
		return "none"
	}
	return fmt.Sprintf("label(%d)", uint8(l))
}

// ParseLabel is the inverse of String.
func ParseLabel(s string) (Label, error) {
	for _, l := range Labels {
		if l.String() == s {
			return l, nil
		}
	}
	return LabelNone, fmt.Errorf("component: unknown body label %q", s)
}

// Landing reports whether touching a body with this label restores the jump budget.
func (l Label) Landing() bool {
	switch l {
	case LabelBlock, LabelGround:
		return true
	case LabelPlayer, LabelSpike, LabelSpikeBlock, LabelNone:
		return false
	}
	return false
}

// Lethal reports whether touching a body with this label ends the run.
func (l Label) Lethal() bool {
	switch l {
	case LabelSpike:
		return true
	case LabelPlayer, LabelBlock, LabelGround, LabelSpikeBlock, LabelNone:
		return false
	}
	return false
}
