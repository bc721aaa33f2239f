package printer

import "fmt"

// OpKind enumerates the operations a composed ticket can contain.
type OpKind int

const (
	OpWrite OpKind = iota
	OpSetFont
	OpSetJustify
	OpFeed
	OpCut
)

func (k OpKind) String() string {
	switch k {
	case OpWrite:
		return "write"
	case OpSetFont:
		return "set_font"
	case OpSetJustify:
		return "set_justify"
	case OpFeed:
		return "feed"
	case OpCut:
		return "cut"
	}
	return "unknown"
}

// Op is a single printer operation. Composition produces a flat []Op so the
// sequence can be inspected and tested without hardware; Dispatch executes
// it against a real driver.
type Op struct {
	Kind   OpKind
	Text   string // OpWrite
	Width  int    // OpSetFont
	Height int    // OpSetFont
	Align  int    // OpSetJustify
}

// WriteOp prints a line of text.
func WriteOp(text string) Op {
	return Op{Kind: OpWrite, Text: text}
}

// SetFontOp sets the character magnification.
func SetFontOp(width, height int) Op {
	return Op{Kind: OpSetFont, Width: width, Height: height}
}

// SetJustifyOp sets text alignment.
func SetJustifyOp(align int) Op {
	return Op{Kind: OpSetJustify, Align: align}
}

// FeedOp advances the paper one line.
func FeedOp() Op {
	return Op{Kind: OpFeed}
}

// CutOp performs a full paper cut.
func CutOp() Op {
	return Op{Kind: OpCut}
}

// Dispatch initializes the driver and executes ops strictly in sequence,
// aborting on the first failing operation. A half-printed ticket is reported,
// not retried.
func Dispatch(d Driver, ops []Op) error {
	if err := d.Init(); err != nil {
		return fmt.Errorf("printer: init failed: %w", err)
	}

	for i, op := range ops {
		var err error
		switch op.Kind {
		case OpWrite:
			err = d.WriteText(op.Text)
		case OpSetFont:
			err = d.SetFontSize(op.Width, op.Height)
		case OpSetJustify:
			err = d.SetJustify(op.Align)
		case OpFeed:
			err = d.Feed()
		case OpCut:
			err = d.Cut()
		default:
			err = fmt.Errorf("unknown operation kind %d", op.Kind)
		}
		if err != nil {
			return fmt.Errorf("printer: operation %d (%s) failed: %w", i, op.Kind, err)
		}
	}

	return nil
}
