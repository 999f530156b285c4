package menu

import (
	"github.com/atomicstack/panel-control/internal/i18n"
)

// Kind tags the Item variant.
type Kind uint8

const (
	KindLabel Kind = iota
	KindCommand
	KindInfo
	KindEditable
	KindGraphic
	KindLogo
	KindFile
)

func (k Kind) String() string {
	switch k {
	case KindLabel:
		return "label"
	case KindCommand:
		return "command"
	case KindInfo:
		return "info"
	case KindEditable:
		return "editable"
	case KindGraphic:
		return "graphic"
	case KindLogo:
		return "logo"
	case KindFile:
		return "file"
	default:
		return "unknown"
	}
}

// Format selects how an info value is shown.
type Format uint8

const (
	FormatText Format = iota
	FormatPair
	FormatPercent
	FormatDuration
)

// Value is what an info accessor returns for one refresh. Text is shown
// verbatim; Caption, when set, is resolved and shown in its place.
type Value struct {
	Format  Format
	A, B    float64
	Text    string
	Caption i18n.Caption
}

// Text wraps a plain string value.
func Text(s string) Value {
	return Value{Format: FormatText, Text: s}
}

// Pair wraps two numbers, rendered "a/b".
func Pair(a, b float64) Value {
	return Value{Format: FormatPair, A: a, B: b}
}

// Percent wraps a completion percentage and a label shown as is.
func Percent(p float64, label string) Value {
	return Value{Format: FormatPercent, A: p, Text: label}
}

// PercentCaption wraps a completion percentage labelled by a caption.
func PercentCaption(p float64, c i18n.Caption) Value {
	return Value{Format: FormatPercent, A: p, Caption: c}
}

// Duration wraps elapsed and remaining seconds.
func Duration(elapsed, remaining float64) Value {
	return Value{Format: FormatDuration, A: elapsed, B: remaining}
}

// Accessor reads a value for display. It must not block.
type Accessor func() Value

// Getter and Setter back an editable value.
type (
	Getter func() float64
	Setter func(float64)
)

// FileWindow exposes the visible slots of a scrolled directory listing.
type FileWindow interface {
	Name(slot int) string
}

// Item is the content of one cell. It is a closed union: Kind decides which
// of the remaining fields are meaningful.
type Item struct {
	Kind    Kind
	Caption i18n.Caption

	// Command and File.
	Action func()

	// Info.
	Info Accessor

	// Editable.
	Get     Getter
	Set     Setter
	Step    float64
	Initial float64

	// Graphic and Logo.
	Icon   string
	Frames int

	// File.
	Files FileWindow
	Slot  int
}

// Label is a display-only item that navigates through its link.
func Label(caption i18n.Caption) Item {
	return Item{Kind: KindLabel, Caption: caption}
}

// Command runs action on activation, then follows its link.
func Command(caption i18n.Caption, action func()) Item {
	return Item{Kind: KindCommand, Caption: caption, Action: action}
}

// Info shows the accessor's value on every refresh.
func Info(caption i18n.Caption, accessor Accessor) Item {
	return Item{Kind: KindInfo, Caption: caption, Info: accessor}
}

// Editable adjusts a working copy by step on up/down and commits it with set
// on ok. When get reports zero the edit starts from initial.
func Editable(caption i18n.Caption, get Getter, set Setter, step, initial float64) Item {
	return Item{Kind: KindEditable, Caption: caption, Get: get, Set: set, Step: step, Initial: initial}
}

// Graphic is an icon with a caption.
func Graphic(caption i18n.Caption, icon string) Item {
	return Item{Kind: KindGraphic, Caption: caption, Icon: icon}
}

// Logo is an animated splash icon.
func Logo(caption i18n.Caption, icon string, frames int) Item {
	return Item{Kind: KindLogo, Caption: caption, Icon: icon, Frames: frames}
}

// File shows one slot of a directory window. action runs when the slot is
// activated and should look the entry up itself.
func File(files FileWindow, slot int, action func()) Item {
	return Item{Kind: KindFile, Files: files, Slot: slot, Action: action}
}
