package menu

// Position addresses one item of one group. It is the whole navigation
// state: moving never pushes a stack, so "back" is just another link.
type Position struct {
	Group GroupID
	Index int
}

// Predicate chooses between the two targets of a conditional link.
type Predicate func() bool

// LinkKind tags the Link variant.
type LinkKind uint8

const (
	LinkUnwired LinkKind = iota
	LinkNull
	LinkFixed
	LinkConditional
)

func (k LinkKind) String() string {
	switch k {
	case LinkFixed:
		return "fixed"
	case LinkConditional:
		return "conditional"
	case LinkNull:
		return "null"
	default:
		return "unwired"
	}
}

// Link describes the transition taken when an item is activated. The zero
// value is an unwired link; it behaves like Null but fails Validate.
type Link struct {
	kind   LinkKind
	target Position
	alt    Position
	pred   Predicate
}

// Null deliberately stays in place.
var Null = Link{kind: LinkNull}

// Fixed always moves to target.
func Fixed(target Position) Link {
	return Link{kind: LinkFixed, target: target}
}

// Conditional moves to ifTrue when pred holds at activation time, ifFalse
// otherwise. A nil predicate counts as false.
func Conditional(pred Predicate, ifTrue, ifFalse Position) Link {
	return Link{kind: LinkConditional, target: ifTrue, alt: ifFalse, pred: pred}
}

// Kind reports the link variant.
func (l Link) Kind() LinkKind {
	return l.kind
}

// IsNull reports whether the link keeps the current position.
func (l Link) IsNull() bool {
	return l.kind == LinkNull || l.kind == LinkUnwired
}

// Wired reports whether a link was ever installed.
func (l Link) Wired() bool {
	return l.kind != LinkUnwired
}

// Targets returns every position the link can lead to.
func (l Link) Targets() []Position {
	switch l.kind {
	case LinkFixed:
		return []Position{l.target}
	case LinkConditional:
		return []Position{l.target, l.alt}
	default:
		return nil
	}
}

// Resolve follows the link from the given position.
func (l Link) Resolve(from Position) Position {
	switch l.kind {
	case LinkFixed:
		return l.target
	case LinkConditional:
		if l.pred != nil && l.pred() {
			return l.target
		}
		return l.alt
	default:
		return from
	}
}
