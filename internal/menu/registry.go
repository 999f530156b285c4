package menu

import (
	"errors"
	"fmt"

	"github.com/atomicstack/panel-control/internal/layout"
	"github.com/atomicstack/panel-control/internal/ui/state"
)

var (
	// ErrIndexRange reports an item index outside its group.
	ErrIndexRange = errors.New("menu: item index out of range")
	// ErrUnknownGroup reports a GroupID that was never added.
	ErrUnknownGroup = errors.New("menu: unknown group")
	// ErrUnwired reports a reachable item without an outgoing link.
	ErrUnwired = errors.New("menu: item has no outgoing link")
)

// Registry is the arena holding every group. Groups refer to each other by
// GroupID, so cycles in the menu graph need no ownership cycle.
type Registry struct {
	groups []*Group
	names  map[string]GroupID
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{names: make(map[string]GroupID)}
}

// Add builds a group over l with the given items. Links start out unwired.
func (r *Registry) Add(name string, l *layout.Layout, items ...Item) (GroupID, error) {
	if len(items) == 0 {
		return 0, fmt.Errorf("group %q: no items", name)
	}
	if l.Len() == 0 {
		return 0, fmt.Errorf("group %q: empty layout", name)
	}
	if _, dup := r.names[name]; dup {
		return 0, fmt.Errorf("group %q: already registered", name)
	}
	id := GroupID(len(r.groups))
	w := state.NewWidget(l)
	w.SetCount(len(items))
	g := &Group{
		id:     id,
		name:   name,
		items:  append([]Item(nil), items...),
		links:  make([]Link, len(items)),
		widget: w,
	}
	r.groups = append(r.groups, g)
	r.names[name] = id
	return id, nil
}

// Bind attaches an external listing to a group. The group's items become
// per-cell slots over that listing.
func (r *Registry) Bind(id GroupID, content Content) error {
	g := r.Group(id)
	if g == nil {
		return fmt.Errorf("bind %d: %w", id, ErrUnknownGroup)
	}
	g.content = content
	g.widget.SetCount(content.Count())
	return nil
}

// Group returns the group for id, or nil.
func (r *Registry) Group(id GroupID) *Group {
	if id < 0 || int(id) >= len(r.groups) {
		return nil
	}
	return r.groups[id]
}

// Find looks a group up by name.
func (r *Registry) Find(name string) (GroupID, bool) {
	id, ok := r.names[name]
	return id, ok
}

// Len returns the number of groups.
func (r *Registry) Len() int {
	return len(r.groups)
}

// LinkTo returns a link leading to item i of group id, for other groups to
// wire back to it.
func (r *Registry) LinkTo(id GroupID, i int) Link {
	return Fixed(Position{Group: id, Index: i})
}

// SetLink installs the outgoing link of item i of group id.
func (r *Registry) SetLink(id GroupID, i int, link Link) error {
	g := r.Group(id)
	if g == nil {
		return fmt.Errorf("set link %d/%d: %w", id, i, ErrUnknownGroup)
	}
	if i < 0 || i >= len(g.links) {
		return fmt.Errorf("set link %s/%d: %w", g.name, i, ErrIndexRange)
	}
	g.links[i] = link
	return nil
}

// Resolve follows the link of the item at from. Unwired links, and links
// pointing at groups that do not exist, keep the current position.
func (r *Registry) Resolve(from Position) Position {
	g := r.Group(from.Group)
	if g == nil {
		return from
	}
	to := g.Link(from.Index).Resolve(from)
	if r.Group(to.Group) == nil {
		return from
	}
	return to
}

// Validate walks every group reachable from start and reports items without
// an outgoing link and links aimed outside their target group.
func (r *Registry) Validate(start Position) error {
	if r.Group(start.Group) == nil {
		return fmt.Errorf("validate from %d: %w", start.Group, ErrUnknownGroup)
	}
	var errs []error
	seen := make([]bool, len(r.groups))
	queue := []GroupID{start.Group}
	seen[start.Group] = true
	for len(queue) > 0 {
		g := r.groups[queue[0]]
		queue = queue[1:]
		for i, link := range g.links {
			if !link.Wired() {
				errs = append(errs, fmt.Errorf("%s/%d: %w", g.name, i, ErrUnwired))
				continue
			}
			for _, to := range link.Targets() {
				target := r.Group(to.Group)
				if target == nil {
					errs = append(errs, fmt.Errorf("%s/%d -> %d: %w", g.name, i, to.Group, ErrUnknownGroup))
					continue
				}
				if to.Index < 0 || to.Index >= target.Len() {
					errs = append(errs, fmt.Errorf("%s/%d -> %s/%d: %w", g.name, i, target.name, to.Index, ErrIndexRange))
				}
				if !seen[to.Group] {
					seen[to.Group] = true
					queue = append(queue, to.Group)
				}
			}
		}
	}
	return errors.Join(errs...)
}

// Walk visits every group in registration order.
func (r *Registry) Walk(fn func(*Group)) {
	for _, g := range r.groups {
		fn(g)
	}
}
