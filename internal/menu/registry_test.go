package menu

import (
	"errors"
	"testing"

	"github.com/atomicstack/panel-control/internal/i18n"
	"github.com/atomicstack/panel-control/internal/layout"
)

func mustAdd(t *testing.T, r *Registry, name string, l *layout.Layout, items ...Item) GroupID {
	t.Helper()
	id, err := r.Add(name, l, items...)
	if err != nil {
		t.Fatalf("add %s: %v", name, err)
	}
	return id
}

func labels(n int) []Item {
	items := make([]Item, n)
	for i := range items {
		items[i] = Label(i18n.Back)
	}
	return items
}

func TestLinkToRoundTrip(t *testing.T) {
	r := NewRegistry()
	a := mustAdd(t, r, "a", layout.Stacked, labels(3)...)
	b := mustAdd(t, r, "b", layout.Modal, labels(2)...)
	for _, g := range []GroupID{a, b} {
		for i := 0; i < r.Group(g).Len(); i++ {
			if err := r.SetLink(a, 0, r.LinkTo(g, i)); err != nil {
				t.Fatalf("set link: %v", err)
			}
			got := r.Resolve(Position{Group: a, Index: 0})
			want := Position{Group: g, Index: i}
			if got != want {
				t.Fatalf("expected %+v, got %+v", want, got)
			}
		}
	}
}

func TestConditionalLinkFollowsPredicate(t *testing.T) {
	r := NewRegistry()
	main := mustAdd(t, r, "main", layout.Main, labels(6)...)
	files := mustAdd(t, r, "files", layout.Stacked, labels(3)...)
	abort := mustAdd(t, r, "abort", layout.Modal, labels(2)...)
	playing := false
	link := Conditional(func() bool { return playing }, Position{Group: abort}, Position{Group: files})
	if err := r.SetLink(main, 2, link); err != nil {
		t.Fatalf("set link: %v", err)
	}
	from := Position{Group: main, Index: 2}
	for i := 0; i < 3; i++ {
		if got := r.Resolve(from); got != (Position{Group: files}) {
			t.Fatalf("expected file browser while idle, got %+v", got)
		}
	}
	playing = true
	for i := 0; i < 3; i++ {
		if got := r.Resolve(from); got != (Position{Group: abort}) {
			t.Fatalf("expected abort while playing, got %+v", got)
		}
	}
}

func TestConditionalWithoutPredicateTakesFalseBranch(t *testing.T) {
	link := Conditional(nil, Position{Group: 1}, Position{Group: 2})
	if got := link.Resolve(Position{}); got.Group != 2 {
		t.Fatalf("expected false branch, got %+v", got)
	}
}

func TestUnwiredAndNullLinksStayInPlace(t *testing.T) {
	r := NewRegistry()
	g := mustAdd(t, r, "g", layout.Modal, labels(2)...)
	if err := r.SetLink(g, 1, Null); err != nil {
		t.Fatalf("set link: %v", err)
	}
	for i := 0; i < 2; i++ {
		from := Position{Group: g, Index: i}
		if got := r.Resolve(from); got != from {
			t.Fatalf("expected %+v unchanged, got %+v", from, got)
		}
	}
}

func TestResolveIgnoresUnknownTargetGroup(t *testing.T) {
	r := NewRegistry()
	g := mustAdd(t, r, "g", layout.Splash, Label(i18n.Back))
	if err := r.SetLink(g, 0, r.LinkTo(GroupID(9), 0)); err != nil {
		t.Fatalf("set link: %v", err)
	}
	from := Position{Group: g}
	if got := r.Resolve(from); got != from {
		t.Fatalf("expected stay, got %+v", got)
	}
}

func TestSetLinkRejectsBadIndex(t *testing.T) {
	r := NewRegistry()
	g := mustAdd(t, r, "g", layout.Modal, labels(2)...)
	if err := r.SetLink(g, 2, Null); !errors.Is(err, ErrIndexRange) {
		t.Fatalf("expected ErrIndexRange, got %v", err)
	}
	if err := r.SetLink(GroupID(5), 0, Null); !errors.Is(err, ErrUnknownGroup) {
		t.Fatalf("expected ErrUnknownGroup, got %v", err)
	}
}

func TestAddRejectsInvalidGroups(t *testing.T) {
	r := NewRegistry()
	if _, err := r.Add("empty", layout.Modal); err == nil {
		t.Fatalf("expected error for group without items")
	}
	mustAdd(t, r, "dup", layout.Modal, labels(2)...)
	if _, err := r.Add("dup", layout.Modal, labels(2)...); err == nil {
		t.Fatalf("expected error for duplicate name")
	}
	if id, ok := r.Find("dup"); !ok || id != 0 {
		t.Fatalf("expected dup at 0, got %d %v", id, ok)
	}
}

func TestValidateReportsUnwiredReachableItems(t *testing.T) {
	r := NewRegistry()
	a := mustAdd(t, r, "a", layout.Modal, labels(2)...)
	b := mustAdd(t, r, "b", layout.Modal, labels(2)...)
	mustAdd(t, r, "orphan", layout.Splash, Label(i18n.Back))
	if err := r.SetLink(a, 0, r.LinkTo(b, 0)); err != nil {
		t.Fatal(err)
	}
	if err := r.SetLink(a, 1, Null); err != nil {
		t.Fatal(err)
	}
	if err := r.SetLink(b, 0, r.LinkTo(a, 5)); err != nil {
		t.Fatal(err)
	}

	err := r.Validate(Position{Group: a})
	if !errors.Is(err, ErrUnwired) {
		t.Fatalf("expected unwired item b/1 reported, got %v", err)
	}
	if !errors.Is(err, ErrIndexRange) {
		t.Fatalf("expected bad index b/0 -> a/5 reported, got %v", err)
	}

	if err := r.SetLink(b, 0, r.LinkTo(a, 1)); err != nil {
		t.Fatal(err)
	}
	if err := r.SetLink(b, 1, r.LinkTo(a, 0)); err != nil {
		t.Fatal(err)
	}
	if err := r.Validate(Position{Group: a}); err != nil {
		t.Fatalf("expected valid graph (orphan is unreachable), got %v", err)
	}
}

type fakeListing struct {
	count  int
	offset int
}

func (f *fakeListing) Count() int      { return f.count }
func (f *fakeListing) Seek(offset int) { f.offset = offset }
func (f *fakeListing) Name(slot int) string {
	return string(rune('a' + f.offset + slot))
}

func TestBoundListingScrollsWithWidget(t *testing.T) {
	r := NewRegistry()
	listing := &fakeListing{count: 10}
	items := []Item{File(listing, 0, nil), File(listing, 1, nil), File(listing, 2, nil)}
	g := mustAdd(t, r, "files", layout.Stacked, items...)
	if err := r.Bind(g, listing); err != nil {
		t.Fatalf("bind: %v", err)
	}
	group := r.Group(g)
	group.Enter(0)
	for i := 0; i < 8; i++ {
		group.MoveDown()
	}
	if listing.offset != 7 {
		t.Fatalf("expected listing seeked to 7, got %d", listing.offset)
	}
	if got := listing.Name(0); got != "h" {
		t.Fatalf("expected first visible entry h, got %q", got)
	}
	if group.Current() != 1 {
		t.Fatalf("expected slot 1 highlighted, got %d", group.Current())
	}
	if idx := group.ItemIndexForCell(2); idx != 2 {
		t.Fatalf("expected slot item 2 in cell 2, got %d", idx)
	}
	group.Enter(0)
	if listing.offset != 0 || group.Current() != 0 {
		t.Fatalf("expected listing reset on enter, got offset %d slot %d", listing.offset, group.Current())
	}
}

func TestItemIndexForCellFollowsScroll(t *testing.T) {
	r := NewRegistry()
	g := mustAdd(t, r, "heat", layout.Stacked, labels(5)...)
	group := r.Group(g)
	group.Enter(4)
	if idx := group.ItemIndexForCell(0); idx != 2 {
		t.Fatalf("expected item 2 in first cell, got %d", idx)
	}
	if group.Current() != 4 {
		t.Fatalf("expected item 4 current, got %d", group.Current())
	}
	short := mustAdd(t, r, "short", layout.Stacked, labels(2)...)
	if idx := r.Group(short).ItemIndexForCell(2); idx != -1 {
		t.Fatalf("expected empty third cell, got %d", idx)
	}
}
