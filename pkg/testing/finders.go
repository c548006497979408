package testing

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-drift/retain/pkg/core"
	"github.com/go-drift/retain/pkg/widgets"
)

// Finder locates widgets in the tree.
type Finder interface {
	// Evaluate returns all matching widgets under root (depth-first pre-order).
	Evaluate(root core.Widget) []core.Widget
	// Description returns a human-readable description for error messages.
	Description() string
}

// FinderResult wraps finder results with convenient accessors.
type FinderResult struct {
	widgets []core.Widget
	finder  Finder
}

// First returns the first match. Panics if no matches.
func (r FinderResult) First() core.Widget {
	if len(r.widgets) == 0 {
		panic(fmt.Sprintf("Finder found no widgets: %s", r.describe()))
	}
	return r.widgets[0]
}

// FirstOrNil returns the first match, or nil if none.
func (r FinderResult) FirstOrNil() core.Widget {
	if len(r.widgets) == 0 {
		return nil
	}
	return r.widgets[0]
}

// At returns the match at index. Panics if out of range.
func (r FinderResult) At(index int) core.Widget {
	if index < 0 || index >= len(r.widgets) {
		panic(fmt.Sprintf("Finder index %d out of range (found %d): %s", index, len(r.widgets), r.describe()))
	}
	return r.widgets[index]
}

// All returns all matches in traversal order.
func (r FinderResult) All() []core.Widget {
	return r.widgets
}

// Count returns the number of matches.
func (r FinderResult) Count() int {
	return len(r.widgets)
}

// Exists returns true if at least one match was found.
func (r FinderResult) Exists() bool {
	return len(r.widgets) > 0
}

func (r FinderResult) describe() string {
	if r.finder == nil {
		return "unknown"
	}
	return r.finder.Description()
}

// --- Concrete finders ---

// typeFinder matches widgets of a concrete dynamic type.
type typeFinder struct {
	widgetType reflect.Type
	desc       string
}

func (f *typeFinder) Evaluate(root core.Widget) []core.Widget {
	return collectMatches(root, func(w core.Widget) bool {
		return reflect.TypeOf(w) == f.widgetType
	})
}

func (f *typeFinder) Description() string {
	return f.desc
}

// ByType returns a finder that matches widgets whose dynamic type is T.
func ByType[T core.Widget]() Finder {
	t := reflect.TypeFor[T]()
	return &typeFinder{widgetType: t, desc: fmt.Sprintf("ByType(%s)", t)}
}

// BySpec returns a finder that matches widgets of the kind a spec of type S
// builds, such as BySpec[widgets.Solid]().
func BySpec[S core.Spec]() Finder {
	var zero S
	t := reflect.TypeOf(zero.NewWidget())
	return &typeFinder{widgetType: t, desc: fmt.Sprintf("BySpec(%s)", reflect.TypeFor[S]())}
}

// keyFinder matches widgets whose key equals the given key.
type keyFinder struct {
	key core.Key
}

func (f *keyFinder) Evaluate(root core.Widget) []core.Widget {
	return collectMatches(root, func(w core.Widget) bool {
		return w.Key().Equal(f.key)
	})
}

func (f *keyFinder) Description() string {
	return fmt.Sprintf("ByKey(%s)", f.key)
}

// ByKey returns a finder that matches widgets holding key.
func ByKey(key core.Key) Finder {
	return &keyFinder{key: key}
}

// textFinder matches Text widgets by content.
type textFinder struct {
	text     string
	contains bool
}

func (f *textFinder) Evaluate(root core.Widget) []core.Widget {
	return collectMatches(root, func(w core.Widget) bool {
		content, ok := widgets.TextContent(w)
		if !ok {
			return false
		}
		if f.contains {
			return strings.Contains(content, f.text)
		}
		return content == f.text
	})
}

func (f *textFinder) Description() string {
	if f.contains {
		return fmt.Sprintf("ByTextContaining(%q)", f.text)
	}
	return fmt.Sprintf("ByText(%q)", f.text)
}

// ByText returns a finder that matches [widgets.Text] widgets with exact
// content.
func ByText(text string) Finder {
	return &textFinder{text: text}
}

// ByTextContaining returns a finder that matches [widgets.Text] widgets
// containing substring.
func ByTextContaining(substring string) Finder {
	return &textFinder{text: substring, contains: true}
}

// predicateFinder matches widgets satisfying a predicate.
type predicateFinder struct {
	fn   func(core.Widget) bool
	desc string
}

func (f *predicateFinder) Evaluate(root core.Widget) []core.Widget {
	return collectMatches(root, f.fn)
}

func (f *predicateFinder) Description() string {
	return f.desc
}

// ByPredicate returns a finder that matches widgets satisfying fn.
func ByPredicate(fn func(core.Widget) bool) Finder {
	return &predicateFinder{fn: fn, desc: "ByPredicate(...)"}
}

// ByDescription returns a finder that matches widgets whose dump line
// contains substring.
func ByDescription(substring string) Finder {
	return &predicateFinder{
		fn: func(w core.Widget) bool {
			return strings.Contains(core.DescribeWidget(w), substring)
		},
		desc: fmt.Sprintf("ByDescription(%q)", substring),
	}
}

// descendantFinder finds widgets matching 'matching' below widgets matching
// 'of'.
type descendantFinder struct {
	of       Finder
	matching Finder
}

func (f *descendantFinder) Evaluate(root core.Widget) []core.Widget {
	var results []core.Widget
	seen := make(map[core.Widget]bool)
	for _, ancestor := range f.of.Evaluate(root) {
		// Search within each ancestor's subtree, skipping the ancestor.
		visitChildren(ancestor, func(child core.Widget) {
			for _, match := range f.matching.Evaluate(child) {
				if !seen[match] {
					seen[match] = true
					results = append(results, match)
				}
			}
		})
	}
	return results
}

func (f *descendantFinder) Description() string {
	return fmt.Sprintf("Descendant(of: %s, matching: %s)", f.of.Description(), f.matching.Description())
}

// Descendant returns a finder that matches widgets satisfying 'matching'
// that are descendants of widgets matching 'of'.
func Descendant(of, matching Finder) Finder {
	return &descendantFinder{of: of, matching: matching}
}

// --- Traversal ---

func visitChildren(w core.Widget, visit func(core.Widget)) {
	if cv, ok := w.(core.ChildVisitor); ok {
		cv.VisitChildren(visit)
	}
}

// collectMatches walks the tree depth-first in pre-order.
func collectMatches(root core.Widget, match func(core.Widget) bool) []core.Widget {
	var results []core.Widget
	var walk func(core.Widget)
	walk = func(w core.Widget) {
		if match(w) {
			results = append(results, w)
		}
		visitChildren(w, walk)
	}
	walk(root)
	return results
}
