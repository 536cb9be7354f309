package ui

import (
	"errors"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// ErrEmptyCatalog is returned when a tab container is constructed without
// any tabs. An empty catalog is a caller programming error, not a runtime
// condition the container can recover from.
var ErrEmptyCatalog = errors.New("tab container: catalog must not be empty")

// Tab is one member of a tab catalog. Accessors must be side-effect free.
// Label is exposed for accessibility and tooling; the selector bar renders
// icons only.
type Tab interface {
	Label() string
	Icon() fyne.Resource
	Content() fyne.CanvasObject
}

// TabValue constrains catalog members to comparable tab values, so selection
// can be matched against the catalog without reflection.
type TabValue interface {
	comparable
	Tab
}

// TabContainer owns single-selection state over a closed, enumerable catalog
// of tabs and renders the selected tab's content above an icon selector bar.
// There is no "no selection" state: selection starts at the first catalog
// member and every transition is total over the set.
type TabContainer[T TabValue] struct {
	widget.BaseWidget

	tabs     []T
	selected int
	onSelect func(T)
}

// NewTabContainer creates a container over the given catalog, selecting the
// first member. It returns ErrEmptyCatalog when no tabs are supplied.
func NewTabContainer[T TabValue](tabs ...T) (*TabContainer[T], error) {
	if len(tabs) == 0 {
		return nil, ErrEmptyCatalog
	}

	tc := &TabContainer[T]{tabs: append([]T(nil), tabs...)}
	tc.ExtendBaseWidget(tc)
	return tc, nil
}

// Select makes tab the selection and re-renders its content with its icon
// highlighted. The catalog is closed, so a non-member argument is a caller
// bug; it leaves the selection unchanged.
func (tc *TabContainer[T]) Select(tab T) {
	for i, candidate := range tc.tabs {
		if candidate == tab {
			tc.selectIndex(i)
			return
		}
	}
	log.Printf("Warning: Select called with a tab outside the catalog: %s", tab.Label())
}

// SelectIndex selects the tab at the given catalog position.
func (tc *TabContainer[T]) SelectIndex(index int) {
	if index < 0 || index >= len(tc.tabs) {
		log.Printf("Warning: SelectIndex out of range: %d of %d", index, len(tc.tabs))
		return
	}
	tc.selectIndex(index)
}

func (tc *TabContainer[T]) selectIndex(index int) {
	if index == tc.selected {
		return
	}
	tc.selected = index
	tc.Refresh()
	if tc.onSelect != nil {
		tc.onSelect(tc.tabs[index])
	}
}

// Selected returns the currently selected tab.
func (tc *TabContainer[T]) Selected() T {
	return tc.tabs[tc.selected]
}

// SelectedIndex returns the catalog position of the selection.
func (tc *TabContainer[T]) SelectedIndex() int {
	return tc.selected
}

// Tabs returns the catalog in enumeration order.
func (tc *TabContainer[T]) Tabs() []T {
	return append([]T(nil), tc.tabs...)
}

// SetOnSelected sets a callback invoked after the selection changes.
func (tc *TabContainer[T]) SetOnSelected(callback func(T)) {
	tc.onSelect = callback
}

// CreateRenderer creates the widget renderer.
func (tc *TabContainer[T]) CreateRenderer() fyne.WidgetRenderer {
	r := &tabContainerRenderer[T]{container: tc}
	r.rebuild()
	return r
}

// tabContainerRenderer renders the selected tab's content with the selector
// bar pinned to the bottom edge, one icon button per catalog member.
type tabContainerRenderer[T TabValue] struct {
	container *TabContainer[T]

	barButtons []*widget.Button
	root       *fyne.Container
}

func (r *tabContainerRenderer[T]) rebuild() {
	tc := r.container

	r.barButtons = make([]*widget.Button, len(tc.tabs))
	icons := make([]fyne.CanvasObject, len(tc.tabs))
	for i, tab := range tc.tabs {
		index := i
		btn := widget.NewButtonWithIcon("", tab.Icon(), func() {
			tc.SelectIndex(index)
		})
		if index == tc.selected {
			btn.Importance = widget.HighImportance
		} else {
			btn.Importance = widget.MediumImportance
		}
		r.barButtons[i] = btn
		icons[i] = btn
	}

	bar := container.NewGridWithColumns(len(icons), icons...)
	content := tc.tabs[tc.selected].Content()
	r.root = container.NewBorder(nil, bar, nil, nil, content)
}

// Layout arranges the components.
func (r *tabContainerRenderer[T]) Layout(size fyne.Size) {
	r.root.Resize(size)
}

// MinSize returns the minimum size.
func (r *tabContainerRenderer[T]) MinSize() fyne.Size {
	min := r.root.MinSize()
	if min.Height < TabBarHeight {
		min.Height = TabBarHeight
	}
	return min
}

// Refresh rebuilds the bar tints and swaps in the selected content.
func (r *tabContainerRenderer[T]) Refresh() {
	r.rebuild()
	r.root.Resize(r.container.Size())
	r.root.Refresh()
}

// Objects returns the container objects.
func (r *tabContainerRenderer[T]) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.root}
}

// Destroy cleans up the renderer.
func (r *tabContainerRenderer[T]) Destroy() {}

// StaticTab is a ready-made comparable tab value for catalogs assembled from
// fixed label/icon/content triples.
type StaticTab struct {
	Text         string
	IconResource fyne.Resource
	Body         fyne.CanvasObject
}

// Label returns the tab label.
func (t StaticTab) Label() string { return t.Text }

// Icon returns the selector bar icon.
func (t StaticTab) Icon() fyne.Resource { return t.IconResource }

// Content returns the renderable shown while the tab is selected.
func (t StaticTab) Content() fyne.CanvasObject { return t.Body }
