// Package view is the page state machine: which view is showing and
// which navigation entry is highlighted.
package view

import "strings"

type View string

const (
	Home     View = "home"
	Chapters View = "chapters"
	Reader   View = "reader"
	Install  View = "install"
	About    View = "about"
)

var all = []View{Home, Chapters, Reader, Install, About}

// All returns every view in navigation order.
func All() []View {
	return append([]View(nil), all...)
}

// Parse maps a view name to a View.
func Parse(name string) (View, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, v := range all {
		if string(v) == name {
			return v, true
		}
	}
	return "", false
}

// NavItem is one entry of the top navigation.
type NavItem struct {
	View   View
	Label  string
	Path   string
	Active bool
}

var navOrder = []NavItem{
	{View: Home, Label: "Home", Path: "/"},
	{View: Chapters, Label: "Chapters", Path: "/chapters"},
	{View: Install, Label: "Install", Path: "/install"},
	{View: About, Label: "About", Path: "/about"},
}

// navFor is the nav entry highlighted while v is showing. The reader
// has no entry of its own and lights up Chapters.
func navFor(v View) View {
	if v == Reader {
		return Chapters
	}
	return v
}

// Controller tracks the current view. The zero value starts on Home.
type Controller struct {
	current View
	prev    View
}

func NewController() *Controller {
	return &Controller{current: Home}
}

func (c *Controller) Current() View {
	if c.current == "" {
		return Home
	}
	return c.current
}

// Switch moves to v and returns the navigation state for it. Unknown
// views leave the controller where it was.
func (c *Controller) Switch(v View) []NavItem {
	if _, ok := Parse(string(v)); ok {
		c.prev = c.Current()
		c.current = v
	}
	return c.Nav()
}

// Back leaves the reader for the chapter list; from anywhere else it
// returns home.
func (c *Controller) Back() []NavItem {
	if c.Current() == Reader {
		return c.Switch(Chapters)
	}
	return c.Switch(Home)
}

// Previous is the view shown before the last Switch.
func (c *Controller) Previous() View {
	return c.prev
}

// Visible reports whether v's section is shown. Exactly one view is
// visible at a time.
func (c *Controller) Visible(v View) bool {
	return c.Current() == v
}

// Nav returns the navigation entries with the active one marked.
func (c *Controller) Nav() []NavItem {
	active := navFor(c.Current())
	items := make([]NavItem, len(navOrder))
	for i, item := range navOrder {
		item.Active = item.View == active
		items[i] = item
	}
	return items
}
