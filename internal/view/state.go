// Package view owns the ephemeral UI state of the page. A State lives for
// one render cycle; nothing here is stored or shared between requests.
package view

import "github.com/alexdata/portfolio/internal/portfolio"

// BackToTopThreshold is the vertical offset, in CSS pixels, past which the
// back-to-top button shows.
const BackToTopThreshold = 500

// State is the UI state of one page: theme, mobile menu, project filter and
// back-to-top visibility.
type State struct {
	DarkMode         bool
	MenuOpen         bool
	ActiveFilter     Filter
	BackToTopVisible bool
}

// New returns the state of a fresh page load.
func New() State {
	return State{ActiveFilter: All}
}

// ToggleDarkMode flips the theme flag.
func (s *State) ToggleDarkMode() {
	s.DarkMode = !s.DarkMode
}

// ToggleMenu opens a closed mobile menu and closes an open one.
func (s *State) ToggleMenu() {
	s.MenuOpen = !s.MenuOpen
}

// Navigate records the selection of a navigation target. The mobile menu
// always closes, whatever its previous state.
func (s *State) Navigate(Section) {
	s.MenuOpen = false
}

// SelectFilter makes f the active project filter.
func (s *State) SelectFilter(f Filter) {
	s.ActiveFilter = f
}

// ObserveScroll re-evaluates the back-to-top flag from the latest offset.
func (s *State) ObserveScroll(offset float64) {
	s.BackToTopVisible = offset > BackToTopThreshold
}

// VisibleProjects derives the gallery content from the active filter.
func (s State) VisibleProjects() []portfolio.Project {
	f := s.ActiveFilter
	if f == "" {
		f = All
	}
	return f.Apply(portfolio.Projects())
}

// ThemeClass is the class set on the root element.
func (s State) ThemeClass() string {
	if s.DarkMode {
		return "dark"
	}
	return ""
}
