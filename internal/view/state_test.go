package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexdata/portfolio/internal/portfolio"
)

func ids(projects []portfolio.Project) []string {
	out := make([]string, 0, len(projects))
	for _, p := range projects {
		out = append(out, p.ID)
	}
	return out
}

func TestInitialState(t *testing.T) {
	s := New()
	assert.False(t, s.DarkMode)
	assert.False(t, s.MenuOpen)
	assert.False(t, s.BackToTopVisible)
	assert.Equal(t, All, s.ActiveFilter)
	assert.Len(t, s.VisibleProjects(), 3)
}

func TestVisibleProjectsMatchCategorySubset(t *testing.T) {
	all := portfolio.Projects()
	for _, f := range Filters {
		s := New()
		s.SelectFilter(f)

		var want []string
		for _, p := range all {
			if f == All || string(p.Category) == string(f) {
				want = append(want, p.ID)
			}
		}
		got := ids(s.VisibleProjects())
		if len(want) == 0 {
			assert.Empty(t, got, "filter %s", f)
			continue
		}
		assert.Equal(t, want, got, "filter %s", f)
	}
}

func TestAllKeepsCollectionOrder(t *testing.T) {
	s := New()
	assert.Equal(t, []string{"1", "2", "3"}, ids(s.VisibleProjects()))
}

func TestSelectNLP(t *testing.T) {
	s := New()
	s.SelectFilter(Filter(portfolio.CategoryNLP))

	got := s.VisibleProjects()
	require.Len(t, got, 1)
	assert.Equal(t, "3", got[0].ID)
	assert.Equal(t, "Sentiment Analysis for Product Reviews", got[0].Title)
}

func TestSelectEDAYieldsEmptyGrid(t *testing.T) {
	s := New()
	s.SelectFilter(Filter(portfolio.CategoryEDA))

	got := s.VisibleProjects()
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestFilterIdempotent(t *testing.T) {
	for _, f := range Filters {
		once := f.Apply(portfolio.Projects())
		twice := f.Apply(once)
		assert.Equal(t, once, twice, "filter %s", f)

		s := New()
		s.SelectFilter(f)
		first := s.VisibleProjects()
		s.SelectFilter(f)
		assert.Equal(t, first, s.VisibleProjects())
	}
}

func TestDarkModeInvolution(t *testing.T) {
	s := New()
	s.ToggleDarkMode()
	assert.True(t, s.DarkMode)
	assert.Equal(t, "dark", s.ThemeClass())
	s.ToggleDarkMode()
	assert.False(t, s.DarkMode)
	assert.Equal(t, "", s.ThemeClass())
}

func TestNavigateClosesMenu(t *testing.T) {
	for _, open := range []bool{true, false} {
		for _, sec := range Sections {
			s := New()
			s.MenuOpen = open
			s.Navigate(sec)
			assert.False(t, s.MenuOpen, "section %s from open=%v", sec.ID, open)
		}
	}
}

func TestToggleMenu(t *testing.T) {
	s := New()
	s.ToggleMenu()
	assert.True(t, s.MenuOpen)
	s.ToggleMenu()
	assert.False(t, s.MenuOpen)
}

func TestBackToTopThreshold(t *testing.T) {
	cases := []struct {
		offset float64
		want   bool
	}{
		{0, false},
		{400, false},
		{500, false},
		{500.5, true},
		{501, true},
		{600, true},
		{-20, false},
	}
	for _, tc := range cases {
		s := New()
		s.ObserveScroll(tc.offset)
		assert.Equal(t, tc.want, s.BackToTopVisible, "offset %v", tc.offset)
	}
}

func TestBackToTopIsLevelTriggered(t *testing.T) {
	s := New()
	s.ObserveScroll(600)
	assert.True(t, s.BackToTopVisible)
	s.ObserveScroll(400)
	assert.False(t, s.BackToTopVisible)
	s.ObserveScroll(700)
	s.ObserveScroll(800)
	assert.True(t, s.BackToTopVisible)
}

func TestZeroFilterActsAsAll(t *testing.T) {
	var s State
	assert.Len(t, s.VisibleProjects(), 3)
}
