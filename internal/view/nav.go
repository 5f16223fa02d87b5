package view

import (
	"errors"
	"strings"
)

var ErrUnknownSection = errors.New("unknown section")

// Section is a navigation target. ID is the anchor of the section in the
// rendered page.
type Section struct {
	Label string
	ID    string
}

func newSection(label string) Section {
	return Section{Label: label, ID: strings.ToLower(label)}
}

var Sections = []Section{
	newSection("About"),
	newSection("Skills"),
	newSection("Projects"),
	newSection("Experience"),
	newSection("Contact"),
}

// FindSection looks a section up by anchor id or label.
func FindSection(name string) (Section, error) {
	name = strings.TrimPrefix(strings.TrimSpace(name), "#")
	for _, s := range Sections {
		if strings.EqualFold(name, s.ID) {
			return s, nil
		}
	}
	return Section{}, ErrUnknownSection
}
