package portfolio

import (
	"errors"
	"fmt"
)

var (
	ErrDuplicateID     = errors.New("duplicate id")
	ErrLevelOutOfRange = errors.New("skill level out of range")
	ErrUnknownCategory = errors.New("unknown category")
)

// Validate checks the invariants of the content: unique project and blog
// post ids, skill levels within [0, 100], declared categories only.
// Every violation is reported, joined.
func Validate(c Content) error {
	var errs []error

	seen := make(map[string]bool, len(c.Projects))
	for _, p := range c.Projects {
		if seen[p.ID] {
			errs = append(errs, fmt.Errorf("project %q: %w", p.ID, ErrDuplicateID))
		}
		seen[p.ID] = true
		if !p.Category.Valid() {
			errs = append(errs, fmt.Errorf("project %q category %q: %w", p.ID, p.Category, ErrUnknownCategory))
		}
	}

	seen = make(map[string]bool, len(c.BlogPosts))
	for _, b := range c.BlogPosts {
		if seen[b.ID] {
			errs = append(errs, fmt.Errorf("blog post %q: %w", b.ID, ErrDuplicateID))
		}
		seen[b.ID] = true
	}

	for _, cat := range c.SkillCategories {
		for _, s := range cat.Skills {
			if s.Level < 0 || s.Level > 100 {
				errs = append(errs, fmt.Errorf("skill %q in %q level %d: %w", s.Name, cat.Title, s.Level, ErrLevelOutOfRange))
			}
		}
	}

	for _, r := range c.SkillRadar {
		if r.Value < 0 || r.Value > r.Max {
			errs = append(errs, fmt.Errorf("radar axis %q value %d: %w", r.Label, r.Value, ErrLevelOutOfRange))
		}
	}

	return errors.Join(errs...)
}
