package web

import (
	"net/url"
	"strings"
	"time"

	"github.com/alexdata/portfolio/internal/config"
	"github.com/alexdata/portfolio/internal/portfolio"
	"github.com/alexdata/portfolio/internal/view"
)

// Page is the view model every template and fragment renders from.
type Page struct {
	Title   string
	BaseURL string
	Year    int

	// Static pages link to prebuilt per-filter copies instead of fragments.
	Static bool
	// OOB marks fragments rendered for an out-of-band swap.
	OOB bool

	State           view.State
	ScrollThreshold int
	Sections        []view.Section
	Filters         []view.Filter
	Projects        []portfolio.Project

	Profile         portfolio.Profile
	SkillCategories []portfolio.SkillCategory
	Experiences     []portfolio.Experience
	Certifications  []portfolio.Certification
	BlogPosts       []portfolio.BlogPost
}

func NewPage(state view.State, site config.SiteConfig) Page {
	return Page{
		Title:           site.Title,
		BaseURL:         strings.TrimSuffix(site.BaseURL, "/"),
		Year:            time.Now().Year(),
		State:           state,
		ScrollThreshold: view.BackToTopThreshold,
		Sections:        view.Sections,
		Filters:         view.Filters,
		Projects:        state.VisibleProjects(),
		Profile:         portfolio.CurrentProfile(),
		SkillCategories: portfolio.SkillCategories(),
		Experiences:     portfolio.Experiences(),
		Certifications:  portfolio.Certifications(),
		BlogPosts:       portfolio.BlogPosts(),
	}
}

// FilterHref links a filter button to a page showing that selection. Static
// builds have one prebuilt page per filter.
func (p Page) FilterHref(f view.Filter) string {
	if p.Static {
		if f == view.All {
			return p.BaseURL + "/#projects"
		}
		return p.BaseURL + "/filter/" + f.Slug() + "/#projects"
	}
	if f == view.All {
		return "/#projects"
	}
	return "/?filter=" + url.QueryEscape(string(f)) + "#projects"
}
