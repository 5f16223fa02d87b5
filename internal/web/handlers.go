package web

import (
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/alexdata/portfolio/internal/portfolio"
	"github.com/alexdata/portfolio/internal/view"
)

type pageQuery struct {
	Filter string `form:"filter"`
	Dark   bool   `form:"dark"`
	Menu   bool   `form:"menu"`
}

// The toggle forms carry the state the client currently shows.
type themeForm struct {
	Dark bool `form:"dark"`
}

type menuForm struct {
	Open bool `form:"open"`
}

type navigateForm struct {
	Section string `form:"section" binding:"required"`
	Open    bool   `form:"open"`
}

type scrollQuery struct {
	Offset float64 `form:"offset"`
}

func (s *Server) page(state view.State) Page {
	return NewPage(state, s.cfg.Site)
}

// trigger sets the HX-Trigger header so htmx raises event on the client.
func trigger(c *gin.Context, event string, detail any) {
	b, err := json.Marshal(map[string]any{event: detail})
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.Header("HX-Trigger", string(b))
}

func filterURL(f view.Filter) string {
	if f == view.All {
		return "/"
	}
	return "/?filter=" + url.QueryEscape(string(f))
}

func (s *Server) index(c *gin.Context) {
	var q pageQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		renderError(c, http.StatusBadRequest, "invalid query")
		return
	}
	f, err := view.ParseFilter(q.Filter)
	if err != nil {
		renderError(c, http.StatusBadRequest, err.Error())
		return
	}

	state := view.New()
	state.SelectFilter(f)
	if q.Dark {
		state.ToggleDarkMode()
	}
	if q.Menu {
		state.ToggleMenu()
	}
	c.HTML(http.StatusOK, "index", s.page(state))
}

func (s *Server) projects(c *gin.Context) {
	f, err := view.ParseFilter(c.Query("filter"))
	if err != nil {
		renderError(c, http.StatusBadRequest, err.Error())
		return
	}
	state := view.New()
	state.SelectFilter(f)

	c.Header("HX-Push-Url", filterURL(f))
	c.HTML(http.StatusOK, "project-gallery", s.page(state))
}

func (s *Server) toggleTheme(c *gin.Context) {
	var form themeForm
	if err := c.ShouldBind(&form); err != nil {
		renderError(c, http.StatusBadRequest, "invalid form")
		return
	}
	state := view.New()
	state.DarkMode = form.Dark
	state.ToggleDarkMode()

	page := s.page(state)
	page.OOB = true
	trigger(c, "themeChanged", gin.H{"dark": state.DarkMode})
	c.HTML(http.StatusOK, "theme-response", page)
}

func (s *Server) toggleMenu(c *gin.Context) {
	var form menuForm
	if err := c.ShouldBind(&form); err != nil {
		renderError(c, http.StatusBadRequest, "invalid form")
		return
	}
	state := view.New()
	state.MenuOpen = form.Open
	state.ToggleMenu()

	page := s.page(state)
	page.OOB = true
	c.HTML(http.StatusOK, "menu-response", page)
}

func (s *Server) navigate(c *gin.Context) {
	var form navigateForm
	if err := c.ShouldBind(&form); err != nil {
		renderError(c, http.StatusBadRequest, "section is required")
		return
	}
	section, err := view.FindSection(form.Section)
	if err != nil {
		renderError(c, http.StatusNotFound, err.Error())
		return
	}

	state := view.New()
	state.MenuOpen = form.Open
	state.Navigate(section)

	page := s.page(state)
	page.OOB = true
	trigger(c, "navigated", gin.H{"section": section.ID})
	c.HTML(http.StatusOK, "menu-response", page)
}

func (s *Server) backToTop(c *gin.Context) {
	var q scrollQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		renderError(c, http.StatusBadRequest, "offset must be a number")
		return
	}
	state := view.New()
	state.ObserveScroll(q.Offset)
	c.HTML(http.StatusOK, "back-to-top", s.page(state))
}

func (s *Server) contactForm(c *gin.Context) {
	c.HTML(http.StatusOK, "contact-form", s.page(view.New()))
}

func (s *Server) workContent(c *gin.Context) {
	c.HTML(http.StatusOK, "work-content", s.page(view.New()))
}

func (s *Server) educationContent(c *gin.Context) {
	c.HTML(http.StatusOK, "education-content", s.page(view.New()))
}

func (s *Server) apiProjects(c *gin.Context) {
	f, err := view.ParseFilter(c.Query("filter"))
	if err != nil {
		BadRequest(c, err.Error())
		return
	}
	Success(c, gin.H{
		"filter":   f,
		"projects": f.Apply(portfolio.Projects()),
	})
}

func (s *Server) apiSkillChart(c *gin.Context) {
	Success(c, portfolio.SkillRadar())
}

func (s *Server) apiImpactChart(c *gin.Context) {
	Success(c, portfolio.ImpactSeries())
}
