package monitoring

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func newRouter(m *Metrics) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(m.Middleware(), m.PageViews())
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, "page") })
	r.GET("/ui/projects", func(c *gin.Context) { c.String(http.StatusOK, "fragment") })
	r.GET("/static/app.css", func(c *gin.Context) { c.String(http.StatusOK, "css") })
	r.GET("/metrics", m.Handler())
	return r
}

func get(r http.Handler, path string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestPageViewsCountsOnlyPages(t *testing.T) {
	m := New()
	r := newRouter(m)

	get(r, "/", nil)
	get(r, "/", nil)
	get(r, "/ui/projects", nil)
	get(r, "/static/app.css", nil)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.pageViews.WithLabelValues("/")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.pageViews.WithLabelValues("/ui/projects")))
}

func TestPageViewsRespectsDoNotTrack(t *testing.T) {
	m := New()
	r := newRouter(m)

	get(r, "/", map[string]string{"DNT": "1"})
	get(r, "/", map[string]string{"HX-Request": "true"})

	assert.Equal(t, 0.0, testutil.ToFloat64(m.pageViews.WithLabelValues("/")))
}

func TestRequestCounter(t *testing.T) {
	m := New()
	r := newRouter(m)

	get(r, "/ui/projects", nil)
	get(r, "/missing", nil)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.requestCounter.WithLabelValues("GET", "/ui/projects", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requestCounter.WithLabelValues("GET", "unmatched", "404")))
}

func TestMetricsEndpoint(t *testing.T) {
	m := New()
	r := newRouter(m)
	get(r, "/", nil)

	w := get(r, "/metrics", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `portfolio_page_views_total{path="/"} 1`)
	assert.Contains(t, w.Body.String(), "http_requests_total")
}
