package endpoint

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/ariebrainware/chiro-directory/config"
	"github.com/ariebrainware/chiro-directory/middleware"
	"github.com/ariebrainware/chiro-directory/model"
	"github.com/ariebrainware/chiro-directory/util"
	"github.com/ariebrainware/chiro-directory/view"
	"github.com/gin-gonic/gin"
)

// checkboxOn is the value browsers send for a checked checkbox without a value attribute.
const checkboxOn = "on"

var errDBUnavailable = fmt.Errorf("db is nil")

// renderPage renders an HTML page with the common layout fields added to data.
func renderPage(c *gin.Context, status int, page string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["app_name"] = config.LoadConfig().AppName
	c.HTML(status, page, data)
}

func renderNotFound(c *gin.Context, message string) {
	renderPage(c, http.StatusNotFound, view.NotFoundPage, gin.H{
		"title":   "Not found",
		"message": message,
	})
}

// renderServerError attaches err to the context for reporting and renders the error page.
func renderServerError(c *gin.Context, message string, err error) {
	_ = c.Error(err)
	renderPage(c, http.StatusInternalServerError, view.ErrorPage, gin.H{
		"title":   "Error",
		"message": message,
	})
}

// helper: ensure a repository is available in context or render the error page
func ensureRepoPage(c *gin.Context) (*model.ChiropractorRepository, bool) {
	repo := middleware.GetChiropractorRepository(c)
	if repo == nil {
		renderServerError(c, "Database connection not available", errDBUnavailable)
		return nil, false
	}
	return repo, true
}

// helper: ensure a repository is available in context or respond with server error
func ensureRepoAPI(c *gin.Context) (*model.ChiropractorRepository, bool) {
	repo := middleware.GetChiropractorRepository(c)
	if repo == nil {
		_ = c.Error(errDBUnavailable)
		util.CallServerError(c, util.APIErrorParams{
			Msg: "Database connection not available",
			Err: errDBUnavailable,
		})
		return nil, false
	}
	return repo, true
}

// parseChiropractorID reads the :id path parameter. Anything other than a positive integer is rejected.
func parseChiropractorID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// filterFromQuery reads the listing filters from the query string.
func filterFromQuery(c *gin.Context) model.ChiropractorFilter {
	return model.NewChiropractorFilter(
		c.Query("city"),
		c.Query("sport"),
		c.Query("student_only") == checkboxOn,
		c.Query("evenings_only") == checkboxOn,
	)
}
