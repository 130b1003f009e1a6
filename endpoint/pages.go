package endpoint

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/ariebrainware/chiro-directory/model"
	"github.com/ariebrainware/chiro-directory/view"
	"github.com/gin-gonic/gin"
)

// Home renders the landing page.
func Home(c *gin.Context) {
	renderPage(c, http.StatusOK, view.HomePage, nil)
}

// ListChiropractors renders the listings matching the query filters, echoing the filter state.
func ListChiropractors(c *gin.Context) {
	repo, ok := ensureRepoPage(c)
	if !ok {
		return
	}

	filter := filterFromQuery(c)
	chiros, err := repo.List(c.Request.Context(), filter)
	if err != nil {
		renderServerError(c, "Failed to retrieve chiropractors", err)
		return
	}

	renderPage(c, http.StatusOK, view.ListPage, gin.H{
		"title":         "Chiropractors",
		"chiropractors": chiros,
		"filters":       filter,
		"filtered":      !filter.IsEmpty(),
	})
}

// GetChiropractorProfile renders one listing with its sports split into a list.
func GetChiropractorProfile(c *gin.Context) {
	id, ok := parseChiropractorID(c)
	if !ok {
		renderNotFound(c, "No such chiropractor.")
		return
	}

	repo, ok := ensureRepoPage(c)
	if !ok {
		return
	}

	chiro, err := repo.Get(c.Request.Context(), id)
	if errors.Is(err, model.ErrChiropractorNotFound) {
		renderNotFound(c, fmt.Sprintf("No chiropractor with id %d.", id))
		return
	}
	if err != nil {
		renderServerError(c, "Failed to retrieve chiropractor", err)
		return
	}

	renderPage(c, http.StatusOK, view.ProfilePage, gin.H{
		"title":       chiro.Name,
		"chiro":       chiro,
		"sports_list": chiro.SportsList(),
	})
}

// SubmitForm renders the empty submission form.
func SubmitForm(c *gin.Context) {
	renderPage(c, http.StatusOK, view.SubmitPage, gin.H{"title": "Add a chiropractor"})
}

// SubmitChiropractor stores a listing posted from the submission form.
func SubmitChiropractor(c *gin.Context) {
	form := bindSubmissionForm(c)

	repo, ok := ensureRepoPage(c)
	if !ok {
		return
	}

	chiro, err := createListing(c, repo, form.fields())
	if err != nil {
		renderServerError(c, "Failed to save chiropractor", err)
		return
	}

	renderPage(c, http.StatusOK, view.SubmitSuccessPage, gin.H{
		"title": "Listing added",
		"chiro": chiro,
	})
}

// NotFound renders the not-found page for unmatched routes.
func NotFound(c *gin.Context) {
	renderNotFound(c, "")
}

// SubmitRateLimited renders the error page for a form submission rejected by the rate limiter.
func SubmitRateLimited(c *gin.Context) {
	renderPage(c, http.StatusTooManyRequests, view.ErrorPage, gin.H{
		"title":   "Too many submissions",
		"heading": "Too many submissions",
		"message": "Too many submissions. Please try again later.",
	})
}
