package endpoint

import (
	"errors"
	"fmt"

	"github.com/ariebrainware/chiro-directory/model"
	"github.com/ariebrainware/chiro-directory/monitoring"
	"github.com/ariebrainware/chiro-directory/util"
	"github.com/gin-gonic/gin"
)

// chiropractorDetail is a listing plus its sports split for display.
type chiropractorDetail struct {
	model.Chiropractor
	SportsList []string `json:"sports_list"`
}

// createListing inserts one listing built from fields and records the submission.
func createListing(c *gin.Context, repo *model.ChiropractorRepository, fields model.ChiropractorFields) (model.Chiropractor, error) {
	chiro := model.NewChiropractor(fields)
	if err := repo.Create(c.Request.Context(), &chiro); err != nil {
		return model.Chiropractor{}, err
	}

	monitoring.SubmissionsTotal.Inc()
	util.LogListingSubmitted(chiro.ID, chiro.City, c.ClientIP())
	return chiro, nil
}

// ListChiropractorsAPI godoc
// @Summary      List chiropractors
// @Description  List chiropractors matching optional filters
// @Tags         Chiropractor
// @Produce      json
// @Param        city query string false "City substring, case-insensitive"
// @Param        sport query string false "Sport substring, case-insensitive"
// @Param        student_only query string false "\"on\" to keep student-friendly listings only"
// @Param        evenings_only query string false "\"on\" to keep listings with evening hours only"
// @Success      200 {object} util.APIResponse{data=[]model.Chiropractor} "Chiropractors retrieved"
// @Failure      500 {object} util.APIResponse "Server error"
// @Router       /api/chiropractors [get]
func ListChiropractorsAPI(c *gin.Context) {
	repo, ok := ensureRepoAPI(c)
	if !ok {
		return
	}

	chiros, err := repo.List(c.Request.Context(), filterFromQuery(c))
	if err != nil {
		_ = c.Error(err)
		util.CallServerError(c, util.APIErrorParams{
			Msg: "Failed to retrieve chiropractors",
			Err: err,
		})
		return
	}

	util.CallSuccessOK(c, util.APISuccessParams{
		Msg:  "Chiropractors retrieved",
		Data: chiros,
	})
}

// GetChiropractorAPI godoc
// @Summary      Get chiropractor
// @Description  Get a single chiropractor with its sports list
// @Tags         Chiropractor
// @Produce      json
// @Param        id path int true "Chiropractor ID"
// @Success      200 {object} util.APIResponse{data=chiropractorDetail} "Chiropractor retrieved"
// @Failure      404 {object} util.APIResponse "Chiropractor not found"
// @Failure      500 {object} util.APIResponse "Server error"
// @Router       /api/chiropractors/{id} [get]
func GetChiropractorAPI(c *gin.Context) {
	id, ok := parseChiropractorID(c)
	if !ok {
		util.CallErrorNotFound(c, util.APIErrorParams{
			Msg: "Chiropractor not found",
			Err: fmt.Errorf("invalid chiropractor id %q", c.Param("id")),
		})
		return
	}

	repo, ok := ensureRepoAPI(c)
	if !ok {
		return
	}

	chiro, err := repo.Get(c.Request.Context(), id)
	if errors.Is(err, model.ErrChiropractorNotFound) {
		util.CallErrorNotFound(c, util.APIErrorParams{
			Msg: "Chiropractor not found",
			Err: err,
		})
		return
	}
	if err != nil {
		_ = c.Error(err)
		util.CallServerError(c, util.APIErrorParams{
			Msg: "Failed to retrieve chiropractor",
			Err: err,
		})
		return
	}

	util.CallSuccessOK(c, util.APISuccessParams{
		Msg:  "Chiropractor retrieved",
		Data: chiropractorDetail{Chiropractor: *chiro, SportsList: chiro.SportsList()},
	})
}

// CreateChiropractorAPI godoc
// @Summary      Submit a chiropractor
// @Description  Create a chiropractor listing; omitted fields default to empty or false
// @Tags         Chiropractor
// @Accept       json
// @Produce      json
// @Param        request body createChiropractorRequest true "Chiropractor listing"
// @Success      201 {object} util.APIResponse{data=model.Chiropractor} "Chiropractor created"
// @Failure      400 {object} util.APIResponse "Invalid request"
// @Failure      429 {object} util.APIResponse "Rate limited"
// @Failure      500 {object} util.APIResponse "Server error"
// @Router       /api/chiropractors [post]
func CreateChiropractorAPI(c *gin.Context) {
	var req createChiropractorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.CallUserError(c, util.APIErrorParams{
			Msg: "Invalid request body",
			Err: err,
		})
		return
	}

	repo, ok := ensureRepoAPI(c)
	if !ok {
		return
	}

	chiro, err := createListing(c, repo, req.fields())
	if err != nil {
		_ = c.Error(err)
		util.CallServerError(c, util.APIErrorParams{
			Msg: "Failed to create chiropractor",
			Err: err,
		})
		return
	}

	util.CallSuccessCreated(c, util.APISuccessParams{
		Msg:  "Chiropractor created",
		Data: chiro,
	})
}
