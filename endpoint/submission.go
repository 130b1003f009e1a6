package endpoint

import (
	"github.com/ariebrainware/chiro-directory/model"
	"github.com/gin-gonic/gin"
)

// SubmissionForm is a listing submitted through the web form.
// Text fields default to "" when absent; the two flags are true iff their key was posted at all.
type SubmissionForm struct {
	Name            string
	ClinicName      string
	City            string
	SportsFocus     string
	PriceRange      string
	Bio             string
	StudentFriendly bool
	EveningHours    bool
}

func bindSubmissionForm(c *gin.Context) SubmissionForm {
	return SubmissionForm{
		Name:            c.PostForm("name"),
		ClinicName:      c.PostForm("clinic_name"),
		City:            c.PostForm("city"),
		SportsFocus:     c.PostForm("sports_focus"),
		PriceRange:      c.PostForm("price_range"),
		Bio:             c.PostForm("bio"),
		StudentFriendly: formKeyPresent(c, "student_friendly"),
		EveningHours:    formKeyPresent(c, "evening_hours"),
	}
}

func formKeyPresent(c *gin.Context, key string) bool {
	_, ok := c.GetPostForm(key)
	return ok
}

func (f SubmissionForm) fields() model.ChiropractorFields {
	return model.ChiropractorFields{
		Name:            f.Name,
		ClinicName:      f.ClinicName,
		City:            f.City,
		SportsFocus:     f.SportsFocus,
		PriceRange:      f.PriceRange,
		Bio:             f.Bio,
		StudentFriendly: f.StudentFriendly,
		EveningHours:    f.EveningHours,
	}
}

// createChiropractorRequest is the JSON body of an API submission. Omitted keys take their zero value.
type createChiropractorRequest struct {
	Name            string `json:"name" example:"Dr. Alex Chen"`
	ClinicName      string `json:"clinic_name" example:"Campus Sports Chiro"`
	City            string `json:"city" example:"London, ON"`
	SportsFocus     string `json:"sports_focus" example:"soccer, running"`
	PriceRange      string `json:"price_range" example:"$$ (60–80)"`
	Bio             string `json:"bio" example:"Return-to-play for field sports."`
	StudentFriendly bool   `json:"student_friendly" example:"true"`
	EveningHours    bool   `json:"evening_hours" example:"false"`
}

func (r createChiropractorRequest) fields() model.ChiropractorFields {
	return model.ChiropractorFields{
		Name:            r.Name,
		ClinicName:      r.ClinicName,
		City:            r.City,
		SportsFocus:     r.SportsFocus,
		PriceRange:      r.PriceRange,
		Bio:             r.Bio,
		StudentFriendly: r.StudentFriendly,
		EveningHours:    r.EveningHours,
	}
}
