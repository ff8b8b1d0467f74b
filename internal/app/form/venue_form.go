package form

import (
	"github.com/ikkim/fyyur/internal/app/model"
)

// VenueForm is the venue create/edit submission.
type VenueForm struct {
	Name               string   `form:"name" json:"name" validate:"required"`
	City               string   `form:"city" json:"city" validate:"required"`
	State              string   `form:"state" json:"state" validate:"required,us_state"`
	Address            string   `form:"address" json:"address" validate:"required"`
	Phone              string   `form:"phone" json:"phone" validate:"omitempty,phone"`
	ImageLink          string   `form:"image_link" json:"image_link" validate:"omitempty,http_url"`
	Genres             []string `form:"genres" json:"genres" validate:"required,min=1,genres"`
	FacebookLink       string   `form:"facebook_link" json:"facebook_link" validate:"omitempty,http_url"`
	Website            string   `form:"website" json:"website" validate:"omitempty,http_url"`
	SeekingTalent      string   `form:"seeking_talent" json:"seeking_talent"`
	SeekingDescription string   `form:"seeking_description" json:"seeking_description"`
}

// VenueFormFrom fills a form with the stored values of v, for the edit page.
func VenueFormFrom(v *model.Venue) VenueForm {
	f := VenueForm{
		Name:               v.Name,
		City:               v.City,
		State:              v.State,
		Address:            v.Address,
		Phone:              v.Phone,
		ImageLink:          v.ImageLink,
		Genres:             append([]string(nil), v.Genres...),
		FacebookLink:       v.FacebookLink,
		Website:            v.Website,
		SeekingDescription: v.SeekingDescription,
	}
	if v.SeekingTalent {
		f.SeekingTalent = "y"
	}
	return f
}

// IsSeeking reports whether the seeking_talent box is ticked.
func (f VenueForm) IsSeeking() bool {
	return Checked(f.SeekingTalent)
}

// HasGenre is used by the form template to pre-select genres.
func (f VenueForm) HasGenre(g string) bool {
	for _, v := range f.Genres {
		if v == g {
			return true
		}
	}
	return false
}

// Validate normalizes f and returns the venue it describes, or
// ValidationErrors. The returned venue has no id.
func (f *VenueForm) Validate() (*model.Venue, error) {
	trimAll(f)
	f.Genres = cleanGenres(f.Genres)

	var errs ValidationErrors
	check(f, &errs)
	if len(errs) > 0 {
		return nil, errs
	}

	venue := &model.Venue{
		Name:          f.Name,
		City:          f.City,
		State:         f.State,
		Address:       f.Address,
		Phone:         f.Phone,
		ImageLink:     f.ImageLink,
		FacebookLink:  f.FacebookLink,
		Website:       f.Website,
		SeekingTalent: f.IsSeeking(),
		Genres:        model.Genres(append([]string(nil), f.Genres...)),
	}
	if venue.SeekingTalent {
		venue.SeekingDescription = f.SeekingDescription
	}
	return venue, nil
}
