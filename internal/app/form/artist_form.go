package form

import (
	"github.com/ikkim/fyyur/internal/app/model"
)

// ArtistForm is the artist create/edit submission. Artists have no address.
type ArtistForm struct {
	Name               string   `form:"name" json:"name" validate:"required"`
	City               string   `form:"city" json:"city" validate:"required"`
	State              string   `form:"state" json:"state" validate:"required,us_state"`
	Phone              string   `form:"phone" json:"phone" validate:"omitempty,phone"`
	ImageLink          string   `form:"image_link" json:"image_link" validate:"omitempty,http_url"`
	Genres             []string `form:"genres" json:"genres" validate:"required,min=1,genres"`
	FacebookLink       string   `form:"facebook_link" json:"facebook_link" validate:"omitempty,http_url"`
	Website            string   `form:"website" json:"website" validate:"omitempty,http_url"`
	SeekingVenue       string   `form:"seeking_venue" json:"seeking_venue"`
	SeekingDescription string   `form:"seeking_description" json:"seeking_description"`
}

func ArtistFormFrom(a *model.Artist) ArtistForm {
	f := ArtistForm{
		Name:               a.Name,
		City:               a.City,
		State:              a.State,
		Phone:              a.Phone,
		ImageLink:          a.ImageLink,
		Genres:             append([]string(nil), a.Genres...),
		FacebookLink:       a.FacebookLink,
		Website:            a.Website,
		SeekingDescription: a.SeekingDescription,
	}
	if a.SeekingVenue {
		f.SeekingVenue = "y"
	}
	return f
}

func (f ArtistForm) IsSeeking() bool {
	return Checked(f.SeekingVenue)
}

func (f ArtistForm) HasGenre(g string) bool {
	for _, v := range f.Genres {
		if v == g {
			return true
		}
	}
	return false
}

// Validate normalizes f and returns the artist it describes, or
// ValidationErrors.
func (f *ArtistForm) Validate() (*model.Artist, error) {
	trimAll(f)
	f.Genres = cleanGenres(f.Genres)

	var errs ValidationErrors
	check(f, &errs)
	if len(errs) > 0 {
		return nil, errs
	}

	artist := &model.Artist{
		Name:         f.Name,
		City:         f.City,
		State:        f.State,
		Phone:        f.Phone,
		ImageLink:    f.ImageLink,
		FacebookLink: f.FacebookLink,
		Website:      f.Website,
		SeekingVenue: f.IsSeeking(),
		Genres:       model.Genres(append([]string(nil), f.Genres...)),
	}
	if artist.SeekingVenue {
		artist.SeekingDescription = f.SeekingDescription
	}
	return artist, nil
}
