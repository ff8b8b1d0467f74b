package form

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validVenueForm() VenueForm {
	return VenueForm{
		Name:          "The Musical Hop",
		City:          "San Francisco",
		State:         "CA",
		Address:       "1015 Folsom Street",
		Phone:         "321-323-1234",
		Genres:        []string{"Jazz", "Reggae"},
		FacebookLink:  "https://www.facebook.com/TheMusicalHop",
		Website:       "https://www.themusicalhop.com",
		SeekingTalent: "y",
		SeekingDescription: "We are on the lookout for a local artist " +
			"to play every two weeks.",
	}
}

func TestIsPhone(t *testing.T) {
	tests := []struct {
		phone string
		want  bool
	}{
		{"321-323-1234", true},
		{"914-203-1132", true},
		{"(415) 386-1234", true},
		{"+1 415.386.1234", true},
		{"1-415-386-1234", true},
		{"4153861234", true},
		{"386-1234", true},
		{"415-386-1234 x123", true},
		{"415-386-1234 ext. 55", true},
		{"415-386-1234 extension 7", true},
		{"415-386-1234 #9", true},
		{"123-456-7890", false},
		{"415-086-1234", false},
		{"415-386-12345", false},
		{"911", false},
		{"abc-def-ghij", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.phone, func(t *testing.T) {
			assert.Equal(t, tt.want, IsPhone(tt.phone))
		})
	}
}

func TestVenueForm_Validate(t *testing.T) {
	t.Run("Valid form", func(t *testing.T) {
		f := validVenueForm()
		venue, err := f.Validate()
		require.NoError(t, err)
		assert.Equal(t, "The Musical Hop", venue.Name)
		assert.True(t, venue.SeekingTalent)
		assert.Equal(t, []string{"Jazz", "Reggae"}, []string(venue.Genres))
		assert.Zero(t, venue.ID)
	})

	t.Run("Optional fields omitted", func(t *testing.T) {
		f := validVenueForm()
		f.Phone, f.FacebookLink, f.Website, f.ImageLink = "", "", "", ""
		_, err := f.Validate()
		assert.NoError(t, err)
	})

	t.Run("Values are trimmed", func(t *testing.T) {
		f := validVenueForm()
		f.Name = "  The Musical Hop  "
		f.Genres = []string{" Jazz ", "", "Jazz"}
		venue, err := f.Validate()
		require.NoError(t, err)
		assert.Equal(t, "The Musical Hop", venue.Name)
		assert.Equal(t, []string{"Jazz"}, []string(venue.Genres))
	})

	t.Run("Description dropped when not seeking", func(t *testing.T) {
		f := validVenueForm()
		f.SeekingTalent = ""
		venue, err := f.Validate()
		require.NoError(t, err)
		assert.False(t, venue.SeekingTalent)
		assert.Empty(t, venue.SeekingDescription)
	})

	tests := []struct {
		name    string
		mutate  func(f *VenueForm)
		field   string
		message string
	}{
		{
			name:    "Whitespace name",
			mutate:  func(f *VenueForm) { f.Name = "   " },
			field:   "name",
			message: MsgRequired,
		},
		{
			name:    "Missing address",
			mutate:  func(f *VenueForm) { f.Address = "" },
			field:   "address",
			message: MsgRequired,
		},
		{
			name:    "Unknown state",
			mutate:  func(f *VenueForm) { f.State = "ZZ" },
			field:   "state",
			message: invalidChoiceMessage(States),
		},
		{
			name:    "No genres",
			mutate:  func(f *VenueForm) { f.Genres = nil },
			field:   "genres",
			message: MsgRequired,
		},
		{
			name:    "Blank genres only",
			mutate:  func(f *VenueForm) { f.Genres = []string{" "} },
			field:   "genres",
			message: MsgRequired,
		},
		{
			name:    "One bad genre",
			mutate:  func(f *VenueForm) { f.Genres = []string{"Jazz", "Polka"} },
			field:   "genres",
			message: invalidChoiceMessage(Genres),
		},
		{
			name:    "Bad phone",
			mutate:  func(f *VenueForm) { f.Phone = "123-456-7890" },
			field:   "phone",
			message: MsgPhone,
		},
		{
			name:    "Bad website",
			mutate:  func(f *VenueForm) { f.Website = "not a url" },
			field:   "website",
			message: MsgURL,
		},
		{
			name:    "Script website",
			mutate:  func(f *VenueForm) { f.Website = "javascript:alert(1)" },
			field:   "website",
			message: MsgURL,
		},
		{
			name:    "FTP website",
			mutate:  func(f *VenueForm) { f.Website = "ftp://files" },
			field:   "website",
			message: MsgURL,
		},
		{
			name:    "Opaque image link",
			mutate:  func(f *VenueForm) { f.ImageLink = "foo:bar" },
			field:   "image_link",
			message: MsgURL,
		},
		{
			name:    "Mail facebook link",
			mutate:  func(f *VenueForm) { f.FacebookLink = "mailto:x@y" },
			field:   "facebook_link",
			message: MsgURL,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := validVenueForm()
			tt.mutate(&f)

			venue, err := f.Validate()
			assert.Nil(t, venue)

			verrs, ok := AsValidationErrors(err)
			require.True(t, ok)
			assert.Equal(t, []string{tt.message}, verrs.Fields()[tt.field])
			assert.Len(t, verrs, 1)
		})
	}
}

func TestArtistForm_Validate(t *testing.T) {
	f := ArtistForm{
		Name:         "Guns N Petals",
		City:         "San Francisco",
		State:        "CA",
		Phone:        "326-223-5000",
		Genres:       []string{"Rock n Roll"},
		SeekingVenue: "on",
	}
	artist, err := f.Validate()
	require.NoError(t, err)
	assert.True(t, artist.SeekingVenue)

	f.Website = "javascript:alert(1)"
	_, err = f.Validate()
	verrs, ok := AsValidationErrors(err)
	require.True(t, ok)
	assert.Equal(t, []string{MsgURL}, verrs.Fields()["website"])
	f.Website = "https://www.gunsnpetalsband.com"

	f.Genres = []string{"Rock"}
	f.State = ""
	_, err = f.Validate()
	verrs, ok = AsValidationErrors(err)
	require.True(t, ok)
	assert.Equal(t, []string{"state", "genres"}, []string{verrs[0].Field, verrs[1].Field})
	assert.Equal(t, []string{"Error in field state: " + MsgRequired, "Error in field genres: " + invalidChoiceMessage(Genres)}, verrs.Flashes())
}

func TestSeekingDescriptionNeedsFlag(t *testing.T) {
	f := validVenueForm()
	f.SeekingTalent = ""
	venue, err := f.Validate()
	require.NoError(t, err)
	assert.False(t, venue.SeekingTalent)
	assert.Empty(t, venue.SeekingDescription)

	a := ArtistForm{
		Name:               "Guns N Petals",
		City:               "San Francisco",
		State:              "CA",
		Phone:              "326-223-5000",
		Genres:             []string{"Rock n Roll"},
		SeekingDescription: "Looking for shows to perform at in the San Francisco Bay Area!",
	}
	artist, err := a.Validate()
	require.NoError(t, err)
	assert.False(t, artist.SeekingVenue)
	assert.Empty(t, artist.SeekingDescription)
}

func TestChecked(t *testing.T) {
	for _, v := range []string{"y", "Yes", "on", "TRUE", "1"} {
		assert.True(t, Checked(v), v)
	}
	for _, v := range []string{"", "n", "off", "false", "0"} {
		assert.False(t, Checked(v), v)
	}
}

type fakeRefs struct {
	artists map[uint]bool
	venues  map[uint]bool
	err     error
}

func (r fakeRefs) ArtistExists(_ context.Context, id uint) (bool, error) {
	return r.artists[id], r.err
}

func (r fakeRefs) VenueExists(_ context.Context, id uint) (bool, error) {
	return r.venues[id], r.err
}

func TestShowForm_Validate(t *testing.T) {
	refs := fakeRefs{
		artists: map[uint]bool{4: true},
		venues:  map[uint]bool{1: true},
	}
	ctx := context.Background()

	t.Run("Valid form", func(t *testing.T) {
		f := ShowForm{ArtistID: "4", VenueID: " 1 ", StartTime: "2035-04-01T20:00:00Z"}
		show, err := f.Validate(ctx, refs)
		require.NoError(t, err)
		assert.Equal(t, uint(4), show.ArtistID)
		assert.Equal(t, uint(1), show.VenueID)
		assert.True(t, show.StartTime.Equal(time.Date(2035, 4, 1, 20, 0, 0, 0, time.UTC)))
	})

	tests := []struct {
		name   string
		form   ShowForm
		errors map[string][]string
	}{
		{
			name: "Unknown artist",
			form: ShowForm{ArtistID: "999", VenueID: "1", StartTime: "2035-04-01 20:00"},
			errors: map[string][]string{
				"artist_id": {"No Artist Found with Id: 999"},
			},
		},
		{
			name: "Non integer ids",
			form: ShowForm{ArtistID: "four", VenueID: "1.5", StartTime: "2035-04-01 20:00"},
			errors: map[string][]string{
				"artist_id": {"Artist Id must be an Integer"},
				"venue_id":  {"Venue Id must be an Integer"},
			},
		},
		{
			name: "Negative venue",
			form: ShowForm{ArtistID: "4", VenueID: "-1", StartTime: "2035-04-01 20:00"},
			errors: map[string][]string{
				"venue_id": {"No Venue Found with Id: -1"},
			},
		},
		{
			name: "Missing everything",
			form: ShowForm{},
			errors: map[string][]string{
				"artist_id":  {MsgRequired},
				"venue_id":   {MsgRequired},
				"start_time": {MsgRequired},
			},
		},
		{
			name: "Bad start time",
			form: ShowForm{ArtistID: "4", VenueID: "1", StartTime: "next tuesday"},
			errors: map[string][]string{
				"start_time": {MsgInvalidTime},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := tt.form
			show, err := f.Validate(ctx, refs)
			assert.Nil(t, show)
			verrs, ok := AsValidationErrors(err)
			require.True(t, ok)
			assert.Equal(t, tt.errors, verrs.Fields())
		})
	}

	t.Run("Lookup failure is not a validation error", func(t *testing.T) {
		lookupErr := errors.New("database is closed")
		f := ShowForm{ArtistID: "4", VenueID: "1", StartTime: "2035-04-01 20:00"}
		_, err := f.Validate(ctx, fakeRefs{err: lookupErr})
		assert.ErrorIs(t, err, lookupErr)
		_, ok := AsValidationErrors(err)
		assert.False(t, ok)
	})
}

func TestParseStartTime(t *testing.T) {
	for _, s := range []string{
		"2019-05-21T21:30:00.000Z",
		"2019-05-21T21:30:00-07:00",
		"2019-05-21 21:30:00",
		"2019-05-21 21:30",
		"2019-05-21T21:30",
	} {
		_, ok := ParseStartTime(s)
		assert.True(t, ok, s)
	}
	_, ok := ParseStartTime("21/05/2019")
	assert.False(t, ok)
}
