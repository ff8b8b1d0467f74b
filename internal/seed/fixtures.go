package seed

import "github.com/ikkim/fyyur/internal/app/form"

// ShowFixture names the venue and artist of a show instead of their ids,
// which are only known once they are stored.
type ShowFixture struct {
	VenueName  string
	ArtistName string
	StartTime  string
}

// Dataset is a batch of listings to load.
type Dataset struct {
	Venues  []form.VenueForm
	Artists []form.ArtistForm
	Shows   []ShowFixture
}

// Fixtures is the starter data loaded into an empty database.
func Fixtures() Dataset {
	return Dataset{
		Venues: []form.VenueForm{
			{
				Name:               "The Musical Hop",
				Genres:             []string{"Jazz", "Reggae", "Swing", "Classical", "Folk"},
				Address:            "1015 Folsom Street",
				City:               "San Francisco",
				State:              "CA",
				Phone:              "321-323-1234",
				Website:            "https://www.themusicalhop.com",
				FacebookLink:       "https://www.facebook.com/TheMusicalHop",
				SeekingTalent:      "y",
				SeekingDescription: "We are on the lookout for a local artist to play every two weeks. Please call us.",
				ImageLink:          "https://images.unsplash.com/photo-1543900694-133f37abaaa5?auto=format&fit=crop&w=400&q=60",
			},
			{
				Name:         "The Dueling Pianos Bar",
				Genres:       []string{"Classical", "R&B", "Hip-Hop"},
				Address:      "335 Delancey Street",
				City:         "New York",
				State:        "NY",
				Phone:        "914-203-1132",
				Website:      "https://www.theduelingpianos.com",
				FacebookLink: "https://www.facebook.com/theduelingpianos",
				ImageLink:    "https://images.unsplash.com/photo-1497032205916-ac775f0649ae?auto=format&fit=crop&w=750&q=80",
			},
			{
				Name:         "Park Square Live Music & Coffee",
				Genres:       []string{"Rock n Roll", "Jazz", "Classical", "Folk"},
				Address:      "34 Whiskey Moore Ave",
				City:         "San Francisco",
				State:        "CA",
				Phone:        "415-386-1234",
				Website:      "https://www.parksquarelivemusicandcoffee.com",
				FacebookLink: "https://www.facebook.com/ParkSquareLiveMusicAndCoffee",
				ImageLink:    "https://images.unsplash.com/photo-1485686531765-ba63b07845a7?auto=format&fit=crop&w=747&q=80",
			},
		},
		Artists: []form.ArtistForm{
			{
				Name:               "Guns N Petals",
				Genres:             []string{"Rock n Roll"},
				City:               "San Francisco",
				State:              "CA",
				Phone:              "326-223-5000",
				Website:            "https://www.gunsnpetalsband.com",
				FacebookLink:       "https://www.facebook.com/GunsNPetals",
				SeekingVenue:       "y",
				SeekingDescription: "Looking for shows to perform at in the San Francisco Bay Area!",
				ImageLink:          "https://images.unsplash.com/photo-1549213783-8284d0336c4f?auto=format&fit=crop&w=300&q=80",
			},
			{
				Name:         "Matt Quevedo",
				Genres:       []string{"Jazz"},
				City:         "New York",
				State:        "NY",
				Phone:        "300-400-5000",
				FacebookLink: "https://www.facebook.com/mattquevedo923251523",
				ImageLink:    "https://images.unsplash.com/photo-1495223153807-b916f75de8c5?auto=format&fit=crop&w=334&q=80",
			},
			{
				Name:      "The Wild Sax Band",
				Genres:    []string{"Jazz", "Classical"},
				City:      "San Francisco",
				State:     "CA",
				Phone:     "432-325-5432",
				ImageLink: "https://images.unsplash.com/photo-1558369981-f9ca78462e61?auto=format&fit=crop&w=794&q=80",
			},
		},
		Shows: []ShowFixture{
			{VenueName: "The Musical Hop", ArtistName: "Guns N Petals", StartTime: "2019-05-21T21:30:00Z"},
			{VenueName: "Park Square Live Music & Coffee", ArtistName: "Matt Quevedo", StartTime: "2019-06-15T23:00:00Z"},
			{VenueName: "Park Square Live Music & Coffee", ArtistName: "The Wild Sax Band", StartTime: "2035-04-01T20:00:00Z"},
			{VenueName: "Park Square Live Music & Coffee", ArtistName: "The Wild Sax Band", StartTime: "2035-04-08T20:00:00Z"},
			{VenueName: "Park Square Live Music & Coffee", ArtistName: "The Wild Sax Band", StartTime: "2035-04-15T20:00:00Z"},
		},
	}
}
