package service

import (
	"time"

	"github.com/ikkim/fyyur/internal/app/model"
)

// NamedRef is an id and display name pair.
type NamedRef struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// SearchResult is the answer to a venue or artist name search.
type SearchResult struct {
	SearchTerm string     `json:"search_term"`
	Count      int        `json:"count"`
	Data       []NamedRef `json:"data"`
}

// VenueArea groups the venues of one city.
type VenueArea struct {
	City   string     `json:"city"`
	State  string     `json:"state"`
	Venues []NamedRef `json:"venues"`
}

// VenueShow is a show as listed on a venue page.
type VenueShow struct {
	ArtistID        uint      `json:"artist_id"`
	ArtistName      string    `json:"artist_name"`
	ArtistImageLink string    `json:"artist_image_link"`
	StartTime       time.Time `json:"start_time"`
}

// ArtistShow is a show as listed on an artist page.
type ArtistShow struct {
	VenueID        uint      `json:"venue_id"`
	VenueName      string    `json:"venue_name"`
	VenueImageLink string    `json:"venue_image_link"`
	StartTime      time.Time `json:"start_time"`
}

type VenueDetail struct {
	ID                 uint        `json:"id"`
	Name               string      `json:"name"`
	Genres             []string    `json:"genres"`
	Address            string      `json:"address"`
	City               string      `json:"city"`
	State              string      `json:"state"`
	Phone              string      `json:"phone"`
	Website            string      `json:"website"`
	FacebookLink       string      `json:"facebook_link"`
	SeekingTalent      bool        `json:"seeking_talent"`
	SeekingDescription string      `json:"seeking_description"`
	ImageLink          string      `json:"image_link"`
	PastShows          []VenueShow `json:"past_shows"`
	UpcomingShows      []VenueShow `json:"upcoming_shows"`
	PastShowsCount     int         `json:"past_shows_count"`
	UpcomingShowsCount int         `json:"upcoming_shows_count"`
}

type ArtistDetail struct {
	ID                 uint         `json:"id"`
	Name               string       `json:"name"`
	Genres             []string     `json:"genres"`
	City               string       `json:"city"`
	State              string       `json:"state"`
	Phone              string       `json:"phone"`
	Website            string       `json:"website"`
	FacebookLink       string       `json:"facebook_link"`
	SeekingVenue       bool         `json:"seeking_venue"`
	SeekingDescription string       `json:"seeking_description"`
	ImageLink          string       `json:"image_link"`
	PastShows          []ArtistShow `json:"past_shows"`
	UpcomingShows      []ArtistShow `json:"upcoming_shows"`
	PastShowsCount     int          `json:"past_shows_count"`
	UpcomingShowsCount int          `json:"upcoming_shows_count"`
}

// ShowListing is a show with both sides of the booking.
type ShowListing struct {
	ID              uint      `json:"id"`
	VenueID         uint      `json:"venue_id"`
	VenueName       string    `json:"venue_name"`
	VenueImageLink  string    `json:"venue_image_link"`
	ArtistID        uint      `json:"artist_id"`
	ArtistName      string    `json:"artist_name"`
	ArtistImageLink string    `json:"artist_image_link"`
	StartTime       time.Time `json:"start_time"`
}

// ShowSearchResult holds matching shows split around the search time.
type ShowSearchResult struct {
	SearchTerm         string        `json:"search_term"`
	Count              int           `json:"count"`
	PastShows          []ShowListing `json:"past_shows"`
	UpcomingShows      []ShowListing `json:"upcoming_shows"`
	PastShowsCount     int           `json:"past_shows_count"`
	UpcomingShowsCount int           `json:"upcoming_shows_count"`
}

func newSearchResult(term string, refs []NamedRef) *SearchResult {
	return &SearchResult{SearchTerm: term, Count: len(refs), Data: refs}
}

func venueRefs(venues []model.Venue) []NamedRef {
	refs := make([]NamedRef, 0, len(venues))
	for _, v := range venues {
		refs = append(refs, NamedRef{ID: v.ID, Name: v.Name})
	}
	return refs
}

func artistRefs(artists []model.Artist) []NamedRef {
	refs := make([]NamedRef, 0, len(artists))
	for _, a := range artists {
		refs = append(refs, NamedRef{ID: a.ID, Name: a.Name})
	}
	return refs
}

// groupByArea expects venues ordered by state, city, name.
func groupByArea(venues []model.Venue) []VenueArea {
	areas := make([]VenueArea, 0)
	for _, v := range venues {
		n := len(areas)
		if n == 0 || areas[n-1].City != v.City || areas[n-1].State != v.State {
			areas = append(areas, VenueArea{City: v.City, State: v.State})
			n++
		}
		areas[n-1].Venues = append(areas[n-1].Venues, NamedRef{ID: v.ID, Name: v.Name})
	}
	return areas
}

func newVenueDetail(v *model.Venue, shows []model.Show, now time.Time) *VenueDetail {
	past, upcoming := splitShows(shows, now)
	d := &VenueDetail{
		ID:                 v.ID,
		Name:               v.Name,
		Genres:             genreList(v.Genres),
		Address:            v.Address,
		City:               v.City,
		State:              v.State,
		Phone:              v.Phone,
		Website:            v.Website,
		FacebookLink:       v.FacebookLink,
		SeekingTalent:      v.SeekingTalent,
		SeekingDescription: v.SeekingDescription,
		ImageLink:          v.ImageLink,
		PastShows:          venueShows(past),
		UpcomingShows:      venueShows(upcoming),
	}
	d.PastShowsCount = len(d.PastShows)
	d.UpcomingShowsCount = len(d.UpcomingShows)
	return d
}

func venueShows(shows []model.Show) []VenueShow {
	out := make([]VenueShow, 0, len(shows))
	for _, s := range shows {
		out = append(out, VenueShow{
			ArtistID:        s.ArtistID,
			ArtistName:      s.Artist.Name,
			ArtistImageLink: s.Artist.ImageLink,
			StartTime:       s.StartTime,
		})
	}
	return out
}

func newArtistDetail(a *model.Artist, shows []model.Show, now time.Time) *ArtistDetail {
	past, upcoming := splitShows(shows, now)
	d := &ArtistDetail{
		ID:                 a.ID,
		Name:               a.Name,
		Genres:             genreList(a.Genres),
		City:               a.City,
		State:              a.State,
		Phone:              a.Phone,
		Website:            a.Website,
		FacebookLink:       a.FacebookLink,
		SeekingVenue:       a.SeekingVenue,
		SeekingDescription: a.SeekingDescription,
		ImageLink:          a.ImageLink,
		PastShows:          artistShows(past),
		UpcomingShows:      artistShows(upcoming),
	}
	d.PastShowsCount = len(d.PastShows)
	d.UpcomingShowsCount = len(d.UpcomingShows)
	return d
}

func artistShows(shows []model.Show) []ArtistShow {
	out := make([]ArtistShow, 0, len(shows))
	for _, s := range shows {
		out = append(out, ArtistShow{
			VenueID:        s.VenueID,
			VenueName:      s.Venue.Name,
			VenueImageLink: s.Venue.ImageLink,
			StartTime:      s.StartTime,
		})
	}
	return out
}

func showListings(shows []model.Show) []ShowListing {
	out := make([]ShowListing, 0, len(shows))
	for _, s := range shows {
		out = append(out, ShowListing{
			ID:              s.ID,
			VenueID:         s.VenueID,
			VenueName:       s.Venue.Name,
			VenueImageLink:  s.Venue.ImageLink,
			ArtistID:        s.ArtistID,
			ArtistName:      s.Artist.Name,
			ArtistImageLink: s.Artist.ImageLink,
			StartTime:       s.StartTime,
		})
	}
	return out
}

func genreList(g model.Genres) []string {
	if g == nil {
		return []string{}
	}
	return []string(g)
}
