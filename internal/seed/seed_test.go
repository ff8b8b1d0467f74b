package seed

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/ikkim/fyyur/internal/app/repository"
	"github.com/ikkim/fyyur/internal/app/service"
	"github.com/ikkim/fyyur/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

var testNow = time.Date(2030, 1, 1, 12, 0, 0, 0, time.UTC)

type seedServices struct {
	venues  service.VenueService
	artists service.ArtistService
	shows   service.ShowService
}

func setupLoader(t *testing.T) (*Loader, *seedServices) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() { db.CleanupTestDB(testDB) })

	venueRepo := repository.NewVenueRepository(testDB)
	artistRepo := repository.NewArtistRepository(testDB)
	showRepo := repository.NewShowRepository(testDB)
	clock := func() time.Time { return testNow }

	svc := &seedServices{
		venues:  service.NewVenueService(testDB, venueRepo, showRepo, clock),
		artists: service.NewArtistService(testDB, artistRepo, showRepo, clock),
		shows:   service.NewShowService(testDB, showRepo, venueRepo, artistRepo, clock),
	}
	return NewLoader(svc.venues, svc.artists, svc.shows), svc
}

func counts(t *testing.T, svc *seedServices) (int64, int64, int64) {
	ctx := context.Background()
	venues, err := svc.venues.Count(ctx)
	require.NoError(t, err)
	artists, err := svc.artists.Count(ctx)
	require.NoError(t, err)
	shows, err := svc.shows.Count(ctx)
	require.NoError(t, err)
	return venues, artists, shows
}

func TestLoadIfEmpty(t *testing.T) {
	loader, svc := setupLoader(t)
	ctx := context.Background()

	require.NoError(t, loader.LoadIfEmpty(ctx))
	venues, artists, shows := counts(t, svc)
	assert.Equal(t, int64(3), venues)
	assert.Equal(t, int64(3), artists)
	assert.Equal(t, int64(5), shows)

	// A second run leaves populated tables alone.
	require.NoError(t, loader.LoadIfEmpty(ctx))
	venues, artists, shows = counts(t, svc)
	assert.Equal(t, int64(3), venues)
	assert.Equal(t, int64(3), artists)
	assert.Equal(t, int64(5), shows)

	result, err := svc.venues.Search(ctx, "Park Square")
	require.NoError(t, err)
	require.Len(t, result.Data, 1)

	detail, err := svc.venues.GetVenue(ctx, result.Data[0].ID)
	require.NoError(t, err)
	assert.Equal(t, 1, detail.PastShowsCount)
	assert.Equal(t, 3, detail.UpcomingShowsCount)
}

func writeWorkbook(t *testing.T, sheets map[string][][]interface{}) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	for name, rows := range sheets {
		_, err := f.NewSheet(name)
		require.NoError(t, err)
		for i, row := range rows {
			cell, err := excelize.CoordinatesToCellName(1, i+1)
			require.NoError(t, err)
			require.NoError(t, f.SetSheetRow(name, cell, &row))
		}
	}

	path := filepath.Join(t.TempDir(), "listings.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestReadWorkbook(t *testing.T) {
	path := writeWorkbook(t, map[string][][]interface{}{
		SheetVenues: {
			{"Name", "City", "State", "Address", "Phone", "Genres", "Seeking_Talent"},
			{"The Musical Hop", "San Francisco", "CA", "1015 Folsom Street", "321-323-1234", "Jazz, Reggae", "yes"},
			{"", "", "", "", "", "", ""},
		},
		SheetShows: {
			{"venue_name", "artist_name", "start_time"},
			{"The Musical Hop", "Guns N Petals", "2035-04-01 20:00:00"},
		},
	})

	data, err := ReadWorkbook(path)
	require.NoError(t, err)

	require.Len(t, data.Venues, 1)
	v := data.Venues[0]
	assert.Equal(t, "The Musical Hop", v.Name)
	assert.Equal(t, "CA", v.State)
	assert.Equal(t, []string{"Jazz", "Reggae"}, v.Genres)
	assert.True(t, v.IsSeeking())

	assert.Empty(t, data.Artists, "missing sheet reads as empty")

	require.Len(t, data.Shows, 1)
	assert.Equal(t, ShowFixture{
		VenueName:  "The Musical Hop",
		ArtistName: "Guns N Petals",
		StartTime:  "2035-04-01 20:00:00",
	}, data.Shows[0])
}

func TestReadWorkbook_MissingFile(t *testing.T) {
	_, err := ReadWorkbook(filepath.Join(t.TempDir(), "missing.xlsx"))
	assert.Error(t, err)
}

func TestImport(t *testing.T) {
	loader, svc := setupLoader(t)
	ctx := context.Background()

	data := Fixtures()
	data.Shows = append(data.Shows, ShowFixture{
		VenueName:  "Nowhere Hall",
		ArtistName: "Guns N Petals",
		StartTime:  "2035-05-01T20:00:00Z",
	})

	result, err := loader.Import(ctx, &data)
	require.NoError(t, err)
	assert.Equal(t, &Result{Venues: 3, Artists: 3, Shows: 5, Skipped: 1}, result)

	// Importing the same listings again only adds the shows.
	again := Fixtures()
	result, err = loader.Import(ctx, &again)
	require.NoError(t, err)
	assert.Equal(t, &Result{Shows: 5, Skipped: 6}, result)

	venues, artists, shows := counts(t, svc)
	assert.Equal(t, int64(3), venues)
	assert.Equal(t, int64(3), artists)
	assert.Equal(t, int64(10), shows)
}

func TestImport_InvalidRow(t *testing.T) {
	loader, _ := setupLoader(t)

	data := Fixtures()
	data.Venues[0].Genres = []string{"Polka"}

	result, err := loader.Import(context.Background(), &data)
	assert.Error(t, err)
	assert.Zero(t, result.Venues)
}
