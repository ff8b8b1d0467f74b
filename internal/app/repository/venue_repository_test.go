package repository

import (
	"context"
	"testing"

	"github.com/ikkim/fyyur/internal/app/model"
	"github.com/ikkim/fyyur/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupVenueTest(t *testing.T) (*gorm.DB, VenueRepository) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)

	repo := NewVenueRepository(testDB)
	return testDB, repo
}

func newVenue(name, city, state string) *model.Venue {
	return &model.Venue{
		Name:    name,
		City:    city,
		State:   state,
		Address: "1 Main Street",
		Genres:  model.Genres{"Jazz"},
	}
}

func createVenues(t *testing.T, repo VenueRepository, venues ...*model.Venue) {
	for _, v := range venues {
		require.NoError(t, repo.Create(context.Background(), v))
	}
}

func TestVenueRepository_CreateAndFind(t *testing.T) {
	testDB, repo := setupVenueTest(t)
	defer db.CleanupTestDB(testDB)
	ctx := context.Background()

	venue := newVenue("The Musical Hop", "San Francisco", "CA")
	venue.Genres = model.Genres{"Jazz", "Reggae", "Swing"}
	venue.SeekingTalent = true
	venue.SeekingDescription = "Looking for a local artist"

	require.NoError(t, repo.Create(ctx, venue))
	assert.NotZero(t, venue.ID)

	found, err := repo.FindByID(ctx, venue.ID)
	require.NoError(t, err)
	assert.Equal(t, "The Musical Hop", found.Name)
	assert.Equal(t, model.Genres{"Jazz", "Reggae", "Swing"}, found.Genres)
	assert.True(t, found.SeekingTalent)

	_, err = repo.FindByID(ctx, 999)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestVenueRepository_SearchByName(t *testing.T) {
	testDB, repo := setupVenueTest(t)
	defer db.CleanupTestDB(testDB)

	createVenues(t, repo,
		newVenue("The Musical Hop", "San Francisco", "CA"),
		newVenue("The Dueling Pianos Bar", "New York", "NY"),
		newVenue("Park Square Live Music & Coffee", "San Francisco", "CA"),
		newVenue("100% Vinyl", "Austin", "TX"),
		newVenue("Under_score", "Austin", "TX"),
	)

	tests := []struct {
		term string
		want []string
	}{
		{"Hop", []string{"The Musical Hop"}},
		{"hop", []string{"The Musical Hop"}},
		{"Music", []string{"The Musical Hop", "Park Square Live Music & Coffee"}},
		{"Mus*Hop", []string{"The Musical Hop"}},
		{"100%", []string{"100% Vinyl"}},
		{"%", []string{"100% Vinyl"}},
		{"r_s", []string{"Under_score"}},
		{"Musical_Hop", nil},
		{"", []string{
			"The Musical Hop",
			"The Dueling Pianos Bar",
			"Park Square Live Music & Coffee",
			"100% Vinyl",
			"Under_score",
		}},
	}

	for _, tt := range tests {
		t.Run(tt.term, func(t *testing.T) {
			venues, err := repo.SearchByName(context.Background(), tt.term)
			require.NoError(t, err)

			var names []string
			for _, v := range venues {
				names = append(names, v.Name)
			}
			assert.ElementsMatch(t, tt.want, names)
		})
	}
}

func TestVenueRepository_FindAllOrdering(t *testing.T) {
	testDB, repo := setupVenueTest(t)
	defer db.CleanupTestDB(testDB)

	createVenues(t, repo,
		newVenue("Zeta", "San Francisco", "CA"),
		newVenue("Alpha", "New York", "NY"),
		newVenue("Beta", "Los Angeles", "CA"),
		newVenue("Gamma", "San Francisco", "CA"),
	)

	venues, err := repo.FindAll(context.Background())
	require.NoError(t, err)

	var names []string
	for _, v := range venues {
		names = append(names, v.Name)
	}
	assert.Equal(t, []string{"Beta", "Gamma", "Zeta", "Alpha"}, names)
}

func TestVenueRepository_UpdateAndDelete(t *testing.T) {
	testDB, repo := setupVenueTest(t)
	defer db.CleanupTestDB(testDB)
	ctx := context.Background()

	venue := newVenue("The Musical Hop", "San Francisco", "CA")
	venue.SeekingTalent = true
	createVenues(t, repo, venue)

	venue.Name = "The Musical Hop Annex"
	venue.SeekingTalent = false
	require.NoError(t, repo.Update(ctx, venue))

	found, err := repo.FindByID(ctx, venue.ID)
	require.NoError(t, err)
	assert.Equal(t, "The Musical Hop Annex", found.Name)
	assert.False(t, found.SeekingTalent)

	exists, err := repo.Exists(ctx, venue.ID)
	require.NoError(t, err)
	assert.True(t, exists)

	deleted, err := repo.Delete(ctx, venue.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	deleted, err = repo.Delete(ctx, venue.ID)
	require.NoError(t, err)
	assert.Zero(t, deleted)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestVenueRepository_Recent(t *testing.T) {
	testDB, repo := setupVenueTest(t)
	defer db.CleanupTestDB(testDB)

	createVenues(t, repo,
		newVenue("First", "Austin", "TX"),
		newVenue("Second", "Austin", "TX"),
		newVenue("Third", "Austin", "TX"),
	)

	venues, err := repo.Recent(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, venues, 2)
	assert.Equal(t, "Third", venues[0].Name)
	assert.Equal(t, "Second", venues[1].Name)
}
