package service

import (
	"sort"
	"time"

	"github.com/ikkim/fyyur/internal/app/model"
)

// splitShows partitions shows around now into past and upcoming, each ordered
// by start time then id. A show starting exactly at now is in neither list.
func splitShows(shows []model.Show, now time.Time) (past, upcoming []model.Show) {
	sorted := append([]model.Show(nil), shows...)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if !a.StartTime.Equal(b.StartTime) {
			return a.StartTime.Before(b.StartTime)
		}
		return a.ID < b.ID
	})

	for _, show := range sorted {
		switch {
		case show.StartTime.After(now):
			upcoming = append(upcoming, show)
		case show.StartTime.Before(now):
			past = append(past, show)
		}
	}
	return past, upcoming
}

func clockOrNow(now func() time.Time) func() time.Time {
	if now == nil {
		return time.Now
	}
	return now
}
