package seed

import (
	"fmt"
	"strings"

	"github.com/ikkim/fyyur/internal/app/form"
	"github.com/xuri/excelize/v2"
)

// Sheet names read by ReadWorkbook. A missing sheet is treated as empty.
const (
	SheetVenues  = "Venues"
	SheetArtists = "Artists"
	SheetShows   = "Shows"
)

// ReadWorkbook reads listings from an .xlsx file. Each sheet starts with a
// header row naming the form fields (name, city, state, genres, ...); genres
// are comma separated. The Shows sheet has venue_name, artist_name and
// start_time columns.
func ReadWorkbook(path string) (*Dataset, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open XLSX file: %w", err)
	}
	defer f.Close()

	data := &Dataset{}

	venueRows, err := sheetRecords(f, SheetVenues)
	if err != nil {
		return nil, err
	}
	for _, r := range venueRows {
		data.Venues = append(data.Venues, form.VenueForm{
			Name:               r.get("name"),
			City:               r.get("city"),
			State:              r.get("state"),
			Address:            r.get("address"),
			Phone:              r.get("phone"),
			ImageLink:          r.get("image_link"),
			Genres:             r.list("genres"),
			FacebookLink:       r.get("facebook_link"),
			Website:            r.get("website"),
			SeekingTalent:      r.get("seeking_talent"),
			SeekingDescription: r.get("seeking_description"),
		})
	}

	artistRows, err := sheetRecords(f, SheetArtists)
	if err != nil {
		return nil, err
	}
	for _, r := range artistRows {
		data.Artists = append(data.Artists, form.ArtistForm{
			Name:               r.get("name"),
			City:               r.get("city"),
			State:              r.get("state"),
			Phone:              r.get("phone"),
			ImageLink:          r.get("image_link"),
			Genres:             r.list("genres"),
			FacebookLink:       r.get("facebook_link"),
			Website:            r.get("website"),
			SeekingVenue:       r.get("seeking_venue"),
			SeekingDescription: r.get("seeking_description"),
		})
	}

	showRows, err := sheetRecords(f, SheetShows)
	if err != nil {
		return nil, err
	}
	for _, r := range showRows {
		data.Shows = append(data.Shows, ShowFixture{
			VenueName:  r.get("venue_name"),
			ArtistName: r.get("artist_name"),
			StartTime:  r.get("start_time"),
		})
	}

	return data, nil
}

type record map[string]string

func (r record) get(column string) string {
	return r[column]
}

func (r record) list(column string) []string {
	var out []string
	for _, part := range strings.Split(r[column], ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// sheetRecords maps every non-blank row below the header to its columns.
func sheetRecords(f *excelize.File, sheet string) ([]record, error) {
	if idx, err := f.GetSheetIndex(sheet); err != nil || idx < 0 {
		return nil, nil
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	header := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		header[i] = strings.ToLower(strings.TrimSpace(h))
	}

	var records []record
	for _, row := range rows[1:] {
		r := record{}
		blank := true
		for i, cell := range row {
			if i >= len(header) || header[i] == "" {
				continue
			}
			cell = strings.TrimSpace(cell)
			if cell != "" {
				blank = false
			}
			r[header[i]] = cell
		}
		if !blank {
			records = append(records, r)
		}
	}
	return records, nil
}
