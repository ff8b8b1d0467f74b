package model

import "time"

// Show books one artist at one venue. Nothing prevents two identical bookings.
type Show struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	StartTime time.Time `gorm:"not null;index" json:"start_time"`
	ArtistID  uint      `gorm:"not null;index" json:"artist_id"`
	VenueID   uint      `gorm:"not null;index" json:"venue_id"`
	CreatedAt time.Time `json:"created_at"`

	Artist Artist `gorm:"foreignKey:ArtistID" json:"-"`
	Venue  Venue  `gorm:"foreignKey:VenueID" json:"-"`
}

func (Show) TableName() string {
	return "shows"
}
