package model

import (
	"fmt"
	"time"
)

type Artist struct {
	ID                 uint      `gorm:"primarykey" json:"id"`
	Name               string    `gorm:"uniqueIndex;not null" json:"name"`
	City               string    `gorm:"type:varchar(120);not null" json:"city"`
	State              string    `gorm:"type:varchar(120);not null" json:"state"`
	Phone              string    `gorm:"type:varchar(120)" json:"phone"`
	Genres             Genres    `gorm:"not null" json:"genres"`
	ImageLink          string    `gorm:"type:varchar(500)" json:"image_link"`
	FacebookLink       string    `gorm:"type:varchar(120)" json:"facebook_link"`
	Website            string    `gorm:"type:varchar(120)" json:"website"`
	SeekingVenue       bool      `gorm:"default:false" json:"seeking_venue"`
	SeekingDescription string    `gorm:"type:varchar(500)" json:"seeking_description"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`

	Shows []Show `gorm:"foreignKey:ArtistID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Artist) TableName() string {
	return "artists"
}

func (a Artist) String() string {
	return fmt.Sprintf("%s from %s, %s", a.Name, a.City, a.State)
}

// ApplyEdits overwrites every editable field of a with the values in src.
func (a *Artist) ApplyEdits(src *Artist) {
	a.Name = src.Name
	a.City = src.City
	a.State = src.State
	a.Phone = src.Phone
	a.ImageLink = src.ImageLink
	a.FacebookLink = src.FacebookLink
	a.Website = src.Website
	a.SeekingVenue = src.SeekingVenue
	a.SeekingDescription = src.SeekingDescription
	a.Genres = append(Genres(nil), src.Genres...)
}
