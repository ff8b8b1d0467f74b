package model

import (
	"fmt"
	"time"
)

type Venue struct {
	ID                 uint      `gorm:"primarykey" json:"id"`
	Name               string    `gorm:"uniqueIndex;not null" json:"name"`
	City               string    `gorm:"type:varchar(120);not null;index:idx_venues_area" json:"city"`
	State              string    `gorm:"type:varchar(120);not null;index:idx_venues_area" json:"state"`
	Address            string    `gorm:"type:varchar(120);not null" json:"address"`
	Phone              string    `gorm:"type:varchar(120)" json:"phone"`
	ImageLink          string    `gorm:"type:varchar(500)" json:"image_link"`
	FacebookLink       string    `gorm:"type:varchar(120)" json:"facebook_link"`
	Website            string    `gorm:"type:varchar(120)" json:"website"`
	SeekingTalent      bool      `gorm:"default:false" json:"seeking_talent"`
	SeekingDescription string    `gorm:"type:varchar(500)" json:"seeking_description"`
	Genres             Genres    `gorm:"not null" json:"genres"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`

	Shows []Show `gorm:"foreignKey:VenueID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Venue) TableName() string {
	return "venues"
}

func (v Venue) String() string {
	return fmt.Sprintf("%s in %s, %s", v.Name, v.City, v.State)
}

// ApplyEdits overwrites every editable field of v with the values in src.
// ID, timestamps and shows stay as they are.
func (v *Venue) ApplyEdits(src *Venue) {
	v.Name = src.Name
	v.City = src.City
	v.State = src.State
	v.Address = src.Address
	v.Phone = src.Phone
	v.ImageLink = src.ImageLink
	v.FacebookLink = src.FacebookLink
	v.Website = src.Website
	v.SeekingTalent = src.SeekingTalent
	v.SeekingDescription = src.SeekingDescription
	v.Genres = append(Genres(nil), src.Genres...)
}
