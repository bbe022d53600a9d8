package models

import "time"

type EventStatus string

const (
	EventPending   EventStatus = "PENDING"
	EventApproved  EventStatus = "APPROVED"
	EventCanceled  EventStatus = "CANCELED"
	EventRejected  EventStatus = "REJECTED"
	EventCompleted EventStatus = "COMPLETED"
)

type EventCategory string

const (
	CategoryWedding     EventCategory = "WEDDING"
	CategoryBirthday    EventCategory = "BIRTHDAY"
	CategoryDebut       EventCategory = "DEBUT"
	CategoryCorporate   EventCategory = "CORPORATE"
	CategoryChristening EventCategory = "CHRISTENING"
	CategoryAnniversary EventCategory = "ANNIVERSARY"
	CategoryOthers      EventCategory = "OTHERS"
)

type Event struct {
	Base

	Title           string        `gorm:"size:100;not null;uniqueIndex:idx_events_user_title" json:"title"`
	Description     string        `gorm:"size:1000" json:"description"`
	Category        EventCategory `gorm:"size:20;not null" json:"category"`
	Date            time.Time     `gorm:"type:date;not null" json:"date"`
	StartTime       time.Time     `gorm:"not null" json:"startTime"`
	EndTime         time.Time     `gorm:"not null" json:"endTime"`
	Status          EventStatus   `gorm:"size:20;default:'PENDING';not null;index" json:"status"`
	Venue           string        `gorm:"size:255" json:"venue"`
	AdditionalNotes string        `gorm:"size:1000" json:"additionalNotes"`
	HasCleaningFee  bool          `gorm:"default:false" json:"hasCleaningFee"`
	AdditionalHours int           `gorm:"default:0" json:"additionalHours"`
	ImageURL        *string       `gorm:"size:512" json:"imageUrl"`

	UserID string `gorm:"size:36;not null;index;uniqueIndex:idx_events_user_title" json:"userId"`
	User   *User  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user,omitempty"`
}
