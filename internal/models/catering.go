package models

type DishType string

const (
	DishMain   DishType = "MAIN"
	DishOthers DishType = "OTHERS"
)

type Availability string

const (
	Available   Availability = "AVAILABLE"
	Unavailable Availability = "UNAVAILABLE"
)

// ------------------------------------------------------
// Catalog
// ------------------------------------------------------

type CateringPackage struct {
	Base

	Title       string `gorm:"size:100;not null" json:"title"`
	Description string `gorm:"size:1000" json:"description"`
}

type Inclusion struct {
	Base

	Name        string `gorm:"size:100;not null" json:"name"`
	Description string `gorm:"size:1000" json:"description"`
}

type MainDishPackage struct {
	Base

	Name                string  `gorm:"size:100;not null" json:"name"`
	NumOfDishesCategory int     `gorm:"not null" json:"numOfDishesCategory"`
	Price               float64 `gorm:"type:numeric(12,2);not null" json:"price"`
	MinPax              int     `gorm:"not null" json:"minPax"`
	MaxPax              int     `gorm:"not null" json:"maxPax"`
}

type MainDish struct {
	Base

	Name        string       `gorm:"size:100;not null" json:"name"`
	DishType    DishType     `gorm:"size:10;not null" json:"dishType"`
	Category    string       `gorm:"size:50;not null" json:"category"`
	Description string       `gorm:"size:1000" json:"description"`
	Status      Availability `gorm:"size:15;default:'AVAILABLE';not null" json:"status"`
}

type SnackCorner struct {
	Base

	Name        string       `gorm:"size:100;not null" json:"name"`
	Category    string       `gorm:"size:50;not null" json:"category"`
	Description string       `gorm:"size:1000" json:"description"`
	Status      Availability `gorm:"size:15;default:'AVAILABLE';not null" json:"status"`
}

type AddOn struct {
	Base

	Name         string       `gorm:"size:100;not null" json:"name"`
	Category     string       `gorm:"size:50;not null" json:"category"`
	Description  string       `gorm:"size:1000" json:"description"`
	Price        float64      `gorm:"type:numeric(12,2);not null" json:"price"`
	PaxCapacity  int          `gorm:"not null" json:"paxCapacity"`
	ServiceHours int          `gorm:"not null" json:"serviceHours"`
	Status       Availability `gorm:"size:15;default:'AVAILABLE';not null" json:"status"`
}

// ------------------------------------------------------
// Selection
// ------------------------------------------------------

type CateringSelection struct {
	Base

	ExpectedPax        int     `gorm:"not null" json:"expectedPax"`
	TotalAmount        float64 `gorm:"type:numeric(12,2);not null" json:"totalAmount"`
	NumberOfMainDishes int     `gorm:"not null" json:"numberOfMainDishes"`

	PackageID string           `gorm:"size:36;not null;index" json:"packageId"`
	Package   *MainDishPackage `gorm:"constraint:OnDelete:RESTRICT;" json:"package,omitempty"`

	EventID string `gorm:"size:36;not null;uniqueIndex" json:"eventId"`
	Event   *Event `gorm:"constraint:OnDelete:CASCADE;" json:"event,omitempty"`

	MainDishes       []MainDish    `gorm:"many2many:catering_selection_main_dishes;constraint:OnDelete:CASCADE;" json:"mainDishes"`
	PickASnackCorner []SnackCorner `gorm:"many2many:catering_selection_snack_corners;constraint:OnDelete:CASCADE;" json:"pickASnackCorner"`
	AddOns           []AddOn       `gorm:"many2many:catering_selection_add_ons;constraint:OnDelete:CASCADE;" json:"addOns"`
}
