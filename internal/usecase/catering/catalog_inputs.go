package catering

import (
	"context"
	"strconv"
	"strings"

	"github.com/BruksfildServices01/event-catering/internal/models"
	"github.com/BruksfildServices01/event-catering/internal/validators"
)

// ------------------------------------------------------
// Shared rules
// ------------------------------------------------------

func nameField(name string, value any, partial bool, maxLen int) validators.Field {
	label := strings.ToUpper(name[:1]) + name[1:]
	return validators.Field{
		Name: name, Value: value, Optional: partial,
		Rules: []validators.Rule{
			validators.Required(label + " is required"),
			validators.Tag("max="+strconv.Itoa(maxLen), label+" is too long"),
		},
	}
}

func descriptionField(value any) validators.Field {
	return validators.Field{
		Name: "description", Value: value, Optional: true,
		Rules: []validators.Rule{validators.Tag("max=1000", "Description must be at most 1000 characters")},
	}
}

func positiveField(name string, value any, partial bool) validators.Field {
	return validators.Field{
		Name: name, Value: value, Optional: partial,
		Rules: []validators.Rule{
			validators.Required(name + " is required"),
			validators.Tag("gt=0", name+" must be a positive number"),
		},
	}
}

func statusField(value any) validators.Field {
	return validators.Field{
		Name: "status", Value: value, Optional: true,
		Rules: []validators.Rule{validators.Tag("oneof=AVAILABLE UNAVAILABLE", "Status must be AVAILABLE or UNAVAILABLE")},
	}
}

func set[V any](dst *V, src *V) {
	if src != nil {
		*dst = *src
	}
}

func setString[V ~string](dst *V, src *string) {
	if src != nil {
		*dst = V(strings.TrimSpace(*src))
	}
}

// ------------------------------------------------------
// Packages
// ------------------------------------------------------

type PackageInput struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

func (in PackageInput) Fields(current *models.CateringPackage) []validators.Field {
	return []validators.Field{
		nameField("title", in.Title, current != nil, 100),
		descriptionField(in.Description),
	}
}

func (in PackageInput) Apply(item *models.CateringPackage) {
	setString(&item.Title, in.Title)
	set(&item.Description, in.Description)
}

// ------------------------------------------------------
// Inclusions
// ------------------------------------------------------

type InclusionInput struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

func (in InclusionInput) Fields(current *models.Inclusion) []validators.Field {
	return []validators.Field{
		nameField("name", in.Name, current != nil, 100),
		descriptionField(in.Description),
	}
}

func (in InclusionInput) Apply(item *models.Inclusion) {
	setString(&item.Name, in.Name)
	set(&item.Description, in.Description)
}

// ------------------------------------------------------
// Main dish packages
// ------------------------------------------------------

type MainDishPackageInput struct {
	Name                *string  `json:"name"`
	NumOfDishesCategory *int     `json:"numOfDishesCategory"`
	Price               *float64 `json:"price"`
	MinPax              *int     `json:"minPax"`
	MaxPax              *int     `json:"maxPax"`
}

func (in MainDishPackageInput) Fields(current *models.MainDishPackage) []validators.Field {
	partial := current != nil

	minPax, maxPax := in.MinPax, in.MaxPax
	if partial {
		if minPax == nil {
			minPax = &current.MinPax
		}
		if maxPax == nil {
			maxPax = &current.MaxPax
		}
	}

	fields := []validators.Field{
		nameField("name", in.Name, partial, 100),
		positiveField("numOfDishesCategory", in.NumOfDishesCategory, partial),
		positiveField("price", in.Price, partial),
		positiveField("minPax", in.MinPax, partial),
		positiveField("maxPax", in.MaxPax, partial),
	}
	if minPax != nil && maxPax != nil {
		fields = append(fields, validators.Field{
			Name: "maxPax", Value: *maxPax,
			Rules: []validators.Rule{validators.Check(func(context.Context, any) (bool, error) {
				return *maxPax >= *minPax, nil
			}, "maxPax must not be less than minPax")},
		})
	}
	return fields
}

func (in MainDishPackageInput) Apply(item *models.MainDishPackage) {
	setString(&item.Name, in.Name)
	set(&item.NumOfDishesCategory, in.NumOfDishesCategory)
	set(&item.Price, in.Price)
	set(&item.MinPax, in.MinPax)
	set(&item.MaxPax, in.MaxPax)
}

// ------------------------------------------------------
// Main dishes
// ------------------------------------------------------

type MainDishInput struct {
	Name        *string `json:"name"`
	DishType    *string `json:"dishType"`
	Category    *string `json:"category"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
}

func (in MainDishInput) Fields(current *models.MainDish) []validators.Field {
	partial := current != nil
	return []validators.Field{
		nameField("name", in.Name, partial, 100),
		{
			Name: "dishType", Value: in.DishType, Optional: partial,
			Rules: []validators.Rule{
				validators.Required("Dish type is required"),
				validators.Tag("oneof=MAIN OTHERS", "Dish type must be MAIN or OTHERS"),
			},
		},
		nameField("category", in.Category, partial, 50),
		descriptionField(in.Description),
		statusField(in.Status),
	}
}

func (in MainDishInput) Apply(item *models.MainDish) {
	setString(&item.Name, in.Name)
	setString(&item.DishType, in.DishType)
	setString(&item.Category, in.Category)
	set(&item.Description, in.Description)
	setString(&item.Status, in.Status)
	if item.Status == "" {
		item.Status = models.Available
	}
}

// ------------------------------------------------------
// Snack corner
// ------------------------------------------------------

type SnackCornerInput struct {
	Name        *string `json:"name"`
	Category    *string `json:"category"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
}

func (in SnackCornerInput) Fields(current *models.SnackCorner) []validators.Field {
	partial := current != nil
	return []validators.Field{
		nameField("name", in.Name, partial, 100),
		nameField("category", in.Category, partial, 50),
		descriptionField(in.Description),
		statusField(in.Status),
	}
}

func (in SnackCornerInput) Apply(item *models.SnackCorner) {
	setString(&item.Name, in.Name)
	setString(&item.Category, in.Category)
	set(&item.Description, in.Description)
	setString(&item.Status, in.Status)
	if item.Status == "" {
		item.Status = models.Available
	}
}

// ------------------------------------------------------
// Add-ons
// ------------------------------------------------------

type AddOnInput struct {
	Name         *string  `json:"name"`
	Category     *string  `json:"category"`
	Description  *string  `json:"description"`
	Price        *float64 `json:"price"`
	PaxCapacity  *int     `json:"paxCapacity"`
	ServiceHours *int     `json:"serviceHours"`
	Status       *string  `json:"status"`
}

func (in AddOnInput) Fields(current *models.AddOn) []validators.Field {
	partial := current != nil
	return []validators.Field{
		nameField("name", in.Name, partial, 100),
		nameField("category", in.Category, partial, 50),
		descriptionField(in.Description),
		positiveField("price", in.Price, partial),
		positiveField("paxCapacity", in.PaxCapacity, partial),
		positiveField("serviceHours", in.ServiceHours, partial),
		statusField(in.Status),
	}
}

func (in AddOnInput) Apply(item *models.AddOn) {
	setString(&item.Name, in.Name)
	setString(&item.Category, in.Category)
	set(&item.Description, in.Description)
	set(&item.Price, in.Price)
	set(&item.PaxCapacity, in.PaxCapacity)
	set(&item.ServiceHours, in.ServiceHours)
	setString(&item.Status, in.Status)
	if item.Status == "" {
		item.Status = models.Available
	}
}
