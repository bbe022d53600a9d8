package main

import (
	"slices"

	"github.com/BruksfildServices01/event-catering/internal/models"
)

var packages = []models.CateringPackage{
	{Title: "Pick-A-Snack Corner", Description: "Sandwich, Fruits, Salad & Drinks"},
	{Title: "Buffet", Description: "Main dishes (Beef, Pork, Chicken, or Fish) with Dessert, Pasta, and unlimited Rice, Iced Tea, and Water."},
}

var inclusions = []models.Inclusion{
	{Name: "Trained & Uniformed Servers"},
	{Name: "Basic Backdrop Design"},
	{Name: "Souvenir & Gift Table"},
	{Name: "Cake Table"},
	{Name: "Motif & Theme-Based Venue Styling"},
	{Name: "Chairs & Round Table w/ Table No."},
	{Name: "Basic Entrance Arc"},
}

// Per-head price drops as the guest count grows.
var mainDishPackages = []models.MainDishPackage{
	{Name: "Package 1", NumOfDishesCategory: 2, Price: 720, MinPax: 1, MaxPax: 69},
	{Name: "Package 2", NumOfDishesCategory: 2, Price: 560, MinPax: 70, MaxPax: 99},
	{Name: "Package 3", NumOfDishesCategory: 2, Price: 470, MinPax: 100, MaxPax: 149},
	{Name: "Package 4", NumOfDishesCategory: 2, Price: 375, MinPax: 150, MaxPax: 200},
	{Name: "Package 1", NumOfDishesCategory: 3, Price: 850, MinPax: 1, MaxPax: 69},
	{Name: "Package 2", NumOfDishesCategory: 3, Price: 650, MinPax: 70, MaxPax: 99},
	{Name: "Package 3", NumOfDishesCategory: 3, Price: 520, MinPax: 100, MaxPax: 149},
	{Name: "Package 4", NumOfDishesCategory: 3, Price: 450, MinPax: 150, MaxPax: 200},
}

var mainDishes = dishes(map[models.DishType]map[string][]string{
	models.DishMain: {
		"Beef": {
			"Beef broccoli", "Beef stroganoff", "Beef with mushroom",
			"Sliced roast beef with mushroom sauce", "Beef mechado", "Beef caldereta",
			"Beef karekare", "Beef teriyaki", "Beef lengua",
		},
		"Pork": {
			"Pork hamonado", "Pork caldereta", "Sweet and sour pork",
			"Sliced roast pork with mushroom sauce", "Pork mechado", "Pork menudo",
			"Pork loin with gravy sauce", "Pork broccoli",
		},
		"Chicken": {
			"Chicken honey", "Chicken cordon bleu", "Chicken teriyaki", "Orange chicken",
			"Breaded baked chicken", "Chicken fillet with gravy sauce", "Fried chicken",
			"Chicken pastel", "Chicken afritada", "Chicken fillet ala-king",
		},
		"Fish":    {"Sweet and sour fish", "Fish fillet with tartar sauce"},
		"Veggies": {"Chopsuey", "Sipo egg", "7 kinds", "Mix veggies"},
	},
	models.DishOthers: {
		"Drink":   {"Blue lemonade", "Pineapple juice", "Orange juice", "Red tea or Iced tea"},
		"Dessert": {"Buko salad", "Fruit salad", "Buko pandan", "Coffee jelly"},
		"Pasta":   {"Baked Macaroni", "Spaghetti", "Creamy Carbonara", "Pasta Alfredo"},
	},
})

var snackCorners = snacks(map[string][]string{
	"Sandwich":       {"Ham", "Tuna", "Chicken", "Clubhouse"},
	"Fruit":          {"Papaya", "Watermelon", "Apple", "Orange", "Pineapple"},
	"Salad Dressing": {"Caesar Salad", "Honey"},
})

var addOns = []models.AddOn{
	foodCart("Street Food Cart", 4000),
	foodCart("Pop Corn Cart", 4000),
	foodCart("Juice Cart", 4000),
	foodCart("Hotdog Cart", 4000),
	foodCart("Cotton Candy Cart", 4500),
	foodCart("Ice Scramble Cart", 4500),
}

func dishes(byType map[models.DishType]map[string][]string) []models.MainDish {
	var out []models.MainDish
	for _, t := range []models.DishType{models.DishMain, models.DishOthers} {
		for _, category := range sortedKeys(byType[t]) {
			for _, name := range byType[t][category] {
				out = append(out, models.MainDish{Name: name, DishType: t, Category: category, Status: models.Available})
			}
		}
	}
	return out
}

func snacks(byCategory map[string][]string) []models.SnackCorner {
	var out []models.SnackCorner
	for _, category := range sortedKeys(byCategory) {
		for _, name := range byCategory[category] {
			out = append(out, models.SnackCorner{Name: name, Category: category, Status: models.Available})
		}
	}
	return out
}

func foodCart(name string, price float64) models.AddOn {
	return models.AddOn{
		Name:         name,
		Category:     "Food Cart",
		Description:  "3 hrs service",
		Price:        price,
		PaxCapacity:  50,
		ServiceHours: 3,
		Status:       models.Available,
	}
}

func sortedKeys(m map[string][]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
