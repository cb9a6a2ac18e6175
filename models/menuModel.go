package models

import "github.com/shopspring/decimal"

type Category string

const (
	CategoryFood    Category = "Food"
	CategoryDrinks  Category = "Drinks"
	CategoryDessert Category = "Dessert"
)

type MenuItem struct {
	ID          int             `json:"id"`
	Name        string          `json:"name" validate:"required,min=2,max=100"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Category    Category        `json:"category" validate:"required,eq=Food|eq=Drinks|eq=Dessert"`
	Vegan       bool            `json:"vegan"`
	Image       string          `json:"image"`
	Allergens   []string        `json:"allergens"`
	Available   bool            `json:"available"`
}
