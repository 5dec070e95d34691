package domain

import (
	"errors"
	"time"
)

var ErrPlantNotFound = errors.New("plant not found")
var ErrPlantExists = errors.New("plant already exists")
var ErrCategoryNotFound = errors.New("category not found")

// Category groups plants in the catalog.
type Category struct {
	ID        int64     `json:"id" bson:"_id"`
	Name      string    `json:"name" bson:"name"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}

// Image is a picture attached to a plant.
type Image struct {
	URL string `json:"url" bson:"url"`
}

// Plant is a catalog entry, addressed externally by slug.
type Plant struct {
	ID          int64     `json:"id" bson:"_id"`
	Name        string    `json:"name" bson:"name"`
	Slug        string    `json:"slug" bson:"slug"`
	Description string    `json:"description,omitempty" bson:"description,omitempty"`
	Price       float64   `json:"price" bson:"price"`
	Stock       int       `json:"stock" bson:"stock"`
	CategoryID  int64     `json:"category_id" bson:"category_id"`
	Images      []Image   `json:"images" bson:"images"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" bson:"updated_at"`
}
