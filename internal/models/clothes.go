package models

import (
	"fmt"
	"time"
)

// Color is the closed set of clothing colors.
type Color string

// Supported colors
const (
	ColorPink   Color = "pink"
	ColorBlack  Color = "black"
	ColorWhite  Color = "white"
	ColorYellow Color = "yellow"
	ColorRed    Color = "red"
	ColorBlue   Color = "blue"
)

// DefaultColor is stored when a request omits the color.
const DefaultColor = ColorWhite

// Colors lists every supported color in declaration order.
var Colors = []Color{ColorPink, ColorBlack, ColorWhite, ColorYellow, ColorRed, ColorBlue}

// ParseColor returns the Color named by s.
func ParseColor(s string) (Color, error) {
	for _, c := range Colors {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown color %q", s)
}

// Size is the closed set of clothing sizes.
type Size string

// Supported sizes
const (
	SizeXS  Size = "xs"
	SizeS   Size = "s"
	SizeM   Size = "m"
	SizeL   Size = "l"
	SizeXL  Size = "xl"
	SizeXXL Size = "xxl"
)

// DefaultSize is stored when a request omits the size.
const DefaultSize = SizeS

// Sizes lists every supported size from smallest to largest.
var Sizes = []Size{SizeXS, SizeS, SizeM, SizeL, SizeXL, SizeXXL}

// ParseSize returns the Size named by s.
func ParseSize(s string) (Size, error) {
	for _, sz := range Sizes {
		if string(sz) == s {
			return sz, nil
		}
	}
	return "", fmt.Errorf("unknown size %q", s)
}

// ClothesDB represents a row of the clothes table
type ClothesDB struct {
	ID        int64      `gorm:"column:id;primaryKey"`
	Name      string     `gorm:"column:name"`
	Color     Color      `gorm:"column:color"`
	Size      Size       `gorm:"column:size"`
	Photo     string     `gorm:"column:photo"`
	CreatedOn time.Time  `gorm:"column:create_on;autoCreateTime"`
	UpdatedOn *time.Time `gorm:"column:updated_on"`
}

// TableName binds ClothesDB to the clothes table.
func (ClothesDB) TableName() string {
	return "clothes"
}

// ClothesRequest represents the JSON body for creating a clothing item
// swagger:model ClothesRequest
type ClothesRequest struct {
	// Item name
	// required: true
	// example: Summer dress
	Name string `json:"name"`

	// Color, one of pink, black, white, yellow, red, blue
	// example: pink
	Color string `json:"color,omitempty"`

	// Size, one of xs, s, m, l, xl, xxl
	// example: m
	Size string `json:"size,omitempty"`

	// Photo reference
	// required: true
	// example: https://cdn.example.com/dress.jpg
	Photo string `json:"photo"`
}

// ClothesResponse is the rendered form of a clothing item
// swagger:model ClothesResponse
type ClothesResponse struct {
	ID        int64      `json:"id" example:"1"`
	Name      string     `json:"name" example:"Summer dress"`
	Color     Color      `json:"color" example:"pink"`
	Size      Size       `json:"size" example:"m"`
	Photo     string     `json:"photo" example:"https://cdn.example.com/dress.jpg"`
	CreatedOn time.Time  `json:"create_on"`
	UpdatedOn *time.Time `json:"updated_on"`
}

// NewClothesResponse renders a stored clothing item.
func NewClothesResponse(c ClothesDB) ClothesResponse {
	return ClothesResponse{
		ID:        c.ID,
		Name:      c.Name,
		Color:     c.Color,
		Size:      c.Size,
		Photo:     c.Photo,
		CreatedOn: c.CreatedOn,
		UpdatedOn: c.UpdatedOn,
	}
}
