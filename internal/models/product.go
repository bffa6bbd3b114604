package models

import (
	"math"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Image struct {
	URL string `bson:"url" json:"url"`
	Alt string `bson:"alt" json:"alt"`
}

type Color struct {
	Hex  string `bson:"hex" json:"hex"`
	Name string `bson:"name" json:"name"`
}

// TechnicalDetails carries the fixed attribute fields plus an
// open-ended key/value extension filled in by the admin forms.
type TechnicalDetails struct {
	Material    string            `bson:"material" json:"material"`
	Waterproof  bool              `bson:"waterproof" json:"waterproof"`
	Washable    bool              `bson:"washable" json:"washable"`
	IndoorUse   bool              `bson:"indoorUse" json:"indoorUse"`
	OutdoorUse  bool              `bson:"outdoorUse" json:"outdoorUse"`
	OtherFields map[string]string `bson:"otherFields,omitempty" json:"otherFields,omitempty"`
}

type Product struct {
	ID               primitive.ObjectID `bson:"_id"`
	P_id             string             `bson:"pid" json:"pid"`
	Name             string             `bson:"name" json:"name" validate:"required"`
	Description      string             `bson:"description" json:"description"`
	CategoryID       string             `bson:"categoryId" json:"categoryId" validate:"required"`
	Mrp              float64            `bson:"mrp" json:"mrp" validate:"gte=0"`
	Discount         float64            `bson:"discount" json:"discount" validate:"gte=0,lte=100"`
	FinalPrice       float64            `bson:"finalPrice" json:"finalPrice"`
	FinalPriceManual bool               `bson:"finalPriceManual" json:"finalPriceManual"`
	Stock            int                `bson:"stock" json:"stock"`
	Images           []Image            `bson:"images" json:"images"`
	Tags             []string           `bson:"tags" json:"tags"`
	Colors           []Color            `bson:"colors" json:"colors"`
	TechnicalDetails TechnicalDetails   `bson:"technicalDetails" json:"technicalDetails"`
	KeyFeatures      []string           `bson:"keyFeatures" json:"keyFeatures"`
	Created_at       time.Time          `bson:"created_at" json:"created_at"`
	Updated_at       time.Time          `bson:"updated_at" json:"updated_at"`
}

// FinalPrice is the one place the charged price is derived from MRP and
// discount percent. Every form and handler that writes price fields goes
// through here.
func FinalPrice(mrp float64, discount float64) float64 {
	return math.Round(mrp - mrp*discount/100)
}

// ApplyPricing recomputes FinalPrice unless the admin has toggled the
// manual override on this product.
func (p *Product) ApplyPricing() {
	if !p.FinalPriceManual {
		p.FinalPrice = FinalPrice(p.Mrp, p.Discount)
	}
}
