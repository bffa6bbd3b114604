package handlers

import (
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	defaultProductPageSize int64 = 12
	maxProductPageSize     int64 = 100
)

// ProductQuery is the payload of POST /api/get_productsCt. Range fields
// are pointers so that an absent bound and a zero bound stay distinct.
type ProductQuery struct {
	CategoryID  string   `json:"categoryId"`
	Search      string   `json:"search"`
	MinPrice    *float64 `json:"minPrice"`
	MaxPrice    *float64 `json:"maxPrice"`
	MinDiscount *float64 `json:"minDiscount"`
	MaxDiscount *float64 `json:"maxDiscount"`
	SortBy      string   `json:"sortBy"`
	Skip        int64    `json:"skip"`
	Limit       int64    `json:"limit"`
}

// Normalize clamps pagination: skip is never negative, limit falls back
// to the default page size and is capped so a caller cannot request the
// whole catalog in one page.
func (q *ProductQuery) Normalize() {
	if q.Skip < 0 {
		q.Skip = 0
	}
	if q.Limit <= 0 {
		q.Limit = defaultProductPageSize
	}
	if q.Limit > maxProductPageSize {
		q.Limit = maxProductPageSize
	}
}

// BuildProductFilter translates the query into a mongo filter document.
// Price bounds apply to finalPrice, the amount actually charged, so
// filtering agrees with sorting and display.
func BuildProductFilter(q ProductQuery) bson.M {
	filter := bson.M{}

	if q.CategoryID != "" && q.CategoryID != "all" {
		filter["categoryId"] = q.CategoryID
	}

	if q.Search != "" {
		pattern := regexp.QuoteMeta(q.Search)
		filter["$or"] = []bson.M{
			{"name": bson.M{"$regex": pattern, "$options": "i"}},
			{"description": bson.M{"$regex": pattern, "$options": "i"}},
		}
	}

	if priceRange := rangeFilter(q.MinPrice, q.MaxPrice); priceRange != nil {
		filter["finalPrice"] = priceRange
	}
	if discountRange := rangeFilter(q.MinDiscount, q.MaxDiscount); discountRange != nil {
		filter["discount"] = discountRange
	}

	return filter
}

func rangeFilter(min *float64, max *float64) bson.M {
	if min == nil && max == nil {
		return nil
	}
	bounds := bson.M{}
	if min != nil {
		bounds["$gte"] = *min
	}
	if max != nil {
		bounds["$lte"] = *max
	}
	return bounds
}

// BuildProductSort maps the storefront sort keys onto sort documents.
// Unrecognized keys return nil and leave the database order unspecified.
func BuildProductSort(sortBy string) bson.D {
	switch sortBy {
	case "priceLowToHigh":
		return bson.D{{Key: "finalPrice", Value: 1}}
	case "priceHighToLow":
		return bson.D{{Key: "finalPrice", Value: -1}}
	case "newest":
		return bson.D{{Key: "created_at", Value: -1}}
	case "name":
		return bson.D{{Key: "name", Value: 1}}
	default:
		return nil
	}
}

func productFindOptions(q ProductQuery) *options.FindOptions {
	findOptions := options.Find()
	findOptions.SetSkip(q.Skip)
	findOptions.SetLimit(q.Limit)
	if sort := BuildProductSort(q.SortBy); sort != nil {
		findOptions.SetSort(sort)
	}
	return findOptions
}

// HasMore reports whether another page exists past skip+limit.
func HasMore(skip int64, limit int64, total int64) bool {
	return skip+limit < total
}
