package handlers

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func f64(v float64) *float64 { return &v }

func TestNormalizeClampsPagination(t *testing.T) {
	q := ProductQuery{Skip: -5, Limit: 0}
	q.Normalize()
	assert.Equal(t, int64(0), q.Skip)
	assert.Equal(t, defaultProductPageSize, q.Limit)

	q = ProductQuery{Skip: 24, Limit: 5000}
	q.Normalize()
	assert.Equal(t, int64(24), q.Skip)
	assert.Equal(t, maxProductPageSize, q.Limit)
}

func TestBuildProductFilterCategory(t *testing.T) {
	filter := BuildProductFilter(ProductQuery{CategoryID: "C1001"})
	assert.Equal(t, "C1001", filter["categoryId"])

	filter = BuildProductFilter(ProductQuery{CategoryID: "all"})
	_, ok := filter["categoryId"]
	assert.False(t, ok, "categoryId \"all\" must not constrain the filter")

	filter = BuildProductFilter(ProductQuery{})
	assert.Empty(t, filter)
}

func TestBuildProductFilterSearch(t *testing.T) {
	filter := BuildProductFilter(ProductQuery{Search: "rubber mat"})

	or, ok := filter["$or"].([]bson.M)
	require.True(t, ok)
	require.Len(t, or, 2)

	nameClause := or[0]["name"].(bson.M)
	assert.Equal(t, "rubber mat", nameClause["$regex"])
	assert.Equal(t, "i", nameClause["$options"])
	descClause := or[1]["description"].(bson.M)
	assert.Equal(t, "rubber mat", descClause["$regex"])

	// The pattern behaves as a case-insensitive substring match.
	re := regexp.MustCompile("(?i)" + nameClause["$regex"].(string))
	assert.True(t, re.MatchString("Recycled Rubber Mat"))
	assert.False(t, re.MatchString("Garden Hose"))
}

func TestBuildProductFilterSearchQuotesMeta(t *testing.T) {
	filter := BuildProductFilter(ProductQuery{Search: "mat (2x3)"})
	or := filter["$or"].([]bson.M)
	pattern := or[0]["name"].(bson.M)["$regex"].(string)

	re := regexp.MustCompile("(?i)" + pattern)
	assert.True(t, re.MatchString("Door Mat (2x3) grey"))
	assert.False(t, re.MatchString("Door Mat 2x3 grey"))
}

func TestBuildProductFilterRanges(t *testing.T) {
	filter := BuildProductFilter(ProductQuery{
		MinPrice:    f64(100),
		MaxPrice:    f64(500),
		MinDiscount: f64(10),
	})

	price := filter["finalPrice"].(bson.M)
	assert.Equal(t, 100.0, price["$gte"])
	assert.Equal(t, 500.0, price["$lte"])

	discount := filter["discount"].(bson.M)
	assert.Equal(t, 10.0, discount["$gte"])
	_, hasUpper := discount["$lte"]
	assert.False(t, hasUpper)
}

func TestBuildProductFilterZeroBoundIsKept(t *testing.T) {
	filter := BuildProductFilter(ProductQuery{MinDiscount: f64(0)})
	discount := filter["discount"].(bson.M)
	assert.Equal(t, 0.0, discount["$gte"])
}

func TestBuildProductSort(t *testing.T) {
	assert.Equal(t, bson.D{{Key: "finalPrice", Value: 1}}, BuildProductSort("priceLowToHigh"))
	assert.Equal(t, bson.D{{Key: "finalPrice", Value: -1}}, BuildProductSort("priceHighToLow"))
	assert.Equal(t, bson.D{{Key: "created_at", Value: -1}}, BuildProductSort("newest"))
	assert.Equal(t, bson.D{{Key: "name", Value: 1}}, BuildProductSort("name"))
	assert.Nil(t, BuildProductSort(""))
	assert.Nil(t, BuildProductSort("bestSelling"))
}

func TestHasMore(t *testing.T) {
	assert.True(t, HasMore(0, 10, 11))
	assert.False(t, HasMore(0, 10, 10))
	assert.False(t, HasMore(0, 10, 2))
	assert.True(t, HasMore(10, 10, 21))
	assert.False(t, HasMore(10, 10, 20))
}
