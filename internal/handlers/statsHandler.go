package handlers

import (
	"context"
	"net/http"
	"time"

	httpClient "elastica/internal/utility/http"

	"go.mongodb.org/mongo-driver/bson"
)

type dashboardStats struct {
	TotalProducts   int64            `json:"totalProducts"`
	TotalCategories int64            `json:"totalCategories"`
	TotalUsers      int64            `json:"totalUsers"`
	TotalReviews    int64            `json:"totalReviews"`
	OutOfStock      int64            `json:"outOfStock"`
	ByCategory      map[string]int64 `json:"byCategory"`
}

// GetStats powers the admin dashboard header counts.
func GetStats(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	stats := dashboardStats{ByCategory: map[string]int64{}}

	var err error
	if stats.TotalProducts, err = productCollection.CountDocuments(ctx, bson.M{}); err != nil {
		httpClient.RespondError(w, http.StatusInternalServerError, "Error fetching stats", err)
		return
	}
	if stats.TotalCategories, err = categoryCollection.CountDocuments(ctx, bson.M{}); err != nil {
		httpClient.RespondError(w, http.StatusInternalServerError, "Error fetching stats", err)
		return
	}
	if stats.TotalUsers, err = userCollection.CountDocuments(ctx, bson.M{}); err != nil {
		httpClient.RespondError(w, http.StatusInternalServerError, "Error fetching stats", err)
		return
	}
	if stats.TotalReviews, err = reviewCollection.CountDocuments(ctx, bson.M{}); err != nil {
		httpClient.RespondError(w, http.StatusInternalServerError, "Error fetching stats", err)
		return
	}
	if stats.OutOfStock, err = productCollection.CountDocuments(ctx, bson.M{"stock": bson.M{"$lte": 0}}); err != nil {
		httpClient.RespondError(w, http.StatusInternalServerError, "Error fetching stats", err)
		return
	}

	pipeline := []bson.M{
		{"$group": bson.M{
			"_id":   "$categoryId",
			"count": bson.M{"$sum": 1},
		}},
	}
	cursor, err := productCollection.Aggregate(ctx, pipeline)
	if err != nil {
		httpClient.RespondError(w, http.StatusInternalServerError, "Error fetching stats", err)
		return
	}
	defer cursor.Close(ctx)

	for cursor.Next(ctx) {
		var row struct {
			CategoryID string `bson:"_id"`
			Count      int64  `bson:"count"`
		}
		if err := cursor.Decode(&row); err != nil {
			httpClient.RespondError(w, http.StatusInternalServerError, "Error fetching stats", err)
			return
		}
		stats.ByCategory[row.CategoryID] = row.Count
	}

	httpClient.RespondSuccess(w, stats)
}
