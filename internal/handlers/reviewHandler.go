package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	database "elastica/database"
	models "elastica/internal/models"
	httpClient "elastica/internal/utility/http"

	"github.com/go-chi/chi"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var reviewCollection *mongo.Collection = database.OpenCollection(database.Client, "reviews")

type reviewSummary struct {
	Reviews       []models.Review `json:"reviews"`
	AverageRating float64         `json:"averageRating"`
	TotalReviews  int64           `json:"totalReviews"`
}

func GetReviews(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productId")

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	cur, err := reviewCollection.Find(ctx, bson.M{"productId": productID})
	if err != nil {
		httpClient.RespondError(w, http.StatusInternalServerError, "Error fetching reviews", err)
		return
	}
	defer cur.Close(ctx)

	reviews := []models.Review{}
	for cur.Next(ctx) {
		var review models.Review
		if err := cur.Decode(&review); err != nil {
			httpClient.RespondError(w, http.StatusInternalServerError, "Error fetching reviews", err)
			return
		}
		reviews = append(reviews, review)
	}
	if err := cur.Err(); err != nil {
		httpClient.RespondError(w, http.StatusInternalServerError, "Error fetching reviews", err)
		return
	}

	average, err := averageRating(ctx, productID)
	if err != nil {
		httpClient.RespondError(w, http.StatusInternalServerError, "Error fetching reviews", err)
		return
	}

	httpClient.RespondSuccess(w, reviewSummary{
		Reviews:       reviews,
		AverageRating: average,
		TotalReviews:  int64(len(reviews)),
	})
}

func averageRating(ctx context.Context, productID string) (float64, error) {
	pipeline := []bson.M{
		{"$match": bson.M{"productId": productID}},
		{"$group": bson.M{
			"_id":     nil,
			"average": bson.M{"$avg": "$rating"},
		}},
	}

	cursor, err := reviewCollection.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, err
	}
	defer cursor.Close(ctx)

	var result struct {
		Average float64 `bson:"average"`
	}
	if cursor.Next(ctx) {
		if err := cursor.Decode(&result); err != nil {
			return 0, err
		}
	}
	return result.Average, nil
}

func PostReview(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productId")

	uid, _ := r.Context().Value("uid").(string)
	firstName, _ := r.Context().Value("first_name").(string)
	lastName, _ := r.Context().Value("last_name").(string)
	if uid == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var review models.Review
	if err := json.NewDecoder(r.Body).Decode(&review); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if review.Rating < 1 || review.Rating > 5 {
		http.Error(w, "Rating must be between 1 and 5", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	exists, err := productCollection.CountDocuments(ctx, bson.M{"pid": productID})
	if err != nil {
		httpClient.RespondError(w, http.StatusInternalServerError, "Error checking product", err)
		return
	}
	if exists == 0 {
		http.Error(w, "Product not found", http.StatusNotFound)
		return
	}

	review.ID = primitive.NewObjectID()
	review.ProductID = productID
	review.UserID = uid
	review.Username = firstName + " " + lastName
	review.Date = time.Now()

	insertResult, err := reviewCollection.InsertOne(ctx, review)
	if err != nil {
		httpClient.RespondError(w, http.StatusInternalServerError, "Error creating review", err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(insertResult)
}
