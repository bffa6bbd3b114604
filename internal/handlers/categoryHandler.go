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

var categoryCollection *mongo.Collection = database.OpenCollection(database.Client, "categories")

func GetCategories(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	cur, err := categoryCollection.Find(ctx, bson.M{})
	if err != nil {
		httpClient.RespondError(w, http.StatusInternalServerError, "Error fetching categories", err)
		return
	}
	defer cur.Close(ctx)

	categories := []models.Category{}
	for cur.Next(ctx) {
		var category models.Category
		if err := cur.Decode(&category); err != nil {
			httpClient.RespondError(w, http.StatusInternalServerError, "Error fetching categories", err)
			return
		}
		categories = append(categories, category)
	}
	if err := cur.Err(); err != nil {
		httpClient.RespondError(w, http.StatusInternalServerError, "Error fetching categories", err)
		return
	}

	httpClient.RespondSuccess(w, categories)
}

func GetCategoryBySlug(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	var category models.Category
	err := categoryCollection.FindOne(ctx, bson.M{"slug": slug}).Decode(&category)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			http.Error(w, "Category not found", http.StatusNotFound)
		} else {
			httpClient.RespondError(w, http.StatusInternalServerError, "Error retrieving category", err)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(category)
}

func AddCategory(w http.ResponseWriter, r *http.Request) {
	var category models.Category
	if err := json.NewDecoder(r.Body).Decode(&category); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if validationErr := validate.Struct(category); validationErr != nil {
		http.Error(w, "Fields not valid", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	alreadyExists, err := categoryCollection.CountDocuments(ctx, bson.M{"$or": []bson.M{
		{"categoryId": category.CategoryID},
		{"slug": category.Slug},
	}})
	if err != nil {
		httpClient.RespondError(w, http.StatusInternalServerError, "Error checking category", err)
		return
	}
	if alreadyExists > 0 {
		http.Error(w, "Category already exists!", http.StatusConflict)
		return
	}

	category.ID = primitive.NewObjectID()
	category.Created_at, _ = time.Parse(time.RFC3339, time.Now().Format(time.RFC3339))
	category.Updated_at = category.Created_at

	insertResult, err := categoryCollection.InsertOne(ctx, category)
	if err != nil {
		httpClient.RespondError(w, http.StatusInternalServerError, "Error creating category", err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(insertResult)
}

func EditCategory(w http.ResponseWriter, r *http.Request) {
	categoryID := chi.URLParam(r, "id")

	var updated models.Category
	if err := json.NewDecoder(r.Body).Decode(&updated); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if validationErr := validate.Struct(updated); validationErr != nil {
		http.Error(w, "Fields not valid", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	filter := bson.M{"categoryId": categoryID}
	update := bson.M{"$set": bson.M{
		"name":        updated.Name,
		"slug":        updated.Slug,
		"description": updated.Description,
		"image":       updated.Image,
		"updated_at":  time.Now(),
	}}

	result, err := categoryCollection.UpdateOne(ctx, filter, update)
	if err != nil {
		httpClient.RespondError(w, http.StatusInternalServerError, "Error updating category", err)
		return
	}
	if result.MatchedCount == 0 {
		http.Error(w, "Category not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// DeleteCategory refuses to orphan products: a category that still has
// products returns 409.
func DeleteCategory(w http.ResponseWriter, r *http.Request) {
	categoryID := chi.URLParam(r, "id")

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	inUse, err := productCollection.CountDocuments(ctx, bson.M{"categoryId": categoryID})
	if err != nil {
		httpClient.RespondError(w, http.StatusInternalServerError, "Error checking products", err)
		return
	}
	if inUse > 0 {
		http.Error(w, "Category still has products", http.StatusConflict)
		return
	}

	result, err := categoryCollection.DeleteOne(ctx, bson.M{"categoryId": categoryID})
	if err != nil {
		httpClient.RespondError(w, http.StatusInternalServerError, "Error deleting category", err)
		return
	}
	if result.DeletedCount == 0 {
		http.Error(w, "Category not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}
