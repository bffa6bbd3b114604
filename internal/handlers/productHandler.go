package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	database "elastica/database"
	models "elastica/internal/models"
	utility "elastica/internal/utility"
	httpClient "elastica/internal/utility/http"

	"github.com/go-chi/chi"
	"github.com/go-playground/validator"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var validate = validator.New()
var productCollection *mongo.Collection = database.OpenCollection(database.Client, "products")

type productPage struct {
	Products []models.Product `json:"products"`
	HasMore  bool             `json:"hasMore"`
}

// GetProductsCt is the storefront catalog query: filter, sort and
// paginate in one request. hasMore comes from a separate count against
// the same filter.
func GetProductsCt(w http.ResponseWriter, r *http.Request) {
	var query ProductQuery
	if err := json.NewDecoder(r.Body).Decode(&query); err != nil {
		httpClient.RespondError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	query.Normalize()

	filter := BuildProductFilter(query)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	cur, err := productCollection.Find(ctx, filter, productFindOptions(query))
	if err != nil {
		httpClient.RespondError(w, http.StatusInternalServerError, "Error fetching products", err)
		return
	}
	defer cur.Close(ctx)

	products := []models.Product{}
	for cur.Next(ctx) {
		var product models.Product
		if err := cur.Decode(&product); err != nil {
			httpClient.RespondError(w, http.StatusInternalServerError, "Error fetching products", err)
			return
		}
		products = append(products, product)
	}
	if err := cur.Err(); err != nil {
		httpClient.RespondError(w, http.StatusInternalServerError, "Error fetching products", err)
		return
	}

	total, err := productCollection.CountDocuments(ctx, filter)
	if err != nil {
		httpClient.RespondError(w, http.StatusInternalServerError, "Error fetching products", err)
		return
	}

	httpClient.RespondSuccess(w, productPage{
		Products: products,
		HasMore:  HasMore(query.Skip, query.Limit, total),
	})
}

func GetProductByID(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "id")

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	var product models.Product
	err := productCollection.FindOne(ctx, bson.M{"pid": productID}).Decode(&product)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			http.Error(w, "Product not found", http.StatusNotFound)
		} else {
			httpClient.RespondError(w, http.StatusInternalServerError, "Error retrieving product", err)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(product)
}

func AddProduct(w http.ResponseWriter, r *http.Request) {
	var product models.Product
	if err := json.NewDecoder(r.Body).Decode(&product); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if validationErr := validate.Struct(product); validationErr != nil {
		http.Error(w, "Fields not valid", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	// The category code must point at a real category.
	categoryExists, err := categoryCollection.CountDocuments(ctx, bson.M{"categoryId": product.CategoryID})
	if err != nil {
		httpClient.RespondError(w, http.StatusInternalServerError, "Error checking category", err)
		return
	}
	if categoryExists == 0 {
		http.Error(w, "Category not found", http.StatusNotFound)
		return
	}

	product.ID = primitive.NewObjectID()
	if product.P_id == "" {
		product.P_id = product.ID.Hex()
	}

	alreadyExists, err := productCollection.CountDocuments(ctx, bson.M{"pid": product.P_id})
	if err != nil {
		httpClient.RespondError(w, http.StatusInternalServerError, "Error checking product", err)
		return
	}
	if alreadyExists > 0 {
		http.Error(w, "Product already exists!", http.StatusConflict)
		return
	}

	product.ApplyPricing()
	product.Created_at, _ = time.Parse(time.RFC3339, time.Now().Format(time.RFC3339))
	product.Updated_at = product.Created_at

	insertResult, err := productCollection.InsertOne(ctx, product)
	if err != nil {
		httpClient.RespondError(w, http.StatusInternalServerError, "Error creating product", err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(insertResult)
}

// EditProduct is a full-document merge update: the form posts every
// field and the handler $sets them all, recomputing finalPrice through
// the shared derivation unless the manual override is on.
func EditProduct(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "id")

	var updated models.Product
	if err := json.NewDecoder(r.Body).Decode(&updated); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if validationErr := validate.Struct(updated); validationErr != nil {
		http.Error(w, "Fields not valid", http.StatusBadRequest)
		return
	}

	updated.ApplyPricing()

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	filter := bson.M{"pid": productID}
	update := bson.M{"$set": bson.M{
		"name":             updated.Name,
		"description":      updated.Description,
		"categoryId":       updated.CategoryID,
		"mrp":              updated.Mrp,
		"discount":         updated.Discount,
		"finalPrice":       updated.FinalPrice,
		"finalPriceManual": updated.FinalPriceManual,
		"stock":            updated.Stock,
		"images":           updated.Images,
		"tags":             updated.Tags,
		"colors":           updated.Colors,
		"technicalDetails": updated.TechnicalDetails,
		"keyFeatures":      updated.KeyFeatures,
		"updated_at":       time.Now(),
	}}

	result, err := productCollection.UpdateOne(ctx, filter, update)
	if err != nil {
		httpClient.RespondError(w, http.StatusInternalServerError, "Error updating product", err)
		return
	}
	if result.MatchedCount == 0 {
		http.Error(w, "Product not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

func DeleteProduct(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "id")

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	result, err := productCollection.DeleteOne(ctx, bson.M{"pid": productID})
	if err != nil {
		httpClient.RespondError(w, http.StatusInternalServerError, "Error deleting product", err)
		return
	}
	if result.DeletedCount == 0 {
		http.Error(w, "Product not found", http.StatusNotFound)
		return
	}

	if err := utility.DeleteProductImagesByPID(productID); err != nil {
		fmt.Println(err)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}
