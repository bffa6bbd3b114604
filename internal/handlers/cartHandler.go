package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	database "elastica/database"
	models "elastica/internal/models"
	httpClient "elastica/internal/utility/http"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

var userCollection *mongo.Collection = database.OpenCollection(database.Client, "user")

type cartRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

type wishlistRequest struct {
	ProductID string `json:"productId"`
}

var errNoUser = errors.New("no authenticated user")

// currentUser loads the caller's user document. A missing uid or a uid
// with no matching document is errNoUser; anything else is a backend
// failure and must not look like a rejected login.
func currentUser(r *http.Request) (models.User, error) {
	uid, _ := r.Context().Value("uid").(string)
	if uid == "" {
		return models.User{}, errNoUser
	}

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	var user models.User
	err := userCollection.FindOne(ctx, bson.M{"user_id": uid}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return models.User{}, errNoUser
	}
	if err != nil {
		return models.User{}, err
	}
	return user, nil
}

func writeUserError(w http.ResponseWriter, err error) {
	if errors.Is(err, errNoUser) {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	httpClient.RespondError(w, http.StatusInternalServerError, "Error loading user", err)
}

func requireUser(w http.ResponseWriter, r *http.Request) (models.User, bool) {
	user, err := currentUser(r)
	if err != nil {
		writeUserError(w, err)
		return models.User{}, false
	}
	return user, true
}

func saveCart(w http.ResponseWriter, userID string, items []models.CartItem) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	if items == nil {
		items = []models.CartItem{}
	}
	_, err := userCollection.UpdateOne(ctx, bson.M{"user_id": userID}, bson.M{"$set": bson.M{"cart": items}})
	if err != nil {
		httpClient.RespondError(w, http.StatusInternalServerError, "Error updating cart", err)
		return
	}
	httpClient.RespondSuccess(w, items)
}

func saveWishlist(w http.ResponseWriter, userID string, list []string) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	if list == nil {
		list = []string{}
	}
	_, err := userCollection.UpdateOne(ctx, bson.M{"user_id": userID}, bson.M{"$set": bson.M{"wishlist": list}})
	if err != nil {
		httpClient.RespondError(w, http.StatusInternalServerError, "Error updating wishlist", err)
		return
	}
	httpClient.RespondSuccess(w, list)
}

func GetCart(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok {
		return
	}
	if user.Cart == nil {
		user.Cart = []models.CartItem{}
	}
	httpClient.RespondSuccess(w, user.Cart)
}

func AddToCart(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req cartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ProductID == "" {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	exists, err := productCollection.CountDocuments(ctx, bson.M{"pid": req.ProductID})
	if err != nil {
		httpClient.RespondError(w, http.StatusInternalServerError, "Error checking product", err)
		return
	}
	if exists == 0 {
		http.Error(w, "Product not found", http.StatusNotFound)
		return
	}

	saveCart(w, user.User_id, models.UpsertCartLine(user.Cart, req.ProductID, req.Quantity))
}

// UpdateCartItem sets the line quantity; zero or less removes the line.
func UpdateCartItem(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req cartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ProductID == "" {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	saveCart(w, user.User_id, models.SetCartQuantity(user.Cart, req.ProductID, req.Quantity))
}

func RemoveFromCart(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok {
		return
	}

	productID := r.URL.Query().Get("productId")
	if productID == "" {
		http.Error(w, "productId is required", http.StatusBadRequest)
		return
	}

	saveCart(w, user.User_id, models.RemoveCartLine(user.Cart, productID))
}

func GetWishlist(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok {
		return
	}
	if user.Wishlist == nil {
		user.Wishlist = []string{}
	}
	httpClient.RespondSuccess(w, user.Wishlist)
}

func AddToWishlist(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req wishlistRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ProductID == "" {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	exists, err := productCollection.CountDocuments(ctx, bson.M{"pid": req.ProductID})
	if err != nil {
		httpClient.RespondError(w, http.StatusInternalServerError, "Error checking product", err)
		return
	}
	if exists == 0 {
		http.Error(w, "Product not found", http.StatusNotFound)
		return
	}

	saveWishlist(w, user.User_id, models.AddWishlist(user.Wishlist, req.ProductID))
}

// RemoveFromWishlist on a product that is not wishlisted is a no-op and
// returns the unchanged wishlist.
func RemoveFromWishlist(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok {
		return
	}

	productID := r.URL.Query().Get("productId")
	if productID == "" {
		http.Error(w, "productId is required", http.StatusBadRequest)
		return
	}

	saveWishlist(w, user.User_id, models.RemoveWishlist(user.Wishlist, productID))
}
