package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	database "elastica/database"
	models "elastica/internal/models"
	utility "elastica/internal/utility"
	httpClient "elastica/internal/utility/http"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var adminCollection *mongo.Collection = database.OpenCollection(database.Client, "admin")

func CreateAdmin(w http.ResponseWriter, r *http.Request) {
	var admin models.Admin
	if err := json.NewDecoder(r.Body).Decode(&admin); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if validationErr := validate.Struct(admin); validationErr != nil {
		http.Error(w, "Fields not valid", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	alreadyExists, err := adminCollection.CountDocuments(ctx, bson.M{"email": admin.Email})
	if err != nil {
		httpClient.RespondError(w, http.StatusInternalServerError, "Error checking admin", err)
		return
	}
	if alreadyExists > 0 {
		http.Error(w, "Admin already exists!", http.StatusConflict)
		return
	}

	password := HashPassword(*admin.Password)
	admin.Password = &password

	admin.ID = primitive.NewObjectID()
	admin.Admin_ID = admin.ID.Hex()
	admin.Created_at, _ = time.Parse(time.RFC3339, time.Now().Format(time.RFC3339))
	admin.Updated_at = admin.Created_at

	insertResult, err := adminCollection.InsertOne(ctx, admin)
	if err != nil {
		httpClient.RespondError(w, http.StatusInternalServerError, "Error creating admin", err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(insertResult)
}

func AdminLogin(w http.ResponseWriter, r *http.Request) {
	var admin models.Admin
	var foundAdmin models.Admin
	if err := json.NewDecoder(r.Body).Decode(&admin); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	err := adminCollection.FindOne(ctx, bson.M{"email": admin.Email}).Decode(&foundAdmin)
	if err != nil {
		http.Error(w, "Email or Password is incorrect", http.StatusUnauthorized)
		return
	}
	passwordIsValid, msg := VerifyPassword(*admin.Password, *foundAdmin.Password)
	if !passwordIsValid {
		http.Error(w, msg, http.StatusUnauthorized)
		return
	}

	adminName := ""
	if foundAdmin.AdminName != nil {
		adminName = *foundAdmin.AdminName
	}
	token, refreshToken, _ := utility.GenerateAdminTokens(*foundAdmin.Email, adminName, foundAdmin.Admin_ID)

	_, err = adminCollection.UpdateOne(ctx, bson.M{"admin_id": foundAdmin.Admin_ID}, bson.M{"$set": bson.M{
		"token":         token,
		"refresh_token": refreshToken,
		"updated_at":    time.Now(),
	}})
	if err != nil {
		httpClient.RespondError(w, http.StatusInternalServerError, "Error updating admin tokens", err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"admin_id":  foundAdmin.Admin_ID,
		"adminName": adminName,
		"email":     *foundAdmin.Email,
		"token":     token,
	})
}

func VerifyAdminToken(w http.ResponseWriter, r *http.Request) {
	tokenString := r.Header.Get("Authorization")
	if tokenString == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	claims, errMsg := utility.ValidateAdminToken(tokenString)
	if errMsg != "" {
		http.Error(w, errMsg, http.StatusUnauthorized)
		return
	}
	if claims.Email == "" {
		http.Error(w, "Invalid token", http.StatusBadRequest)
		return
	}
	w.WriteHeader(http.StatusOK)
}
