package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"os"
	"time"

	models "elastica/internal/models"
	utility "elastica/internal/utility"
	httpClient "elastica/internal/utility/http"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

type SignInData struct {
	User_ID        string            `json:"user_id"`
	FirstName      string            `json:"first_name"`
	LastName       string            `json:"last_name"`
	Email          string            `json:"email"`
	Token          string            `json:"token"`
	ProfilePicture string            `json:"profile_picture"`
	Cart           []models.CartItem `json:"cart"`
	Wishlist       []string          `json:"wishlist"`
}

const defaultProfilePicture = "https://static.vecteezy.com/system/resources/previews/005/544/718/original/profile-icon-design-free-vector.jpg"

// HashPassword is used to encrypt the password before it is stored in the DB
func HashPassword(password string) string {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 14)
	if err != nil {
		log.Panic(err)
	}

	return string(bytes)
}

// VerifyPassword checks the input password while verifying it with the password in the DB.
func VerifyPassword(userPassword string, providedPassword string) (bool, string) {
	err := bcrypt.CompareHashAndPassword([]byte(providedPassword), []byte(userPassword))
	check := true
	msg := ""

	if err != nil {
		msg = "login or password is incorrect"
		check = false
	}

	return check, msg
}

func signInResponse(w http.ResponseWriter, user models.User, token string) {
	w.Header().Set("Content-Type", "application/json")
	data := SignInData{
		Token:          token,
		User_ID:        user.User_id,
		FirstName:      *user.First_name,
		LastName:       *user.Last_name,
		Email:          *user.Email,
		ProfilePicture: user.Profile,
		Cart:           user.Cart,
		Wishlist:       user.Wishlist,
	}
	json.NewEncoder(w).Encode(data)
}

func SignUp(w http.ResponseWriter, r *http.Request) {
	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if validationErr := validate.Struct(user); validationErr != nil {
		http.Error(w, "Fields not valid", http.StatusBadRequest)
		return
	}
	if user.Password == nil {
		http.Error(w, "Password is required", http.StatusBadRequest)
		return
	}

	password := HashPassword(*user.Password)
	user.Password = &password

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	alreadyExists, err := userCollection.CountDocuments(ctx, bson.M{"email": user.Email})
	if err != nil {
		httpClient.RespondError(w, http.StatusInternalServerError, "Error checking user", err)
		return
	}
	if alreadyExists > 0 {
		http.Error(w, "User already exists!", http.StatusConflict)
		return
	}

	user.Created_at, _ = time.Parse(time.RFC3339, time.Now().Format(time.RFC3339))
	user.Updated_at = user.Created_at
	user.ID = primitive.NewObjectID()
	user.User_id = user.ID.Hex()
	user.Provider = "credentials"
	user.Profile = defaultProfilePicture
	user.Cart = []models.CartItem{}
	user.Wishlist = []string{}

	token, refreshToken, _ := utility.GenerateAllTokens(*user.Email, *user.First_name, *user.Last_name, user.User_id)
	user.Token = &token
	user.Refresh_token = &refreshToken

	_, err = userCollection.InsertOne(ctx, user)
	if err != nil {
		httpClient.RespondError(w, http.StatusInternalServerError, "Error creating user", err)
		return
	}

	go func(email string, name string) {
		msg := fmt.Sprintf("Hi %s,\n\nWelcome to Elastica. Happy shopping!", name)
		if err := utility.SendMail(msg, email, "Welcome to Elastica"); err != nil {
			fmt.Println(err)
		}
	}(*user.Email, *user.First_name)

	signInResponse(w, user, token)
}

func Login(w http.ResponseWriter, r *http.Request) {
	var user models.User
	var foundUser models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	err := userCollection.FindOne(ctx, bson.M{"email": user.Email}).Decode(&foundUser)
	if err != nil {
		http.Error(w, "Email or Password is incorrect", http.StatusUnauthorized)
		return
	}
	if foundUser.Password == nil || user.Password == nil {
		http.Error(w, "Email or Password is incorrect", http.StatusUnauthorized)
		return
	}
	passwordIsValid, msg := VerifyPassword(*user.Password, *foundUser.Password)
	if !passwordIsValid {
		http.Error(w, msg, http.StatusUnauthorized)
		return
	}

	token, refreshToken, _ := utility.GenerateAllTokens(*foundUser.Email, *foundUser.First_name, *foundUser.Last_name, foundUser.User_id)
	utility.UpdateAllTokens(token, refreshToken, foundUser.User_id)

	signInResponse(w, foundUser, token)
}

type googleLoginRequest struct {
	IDToken string `json:"idToken"`
}

type googleTokenInfo struct {
	Email      string `json:"email"`
	GivenName  string `json:"given_name"`
	FamilyName string `json:"family_name"`
	Picture    string `json:"picture"`
	Audience   string `json:"aud"`
}

// GoogleLogin verifies a Google ID token against the tokeninfo endpoint
// and finds or creates the matching user.
func GoogleLogin(w http.ResponseWriter, r *http.Request) {
	var req googleLoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.IDToken == "" {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	client := httpClient.NewHttpClient()
	body, err := client.Get("https://oauth2.googleapis.com/tokeninfo?id_token=" + url.QueryEscape(req.IDToken))
	if err != nil {
		http.Error(w, "Invalid Google ID token", http.StatusUnauthorized)
		return
	}

	var info googleTokenInfo
	if err := json.Unmarshal([]byte(body), &info); err != nil || info.Email == "" {
		http.Error(w, "Invalid Google ID token", http.StatusUnauthorized)
		return
	}
	if clientID := os.Getenv("GOOGLE_CLIENT_ID"); clientID != "" && info.Audience != clientID {
		http.Error(w, "Invalid token audience", http.StatusUnauthorized)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	var foundUser models.User
	err = userCollection.FindOne(ctx, bson.M{"email": info.Email}).Decode(&foundUser)
	if err != nil {
		// First Google sign-in creates the user.
		foundUser = models.User{
			ID:         primitive.NewObjectID(),
			First_name: &info.GivenName,
			Last_name:  &info.FamilyName,
			Email:      &info.Email,
			Provider:   "google",
			Profile:    info.Picture,
			Cart:       []models.CartItem{},
			Wishlist:   []string{},
		}
		foundUser.User_id = foundUser.ID.Hex()
		foundUser.Created_at, _ = time.Parse(time.RFC3339, time.Now().Format(time.RFC3339))
		foundUser.Updated_at = foundUser.Created_at
		if foundUser.Profile == "" {
			foundUser.Profile = defaultProfilePicture
		}

		if _, err := userCollection.InsertOne(ctx, foundUser); err != nil {
			httpClient.RespondError(w, http.StatusInternalServerError, "Error creating user", err)
			return
		}
	}

	token, refreshToken, _ := utility.GenerateAllTokens(*foundUser.Email, *foundUser.First_name, *foundUser.Last_name, foundUser.User_id)
	utility.UpdateAllTokens(token, refreshToken, foundUser.User_id)

	signInResponse(w, foundUser, token)
}

func GetProfile(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok {
		return
	}
	user.Password = nil
	user.Token = nil
	user.Refresh_token = nil

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(user)
}

func UpdateProfile(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req models.User
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	update := bson.M{}
	if req.First_name != nil && *req.First_name != "" {
		update["first_name"] = req.First_name
	}
	if req.Last_name != nil && *req.Last_name != "" {
		update["last_name"] = req.Last_name
	}
	if req.Phone != nil && *req.Phone != "" {
		update["phone"] = req.Phone
	}
	if req.Profile != "" {
		update["profile"] = req.Profile
	}
	if len(update) == 0 {
		http.Error(w, "Nothing to update", http.StatusBadRequest)
		return
	}
	update["updated_at"] = time.Now()

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	result, err := userCollection.UpdateOne(ctx, bson.M{"user_id": user.User_id}, bson.M{"$set": update})
	if err != nil {
		httpClient.RespondError(w, http.StatusInternalServerError, "Error updating profile", err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}
