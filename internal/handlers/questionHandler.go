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
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var questionCollection *mongo.Collection = database.OpenCollection(database.Client, "questions")

func GetQuestions(w http.ResponseWriter, r *http.Request) {
	productID := r.URL.Query().Get("productId")
	filter := bson.M{}
	if productID != "" {
		filter["productId"] = productID
	}

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	cur, err := questionCollection.Find(ctx, filter)
	if err != nil {
		httpClient.RespondError(w, http.StatusInternalServerError, "Error fetching questions", err)
		return
	}
	defer cur.Close(ctx)

	questions := []models.Question{}
	for cur.Next(ctx) {
		var question models.Question
		if err := cur.Decode(&question); err != nil {
			httpClient.RespondError(w, http.StatusInternalServerError, "Error fetching questions", err)
			return
		}
		questions = append(questions, question)
	}
	if err := cur.Err(); err != nil {
		httpClient.RespondError(w, http.StatusInternalServerError, "Error fetching questions", err)
		return
	}

	httpClient.RespondSuccess(w, questions)
}

func PostQuestion(w http.ResponseWriter, r *http.Request) {
	uid, _ := r.Context().Value("uid").(string)
	email, _ := r.Context().Value("email").(string)
	firstName, _ := r.Context().Value("first_name").(string)
	lastName, _ := r.Context().Value("last_name").(string)
	if uid == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var question models.Question
	if err := json.NewDecoder(r.Body).Decode(&question); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if validationErr := validate.Struct(question); validationErr != nil {
		http.Error(w, "Fields not valid", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	exists, err := productCollection.CountDocuments(ctx, bson.M{"pid": question.ProductID})
	if err != nil {
		httpClient.RespondError(w, http.StatusInternalServerError, "Error checking product", err)
		return
	}
	if exists == 0 {
		http.Error(w, "Product not found", http.StatusNotFound)
		return
	}

	question.ID = primitive.NewObjectID()
	question.Q_id = question.ID.Hex()
	question.UserID = uid
	question.UserEmail = email
	question.Username = firstName + " " + lastName
	question.Answers = []models.Answer{}
	question.Created_at, _ = time.Parse(time.RFC3339, time.Now().Format(time.RFC3339))

	insertResult, err := questionCollection.InsertOne(ctx, question)
	if err != nil {
		httpClient.RespondError(w, http.StatusInternalServerError, "Error creating question", err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(insertResult)
}

// PostAnswer pushes a seller answer onto the question and mails the
// asker, best effort.
func PostAnswer(w http.ResponseWriter, r *http.Request) {
	questionID := chi.URLParam(r, "questionId")

	sellerID, _ := r.Context().Value("uid").(string)
	sellerName, _ := r.Context().Value("first_name").(string)

	var answer models.Answer
	if err := json.NewDecoder(r.Body).Decode(&answer); err != nil || answer.Text == "" {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	answer.SellerID = sellerID
	answer.SellerName = sellerName
	answer.Created_at = time.Now()

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	var question models.Question
	err := questionCollection.FindOne(ctx, bson.M{"qid": questionID}).Decode(&question)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			http.Error(w, "Question not found", http.StatusNotFound)
		} else {
			httpClient.RespondError(w, http.StatusInternalServerError, "Error retrieving question", err)
		}
		return
	}

	filter := bson.M{"qid": questionID}
	update := bson.M{
		"$push": bson.M{"answers": answer},
	}

	result, err := questionCollection.UpdateOne(ctx, filter, update)
	if err != nil {
		httpClient.RespondError(w, http.StatusInternalServerError, "Error updating question", err)
		return
	}

	if question.UserEmail != "" {
		go func(email string, text string) {
			msg := fmt.Sprintf("Your question received an answer:\n\n%s", text)
			if err := utility.SendMail(msg, email, "Your question was answered"); err != nil {
				fmt.Println(err)
			}
		}(question.UserEmail, answer.Text)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}
