package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Answer struct {
	SellerID   string    `bson:"sellerId" json:"sellerId"`
	SellerName string    `bson:"sellerName" json:"sellerName"`
	Text       string    `bson:"text" json:"text"`
	Created_at time.Time `bson:"created_at" json:"created_at"`
}

type Question struct {
	ID         primitive.ObjectID `bson:"_id"`
	Q_id       string             `bson:"qid" json:"qid"`
	ProductID  string             `bson:"productId" json:"productId" validate:"required"`
	UserID     string             `bson:"userId" json:"userId"`
	Username   string             `bson:"username" json:"username"`
	// The asker's email is only for answer notifications and must never
	// reach API responses.
	UserEmail  string             `bson:"userEmail" json:"-"`
	Text       string             `bson:"text" json:"text" validate:"required"`
	Answers    []Answer           `bson:"answers" json:"answers"`
	Created_at time.Time          `bson:"created_at" json:"created_at"`
}
