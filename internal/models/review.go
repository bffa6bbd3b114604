package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Review struct {
	ID        primitive.ObjectID `bson:"_id"`
	ProductID string             `bson:"productId" json:"productId" validate:"required"`
	UserID    string             `bson:"userId" json:"userId"`
	Username  string             `bson:"username" json:"username"`
	Rating    int                `bson:"rating" json:"rating" validate:"gte=1,lte=5"`
	Comment   string             `bson:"comment" json:"comment"`
	Date      time.Time          `bson:"date" json:"date"`
}
