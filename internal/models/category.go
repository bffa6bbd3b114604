package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Category struct {
	ID          primitive.ObjectID `bson:"_id"`
	CategoryID  string             `bson:"categoryId" json:"categoryId" validate:"required"`
	Name        string             `bson:"name" json:"name" validate:"required"`
	Slug        string             `bson:"slug" json:"slug" validate:"required"`
	Description string             `bson:"description" json:"description"`
	Image       string             `bson:"image" json:"image"`
	Created_at  time.Time          `bson:"created_at" json:"created_at"`
	Updated_at  time.Time          `bson:"updated_at" json:"updated_at"`
}
