package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CartItem struct {
	ProductID string `bson:"productId" json:"productId"`
	Quantity  int    `bson:"quantity" json:"quantity"`
}

type User struct {
	ID            primitive.ObjectID `bson:"_id"`
	First_name    *string            `json:"first_name" validate:"max=100,required"`
	Last_name     *string            `json:"last_name" validate:"max=100,required"`
	Password      *string            `json:"password" validate:"omitempty,min=6"`
	Email         *string            `json:"email" validate:"email,required"`
	Phone         *string            `json:"phone" validate:"omitempty,len=10,numeric"`
	Provider      string             `json:"provider"`
	Profile       string             `json:"profile"`
	Token         *string            `json:"token"`
	Refresh_token *string            `json:"refresh_token"`
	Created_at    time.Time          `json:"created_at"`
	Updated_at    time.Time          `json:"updated_at"`
	User_id       string             `bson:"user_id" json:"user_id"`
	Cart          []CartItem         `bson:"cart" json:"cart"`
	Wishlist      []string           `bson:"wishlist" json:"wishlist"`
}
