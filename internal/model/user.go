package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// CollectionUser is the collection backing User documents.
const CollectionUser = "user"

// User represents a signed-up user.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name" json:"name"`
	Email        string             `bson:"email" json:"email"`
	PasswordHash string             `bson:"password_hash" json:"-"` // Never expose in JSON
	AvatarURL    *string            `bson:"avatar_url" json:"avatar_url,omitempty"`
	Role         string             `bson:"role" json:"role"`
	IsActive     bool               `bson:"is_active" json:"is_active"`
}
