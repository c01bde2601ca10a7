package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CollectionContactMessage is the collection backing ContactMessage documents.
const CollectionContactMessage = "contactmessage"

// ContactMessage represents a message submitted through the contact form.
// Messages are write-only for this system; an operator inspects them through
// the store directly.
type ContactMessage struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name       string             `bson:"name" json:"name"`
	Email      string             `bson:"email" json:"email"`
	Message    string             `bson:"message" json:"message"`
	Subject    *string            `bson:"subject" json:"subject,omitempty"`
	Status     string             `bson:"status" json:"status"`
	ReceivedAt time.Time          `bson:"received_at" json:"received_at"`
}
