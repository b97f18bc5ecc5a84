package types

import "go.mongodb.org/mongo-driver/bson/primitive"

type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	FirstName    string             `bson:"first_name" json:"first_name"`
	LastName     string             `bson:"last_name" json:"last_name"`
	Email        string             `bson:"email" json:"email"`
	Identity     string             `bson:"identity,omitempty" json:"identity,omitempty"`
	RegisteredAt int64              `bson:"registeredAt" json:"registeredAt"`
}

type SurveyResponse struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Email        string             `bson:"email" json:"email"`
	Work         string             `bson:"work" json:"work"`
	Country      string             `bson:"country" json:"country"`
	Organization string             `bson:"organization" json:"organization"`
	Why          string             `bson:"why" json:"why"`
	SubmittedAt  int64              `bson:"submittedAt" json:"submittedAt"`
}
