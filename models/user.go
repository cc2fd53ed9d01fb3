package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Role values resolved through the role store.
const (
	RoleAdmin  = "admin"
	RoleDoctor = "doctor"
)

// WalletData carries the crypto wallet details a doctor attaches to a profile.
type WalletData struct {
	WalletAddress string `bson:"walletAddress" json:"walletAddress"`
}

// User is a portal account, keyed by email with upsert-on-write semantics.
type User struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email          string             `bson:"email" json:"email"`
	Name           string             `bson:"name,omitempty" json:"name,omitempty"`
	Role           string             `bson:"role,omitempty" json:"role,omitempty"`
	ProfileCreated string             `bson:"profileCreated,omitempty" json:"profileCreated,omitempty"`
	Data           *WalletData        `bson:"data,omitempty" json:"data,omitempty"`
}
