package model

// FoodItem is a tracked food record.
// This is a pure domain model with no database-specific dependencies or tags.
// It can be used across layers (HTTP, service, repository) without coupling to persistence.
//
// Invariant: HasNoExpiry is true exactly when ExpiryDate is nil.
type FoodItem struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	ExpiryDate       *Date   `json:"expiryDate,omitempty"`
	RegistrationDate Date    `json:"registrationDate"`
	LocationID       *string `json:"locationId,omitempty"`
	HasNoExpiry      bool    `json:"hasNoExpiry"`
}

// UnclassifiedLocation is the stats key for items without a storage location.
const UnclassifiedLocation = "未分類"
