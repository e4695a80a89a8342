package model

// StorageLocation is a named place food items can be assigned to
// (fridge, freezer, pantry, ...). Names are not required to be unique.
type StorageLocation struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Snapshot is the full export/import payload: both collections, wholesale.
type Snapshot struct {
	FoodItems        []FoodItem        `json:"foodItems"`
	StorageLocations []StorageLocation `json:"storageLocations"`
}
