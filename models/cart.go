package models

import "time"

// CartItem holds a full product snapshot so a saved cart stays
// renderable even if the catalog changes between sessions.
type CartItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// CartSnapshot is the durable slot for one client's cart: one row per
// cart key holding the whole serialized item list. The cart package
// reads it once when a store is opened and rewrites it after every
// mutation.
type CartSnapshot struct {
	Key       string `gorm:"primaryKey"`
	Payload   []byte
	CreatedAt time.Time
	UpdatedAt time.Time
}
