package models

import "time"

// Category is a row of the categories table.
type Category struct {
	UserID     string    `json:"userID"`
	CategoryID string    `json:"categoryID"`
	Name       string    `json:"name"`
	TxnType    string    `json:"txnType"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Subcategory is a row of the subcategories table.
type Subcategory struct {
	UserID        string    `json:"userID"`
	SubcategoryID string    `json:"subcategoryID"`
	ParentID      string    `json:"parentID"` // categories.category_id of the same user
	Name          string    `json:"name"`
	CreatedAt     time.Time `json:"createdAt"`
}
