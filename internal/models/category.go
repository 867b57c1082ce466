package models

import "time"

// CategoryType represents the type of category
type CategoryType string

const (
	CategoryTypeReceita CategoryType = "receita"
	CategoryTypeDespesa CategoryType = "despesa"
)

// Category represents a transaction category. Categories form a
// two-level tree: root categories have a nil ParentID, subcategories
// reference exactly one root.
type Category struct {
	ID        int          `json:"id"`
	Name      string       `json:"name"`
	Type      CategoryType `json:"type"`
	ParentID  *int         `json:"parentId"`
	Color     string       `json:"color"`
	Icon      string       `json:"icon"`
	IsActive  string       `json:"isActive"`
	CreatedAt time.Time    `json:"createdAt"`
}

// CategoryPatch holds the fields of a partial category update.
// Nil fields are left untouched by the merge.
type CategoryPatch struct {
	Name     *string
	Type     *CategoryType
	ParentID *int
	Color    *string
	Icon     *string
	IsActive *string
}
