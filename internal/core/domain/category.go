package domain

// Category is a user-defined classification for transactions of one type.
type Category struct {
	ID   string          `json:"id"`
	Name string          `json:"name"`
	Type TransactionType `json:"type"`
}

// Subcategory refines a Category. Its type is the parent's type.
type Subcategory struct {
	ID       string `json:"id"`
	ParentID string `json:"parentId"`
	Name     string `json:"name"`
}

// DefaultCategories returns the category set used when a user has none stored.
// A fresh slice is returned on every call.
func DefaultCategories() []Category {
	return []Category{
		{ID: "c1", Name: "Alimentação", Type: Expense},
		{ID: "c2", Name: "Transporte", Type: Expense},
		{ID: "c3", Name: "Moradia", Type: Expense},
		{ID: "c4", Name: "Saúde", Type: Expense},
		{ID: "c5", Name: "Lazer", Type: Expense},
		{ID: "c6", Name: "Salário", Type: Income},
		{ID: "c7", Name: "Investimentos", Type: Income},
	}
}

// DefaultSubcategories returns the subcategory set used when a user has none stored.
func DefaultSubcategories() []Subcategory {
	return []Subcategory{
		{ID: "s1", ParentID: "c1", Name: "Restaurante"},
		{ID: "s2", ParentID: "c1", Name: "Mercado"},
		{ID: "s3", ParentID: "c1", Name: "Café"},
		{ID: "s4", ParentID: "c2", Name: "Combustível"},
		{ID: "s5", ParentID: "c2", Name: "Uber"},
		{ID: "s6", ParentID: "c4", Name: "Farmácia"},
	}
}

// FindCategory returns the category with the given ID, if present.
func FindCategory(categories []Category, id string) (Category, bool) {
	for _, c := range categories {
		if c.ID == id {
			return c, true
		}
	}
	return Category{}, false
}

// FindSubcategory returns the subcategory with the given ID, if present.
func FindSubcategory(subcategories []Subcategory, id string) (Subcategory, bool) {
	for _, s := range subcategories {
		if s.ID == id {
			return s, true
		}
	}
	return Subcategory{}, false
}
