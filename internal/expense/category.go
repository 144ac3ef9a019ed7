package expense

// Category is one of the fixed expense classifications. The set is closed and
// known at build time; it drives both form validation and display lookups.
type Category struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Icon  string `json:"icon"`
}

// CategoryAll is the filter sentinel that selects every category.
const CategoryAll = "all"

// DefaultIcon is used when a record carries a category id outside the fixed set.
const DefaultIcon = "money"

var Categories = []Category{
	{ID: "food", Label: "Food & Dining", Icon: "cutlery"},
	{ID: "transportation", Label: "Transportation", Icon: "car"},
	{ID: "housing", Label: "Housing", Icon: "home"},
	{ID: "utilities", Label: "Utilities", Icon: "bolt"},
	{ID: "entertainment", Label: "Entertainment", Icon: "film"},
	{ID: "shopping", Label: "Shopping", Icon: "shopping-bag"},
	{ID: "health", Label: "Health & Medical", Icon: "medkit"},
	{ID: "education", Label: "Education", Icon: "graduation-cap"},
	{ID: "travel", Label: "Travel", Icon: "plane"},
	{ID: "personal", Label: "Personal Care", Icon: "user"},
	{ID: "gifts", Label: "Gifts & Donations", Icon: "gift"},
	{ID: "other", Label: "Other", Icon: "ellipsis-h"},
}

var categoryByID = func() map[string]Category {
	m := make(map[string]Category, len(Categories))
	for _, c := range Categories {
		m[c.ID] = c
	}
	return m
}()

func IsValidCategory(id string) bool {
	_, ok := categoryByID[id]
	return ok
}

// LookupCategory resolves a category id for display. Unknown ids degrade to
// the raw id with the default icon instead of failing: the gateway may hand
// back records this build has never heard of.
func LookupCategory(id string) Category {
	if c, ok := categoryByID[id]; ok {
		return c
	}
	return Category{ID: id, Label: id, Icon: DefaultIcon}
}
