package domain

// Property identifies one analytics property from the configured catalog.
type Property struct {
	ID   string
	Name string
}
