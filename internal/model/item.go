package model

// Item is the domain model for a todo entry.
// Title may be empty; nothing validates it.
type Item struct {
	Title string
	Done  bool
}
