package model

// List is the in-memory todo list plus the selection cursor.
// It is owned by a single flow of control; nothing here is safe for concurrent use.
//
// The cursor is always a valid index, or 0 when the list is empty.
type List struct {
	items  []Item
	cursor int
}

// NewList takes ownership of a copy of items. The cursor starts at 0.
func NewList(items []Item) *List {
	l := &List{items: make([]Item, len(items))}
	copy(l.items, items)
	return l
}

func (l *List) Len() int    { return len(l.items) }
func (l *List) Cursor() int { return l.cursor }

// Items returns a snapshot in display order.
func (l *List) Items() []Item {
	out := make([]Item, len(l.items))
	copy(out, l.items)
	return out
}

// Selected returns the item under the cursor.
func (l *List) Selected() (Item, bool) {
	if len(l.items) == 0 {
		return Item{}, false
	}
	return l.items[l.cursor], true
}

// Up moves the cursor one row up, stopping at the first item.
func (l *List) Up() {
	if l.cursor > 0 {
		l.cursor--
	}
}

// Down moves the cursor one row down, stopping at the last item.
func (l *List) Down() {
	if len(l.items) != 0 && l.cursor < len(l.items)-1 {
		l.cursor++
	}
}

// Toggle flips Done on the selected item. It reports false on an empty list.
func (l *List) Toggle() bool {
	if len(l.items) == 0 {
		return false
	}
	l.items[l.cursor].Done = !l.items[l.cursor].Done
	return true
}

// Insert appends a pending item. The cursor does not follow it.
func (l *List) Insert(title string) {
	l.items = append(l.items, Item{Title: title})
}

// Edit replaces the selected item's title and keeps its Done flag.
func (l *List) Edit(title string) bool {
	if len(l.items) == 0 {
		return false
	}
	l.items[l.cursor].Title = title
	return true
}

// Delete removes the selected item. The cursor then points at the previous
// row, or stays at 0.
func (l *List) Delete() bool {
	if len(l.items) == 0 {
		return false
	}
	l.items = append(l.items[:l.cursor], l.items[l.cursor+1:]...)
	if l.cursor != 0 {
		l.cursor--
	}
	return true
}

// Stats counts done and pending items for headers.
func (l *List) Stats() (done, pending int) {
	return Stats(l.items)
}

func Stats(items []Item) (done, pending int) {
	for _, it := range items {
		if it.Done {
			done++
		} else {
			pending++
		}
	}
	return
}
