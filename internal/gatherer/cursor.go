package gatherer

// Cursor hands out sequence ids in strict extraction order. Ids start at 1
// and are never reused within a run.
type Cursor struct {
	next int
}

func NewCursor() *Cursor {
	return &Cursor{next: 1}
}

// Next returns the next sequence id and advances the cursor.
func (c *Cursor) Next() int {
	id := c.next
	c.next++
	return id
}
