package store

// collection is an insertion-ordered id -> record map for one entity kind.
// It carries no locking of its own; the owning Store serializes access.
type collection[T any] struct {
	byID  map[string]T
	order []string
}

func newCollection[T any]() *collection[T] {
	return &collection[T]{byID: make(map[string]T)}
}

func (c *collection[T]) get(id string) (T, bool) {
	rec, ok := c.byID[id]
	return rec, ok
}

// list returns records in insertion order.
func (c *collection[T]) list() []T {
	out := make([]T, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.byID[id])
	}
	return out
}

func (c *collection[T]) insert(id string, rec T) error {
	if _, exists := c.byID[id]; exists {
		return ErrDuplicateID
	}
	c.byID[id] = rec
	c.order = append(c.order, id)
	return nil
}

func (c *collection[T]) replace(id string, rec T) error {
	if _, exists := c.byID[id]; !exists {
		return ErrNotFound
	}
	c.byID[id] = rec
	return nil
}

func (c *collection[T]) delete(id string) error {
	if _, exists := c.byID[id]; !exists {
		return ErrNotFound
	}
	delete(c.byID, id)
	for i, existing := range c.order {
		if existing == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return nil
}

func (c *collection[T]) reset(ids []string, recs []T) {
	c.byID = make(map[string]T, len(ids))
	c.order = c.order[:0]
	for i, id := range ids {
		if _, exists := c.byID[id]; exists {
			continue
		}
		c.byID[id] = recs[i]
		c.order = append(c.order, id)
	}
}

func (c *collection[T]) len() int {
	return len(c.order)
}
