package result

// rowCache buffers assembled raw rows between ingestion and consumption.
// Append-only singly-linked list, consumed front to back exactly once.
type rowCache struct {
	head *cachedRow
	tail *cachedRow
	size uint64
}

type cachedRow struct {
	data RawRow
	next *cachedRow
}

func (c *rowCache) append(row RawRow) {
	node := &cachedRow{data: row}
	if c.tail == nil {
		c.head = node
	} else {
		c.tail.next = node
	}
	c.tail = node
	c.size++
}

// popFront removes and returns the oldest cached row, nil when empty.
func (c *rowCache) popFront() RawRow {
	if c.head == nil {
		return nil
	}
	node := c.head
	c.head = node.next
	if c.head == nil {
		c.tail = nil
	}
	c.size--
	return node.data
}

func (c *rowCache) empty() bool {
	return c.head == nil
}

func (c *rowCache) clear() {
	c.head = nil
	c.tail = nil
	c.size = 0
}
