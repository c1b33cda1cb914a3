package encoding

// exceptionChain lists the exception positions of a batch in ascending order,
// including the forced positions inserted to bound the gap between neighbors.
type exceptionChain struct {
	pos [PForBatchSize]uint8
	n   int
}

// build collects every position whose value needs more than b bits.
//
// A slot can only store an offset up to 2^b-1, so whenever the distance to the
// previous exception exceeds that, the position exactly 2^b slots after it is
// promoted to a forced exception first. A forced exception stores the batch's
// own value at that position.
func (c *exceptionChain) build(values []uint32, b int) {
	threshold := uint32(1) << b
	maxOffset := int(threshold) - 1

	c.n = 0
	prev := -1

	for i, v := range values {
		if v < threshold {
			continue
		}

		if prev >= 0 {
			for i-prev-1 > maxOffset {
				prev += maxOffset + 1
				c.push(prev)
			}
		}

		c.push(i)
		prev = i
	}
}

func (c *exceptionChain) push(pos int) {
	c.pos[c.n] = uint8(pos) //nolint:gosec
	c.n++
}

func (c *exceptionChain) positions() []uint8 {
	return c.pos[:c.n]
}

// first returns the header's first-exception index.
func (c *exceptionChain) first() byte {
	if c.n == 0 {
		return PForNoException
	}

	return c.pos[0]
}

// thread overwrites each exception slot with the offset to the next exception,
// or 0 for the last one.
func (c *exceptionChain) thread(slots []uint32) {
	for i := range c.n {
		p := int(c.pos[i])
		if i+1 < c.n {
			slots[p] = uint32(int(c.pos[i+1]) - p - 1) //nolint:gosec
		} else {
			slots[p] = 0
		}
	}
}
