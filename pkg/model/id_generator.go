package model

// IdGenerator hands out meeting ids starting at 1. Ids are never reused by the same generator.
type IdGenerator struct {
	next int
}

func NewIdGenerator() *IdGenerator {
	return &IdGenerator{next: 1}
}

func (generator *IdGenerator) Next() int {
	id := generator.next
	generator.next++
	return id
}

// Peek returns the id the next call to Next will produce
func (generator *IdGenerator) Peek() int {
	return generator.next
}
