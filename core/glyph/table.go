package glyph

import (
	"fmt"

	"github.com/emirpasic/gods/maps/linkedhashmap"
	"github.com/emirpasic/gods/sets/hashset"
)

// Pair is a single table entry.
type Pair struct {
	Token string // input text, e.g. `\beta` or `{1}{2}`
	Glyph string // Unicode output for Token
}

// Table is an ordered mapping from tokens to glyphs.
// Lookup of a token is O(1), iteration follows declaration order.
type Table struct {
	name   string
	pairs  *linkedhashmap.Map // token → glyph, insertion ordered
	glyphs *hashset.Set       // every glyph rune produced by this table
}

// NewTable creates a table from pairs, in the order given.
// Tokens must be unique and non-empty; NewTable panics otherwise, as tables
// are static data and a violation is a programming error.
func NewTable(name string, pairs ...Pair) *Table {
	t := &Table{
		name:   name,
		pairs:  linkedhashmap.New(),
		glyphs: hashset.New(),
	}
	for _, p := range pairs {
		if p.Token == "" {
			panic(fmt.Sprintf("glyph table %s: empty token", name))
		}
		if _, found := t.pairs.Get(p.Token); found {
			panic(fmt.Sprintf("glyph table %s: duplicate token %q", name, p.Token))
		}
		t.pairs.Put(p.Token, p.Glyph)
		for _, r := range p.Glyph {
			t.glyphs.Add(r)
		}
	}
	tracer().Debugf("glyph table %s has %d entries", name, t.pairs.Size())
	return t
}

// Name returns the table's name.
func (t *Table) Name() string {
	return t.name
}

// Len returns the number of entries.
func (t *Table) Len() int {
	return t.pairs.Size()
}

// Lookup returns the glyph for an exact token match.
func (t *Table) Lookup(token string) (string, bool) {
	g, found := t.pairs.Get(token)
	if !found {
		return "", false
	}
	return g.(string), true
}

// Each calls f for every entry, in table order.
func (t *Table) Each(f func(token, glyph string)) {
	it := t.pairs.Iterator()
	for it.Next() {
		f(it.Key().(string), it.Value().(string))
	}
}

// Pairs returns a copy of all entries, in table order.
func (t *Table) Pairs() []Pair {
	pairs := make([]Pair, 0, t.pairs.Size())
	t.Each(func(token, glyph string) {
		pairs = append(pairs, Pair{Token: token, Glyph: glyph})
	})
	return pairs
}

// Produces is true if r is part of a glyph of this table.
func (t *Table) Produces(r rune) bool {
	return t.glyphs.Contains(r)
}

func (t *Table) String() string {
	return fmt.Sprintf("glyph.Table(%s, %d entries)", t.name, t.pairs.Size())
}
