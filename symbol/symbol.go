// Package symbol holds the logical symbol identifiers carried by
// reel views and the sprite-path table that maps them to images.
package symbol

import (
	"errors"
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"
)

// Logical symbol identifier. Views receive ids, never images.
type ID int

// Returned by [Table.Get]() and friends for ids missing in the table.
var ErrUnknown = errors.New("unknown symbol")

type Symbol struct {
	ID    ID     `yaml:"id"`
	Name  string `yaml:"name"`
	Image string `yaml:"image"`
	Blur  string `yaml:"blur"`  // optional, falls back to Image
	Glyph string `yaml:"glyph"` // single rune used by terminal frontends
	Value int    `yaml:"value"` // payout weight of the symbol
}

// Sprite-path configuration table.
type Table struct {
	symbols []Symbol
	index   map[ID]int
}

type tableFile struct {
	Symbols []Symbol `yaml:"symbols"`
}

// Builds a table from the given symbols. Ids must be unique.
func NewTable(symbols ...Symbol) (*Table, error) {
	table := &Table{index: make(map[ID]int, len(symbols))}
	for _, sym := range symbols {
		if _, dup := table.index[sym.ID]; dup {
			return nil, fmt.Errorf("duplicate symbol id %d", sym.ID)
		}
		if sym.Name == "" {
			sym.Name = fmt.Sprintf("symbol-%d", sym.ID)
		}
		table.index[sym.ID] = len(table.symbols)
		table.symbols = append(table.symbols, sym)
	}
	return table, nil
}

// Decodes a YAML table document with a top-level "symbols" list.
func Parse(data []byte) (*Table, error) {
	var file tableFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("symbol table: %w", err)
	}
	if len(file.Symbols) == 0 {
		return nil, errors.New("symbol table: no symbols defined")
	}
	return NewTable(file.Symbols...)
}

// Reads and decodes a YAML table file.
func Load(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("symbol table: %w", err)
	}
	return Parse(data)
}

func (self *Table) Get(id ID) (Symbol, error) {
	i, found := self.index[id]
	if !found {
		return Symbol{}, fmt.Errorf("%w: %d", ErrUnknown, id)
	}
	return self.symbols[i], nil
}

func (self *Table) Has(id ID) bool {
	_, found := self.index[id]
	return found
}

// Returns the image path to use for the given symbol. Symbols
// without a dedicated blur image reuse the normal one.
func (self *Table) ImagePath(id ID, blurred bool) (string, error) {
	sym, err := self.Get(id)
	if err != nil {
		return "", err
	}
	if blurred && sym.Blur != "" {
		return sym.Blur, nil
	}
	return sym.Image, nil
}

// Returns the glyph for terminal rendering, or '?' if unset.
func (self *Table) Glyph(id ID) rune {
	sym, err := self.Get(id)
	if err != nil || sym.Glyph == "" {
		return '?'
	}
	return []rune(sym.Glyph)[0]
}

// Returns the symbol payout value, or 0 for unknown ids.
func (self *Table) Value(id ID) int {
	sym, err := self.Get(id)
	if err != nil {
		return 0
	}
	return sym.Value
}

// Returns all ids in declaration order.
func (self *Table) IDs() []ID {
	ids := make([]ID, len(self.symbols))
	for i, sym := range self.symbols {
		ids[i] = sym.ID
	}
	return ids
}

func (self *Table) Len() int { return len(self.symbols) }

// Returns an error if any id in the strips is missing from the table.
func (self *Table) Check(strips [][]ID) error {
	for reel, strip := range strips {
		for pos, id := range strip {
			if !self.Has(id) {
				return fmt.Errorf("strip %d position %d: %w: %d", reel, pos, ErrUnknown, id)
			}
		}
	}
	return nil
}

// Returns the index of the first occurrence of id in strip, or -1.
func IndexOf(strip []ID, id ID) int {
	return slices.Index(strip, id)
}
