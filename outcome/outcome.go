// Package outcome defines where reel stop positions come from.
//
// Real games get their outcomes from a server; the sources here
// cover demos, tests and replaying recorded sessions.
package outcome

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"os"

	"github.com/edwinsyarief/mireel/symbol"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Returns one stop index per strip.
type Source interface {
	Next(strips [][]symbol.ID) ([]int, error)
}

// Implemented by sources whose outcomes are known in advance, so
// they can be checked against the reel strips before any spin.
type Checker interface {
	Check(strips [][]symbol.ID) error
}

var ErrMismatch = errors.New("outcome doesn't match the reel strips")

// --- random ---

type Random struct {
	rng *rand.Rand
}

// Creates a source picking uniformly distributed stop indices.
func NewRandom(rng *rand.Rand) *Random {
	if rng == nil {
		panic("nil random source")
	}
	return &Random{rng: rng}
}

func (self *Random) Next(strips [][]symbol.ID) ([]int, error) {
	stops := make([]int, len(strips))
	for i, strip := range strips {
		if len(strip) == 0 {
			return nil, fmt.Errorf("%w: strip %d is empty", ErrMismatch, i)
		}
		stops[i] = self.rng.IntN(len(strip))
	}
	return stops, nil
}

// --- fixed ---

// Always returns the same stops.
type Fixed []int

func (self Fixed) Next(strips [][]symbol.ID) ([]int, error) {
	if err := self.Check(strips); err != nil {
		return nil, err
	}
	return append([]int(nil), self...), nil
}

func (self Fixed) Check(strips [][]symbol.ID) error {
	return check(self, strips)
}

// --- scripted ---

// Replays a list of recorded outcomes, looping when exhausted.
type Scripted struct {
	spins [][]int
	next  int
}

type script struct {
	Spins [][]int `json:"spins"`
}

func NewScripted(spins ...[]int) (*Scripted, error) {
	if len(spins) == 0 {
		return nil, errors.New("outcome script without spins")
	}
	return &Scripted{spins: spins}, nil
}

// Decodes a JSON script of the form {"spins": [[0, 3, 1], ...]}.
func ParseScript(data []byte) (*Scripted, error) {
	var doc script
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("outcome script: %w", err)
	}
	return NewScripted(doc.Spins...)
}

func LoadScript(path string) (*Scripted, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("outcome script: %w", err)
	}
	return ParseScript(data)
}

// Returns the next spin. A spin that doesn't match the strips is
// reported and skipped, so the following call moves on.
func (self *Scripted) Next(strips [][]symbol.ID) ([]int, error) {
	index := self.next
	stops := self.spins[index]
	self.next = (self.next + 1) % len(self.spins)
	if err := check(stops, strips); err != nil {
		return nil, fmt.Errorf("spin %d: %w", index, err)
	}
	return append([]int(nil), stops...), nil
}

// Checks every spin of the script against the strips.
func (self *Scripted) Check(strips [][]symbol.ID) error {
	for i, stops := range self.spins {
		if err := check(stops, strips); err != nil {
			return fmt.Errorf("spin %d: %w", i, err)
		}
	}
	return nil
}

// Encodes the remaining and already played spins back to JSON.
func (self *Scripted) MarshalJSON() ([]byte, error) {
	return json.Marshal(script{Spins: self.spins})
}

func check(stops []int, strips [][]symbol.ID) error {
	if len(stops) != len(strips) {
		return fmt.Errorf("%w: %d stops for %d reels", ErrMismatch, len(stops), len(strips))
	}
	for i, stop := range stops {
		if stop < 0 || stop >= len(strips[i]) {
			return fmt.Errorf("%w: stop %d outside strip %d", ErrMismatch, stop, i)
		}
	}
	return nil
}
