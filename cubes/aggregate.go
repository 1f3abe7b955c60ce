package cubes

import (
	"errors"
	"fmt"
	"math"
	"runtime"

	"github.com/cespare/wait"
)

var (
	ErrIncompleteBag    = errors.New("bag does not give a capacity for every color")
	ErrNegativeCapacity = errors.New("negative bag capacity")
	ErrOverflow         = errors.New("power overflows int")
)

// A Bag gives the number of cubes of each color that the bag holds.
type Bag map[Color]int

// DefaultBag returns the bag of 12 red, 13 green, and 14 blue cubes.
func DefaultBag() Bag {
	return Bag{Red: 12, Green: 13, Blue: 14}
}

// Validate checks that b has a non-negative capacity for every color.
func (b Bag) Validate() error {
	for _, c := range Colors {
		n, ok := b[c]
		if !ok {
			return fmt.Errorf("%w: missing %s", ErrIncompleteBag, c)
		}
		if n < 0 {
			return fmt.Errorf("%w: %s=%d", ErrNegativeCapacity, c, n)
		}
	}
	return nil
}

// Possible reports whether every draw of g could have come from b.
// A color missing from b has a capacity of zero; use Validate to rule
// that out.
func (g Game) Possible(b Bag) bool {
	for _, d := range g.Draws {
		for c, n := range d {
			if n > b[c] {
				return false
			}
		}
	}
	return true
}

// SumPossible returns the sum of the IDs of the games that are possible
// with bag b.
func SumPossible(games []Game, b Bag) (int, error) {
	if err := b.Validate(); err != nil {
		return 0, err
	}
	var sum int
	for _, g := range games {
		if g.Possible(b) {
			sum += g.ID
		}
	}
	return sum, nil
}

// MinimumBag returns the fewest cubes of each color that make g possible.
// Colors that g never draws are left out.
func (g Game) MinimumBag() Bag {
	mb := make(Bag)
	for _, d := range g.Draws {
		for c, n := range d {
			if cur, ok := mb[c]; !ok || n > cur {
				mb[c] = n
			}
		}
	}
	return mb
}

// Power is the product of the counts in g's minimum bag.
// A game without draws has power 1. If the product does not fit in an
// int, Power returns an error wrapping ErrOverflow.
func (g Game) Power() (int, error) {
	mb := g.MinimumBag()
	for _, n := range mb {
		if n == 0 {
			return 0, nil
		}
	}
	p := 1
	for _, c := range Colors {
		n, ok := mb[c]
		if !ok {
			continue
		}
		if p > math.MaxInt/n {
			return 0, fmt.Errorf("game %d: %w", g.ID, ErrOverflow)
		}
		p *= n
	}
	return p, nil
}

func addPower(sum, p int) (int, error) {
	if sum > math.MaxInt-p {
		return 0, fmt.Errorf("sum of powers: %w", ErrOverflow)
	}
	return sum + p, nil
}

// SumPower returns the sum of the powers of games.
func SumPower(games []Game) (int, error) {
	var sum int
	for _, g := range games {
		p, err := g.Power()
		if err != nil {
			return 0, err
		}
		if sum, err = addPower(sum, p); err != nil {
			return 0, err
		}
	}
	return sum, nil
}

// SumPowerConcurrent computes the same value as SumPower, splitting the
// games among workers goroutines. If workers <= 0, GOMAXPROCS is used.
// The first overflow stops the remaining workers.
func SumPowerConcurrent(games []Game, workers int) (int, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > len(games) {
		workers = len(games)
	}
	if workers <= 1 {
		return SumPower(games)
	}

	sums := make([]int, workers)
	chunk := (len(games) + workers - 1) / workers
	var wg wait.Group
	for i := 0; i < workers; i++ {
		lo := min(i*chunk, len(games))
		hi := min(lo+chunk, len(games))
		wg.Go(func(quit <-chan struct{}) error {
			for _, g := range games[lo:hi] {
				select {
				case <-quit:
					return nil
				default:
				}
				p, err := g.Power()
				if err != nil {
					return err
				}
				if sums[i], err = addPower(sums[i], p); err != nil {
					return err
				}
			}
			return nil
		})
	}
	if err := wg.Wait(); err != nil {
		return 0, err
	}
	var sum int
	for _, s := range sums {
		var err error
		if sum, err = addPower(sum, s); err != nil {
			return 0, err
		}
	}
	return sum, nil
}
