package cubes

import (
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/vaughan0/go-ini"
)

// bagSection is the ini section that holds per-color capacities.
const bagSection = "bag"

// LoadBag reads a bag from the ini file at path. See ReadBag.
func LoadBag(path string) (Bag, error) {
	file, err := ini.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error loading bag config (%s): %s", path, err)
	}
	return bagFromFile(file)
}

// ReadBag reads a bag from an ini document such as
//
//	[bag]
//	red = 12
//	green = 13
//	blue = 14
//
// Colors that are not set keep their DefaultBag capacity.
func ReadBag(r io.Reader) (Bag, error) {
	file, err := ini.Load(r)
	if err != nil {
		return nil, fmt.Errorf("error reading bag config: %s", err)
	}
	return bagFromFile(file)
}

func bagFromFile(file ini.File) (Bag, error) {
	b := DefaultBag()
	section := file.Section(bagSection)
	keys := make([]string, 0, len(section))
	for key := range section {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		val := section[key]
		c, ok := ParseColor(key)
		if !ok {
			return nil, fmt.Errorf("[%s] has unknown color %q", bagSection, key)
		}
		n, err := strconv.Atoi(val)
		if err != nil {
			return nil, fmt.Errorf("[%s] %s: bad capacity %q", bagSection, key, val)
		}
		b[c] = n
	}
	if err := b.Validate(); err != nil {
		return nil, err
	}
	return b, nil
}
