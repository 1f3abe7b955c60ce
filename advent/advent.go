package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"sort"
	"strconv"

	"github.com/cespare/cubegame/cubes"
)

func main() {
	log.SetFlags(0)
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "usage: %s [solution] [args...]\n", os.Args[0])
		fmt.Fprintln(os.Stderr, "where solution is one of:")
		for _, name := range solutionNames() {
			fmt.Fprintln(os.Stderr, name)
		}
		os.Exit(1)
	}

	fn, ok := solutions[os.Args[1]]
	if !ok {
		log.Fatalf("unknown solution %q", os.Args[1])
	}
	fn(os.Args[2:])
}

var solutions = make(map[string]func([]string))

func register(name string, fn func([]string)) {
	if _, ok := solutions[name]; ok {
		panic(fmt.Sprintf("duplicate solutions registered for %q", name))
	}
	solutions[name] = fn
}

func solutionNames() []string {
	var names []string
	for name := range solutions {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return nameLess(names[i], names[j]) })
	return names
}

// nameLess orders solution names by their numeric day prefix and then by
// the rest of the name, so that "2" < "2a" < "2dump" < "10".
func nameLess(name0, name1 string) bool {
	n0, s0 := splitName(name0)
	n1, s1 := splitName(name1)
	if n0 < n1 {
		return true
	}
	if n0 > n1 {
		return false
	}
	return s0 < s1
}

func splitName(name string) (int, string) {
	i := 0
	for ; i < len(name); i++ {
		c := name[i]
		if c < '0' || c > '9' {
			break
		}
	}
	n, err := strconv.Atoi(name[:i])
	if err != nil {
		panic(err)
	}
	return n, name[i:]
}

// options are the arguments shared by the solutions.
type options struct {
	bag   cubes.Bag
	input string // empty means stdin
}

func parseArgs(name string, args []string, withBag bool) (*options, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	var bagFile string
	if withBag {
		fs.StringVar(&bagFile, "bag", "", "ini file with a [bag] section of per-color capacities")
	}
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 1 {
		return nil, fmt.Errorf("%s: at most one input file may be given", name)
	}
	opts := &options{bag: cubes.DefaultBag(), input: fs.Arg(0)}
	if bagFile != "" {
		bag, err := cubes.LoadBag(bagFile)
		if err != nil {
			return nil, err
		}
		opts.bag = bag
	}
	return opts, nil
}

func (o *options) open() (io.ReadCloser, error) {
	if o.input == "" {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(o.input)
}

func (o *options) games() ([]cubes.Game, error) {
	r, err := o.open()
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return cubes.Parse(r)
}
