package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/kr/pretty"

	"github.com/cespare/cubegame/cubes"
)

func init() {
	register("2", day2)
	register("2a", day2a)
	register("2b", day2b)
	register("2dump", day2dump)
	register("2stats", day2stats)
	register("2repl", day2repl)
}

func day2(args []string) {
	opts, err := parseArgs("2", args, true)
	if err != nil {
		log.Fatal(err)
	}
	games, err := opts.games()
	if err != nil {
		log.Fatal(err)
	}
	if err := writeParts(os.Stdout, games, opts.bag); err != nil {
		log.Fatal(err)
	}
}

func writeParts(w io.Writer, games []cubes.Game, bag cubes.Bag) error {
	one, err := cubes.SumPossible(games, bag)
	if err != nil {
		return err
	}
	two, err := cubes.SumPowerConcurrent(games, 0)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "Part one: %d\nPart two: %d\n", one, two)
	return err
}

func day2a(args []string) {
	opts, err := parseArgs("2a", args, true)
	if err != nil {
		log.Fatal(err)
	}
	games, err := opts.games()
	if err != nil {
		log.Fatal(err)
	}
	sum, err := cubes.SumPossible(games, opts.bag)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(sum)
}

func day2b(args []string) {
	opts, err := parseArgs("2b", args, false)
	if err != nil {
		log.Fatal(err)
	}
	games, err := opts.games()
	if err != nil {
		log.Fatal(err)
	}
	sum, err := cubes.SumPower(games)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(sum)
}

func day2dump(args []string) {
	opts, err := parseArgs("2dump", args, false)
	if err != nil {
		log.Fatal(err)
	}
	games, err := opts.games()
	if err != nil {
		log.Fatal(err)
	}
	for _, g := range games {
		pretty.Println(g)
	}
}

func day2stats(args []string) {
	opts, err := parseArgs("2stats", args, false)
	if err != nil {
		log.Fatal(err)
	}
	games, err := opts.games()
	if err != nil {
		log.Fatal(err)
	}
	fmt.Print(cubes.Summarize(games))
}

func day2repl(args []string) {
	opts, err := parseArgs("2repl", args, true)
	if err != nil {
		log.Fatal(err)
	}
	l, err := readline.NewEx(&readline.Config{
		Prompt:          "> ",
		InterruptPrompt: "^C",
	})
	if err != nil {
		log.Fatal(err)
	}
	defer l.Close()

	for {
		line, err := l.Readline()
		switch err {
		case nil:
		case readline.ErrInterrupt:
			continue
		case io.EOF:
			return
		default:
			log.Fatal(err)
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		fmt.Fprintln(l.Stdout(), evalLine(line, opts.bag))
	}
}

// evalLine describes a single game line for the interactive prompt.
// Parse errors are reported rather than being fatal.
func evalLine(line string, bag cubes.Bag) string {
	g, err := cubes.ParseGame(line)
	if err != nil {
		var perr *cubes.ParseError
		if errors.As(err, &perr) {
			return "error: " + perr.Err.Error()
		}
		return "error: " + err.Error()
	}
	power, err := g.Power()
	if err != nil {
		return "error: " + err.Error()
	}
	return fmt.Sprintf("game %d: possible=%t power=%d minimum=%v", g.ID, g.Possible(bag), power, formatBag(g.MinimumBag()))
}

func formatBag(b cubes.Bag) string {
	var parts []string
	for _, c := range cubes.Colors {
		if n, ok := b[c]; ok {
			parts = append(parts, fmt.Sprintf("%d %s", n, c))
		}
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
