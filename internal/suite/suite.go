// Package suite loads perft test suites in EPD form: one position per line,
// the FEN followed by ";D<depth> <nodes>" operations.
//
//	r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - ;D1 48 ;D2 2039
package suite

import (
	"bufio"
	_ "embed"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Expect is one depth operation of an EPD line.
type Expect struct {
	Depth int
	Nodes int64
}

// Item is one suite position with its expected counts in depth order.
type Item struct {
	Fen     string
	Expects []Expect
}

// MaxDepth returns the deepest operation of the item.
func (item *Item) MaxDepth() int {
	var result = 0
	for _, e := range item.Expects {
		result = max(result, e.Depth)
	}
	return result
}

func parseLine(line string, lineNum int) (Item, error) {
	var fields = strings.Split(line, ";")
	var item = Item{Fen: strings.TrimSpace(fields[0])}
	if item.Fen == "" {
		return Item{}, fmt.Errorf("suite: line %v: missing fen", lineNum)
	}
	for _, field := range fields[1:] {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		var op, arg, found = strings.Cut(field, " ")
		if !found || !strings.HasPrefix(op, "D") {
			return Item{}, fmt.Errorf("suite: line %v: bad operation %q", lineNum, field)
		}
		var depth, err = strconv.Atoi(op[1:])
		if err != nil || depth <= 0 {
			return Item{}, fmt.Errorf("suite: line %v: bad depth in %q", lineNum, field)
		}
		var nodes int64
		nodes, err = strconv.ParseInt(strings.TrimSpace(arg), 10, 64)
		if err != nil || nodes < 0 {
			return Item{}, fmt.Errorf("suite: line %v: bad node count in %q", lineNum, field)
		}
		item.Expects = append(item.Expects, Expect{Depth: depth, Nodes: nodes})
	}
	if len(item.Expects) == 0 {
		return Item{}, fmt.Errorf("suite: line %v: no depth operations", lineNum)
	}
	return item, nil
}

// Parse reads a suite. Blank lines and lines starting with "#" are skipped.
func Parse(r io.Reader) ([]Item, error) {
	var items []Item
	var scanner = bufio.NewScanner(r)
	var lineNum = 0
	for scanner.Scan() {
		lineNum++
		var line = strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		var item, err = parseLine(line, lineNum)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// Load reads a suite file from disk.
func Load(path string) ([]Item, error) {
	var f, err = os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f)
}

//go:embed default.epd
var defaultEPD string

// Default returns the built-in suite of standard perft positions.
func Default() []Item {
	var items, err = Parse(strings.NewReader(defaultEPD))
	if err != nil {
		panic(err)
	}
	return items
}

func max(l, r int) int {
	if l > r {
		return l
	}
	return r
}
