package movingai

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/astart/gridgraph"
)

// Sentinel errors for map and scenario parsing.
var (
	// ErrHeader indicates a missing or malformed .map header line.
	ErrHeader = errors.New("movingai: malformed map header")
	// ErrDimensions indicates map rows that disagree with the declared size.
	ErrDimensions = errors.New("movingai: map rows do not match declared size")
	// ErrScenario indicates a malformed .scen line.
	ErrScenario = errors.New("movingai: malformed scenario line")
)

// Map is a parsed .map file. Rows[y][x] is the terrain character of cell (x, y).
type Map struct {
	Type   string
	Width  int
	Height int
	Rows   []string
}

// Scenario is one query of a .scen file.
type Scenario struct {
	Bucket         int
	Map            string
	MapWidth       int
	MapHeight      int
	StartX, StartY int
	GoalX, GoalY   int
	Optimal        float64
}

// Passable reports whether terrain character c can be entered.
func Passable(c byte) bool {
	switch c {
	case '.', 'G', 'S', 'T':
		return true
	default:
		return false
	}
}

// ParseMap reads a .map file.
func ParseMap(r io.Reader) (*Map, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)

	m := &Map{}
	line := 0
	// 1) Header: key/value lines until "map".
	for {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return nil, err
			}
			return nil, fmt.Errorf("%w: missing \"map\" line", ErrHeader)
		}
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		if fields[0] == "map" {
			break
		}
		if len(fields) != 2 {
			return nil, fmt.Errorf("%w: line %d: %q", ErrHeader, line, sc.Text())
		}
		switch fields[0] {
		case "type":
			m.Type = fields[1]
		case "height", "width":
			v, err := strconv.Atoi(fields[1])
			if err != nil || v <= 0 {
				return nil, fmt.Errorf("%w: line %d: bad %s %q", ErrHeader, line, fields[0], fields[1])
			}
			if fields[0] == "height" {
				m.Height = v
			} else {
				m.Width = v
			}
		default:
			return nil, fmt.Errorf("%w: line %d: unknown key %q", ErrHeader, line, fields[0])
		}
	}
	if m.Width == 0 || m.Height == 0 {
		return nil, fmt.Errorf("%w: width and height are required", ErrHeader)
	}

	// 2) Exactly Height rows of Width characters; trailing blank lines are ignored.
	m.Rows = make([]string, 0, m.Height)
	for sc.Scan() {
		line++
		row := strings.TrimRight(sc.Text(), "\r")
		if row == "" {
			continue
		}
		if len(row) != m.Width {
			return nil, fmt.Errorf("%w: line %d has %d cells, want %d", ErrDimensions, line, len(row), m.Width)
		}
		if len(m.Rows) == m.Height {
			return nil, fmt.Errorf("%w: more than %d rows", ErrDimensions, m.Height)
		}
		m.Rows = append(m.Rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(m.Rows) != m.Height {
		return nil, fmt.Errorf("%w: got %d rows, want %d", ErrDimensions, len(m.Rows), m.Height)
	}

	return m, nil
}

// LoadMap opens and parses the .map file at path.
func LoadMap(path string) (*Map, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, err := ParseMap(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return m, nil
}

// Passable reports whether cell (x, y) is inside the map and passable.
func (m *Map) Passable(x, y int) bool {
	if x < 0 || y < 0 || x >= m.Width || y >= m.Height {
		return false
	}

	return Passable(m.Rows[y][x])
}

// Values returns the map as 0/1 cell values (1 = passable).
func (m *Map) Values() [][]int {
	values := make([][]int, m.Height)
	for y := range values {
		values[y] = make([]int, m.Width)
		for x := 0; x < m.Width; x++ {
			if Passable(m.Rows[y][x]) {
				values[y][x] = 1
			}
		}
	}

	return values
}

// Grid builds an 8-connected grid without corner cutting.
func (m *Map) Grid() (*gridgraph.GridGraph, error) {
	opts := gridgraph.DefaultGridOptions()
	opts.Conn = gridgraph.Conn8

	return gridgraph.NewGridGraph(m.Values(), opts)
}

// ParseScenarios reads a .scen file. The leading "version" line is optional.
func ParseScenarios(r io.Reader) ([]Scenario, error) {
	sc := bufio.NewScanner(r)
	var (
		out  []Scenario
		line int
	)
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "version") {
			continue
		}
		fields := strings.Fields(text)
		if len(fields) != 9 {
			return nil, fmt.Errorf("%w: line %d has %d fields, want 9", ErrScenario, line, len(fields))
		}
		var (
			ints [7]int
			err  error
		)
		for i, idx := range []int{0, 2, 3, 4, 5, 6, 7} {
			if ints[i], err = strconv.Atoi(fields[idx]); err != nil {
				return nil, fmt.Errorf("%w: line %d field %d: %w", ErrScenario, line, idx+1, err)
			}
		}
		opt, err := strconv.ParseFloat(fields[8], 64)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d optimal: %w", ErrScenario, line, err)
		}
		out = append(out, Scenario{
			Bucket:    ints[0],
			Map:       fields[1],
			MapWidth:  ints[1],
			MapHeight: ints[2],
			StartX:    ints[3],
			StartY:    ints[4],
			GoalX:     ints[5],
			GoalY:     ints[6],
			Optimal:   opt,
		})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	return out, nil
}

// LoadScenarios opens and parses the .scen file at path.
func LoadScenarios(path string) ([]Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	s, err := ParseScenarios(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return s, nil
}
