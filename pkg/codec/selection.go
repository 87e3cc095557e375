package codec

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/hadronized/hop.kak/pkg/domain"
)

// ErrBadDescriptor is returned when a selection descriptor cannot be parsed.
var ErrBadDescriptor = errors.New("malformed selection descriptor")

// Coord is a 1-based buffer position.
type Coord struct {
	Line   int
	Column int
}

// Range is a Kakoune selection: the anchor stays put, the cursor moves.
type Range struct {
	Anchor Coord
	Cursor Coord
}

// ParseRange parses "line.col,line.col".
func ParseRange(desc string) (Range, error) {
	anchor, cursor, ok := strings.Cut(desc, ",")
	if !ok {
		return Range{}, fmt.Errorf("%w: %q (missing ',')", ErrBadDescriptor, desc)
	}

	a, err := parseCoord(anchor)
	if err != nil {
		return Range{}, fmt.Errorf("%w: %q: %v", ErrBadDescriptor, desc, err)
	}
	c, err := parseCoord(cursor)
	if err != nil {
		return Range{}, fmt.Errorf("%w: %q: %v", ErrBadDescriptor, desc, err)
	}

	return Range{Anchor: a, Cursor: c}, nil
}

func parseCoord(s string) (Coord, error) {
	line, col, ok := strings.Cut(s, ".")
	if !ok {
		return Coord{}, fmt.Errorf("coordinate %q is not line.column", s)
	}
	l, err := strconv.Atoi(line)
	if err != nil || l < 1 {
		return Coord{}, fmt.Errorf("invalid line %q", line)
	}
	c, err := strconv.Atoi(col)
	if err != nil || c < 1 {
		return Coord{}, fmt.Errorf("invalid column %q", col)
	}
	return Coord{Line: l, Column: c}, nil
}

func (r Range) String() string {
	return fmt.Sprintf("%d.%d,%d.%d", r.Anchor.Line, r.Anchor.Column, r.Cursor.Line, r.Cursor.Column)
}

// Point returns the single-character range at c.
func Point(c Coord) Range {
	return Range{Anchor: c, Cursor: c}
}

// SplitList splits a whitespace-separated list, as Kakoune expands %val{selections_desc}.
func SplitList(s string) []string {
	return strings.Fields(s)
}

// ParseSelections numbers descs in order. With strict set, every desc must be a Range.
func ParseSelections(descs []string, strict bool) ([]domain.Selection, error) {
	if strict {
		for _, d := range descs {
			if _, err := ParseRange(d); err != nil {
				return nil, err
			}
		}
	}
	return domain.NewSelections(descs), nil
}

// Reindex gives live selections the index they had in original.
// Repeated descriptors are matched in order; unknown ones keep their position.
func Reindex(live, original []domain.Selection) []domain.Selection {
	if len(original) == 0 {
		return live
	}

	positions := make(map[string][]int, len(original))
	for _, o := range original {
		positions[o.Desc] = append(positions[o.Desc], o.Index)
	}

	out := make([]domain.Selection, len(live))
	for i, s := range live {
		out[i] = s
		if idx := positions[s.Desc]; len(idx) > 0 {
			out[i].Index = idx[0]
			positions[s.Desc] = idx[1:]
		}
	}
	return out
}

// ParseLabels splits a whitespace-separated label list.
func ParseLabels(s string) []domain.Label {
	fields := SplitList(s)
	out := make([]domain.Label, len(fields))
	for i, f := range fields {
		out[i] = domain.Label(f)
	}
	return out
}

// FormatLabels is the inverse of ParseLabels.
func FormatLabels(ls []domain.Label) string {
	parts := make([]string, len(ls))
	for i, l := range ls {
		parts[i] = l.String()
	}
	return strings.Join(parts, " ")
}

// ReadLines returns the non-blank lines of r, trimmed. Lines have no length
// limit: the editor sends every selection on a single line.
func ReadLines(r io.Reader) ([]string, error) {
	var lines []string
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
		if err == io.EOF {
			return lines, nil
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read selections: %w", err)
		}
	}
}

// ReadPairs reads "line column" lines and turns each into a point descriptor.
func ReadPairs(r io.Reader) ([]domain.Selection, error) {
	lines, err := ReadLines(r)
	if err != nil {
		return nil, err
	}

	descs := make([]string, len(lines))
	for i, line := range lines {
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, fmt.Errorf("%w: line %d: want \"line column\", got %q", ErrBadDescriptor, i+1, line)
		}
		c, err := parseCoord(fields[0] + "." + fields[1])
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrBadDescriptor, i+1, err)
		}
		descs[i] = Point(c).String()
	}
	return domain.NewSelections(descs), nil
}
