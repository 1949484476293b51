package parser

import (
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/Tiliavir/intrack/internal/command"
	"github.com/Tiliavir/intrack/internal/messages"
)

// ArgumentMultimap holds the values found for each prefix, in input order,
// plus the text before the first prefix.
type ArgumentMultimap struct {
	preamble string
	values   map[command.Prefix][]string
}

func NewArgumentMultimap() *ArgumentMultimap {
	return &ArgumentMultimap{values: make(map[command.Prefix][]string)}
}

func (a *ArgumentMultimap) SetPreamble(s string) { a.preamble = strings.TrimSpace(s) }

func (a *ArgumentMultimap) Preamble() string { return a.preamble }

// Put records one more value for p.
func (a *ArgumentMultimap) Put(p command.Prefix, v string) {
	a.values[p] = append(a.values[p], strings.TrimSpace(v))
}

// Value returns the last value given for p.
func (a *ArgumentMultimap) Value(p command.Prefix) (string, bool) {
	vs := a.values[p]
	if len(vs) == 0 {
		return "", false
	}
	return vs[len(vs)-1], true
}

func (a *ArgumentMultimap) AllValues(p command.Prefix) []string {
	return append([]string(nil), a.values[p]...)
}

// Has reports whether every prefix has at least one value.
func (a *ArgumentMultimap) Has(prefixes ...command.Prefix) bool {
	for _, p := range prefixes {
		if len(a.values[p]) == 0 {
			return false
		}
	}
	return true
}

// VerifyNoDuplicatePrefixesFor fails when any of the given single-valued
// prefixes appears more than once.
func (a *ArgumentMultimap) VerifyNoDuplicatePrefixesFor(prefixes ...command.Prefix) error {
	var dups []fmt.Stringer
	for _, p := range prefixes {
		if len(a.values[p]) > 1 {
			dups = append(dups, p)
		}
	}
	if len(dups) > 0 {
		return command.Fail(command.KindInvalidFormat, messages.ErrorMessageForDuplicatePrefixes(dups...))
	}
	return nil
}

type prefixPosition struct {
	start  int
	prefix command.Prefix
}

// Tokenize splits args on the given prefixes. A prefix only counts when it
// starts the input or follows whitespace, and is followed by whitespace or
// the end of input.
func Tokenize(args string, prefixes ...command.Prefix) *ArgumentMultimap {
	var positions []prefixPosition
	for _, p := range prefixes {
		positions = append(positions, findPrefixPositions(args, p)...)
	}
	sort.Slice(positions, func(i, j int) bool { return positions[i].start < positions[j].start })

	out := NewArgumentMultimap()
	if len(positions) == 0 {
		out.SetPreamble(args)
		return out
	}
	out.SetPreamble(args[:positions[0].start])
	for i, pos := range positions {
		end := len(args)
		if i+1 < len(positions) {
			end = positions[i+1].start
		}
		out.Put(pos.prefix, args[pos.start+len(pos.prefix):end])
	}
	return out
}

func findPrefixPositions(args string, p command.Prefix) []prefixPosition {
	var found []prefixPosition
	token := string(p)
	for from := 0; from < len(args); {
		i := strings.Index(args[from:], token)
		if i < 0 {
			break
		}
		start := from + i
		end := start + len(token)
		before := start == 0 || isSpace(args[start-1])
		after := end == len(args) || isSpace(args[end])
		if before && after {
			found = append(found, prefixPosition{start: start, prefix: p})
		}
		from = start + 1
	}
	return found
}

func isSpace(b byte) bool { return unicode.IsSpace(rune(b)) }
