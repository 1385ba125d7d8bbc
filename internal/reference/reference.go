// Package reference parses free-form bible reference strings such as
// "João 3:16-18; Mt 5:1,3" into individual verse references.
package reference

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Ref addresses a single verse within a book. The version is supplied
// separately at lookup time.
type Ref struct {
	Book    string
	Chapter int
	Number  int
}

// String renders the reference in the conventional "Book chapter:verse" form.
func (r Ref) String() string {
	return fmt.Sprintf("%s %d:%d", r.Book, r.Chapter, r.Number)
}

// refPattern matches one complete reference: a book token (one or more
// words of letters and digits, e.g. "Jo", "1Pe", "Cântico dos Cânticos"),
// a chapter, and the verse part.
var refPattern = regexp.MustCompile(`^([\p{L}\d]+(?:\s+[\p{L}\d]+)*)\s+(\d+):(.+)$`)

// maxRefs bounds how many verses one query may expand to, so a range like
// "1:1-999999999" fails fast instead of turning into that many lookups.
const maxRefs = 500

// Parse expands a reference string into individual verse references.
//
// Grammar: references for different books are separated by ';'. Each
// reference is "<book> <chapter>:<verses>" where <book> is an
// abbreviation or full name (normalized via NormalizeBook) and <verses>
// is a comma separated list of verse numbers, inclusive ranges "a-b", or
// a nested "chapter:verse" pair that switches chapters within the same
// book.
func Parse(query string) ([]Ref, error) {
	var refs []Ref
	for _, part := range strings.Split(query, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		parsed, err := parseOne(part)
		if err != nil {
			return nil, err
		}
		refs = append(refs, parsed...)
		if len(refs) > maxRefs {
			return nil, fmt.Errorf("reference expands to more than %d verses", maxRefs)
		}
	}
	if len(refs) == 0 {
		return nil, fmt.Errorf("empty reference %q", query)
	}
	return refs, nil
}

func parseOne(part string) ([]Ref, error) {
	m := refPattern.FindStringSubmatch(part)
	if m == nil {
		return nil, fmt.Errorf("invalid reference format %q", part)
	}
	book := NormalizeBook(m[1])

	chapter, err := strconv.Atoi(m[2])
	if err != nil || chapter < 1 {
		return nil, fmt.Errorf("invalid chapter %q in %q", m[2], part)
	}

	var refs []Ref
	for _, v := range strings.Split(m[3], ",") {
		v = strings.TrimSpace(v)
		switch {
		case strings.Contains(v, ":"):
			// Chapter switch within the same book, e.g. "Jo 3:16,4:2".
			nested, err := parseOne(book + " " + v)
			if err != nil {
				return nil, err
			}
			refs = append(refs, nested...)
		case strings.Contains(v, "-"):
			first, last, ok := parseRange(v)
			if !ok {
				return nil, fmt.Errorf("invalid verse range %q in %q", v, part)
			}
			if last-first >= maxRefs {
				return nil, fmt.Errorf("reference expands to more than %d verses", maxRefs)
			}
			for n := first; n <= last; n++ {
				refs = append(refs, Ref{Book: book, Chapter: chapter, Number: n})
			}
		default:
			n, err := strconv.Atoi(v)
			if err != nil || n < 1 {
				return nil, fmt.Errorf("invalid verse number %q in %q", v, part)
			}
			refs = append(refs, Ref{Book: book, Chapter: chapter, Number: n})
		}
	}
	return refs, nil
}

func parseRange(v string) (first, last int, ok bool) {
	bounds := strings.SplitN(v, "-", 2)
	first, err := strconv.Atoi(strings.TrimSpace(bounds[0]))
	if err != nil || first < 1 {
		return 0, 0, false
	}
	last, err = strconv.Atoi(strings.TrimSpace(bounds[1]))
	if err != nil || last < first {
		return 0, 0, false
	}
	return first, last, true
}
