package todoswamp

import (
	"errors"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Request is a parsed command line: AddRequest, DoneRequest or SearchRequest.
type Request interface {
	request()
}

// AddRequest asks the store to insert a new item.
type AddRequest struct {
	Description string
	Tags        []string
}

// DoneRequest asks the store to mark an item as done.
type DoneRequest struct {
	ID ID
}

// SearchRequest asks for the active items matching a query.
type SearchRequest struct {
	Query Query
}

func (*AddRequest) request()    {}
func (*DoneRequest) request()   {}
func (*SearchRequest) request() {}

// Result is the outcome of executing a Request.
type Result interface {
	result()
}

// AddedResult carries the item created by an AddRequest.
type AddedResult struct {
	Item *Item
}

// DoneResult acknowledges a DoneRequest.
type DoneResult struct{}

// FoundResult carries the items matched by a SearchRequest.
type FoundResult struct {
	Items []*Item
}

func (*AddedResult) result() {}
func (*DoneResult) result()  {}
func (*FoundResult) result() {}

// ParseRequest parses a single command line. The accepted forms are:
//
//	add "<description>" [#tag ...]
//	done <id>
//	search [term ...]
//
// Search terms starting with '#' are tag terms, all others are word terms.
// Returns EINVALID for malformed lines and lines that are not valid UTF-8.
// A done id too large to represent cannot exist and returns ENOTFOUND.
func ParseRequest(line string) (Request, error) {
	if !utf8.ValidString(line) {
		return nil, Errorf(EINVALID, "request is not valid UTF-8")
	}

	cmd, rest := cutSpace(strings.TrimSpace(line))
	switch cmd {
	case "add":
		return parseAdd(rest)
	case "done":
		return parseDone(rest)
	case "search":
		return parseSearch(rest)
	case "":
		return nil, Errorf(EINVALID, "empty request")
	default:
		return nil, Errorf(EINVALID, "unknown command %q", cmd)
	}
}

func parseAdd(s string) (Request, error) {
	desc, rest, err := parseQuoted(s)
	if err != nil {
		return nil, err
	}

	var tags []string
	for _, field := range strings.Fields(rest) {
		tag, ok := parseTag(field)
		if !ok {
			return nil, Errorf(EINVALID, "invalid tag %q", field)
		}
		tags = append(tags, tag)
	}

	return &AddRequest{Description: desc, Tags: tags}, nil
}

func parseDone(s string) (Request, error) {
	fields := strings.Fields(s)
	if len(fields) != 1 {
		return nil, Errorf(EINVALID, "done takes exactly one id")
	}
	n, err := strconv.Atoi(fields[0])
	if errors.Is(err, strconv.ErrRange) {
		return nil, Errorf(ENOTFOUND, "item %s does not exist", fields[0])
	} else if err != nil {
		return nil, Errorf(EINVALID, "invalid id %q", fields[0])
	}
	return &DoneRequest{ID: ID(n)}, nil
}

func parseSearch(s string) (Request, error) {
	var q Query
	for _, field := range strings.Fields(s) {
		if !strings.HasPrefix(field, "#") {
			q.Words = append(q.Words, field)
			continue
		}
		tag, ok := parseTag(field)
		if !ok {
			return nil, Errorf(EINVALID, "invalid tag %q", field)
		}
		q.Tags = append(q.Tags, tag)
	}
	return &SearchRequest{Query: q}, nil
}

// parseTag strips the leading '#' from a tag field.
func parseTag(field string) (string, bool) {
	tag, ok := strings.CutPrefix(field, "#")
	if !ok || tag == "" {
		return "", false
	}
	return tag, true
}

// parseQuoted reads a double-quoted string from the start of s and returns
// its unescaped content and the remainder after the closing quote.
// Only \" and \\ are escapes; any other backslash is kept literally.
func parseQuoted(s string) (string, string, error) {
	if !strings.HasPrefix(s, `"`) {
		return "", "", Errorf(EINVALID, "description must be double-quoted")
	}

	var b strings.Builder
	for i := 1; i < len(s); i++ {
		switch c := s[i]; c {
		case '\\':
			if i+1 < len(s) && (s[i+1] == '"' || s[i+1] == '\\') {
				i++
				b.WriteByte(s[i])
				continue
			}
			b.WriteByte(c)
		case '"':
			rest := s[i+1:]
			if r, _ := utf8.DecodeRuneInString(rest); rest != "" && !unicode.IsSpace(r) {
				return "", "", Errorf(EINVALID, "expected whitespace after description")
			}
			return b.String(), rest, nil
		default:
			b.WriteByte(c)
		}
	}
	return "", "", Errorf(EINVALID, "unterminated description")
}

// cutSpace splits s at the first run of whitespace.
func cutSpace(s string) (string, string) {
	i := strings.IndexFunc(s, unicode.IsSpace)
	if i < 0 {
		return s, ""
	}
	return s[:i], strings.TrimLeftFunc(s[i:], unicode.IsSpace)
}
