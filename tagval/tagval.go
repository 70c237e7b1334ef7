// Package tagval parses the tag=value list grammar of RFC 6376 Section 3.2,
// shared by DKIM key records and DMARC policy records: a semicolon-separated
// sequence of "name=value" pairs with optional whitespace, an optional
// trailing semicolon, and values that may be empty.
//
// Parse returns tags in record order. It does not enforce uniqueness;
// consumers that want a map fold the list themselves, typically last-wins.
package tagval

import (
	"fmt"
	"strings"
)

// Tag is one decoded name=value pair from a record.
type Tag struct {
	// Name is the tag name as it appears in the record. Tag names are
	// case-sensitive per RFC 6376.
	Name string

	// Value is the tag value with all whitespace removed.
	Value string

	// RawValue is the tag value as it appears in the record, with only
	// surrounding whitespace trimmed.
	RawValue string
}

// parseErr is an internal parsing error.
type parseErr string

func (e parseErr) Error() string {
	return string(e)
}

// Parse tokenizes s into an ordered tag list.
// A malformed record returns an error carrying the position and remaining
// input of the first offending byte.
func Parse(s string) (tags []Tag, rerr error) {
	defer func() {
		x := recover()
		if x == nil {
			return
		}
		if err, ok := x.(parseErr); ok {
			rerr = err
			return
		}
		panic(x)
	}()

	p := &parser{s: s}

	for {
		p.wsp()
		if p.empty() {
			if len(tags) == 0 {
				p.xerrorf("empty tag list")
			}
			// Trailing semicolon is allowed.
			break
		}

		name := p.xname()
		p.wsp()
		p.xtake("=")
		raw := p.xvalue()

		tags = append(tags, Tag{
			Name:     name,
			Value:    stripWSP(raw),
			RawValue: strings.Trim(raw, " \t"),
		})

		if p.empty() {
			break
		}
		p.xtake(";")
	}

	return tags, nil
}

// stripWSP removes all spaces and tabs, folding multi-token values into one.
func stripWSP(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == ' ' || s[i] == '\t' {
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

// parser holds state for scanning a tag list.
type parser struct {
	s string // Original string
	o int    // Current offset
}

func (p *parser) xerrorf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if p.o < len(p.s) {
		msg += fmt.Sprintf(" (offset %d, remain %q)", p.o, p.s[p.o:])
	}
	panic(parseErr(msg))
}

func (p *parser) empty() bool {
	return p.o >= len(p.s)
}

// wsp consumes optional whitespace.
func (p *parser) wsp() {
	for !p.empty() && (p.s[p.o] == ' ' || p.s[p.o] == '\t') {
		p.o++
	}
}

func (p *parser) xtake(s string) {
	if !strings.HasPrefix(p.s[p.o:], s) {
		p.xerrorf("expected %q", s)
	}
	p.o += len(s)
}

// xname parses a tag name: ALPHA followed by ALPHA / DIGIT / "_".
func (p *parser) xname() string {
	start := p.o
	if p.empty() || !isalpha(p.s[p.o]) {
		p.xerrorf("expected tag name")
	}
	p.o++
	for !p.empty() && isnamechar(p.s[p.o]) {
		p.o++
	}
	return p.s[start:p.o]
}

// xvalue consumes a tag value up to the next semicolon or end of input.
// Values may be empty. Bytes must be printable ASCII (excluding ";") or
// whitespace.
func (p *parser) xvalue() string {
	start := p.o
	for !p.empty() {
		c := p.s[p.o]
		if c == ';' {
			break
		}
		if !isvalchar(c) && c != ' ' && c != '\t' {
			p.xerrorf("invalid byte %#x in tag value", c)
		}
		p.o++
	}
	return p.s[start:p.o]
}

func isalpha(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z'
}

func isnamechar(b byte) bool {
	return isalpha(b) || b >= '0' && b <= '9' || b == '_'
}

// isvalchar reports whether b is a VALCHAR: printable ASCII except ";".
func isvalchar(b byte) bool {
	return b >= 0x21 && b <= 0x7e && b != ';'
}
