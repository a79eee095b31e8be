// Package scan tokenizes a single line of SVG markup into a core.Tag.
//
// The scanner is a small character-driven state machine. It is tolerant
// rather than conforming: it never reports errors, and a line it cannot make
// sense of simply yields an empty Tag. Unquoted attribute values and escaped
// quotes inside values are not supported; an unquoted value is never closed
// and its attribute is silently lost. A '/' is never part of an element or
// attribute name, and attributes with an empty name are dropped, so
// `<path d="M0 0" />` yields one attribute and a self-closing tag.
package scan

import (
	"strings"

	"github.com/gaurav-prasanna/svgcomp/core"
)

type state int

const (
	parsingElementName state = iota
	parsingBeforeAttributeName
	parsingAttributeName
	parsingAttributeValue
	parsingAttributeValueQuoted
	endOfElement
)

// scanner holds the accumulators for one call to Scan.
type scanner struct {
	state     state
	elemType  core.ElementType
	name      strings.Builder
	attrName  strings.Builder
	attrValue strings.Builder
	attrs     []core.Attribute
	// prev is the last character seen that was not a space or tab.
	prev byte
}

// Scan parses one trimmed line holding a single tag such as
// `<path d="M0 0"/>`, `<g fill="none">` or `</g>`.
// A line without any element name yields an empty Tag of type ElementNone.
func Scan(text string) core.Tag {
	s := scanner{state: parsingElementName, elemType: core.ElementOpening}
	for i := 0; i < len(text); i++ {
		ch := text[i]
		s.step(ch)
		if ch != ' ' && ch != '\t' {
			s.prev = ch
		}
	}

	if s.name.Len() == 0 {
		return core.Tag{Type: core.ElementNone}
	}
	return core.Tag{
		Name:       s.name.String(),
		Type:       s.elemType,
		Attributes: s.attrs,
	}
}

func (s *scanner) step(ch byte) {
	switch s.state {
	case parsingElementName:
		switch ch {
		case ' ':
			s.startAttribute()
		case '<':
			s.elemType = core.ElementOpening
		case '/':
			s.elemType = core.ElementClosing
		case '>':
			s.promoteSelfClosing()
		default:
			s.name.WriteByte(ch)
		}

	case parsingBeforeAttributeName:
		switch ch {
		case ' ':
			s.startAttribute()
		case '>':
			s.promoteSelfClosing()
			s.state = endOfElement
		}

	case parsingAttributeName:
		switch ch {
		case '=':
			s.state = parsingAttributeValue
			s.attrValue.Reset()
		case ' ':
			s.commit()
		case '>':
			s.commit()
			s.promoteSelfClosing()
			s.state = endOfElement
		case '/':
			// Only ever the start of a "/>" terminator.
		default:
			s.attrName.WriteByte(ch)
		}

	case parsingAttributeValue:
		if ch == '"' {
			s.state = parsingAttributeValueQuoted
			s.attrValue.Reset()
		}

	case parsingAttributeValueQuoted:
		if ch == '"' {
			s.commit()
			s.state = parsingBeforeAttributeName
		} else {
			s.attrValue.WriteByte(ch)
		}

	case endOfElement:
		// Anything after the closing '>' is ignored.

	default:
		// Unknown state: stay where we are.
	}
}

func (s *scanner) startAttribute() {
	s.state = parsingAttributeName
	s.attrName.Reset()
	s.attrValue.Reset()
}

// commit appends the pending attribute, if it has a name, and resets the
// accumulators for the next one.
func (s *scanner) commit() {
	if s.attrName.Len() > 0 {
		s.attrs = append(s.attrs, core.Attribute{
			Name:  s.attrName.String(),
			Value: s.attrValue.String(),
		})
	}
	s.attrName.Reset()
	s.attrValue.Reset()
}

func (s *scanner) promoteSelfClosing() {
	if s.prev == '/' {
		s.elemType = core.ElementSelfClosing
	}
}
