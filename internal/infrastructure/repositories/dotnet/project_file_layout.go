package dotnet

import (
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"slices"
	"strings"

	"github.com/beevik/etree"
)

var errLayoutMismatch = errors.New("element layout does not match the parsed document")

// elementSpan locates one element in the source bytes.
type elementSpan struct {
	start        int // "<" of the start tag
	contentStart int // just past the start tag
	contentEnd   int // "</" of the end tag
	end          int // just past the end tag
}

func (s elementSpan) selfClosing() bool {
	return s.contentEnd == s.end
}

// scanSpans decodes data again and pairs every element of the tree under root
// with its position in data. Both passes see elements in document order.
func scanSpans(data []byte, root *etree.Element) (map[*etree.Element]elementSpan, error) {
	elements := flatten(root)

	dec := xml.NewDecoder(bytes.NewReader(data))
	dec.CharsetReader = func(_ string, input io.Reader) (io.Reader, error) { return input, nil }
	dec.Strict = true

	found := make([]elementSpan, len(elements))
	var open []int
	next := 0

	for {
		before := int(dec.InputOffset())
		token, err := dec.RawToken()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		switch token.(type) {
		case xml.StartElement:
			if next >= len(elements) {
				return nil, errLayoutMismatch
			}
			found[next] = elementSpan{start: before, contentStart: int(dec.InputOffset())}
			open = append(open, next)
			next++
		case xml.EndElement:
			if len(open) == 0 {
				return nil, errLayoutMismatch
			}
			index := open[len(open)-1]
			open = open[:len(open)-1]
			found[index].contentEnd = before
			found[index].end = int(dec.InputOffset())
		}
	}

	if next != len(elements) || len(open) != 0 {
		return nil, errLayoutMismatch
	}

	spans := make(map[*etree.Element]elementSpan, len(elements))
	for i, element := range elements {
		spans[element] = found[i]
	}
	return spans, nil
}

func flatten(element *etree.Element) []*etree.Element {
	elements := []*etree.Element{element}
	for _, child := range element.ChildElements() {
		elements = append(elements, flatten(child)...)
	}
	return elements
}

type splice struct {
	start int
	end   int
	text  string
}

// render writes the source with only the edited content replaced and the
// added tokens inserted. Everything else is copied byte for byte.
func (e *projectEditor) render(
	source []byte,
	spans map[*etree.Element]elementSpan,
	settings *etree.WriteSettings,
	newline string,
) []byte {
	var splices []splice

	for _, element := range e.edited {
		span, ok := spans[element]
		if !ok {
			continue
		}
		splices = append(splices, splice{
			start: span.contentStart,
			end:   span.contentEnd,
			text:  writeTokens(element.Child, settings),
		})
	}

	for _, parent := range e.grown {
		span, ok := spans[parent]
		if !ok {
			continue
		}
		if span.selfClosing() {
			splices = append(splices, splice{
				start: span.start,
				end:   span.end,
				text:  writeTokens([]etree.Token{parent}, settings),
			})
			continue
		}

		var added []etree.Token
		for _, child := range parent.Child {
			if e.added[child] {
				added = append(added, child)
			}
		}
		at := trimTrailingSpace(source, span.contentStart, span.contentEnd)
		splices = append(splices, splice{start: at, end: at, text: writeTokens(added, settings)})
	}

	slices.SortStableFunc(splices, func(a, b splice) int { return a.start - b.start })

	var out bytes.Buffer
	last := 0
	for _, s := range splices {
		out.Write(source[last:s.start])
		out.WriteString(strings.ReplaceAll(s.text, "\n", newline))
		last = s.end
	}
	out.Write(source[last:])
	return out.Bytes()
}

func writeTokens(tokens []etree.Token, settings *etree.WriteSettings) string {
	var buf bytes.Buffer
	for _, token := range tokens {
		token.WriteTo(&buf, settings)
	}
	return buf.String()
}

// trimTrailingSpace moves to back over the whitespace that precedes it, but
// not before from.
func trimTrailingSpace(source []byte, from, to int) int {
	for to > from && strings.IndexByte(" \t\r\n", source[to-1]) >= 0 {
		to--
	}
	return to
}
