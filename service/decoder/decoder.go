package decoder

import (
	"strconv"
	"strings"

	"github.com/viant/bouquet/model/design"
	"github.com/viant/bouquet/model/inventory"
	"github.com/viant/parsly"
)

// Kind classifies a decoded line
type Kind int

const (
	KindUnknown Kind = iota
	KindFlower
	KindDesign
)

func (k Kind) String() string {
	switch k {
	case KindFlower:
		return "flower"
	case KindDesign:
		return "design"
	}
	return "unknown"
}

// Record is a decoded line. Species and Size are set for flowers, Design for designs.
type Record struct {
	Kind    Kind
	Species inventory.Species
	Size    inventory.Size
	Design  *design.Design
}

// Decode classifies a single line without its terminator.
func Decode(line []byte) Record {
	cursor := parsly.NewCursor("", line, 0)
	matched := cursor.MatchAny(lowerToken, upperToken)
	switch matched.Code {
	case lowerCode:
		return decodeFlower(cursor, matched.Text(cursor))
	case upperCode:
		return decodeDesign(cursor, matched.Text(cursor))
	}
	return Record{}
}

func decodeFlower(cursor *parsly.Cursor, species string) Record {
	matched := cursor.MatchOne(upperToken)
	if matched.Code != upperCode || cursor.HasMore() {
		return Record{}
	}
	return Record{Kind: KindFlower, Species: inventory.Species(species), Size: inventory.Size(matched.Text(cursor))}
}

func decodeDesign(cursor *parsly.Cursor, name string) Record {
	matched := cursor.MatchOne(upperToken)
	if matched.Code != upperCode {
		return Record{}
	}
	size := inventory.Size(matched.Text(cursor))
	var flowers []design.Requirement
	for {
		matched = cursor.MatchOne(numberToken)
		if matched.Code != numberCode {
			return Record{}
		}
		number, err := strconv.Atoi(matched.Text(cursor))
		if err != nil {
			return Record{}
		}
		if !cursor.HasMore() {
			if len(flowers) == 0 {
				return Record{}
			}
			return Record{Kind: KindDesign, Size: size, Design: design.New(name, size, number, flowers...)}
		}
		matched = cursor.MatchOne(lowerToken)
		if matched.Code != lowerCode {
			return Record{}
		}
		flowers = append(flowers, design.Requirement{Species: inventory.Species(matched.Text(cursor)), Max: number})
	}
}

// DecodeFlowers decodes a requirement run such as "10a15b5c". It returns
// false when text is not entirely made of {number}{species} pairs.
func DecodeFlowers(text string) ([]design.Requirement, bool) {
	cursor := parsly.NewCursor("", []byte(text), 0)
	var flowers []design.Requirement
	for cursor.HasMore() {
		matched := cursor.MatchOne(numberToken)
		if matched.Code != numberCode {
			return nil, false
		}
		number, err := strconv.Atoi(matched.Text(cursor))
		if err != nil {
			return nil, false
		}
		matched = cursor.MatchOne(lowerToken)
		if matched.Code != lowerCode {
			return nil, false
		}
		flowers = append(flowers, design.Requirement{Species: inventory.Species(matched.Text(cursor)), Max: number})
	}
	if len(flowers) == 0 {
		return nil, false
	}
	return design.New("", "", 0, flowers...).Flowers, true
}

var lineBreaks = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// Lines splits a document on \n, \r\n and \r. A trailing terminator does not
// produce an empty last line.
func Lines(data []byte) []string {
	if len(data) == 0 {
		return nil
	}
	text := lineBreaks.Replace(string(data))
	text = strings.TrimSuffix(text, "\n")
	return strings.Split(text, "\n")
}
