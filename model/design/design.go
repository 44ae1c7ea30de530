package design

import (
	"strconv"
	"strings"

	"github.com/viant/bouquet/model/inventory"
)

// Requirement caps how many flowers of a species a design may take.
type Requirement struct {
	Species inventory.Species `json:"species" yaml:"species"`
	Max     int               `json:"max" yaml:"max"`
}

// Design describes a bouquet: its name, the flower size it uses, the total
// number of flowers and the per-species caps. The order of Flowers is the
// priority in which species are considered.
type Design struct {
	Name          string         `json:"name" yaml:"name"`
	Size          inventory.Size `json:"size" yaml:"size"`
	TotalQuantity int            `json:"totalQuantity" yaml:"totalQuantity"`
	Flowers       []Requirement  `json:"flowers" yaml:"flowers"`
}

// Max returns the cap for species and whether the design uses it at all.
func (d *Design) Max(species inventory.Species) (int, bool) {
	for _, requirement := range d.Flowers {
		if requirement.Species == species {
			return requirement.Max, true
		}
	}
	return 0, false
}

// Clone returns a deep copy of the design
func (d *Design) Clone() *Design {
	ret := *d
	ret.Flowers = append([]Requirement(nil), d.Flowers...)
	return &ret
}

// String renders the design in the input notation, e.g. AS2a2b3.
func (d *Design) String() string {
	var b strings.Builder
	b.WriteString(d.Name)
	b.WriteString(string(d.Size))
	for _, requirement := range d.Flowers {
		b.WriteString(strconv.Itoa(requirement.Max))
		b.WriteString(string(requirement.Species))
	}
	b.WriteString(strconv.Itoa(d.TotalQuantity))
	return b.String()
}

// New creates a design. The flowers are copied; a species listed more than
// once keeps its first position and takes the last cap.
func New(name string, size inventory.Size, totalQuantity int, flowers ...Requirement) *Design {
	ret := &Design{
		Name:          name,
		Size:          size,
		TotalQuantity: totalQuantity,
		Flowers:       make([]Requirement, 0, len(flowers)),
	}
	index := make(map[inventory.Species]int, len(flowers))
	for _, requirement := range flowers {
		if i, ok := index[requirement.Species]; ok {
			ret.Flowers[i].Max = requirement.Max
			continue
		}
		index[requirement.Species] = len(ret.Flowers)
		ret.Flowers = append(ret.Flowers, requirement)
	}
	return ret
}
