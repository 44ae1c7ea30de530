package allocator

import (
	"strconv"
	"strings"

	"github.com/viant/bouquet/model/design"
	"github.com/viant/bouquet/model/inventory"
)

// Pick is a number of flowers of one species and size taken for a bouquet.
type Pick struct {
	Species inventory.Species `json:"species" yaml:"species"`
	Size    inventory.Size    `json:"size" yaml:"size"`
	Amount  int               `json:"amount" yaml:"amount"`
}

// Bouquet is a satisfied design together with the flowers debited for it.
type Bouquet struct {
	Design *design.Design `json:"design" yaml:"design"`
	Picks  []Pick         `json:"picks" yaml:"picks"`
}

// Quantity returns the number of flowers in the bouquet.
func (b *Bouquet) Quantity() int {
	total := 0
	for _, pick := range b.Picks {
		total += pick.Amount
	}
	return total
}

// Code renders the bouquet as {name}{size}{amount}{species}...
func (b *Bouquet) Code() string {
	var code strings.Builder
	code.WriteString(b.Design.Name)
	code.WriteString(string(b.Design.Size))
	for _, pick := range b.Picks {
		code.WriteString(strconv.Itoa(pick.Amount))
		code.WriteString(string(pick.Species))
	}
	return code.String()
}

func (b *Bouquet) String() string {
	return b.Code()
}
