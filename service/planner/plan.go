package planner

import "github.com/viant/bouquet/service/allocator"

// Plan is the outcome of a build: every bouquet in sweep order and then
// design order, and the number of sweeps run including the final empty one.
type Plan struct {
	Bouquets []*allocator.Bouquet `json:"bouquets" yaml:"bouquets"`
	Sweeps   int                  `json:"sweeps" yaml:"sweeps"`
}

// Codes renders every bouquet code in plan order
func (p *Plan) Codes() []string {
	if p == nil {
		return nil
	}
	ret := make([]string, 0, len(p.Bouquets))
	for _, bouquet := range p.Bouquets {
		ret = append(ret, bouquet.Code())
	}
	return ret
}

// Consumed returns the number of flowers taken by the plan
func (p *Plan) Consumed() int {
	if p == nil {
		return 0
	}
	total := 0
	for _, bouquet := range p.Bouquets {
		total += bouquet.Quantity()
	}
	return total
}

// Summary counts the lines seen by Import
type Summary struct {
	Flowers int `json:"flowers" yaml:"flowers"`
	Designs int `json:"designs" yaml:"designs"`
	Unknown int `json:"unknown" yaml:"unknown"`
}
