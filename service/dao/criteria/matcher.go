package criteria

import (
	"github.com/viant/bouquet/service/dao"
)

// Fields exposes named string fields of an entity for filtering
type Fields func(name string) (string, bool)

// Match reports whether the entity satisfies every parameter. Parameters
// naming a field the entity does not expose are ignored.
func Match(fields Fields, parameters []*dao.Parameter) bool {
	for _, parameter := range parameters {
		if parameter == nil {
			continue
		}
		value, ok := fields(parameter.Name)
		if !ok {
			continue
		}
		if !contains(parameter.Values(), value) {
			return false
		}
	}
	return true
}

func contains(values []string, value string) bool {
	for _, candidate := range values {
		if candidate == value {
			return true
		}
	}
	return false
}
