package dao

// Parameter is a List filter: the named field has to equal one of the values.
type Parameter struct {
	Name  string
	Value interface{}
}

// Values returns the accepted values
func (p *Parameter) Values() []string {
	switch actual := p.Value.(type) {
	case string:
		return []string{actual}
	case []string:
		return actual
	}
	return nil
}

// NewParameter creates a filter parameter
func NewParameter(name string, values ...string) *Parameter {
	if len(values) == 1 {
		return &Parameter{Name: name, Value: values[0]}
	}
	return &Parameter{Name: name, Value: values}
}
