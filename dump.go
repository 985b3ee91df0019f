package xtendr

// Attribute is a name and its value.
type Attribute struct {
	Name  string
	Value []byte
}

// Dump returns all attributes with their values, in listing order.
// Attributes removed between the listing and the read are left out.
func Dump(p Pather, flags Flags) ([]Attribute, error) {
	names, err := List(p, flags)
	if err != nil {
		return nil, err
	}
	attrs := make([]Attribute, 0, len(names))
	for _, name := range names {
		val, found, err := Lookup(p, name, flags)
		if err != nil {
			return nil, err
		}
		if !found {
			continue
		}
		attrs = append(attrs, Attribute{Name: name, Value: val})
	}
	return attrs, nil
}
