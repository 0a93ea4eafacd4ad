package rampaged

import (
	"slices"
	"strings"
)

// DescriptorField declares one public field of an entity shape and,
// optionally, the property address used when ordering by it.
type DescriptorField struct {
	Name    string
	address *string
}

// Field declares a field without an alias.
func Field(name string) DescriptorField {
	return DescriptorField{Name: name}
}

// OrderedBy sets the property address for the field, e.g.
//
//	rampaged.Field("customer").OrderedBy("customer.lastName")
//
// An empty address removes the field from any resolved ordering.
func (f DescriptorField) OrderedBy(address string) DescriptorField {
	f.address = &address
	return f
}

// Alias returns the declared property address and whether one was declared.
func (f DescriptorField) Alias() (string, bool) {
	if f.address == nil {
		return "", false
	}

	return *f.address, true
}

// Descriptor statically describes the sortable shape of an entity. Build it
// once at startup and share it: it is never mutated after NewDescriptor.
type Descriptor struct {
	name   string
	fields map[string]DescriptorField
	order  []string
}

// NewDescriptor registers the given fields. Field names are matched
// case-insensitively; a later declaration of the same name wins.
func NewDescriptor(name string, fields ...DescriptorField) *Descriptor {
	d := &Descriptor{
		name:   name,
		fields: make(map[string]DescriptorField, len(fields)),
		order:  make([]string, 0, len(fields)),
	}

	for _, f := range fields {
		key := strings.ToLower(f.Name)
		if _, ok := d.fields[key]; !ok {
			d.order = append(d.order, f.Name)
		}
		d.fields[key] = f
	}

	return d
}

// Name returns the entity name the descriptor was registered with.
func (d *Descriptor) Name() string {
	if d == nil {
		return ""
	}

	return d.name
}

// Lookup finds a declared field by name, ignoring case.
func (d *Descriptor) Lookup(name string) (DescriptorField, bool) {
	if d == nil {
		return DescriptorField{}, false
	}

	f, ok := d.fields[strings.ToLower(name)]

	return f, ok
}

// FieldNames returns declared field names in declaration order.
func (d *Descriptor) FieldNames() []string {
	if d == nil {
		return nil
	}

	return slices.Clone(d.order)
}
