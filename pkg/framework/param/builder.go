package param

// Builder provides a fluent API for creating parameters
type Builder struct {
	param *Parameter
}

// New creates a new parameter builder
func New(id uint32, name string) *Builder {
	return &Builder{
		param: &Parameter{
			ID:   id,
			Name: name,
			Min:  0,
			Max:  1,
		},
	}
}

// Range sets the min and max values
func (b *Builder) Range(min, max float32) *Builder {
	b.param.Min = min
	b.param.Max = max
	return b
}

// Default sets the default value (in plain range, not normalized)
func (b *Builder) Default(value float32) *Builder {
	if b.param.Max > b.param.Min {
		b.param.DefaultValue = (value - b.param.Min) / (b.param.Max - b.param.Min)
	}
	return b
}

// Label sets the unit label shown next to the control
func (b *Builder) Label(label string) *Builder {
	b.param.Label = label
	return b
}

// Formatter sets custom value formatting
func (b *Builder) Formatter(format func(float32) string) *Builder {
	b.param.formatFunc = format
	return b
}

// Build returns the configured parameter initialized to its default
func (b *Builder) Build() *Parameter {
	b.param.SetValue(b.param.DefaultValue)
	return b.param
}
