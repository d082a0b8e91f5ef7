package mchxclean

// Options configures a pipeline run.
type Options struct {
	// FieldMap overrides the extraction layout.
	// If nil, DefaultFieldMap() is used.
	FieldMap FieldMap
	// Progress receives consolidation progress events. May be nil.
	Progress ProgressFunc
}

// DefaultOptions returns options using the default field map and no
// progress reporting.
func DefaultOptions() Options {
	return Options{}
}

func (o Options) fieldMap() FieldMap {
	if o.FieldMap != nil {
		return o.FieldMap
	}
	return DefaultFieldMap()
}
