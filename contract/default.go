package contract

// Default creates the registry with all the built-in contracts.
func Default() *Registry {
	r := NewRegistry(
		Reference{},
		External{},
		Null{},
		Enum{},
		DateTime{},
		TimeSpan{},
		Primitive{},
		String{},
		Nullable{},
		Tuple{},
		Pair{},
		Slice{},
		Map{},
		Object{},
		Text{},
	)
	r.RegisterProperty(
		NoWrite{},
		FieldOverride{},
		Property{},
	)
	return r
}
