package config

// Built-in trait and method names
const (
	IterTraitName  = "Iter"
	IterMethodName = "iterator"
)
