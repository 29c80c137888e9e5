package model

// Category represents an expense category, either user-defined or public.
type Category struct {
	ID     string
	Name   string
	Icon   string
	Custom bool
}

// Person represents someone an expense can be attributed to or split with.
type Person struct {
	ID           string
	Name         string
	Relationship string
	Custom       bool
}
