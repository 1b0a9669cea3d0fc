package encoding

// Pushable is the write side of a column builder. Generic decode code targets this
// interface so the same loop can fill any builder variant.
//
// Null handling is left to the variant: a builder may record nulls in its own
// validity structure or, like BinaryBuilder, represent them as empty values and rely on
// a validity bitmap kept by the caller.
type Pushable[T any] interface {
	// Reserve prepares room for additional values so upcoming pushes do not reallocate.
	Reserve(additional int)

	// Len returns the number of values pushed so far, nulls included.
	Len() int

	// Push appends a single value.
	Push(value T) error

	// PushNull appends a single null entry.
	PushNull()

	// ExtendConstantValue appends count copies of value. Variants may restrict which
	// values they accept and panic otherwise.
	ExtendConstantValue(count int, value T)

	// ExtendNullConstant appends count null entries.
	ExtendNullConstant(count int)
}

// Freezer is implemented by builder variants that can convert their accumulated state
// into an immutable column of type F.
//
// It is kept apart from Pushable on purpose: variants whose output is consumed directly
// by the caller (such as BinaryBuilder) do not implement it at all.
type Freezer[F any] interface {
	// Freeze consumes the builder and returns the immutable column.
	Freeze() F
}
