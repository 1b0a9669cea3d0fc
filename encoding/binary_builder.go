package encoding

import (
	"fmt"
	"iter"
	"slices"

	"github.com/JohnCGriffin/overflow"

	"github.com/arloliu/varbin/internal/options"
	"github.com/arloliu/varbin/offset"
)

// BinaryBuilder accumulates variable-length byte values into the offsets + values
// layout of a binary column.
//
// Nulls are stored as empty values; the caller keeps the validity bitmap that tells a
// null apart from an empty string. The builder therefore implements Pushable but not
// Freezer: its output is handed over as raw buffers by Take.
//
// Memory policy: the value buffer starts at min(capacityHint, samplingThreshold)
// values of bytesPerValueEstimate bytes each. When a Push brings the count to exactly
// samplingThreshold and capacityHint is larger, it re-estimates the buffer from the
// observed average length and grows it to cover capacityHint values. A count that
// skips over the threshold through ExtendConstant is never sampled.
//
// BinaryBuilder is not safe for concurrent use.
type BinaryBuilder[O offset.Offset] struct {
	offsets offset.Offsets[O]
	values  []byte

	capacityHint      int
	samplingThreshold int
	taken             bool
}

var _ Pushable[[]byte] = (*BinaryBuilder[int32])(nil)

// NewBinaryBuilder creates a builder sized for capacityHint values.
//
// Parameters:
//   - capacityHint: Expected number of values, used to pre-size the offsets
//   - opts: Optional sizing policy overrides
//
// Returns:
//   - *BinaryBuilder[O]: A new, empty builder
//   - error: Invalid option error
func NewBinaryBuilder[O offset.Offset](capacityHint int, opts ...BuilderOption) (*BinaryBuilder[O], error) {
	cfg := defaultBuilderConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	capacityHint = max(capacityHint, 0)

	return &BinaryBuilder[O]{
		offsets:           offset.New[O](capacityHint),
		values:            make([]byte, 0, min(capacityHint, cfg.samplingThreshold)*cfg.bytesPerValueEstimate),
		capacityHint:      capacityHint,
		samplingThreshold: cfg.samplingThreshold,
	}, nil
}

// Push appends a copy of value.
//
// Returns an error wrapping ErrOffsetOverflow if the total byte length would no longer
// fit in O. Nothing is appended in that case.
func (b *BinaryBuilder[O]) Push(value []byte) error {
	b.checkNotTaken()

	if err := b.offsets.TryPush(len(value)); err != nil {
		return fmt.Errorf("push value #%d (%d bytes): %w", b.offsets.Len(), len(value), err)
	}
	b.values = append(b.values, value...)

	if b.offsets.Len() == b.samplingThreshold && b.capacityHint > b.samplingThreshold {
		b.recalibrate()
	}

	return nil
}

// recalibrate grows the value buffer to the size projected from the average value
// length seen so far.
func (b *BinaryBuilder[O]) recalibrate() {
	bytesPerValue := len(b.values)/b.offsets.Len() + 1

	estimate, ok := overflow.Mul(bytesPerValue, b.capacityHint)
	if !ok || estimate <= cap(b.values) {
		return
	}

	b.values = slices.Grow(b.values, estimate-len(b.values))
}

// PushNull appends an empty value. It is exactly Push(nil), which cannot overflow.
func (b *BinaryBuilder[O]) PushNull() {
	_ = b.Push(nil)
}

// ExtendConstant appends count empty values. No bytes are copied.
func (b *BinaryBuilder[O]) ExtendConstant(count int) {
	b.checkNotTaken()
	b.offsets.ExtendConstant(count)
}

// ExtendConstantValue appends count copies of value, which must be empty.
// It panics for a non-empty value: this builder only pads with empty entries.
func (b *BinaryBuilder[O]) ExtendConstantValue(count int, value []byte) {
	if len(value) != 0 {
		panic(fmt.Sprintf("encoding: BinaryBuilder.ExtendConstantValue supports only empty values, got %d bytes", len(value)))
	}

	b.ExtendConstant(count)
}

// ExtendNullConstant appends count null (empty) entries.
func (b *BinaryBuilder[O]) ExtendNullConstant(count int) {
	b.ExtendConstant(count)
}

// Reserve prepares room for additional values. The value buffer grows by the current
// average value length times additional.
func (b *BinaryBuilder[O]) Reserve(additional int) {
	b.checkNotTaken()
	if additional <= 0 {
		return
	}

	avg := len(b.values) / max(b.offsets.Len(), 1)
	if n, ok := overflow.Mul(additional, avg); ok && n > 0 {
		b.values = slices.Grow(b.values, n)
	}
	b.offsets.Reserve(additional)
}

// Len returns the number of values appended so far.
func (b *BinaryBuilder[O]) Len() int {
	return b.offsets.Len()
}

// DataLen returns the number of value bytes appended so far.
func (b *BinaryBuilder[O]) DataLen() int {
	return len(b.values)
}

// DataCap returns the capacity of the value buffer.
func (b *BinaryBuilder[O]) DataCap() int {
	return cap(b.values)
}

// Size returns the number of bytes the column occupies: the offsets at their
// encoded width plus the value bytes.
func (b *BinaryBuilder[O]) Size() int {
	return b.offsets.ByteLen() + len(b.values)
}

// Offsets returns the offsets sequence, leading zero included.
// The slice shares memory with the builder and must not be modified.
func (b *BinaryBuilder[O]) Offsets() []O {
	return b.offsets.Buffer()
}

// Values returns the concatenated value bytes.
// The slice shares memory with the builder and must not be modified.
func (b *BinaryBuilder[O]) Values() []byte {
	return b.values
}

// Value returns the i-th value. Panics if i is out of range.
func (b *BinaryBuilder[O]) Value(i int) []byte {
	start, end := b.offsets.Range(i)
	return b.values[start:end:end]
}

// All returns an iterator over the values in insertion order.
func (b *BinaryBuilder[O]) All() iter.Seq[[]byte] {
	return func(yield func([]byte) bool) {
		for i := range b.offsets.Len() {
			if !yield(b.Value(i)) {
				return
			}
		}
	}
}

// Take hands the offsets and values over to the caller. The builder must not be
// mutated afterwards; doing so panics.
func (b *BinaryBuilder[O]) Take() ([]O, []byte) {
	b.checkNotTaken()

	offsets, values := b.offsets.Buffer(), b.values
	b.offsets = offset.Offsets[O]{}
	b.values = nil
	b.taken = true

	return offsets, values
}

func (b *BinaryBuilder[O]) checkNotTaken() {
	if b.taken {
		panic("encoding: BinaryBuilder used after Take")
	}
}
