package encoding

import (
	"errors"
	"fmt"
	"io"
)

// DecodePlain decodes numValues entries of a plain-encoded binary page into dst.
//
// validity marks which entries are present; nil means every entry is present.
// Present entries are read from data in order, absent ones are appended with
// ExtendNullConstant, a whole run at a time. The data must contain exactly one record
// per present entry: missing bytes produce an error wrapping ErrCorruptEncoding and
// trailing bytes panic (see PlainCursor.Next).
//
// On error dst holds a partial result that the caller must discard.
func DecodePlain(dst Pushable[[]byte], data []byte, numValues int, validity []bool, opts ...CursorOption) error {
	if numValues < 0 {
		return fmt.Errorf("invalid value count: %d", numValues)
	}
	if validity != nil && len(validity) != numValues {
		return fmt.Errorf("validity length %d does not match value count %d", len(validity), numValues)
	}

	present := numValues
	if validity != nil {
		present = 0
		for _, valid := range validity {
			if valid {
				present++
			}
		}
	}

	cursor := NewPlainCursor(data, present, opts...)
	dst.Reserve(numValues)

	for i := 0; i < numValues; {
		if validity != nil && !validity[i] {
			run := 1
			for i+run < numValues && !validity[i+run] {
				run++
			}
			dst.ExtendNullConstant(run)
			i += run

			continue
		}

		value, err := cursor.Next()
		if err != nil {
			return fmt.Errorf("decode value #%d: %w", i, err)
		}
		if err := dst.Push(value); err != nil {
			return fmt.Errorf("decode value #%d: %w", i, err)
		}
		i++
	}

	if _, err := cursor.Next(); !errors.Is(err, io.EOF) {
		return fmt.Errorf("decode trailer: %w", err)
	}

	return nil
}
