package encoding

import (
	"errors"
	"fmt"

	"github.com/arloliu/varbin/endian"
	"github.com/arloliu/varbin/internal/options"
)

const (
	// DefaultSamplingThreshold is the number of pushed values after which a
	// BinaryBuilder re-estimates its value buffer size, once, from the observed
	// average value length.
	DefaultSamplingThreshold = 100

	// DefaultBytesPerValueEstimate is the value length a BinaryBuilder assumes when
	// sizing its value buffer before anything has been pushed.
	DefaultBytesPerValueEstimate = 24
)

type builderConfig struct {
	samplingThreshold     int
	bytesPerValueEstimate int
}

func defaultBuilderConfig() *builderConfig {
	return &builderConfig{
		samplingThreshold:     DefaultSamplingThreshold,
		bytesPerValueEstimate: DefaultBytesPerValueEstimate,
	}
}

// BuilderOption configures a BinaryBuilder.
type BuilderOption = options.Option[*builderConfig]

// WithSamplingThreshold sets the number of values after which the builder samples the
// average value length and grows its value buffer for the remaining capacity.
func WithSamplingThreshold(n int) BuilderOption {
	return options.New(func(c *builderConfig) error {
		if n <= 0 {
			return fmt.Errorf("invalid sampling threshold: %d", n)
		}
		c.samplingThreshold = n

		return nil
	})
}

// WithBytesPerValueEstimate sets the value length assumed by the initial value buffer sizing.
func WithBytesPerValueEstimate(n int) BuilderOption {
	return options.New(func(c *builderConfig) error {
		if n <= 0 {
			return fmt.Errorf("invalid bytes per value estimate: %d", n)
		}
		c.bytesPerValueEstimate = n

		return nil
	})
}

type cursorConfig struct {
	engine endian.EndianEngine
}

// CursorOption configures a PlainCursor.
type CursorOption = options.Option[*cursorConfig]

// WithCursorEndian sets the byte order of the length prefixes. The plain encoding
// is little-endian, which is the default.
func WithCursorEndian(engine endian.EndianEngine) CursorOption {
	return options.New(func(c *cursorConfig) error {
		if engine == nil {
			return errors.New("nil endian engine")
		}
		c.engine = engine

		return nil
	})
}
