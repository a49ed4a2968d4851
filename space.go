// Package axisspace tracks the space that chart axes need around a
// plot area.
//
// A [Space] records a margin for each of the four edges of a
// rectangle. Layout code measures each axis, accumulates the results
// with [Space.Add] and [Space.EnsureAtLeast], and then uses
// [Space.Shrink] to find the data area and [Space.Reserved] to find
// where each axis should be drawn.
package axisspace

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/cespare/xxhash/v2"
)

// Space is the amount of room reserved along each edge of a plot
// area, in the same units as the area's coordinates. Values are
// expected to be non-negative, but that is not enforced.
//
// The zero value is an empty Space.
type Space struct {
	Top    float64 `toml:"top" json:"top"`
	Bottom float64 `toml:"bottom" json:"bottom"`
	Left   float64 `toml:"left" json:"left"`
	Right  float64 `toml:"right" json:"right"`
}

// spaceSize is the length of the binary encoding of a Space.
const spaceSize = 4 * 8

// New returns a new, empty Space.
func New() *Space {
	return new(Space)
}

// Clone returns a copy of s that shares no state with it.
func (s *Space) Clone() *Space {
	c := *s
	return &c
}

// Equal reports whether s and other hold exactly the same values. It
// returns false if other is nil.
func (s *Space) Equal(other *Space) bool {
	if other == nil {
		return false
	}
	if s == other {
		return true
	}
	return *s == *other
}

// Hash returns a hash of s. Spaces that are Equal have the same hash.
func (s *Space) Hash() uint64 {
	var buf [spaceSize]byte
	s.put(buf[:], canonZero)
	return xxhash.Sum64(buf[:])
}

func (s *Space) String() string {
	return fmt.Sprintf(
		"Space[left=%v,right=%v,top=%v,bottom=%v]",
		s.Left, s.Right, s.Top, s.Bottom,
	)
}

// MarshalBinary encodes s as four little-endian float64 values in the
// order top, bottom, left, right.
func (s *Space) MarshalBinary() ([]byte, error) {
	buf := make([]byte, spaceSize)
	s.put(buf, nil)
	return buf, nil
}

// UnmarshalBinary decodes the format produced by MarshalBinary.
func (s *Space) UnmarshalBinary(data []byte) error {
	if len(data) < spaceSize {
		return fmt.Errorf("decode space: %w", io.ErrUnexpectedEOF)
	}

	field := func(i int) float64 {
		return math.Float64frombits(binary.LittleEndian.Uint64(data[i*8:]))
	}
	s.Top = field(0)
	s.Bottom = field(1)
	s.Left = field(2)
	s.Right = field(3)
	return nil
}

func (s *Space) put(buf []byte, conv func(float64) float64) {
	for i, v := range [...]float64{s.Top, s.Bottom, s.Left, s.Right} {
		if conv != nil {
			v = conv(v)
		}
		binary.LittleEndian.PutUint64(buf[i*8:], math.Float64bits(v))
	}
}

// canonZero maps -0 to +0 so that values which compare equal also
// have the same bits.
func canonZero(v float64) float64 {
	if v == 0 {
		return 0
	}
	return v
}
