// Package arbitrary turns a finite byte buffer into structured pseudo-random
// choices for fuzzing.
//
// Reads never fail on exhaustion: missing bytes read as zero, so a run on a
// short buffer degrades to minimal values instead of aborting.
package arbitrary

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"
)

// ErrEmptyChoice is returned when choosing from zero options.
var ErrEmptyChoice = errors.New("arbitrary: choose from empty set")

// MaxLen caps the length of generated strings and lists.
const MaxLen = 16

// Unstructured consumes bytes from the front of a buffer.
type Unstructured struct {
	data []byte
}

// New wraps data. The slice is not copied.
func New(data []byte) *Unstructured {
	return &Unstructured{data: data}
}

// SeedLen is the number of seed bytes a fuzz run asks for.
const SeedLen = 4096

// Digits returns the concatenated decimal digits of 0..n-1, a fixed
// buffer used when no random seed is available.
func Digits(n int) []byte {
	var b strings.Builder
	for i := 0; i < n; i++ {
		b.WriteString(strconv.Itoa(i))
	}
	return []byte(b.String())
}

// Len returns the number of unread bytes.
func (u *Unstructured) Len() int {
	return len(u.data)
}

// IsEmpty reports whether all bytes are consumed.
func (u *Unstructured) IsEmpty() bool {
	return len(u.data) == 0
}

// Bytes takes up to n bytes.
func (u *Unstructured) Bytes(n int) []byte {
	if n > len(u.data) {
		n = len(u.data)
	}
	out := u.data[:n]
	u.data = u.data[n:]
	return out
}

func (u *Unstructured) uint(size int) uint64 {
	var v uint64
	for i, b := range u.Bytes(size) {
		v |= uint64(b) << (8 * i)
	}
	return v
}

// IntInRange returns a value in [lo, hi], consuming only as many bytes as
// the width of the range needs.
func (u *Unstructured) IntInRange(lo, hi uint64) uint64 {
	if hi <= lo {
		return lo
	}
	span := hi - lo
	var acc uint64
	for shift := 0; shift < 64 && span>>shift > 0 && len(u.data) > 0; shift += 8 {
		acc = acc<<8 | uint64(u.data[0])
		u.data = u.data[1:]
	}
	if span == math.MaxUint64 {
		return lo + acc
	}
	return lo + acc%(span+1)
}

// ChooseIndex returns an index in [0, n).
func (u *Unstructured) ChooseIndex(n int) (int, error) {
	if n <= 0 {
		return 0, ErrEmptyChoice
	}
	return int(u.IntInRange(0, uint64(n-1))), nil
}

// Length returns a collection length bounded by MaxLen and the bytes left.
func (u *Unstructured) Length() int {
	limit := MaxLen
	if len(u.data) < limit {
		limit = len(u.data)
	}
	return int(u.IntInRange(0, uint64(limit)))
}

func (u *Unstructured) Bool() bool { return u.uint(1)&1 == 1 }
func (u *Unstructured) Uint8() uint8 { return uint8(u.uint(1)) }
func (u *Unstructured) Uint16() uint16 { return uint16(u.uint(2)) }
func (u *Unstructured) Uint32() uint32 { return uint32(u.uint(4)) }
func (u *Unstructured) Uint64() uint64 { return u.uint(8) }
func (u *Unstructured) Int8() int8 { return int8(u.uint(1)) }
func (u *Unstructured) Int16() int16 { return int16(u.uint(2)) }
func (u *Unstructured) Int32() int32 { return int32(u.uint(4)) }
func (u *Unstructured) Int64() int64 { return int64(u.uint(8)) }
func (u *Unstructured) Float32() float32 { return math.Float32frombits(u.Uint32()) }
func (u *Unstructured) Float64() float64 { return math.Float64frombits(u.Uint64()) }

// Char returns a valid Unicode scalar value.
func (u *Unstructured) Char() rune {
	r := rune(u.IntInRange(0, utf8.MaxRune))
	if !utf8.ValidRune(r) {
		return utf8.RuneError
	}
	return r
}

// Text returns a valid UTF-8 string of at most MaxLen bytes.
func (u *Unstructured) Text() string {
	return strings.ToValidUTF8(string(u.Bytes(u.Length())), "")
}
