package guest

import (
	"go.bytecodealliance.org/cm"

	"github.com/wippyai/wasm-proxy/arbitrary"
	"github.com/wippyai/wasm-proxy/wave"
)

// FuzzRounds bounds the export calls of one fuzz or dialog run.
const FuzzRounds = 10

// Seed wraps the bytes returned by the debug utility. An empty seed falls
// back to a fixed buffer so the run stays deterministic.
func Seed(random cm.List[uint8]) *arbitrary.Unstructured {
	data := random.Slice()
	if len(data) == 0 {
		data = arbitrary.Digits(arbitrary.SeedLen)
	}
	return arbitrary.New(data)
}

// ImportSeed derives the input for a mocked import result from the call
// itself, so identical calls answer identically.
func ImportSeed(name string, vals ...wave.Value) *arbitrary.Unstructured {
	var buf []byte
	buf = append(buf, name...)
	for _, v := range vals {
		buf = append(buf, wave.ToString(v)...)
	}
	if len(buf) == 0 {
		buf = arbitrary.Digits(64)
	}
	for len(buf) < 64 {
		buf = append(buf, buf...)
	}
	return arbitrary.New(buf)
}
