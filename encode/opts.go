package encode

import "github.com/signadot/stackreplay/format"

type EncodeOption func(*EncState)

func EncodeFormat(f format.Format) EncodeOption {
	return func(es *EncState) { es.format = f }
}
func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}

// EncodeStop controls whether the reason of an early stop is written.
func EncodeStop(v bool) EncodeOption {
	return func(es *EncState) { es.stop = v }
}

// EncodeCounts adds the test accounting to text output.
func EncodeCounts(v bool) EncodeOption {
	return func(es *EncState) { es.counts = v }
}
