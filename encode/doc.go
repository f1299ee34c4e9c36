// Package encode writes replay results.
//
// # Usage
//
//	res := replay.Run(ctx, reader, state)
//	err := encode.Encode(res, os.Stdout, encode.EncodeFormat(format.YAMLFormat))
//
// The text format lists the logged constraints then the stacked expressions,
// one per line, under section headers.  YAML and JSON carry the same data as
// a document, together with slot indexes and test counts.
package encode
