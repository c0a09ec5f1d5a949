package encode

import "github.com/signadot/tony-format/go-align/format"

type EncodeOption func(*EncState)

func EncodeFormat(f format.Format) EncodeOption {
	return func(es *EncState) { es.format = f }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}

// EncodeIndent sets the indentation of JSON documents.
func EncodeIndent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}

// FormatFromOpts extracts the format from encode options.
func FormatFromOpts(opts ...EncodeOption) format.Format {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	return es.format
}

type DecodeOption func(*decState)

type decState struct {
	format format.Format
}

func DecodeFormat(f format.Format) DecodeOption {
	return func(ds *decState) { ds.format = f }
}
