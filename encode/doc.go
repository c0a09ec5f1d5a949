// Package encode reads and writes character alignments.
//
// Alignments and detached alignments over runes are written as YAML or
// JSON documents in which every span is a string, or rendered as text
// with one line per pair.
//
// # Usage
//
//	a := libdiff.DiffStrings("kitten", "sitting")
//	err := encode.EncodeAlignment(a, os.Stdout, encode.EncodeFormat(format.YAMLFormat))
//
//	// Render text with colors
//	err = encode.EncodeAlignment(a, os.Stdout, encode.EncodeColors(encode.NewColors()))
//
//	// Read it back
//	b, err := encode.DecodeAlignment(data, encode.DecodeFormat(format.YAMLFormat))
//
// # Related Packages
//
//   - github.com/signadot/tony-format/go-align - Alignment and Detached
//   - github.com/signadot/tony-format/go-align/format - format names
package encode
