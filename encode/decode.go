package encode

import (
	"encoding/json"
	"fmt"

	"github.com/goccy/go-yaml"

	align "github.com/signadot/tony-format/go-align"
	"github.com/signadot/tony-format/go-align/format"
)

func DecodeAlignment(d []byte, opts ...DecodeOption) (align.Alignment[rune, rune], error) {
	doc := &AlignmentDoc{}
	if err := decode(d, doc, opts); err != nil {
		return align.Alignment[rune, rune]{}, err
	}
	return doc.Alignment(), nil
}

func DecodeDetached(d []byte, opts ...DecodeOption) (align.Detached[rune], error) {
	doc := &DetachedDoc{}
	if err := decode(d, doc, opts); err != nil {
		return align.Detached[rune]{}, err
	}
	return doc.Detached()
}

func decode(d []byte, doc any, opts []DecodeOption) error {
	ds := &decState{format: format.YAMLFormat}
	for _, opt := range opts {
		opt(ds)
	}
	switch ds.format {
	case format.YAMLFormat:
		return yaml.Unmarshal(d, doc)
	case format.JSONFormat:
		return json.Unmarshal(d, doc)
	default:
		return fmt.Errorf("%w: cannot decode %s", format.ErrBadFormat, ds.format)
	}
}
