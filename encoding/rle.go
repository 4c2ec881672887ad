package encoding

import (
	"bytes"

	"github.com/corpix/rle/rle"
)

// EncodeDecoderRLE exposes an *rle.Codec through the byte slice EncodeDecoder
// interface for callers that do not need token counts.
type EncodeDecoderRLE struct {
	Codec *rle.Codec
}

var _ EncodeDecoder = &EncodeDecoderRLE{}

//

func (e *EncodeDecoderRLE) Encode(buf []byte) ([]byte, error) {
	w := bytes.NewBuffer(make([]byte, 0, len(buf)))
	_, err := e.Codec.Encode(bytes.NewReader(buf), w)
	if err != nil {
		return nil, err
	}
	return w.Bytes(), nil
}

func (e *EncodeDecoderRLE) Decode(buf []byte) ([]byte, error) {
	w := bytes.NewBuffer(make([]byte, 0, len(buf)))
	_, err := e.Codec.Decode(bytes.NewReader(buf), w)
	if err != nil {
		return nil, err
	}
	return w.Bytes(), nil
}

func NewEncodeDecoderRLE(codec *rle.Codec) *EncodeDecoderRLE {
	if codec == nil {
		codec = rle.Default
	}
	return &EncodeDecoderRLE{Codec: codec}
}
