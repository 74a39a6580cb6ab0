package blobstore

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/klauspost/compress/zstd"
)

// zstdMagic cabecera de un frame zstd; los blobs sin ella se leen como JSON plano.
var zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}

// Codec serializa valores a JSON y opcionalmente los comprime con zstd.
type Codec struct {
	compress bool
	encoder  *zstd.Encoder
	decoder  *zstd.Decoder
}

// NewCodec crea el codec. Siempre puede leer blobs comprimidos, aun con compress=false.
func NewCodec(compress bool) (*Codec, error) {
	encoder, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return nil, fmt.Errorf("create zstd encoder: %w", err)
	}
	decoder, err := zstd.NewReader(nil)
	if err != nil {
		return nil, fmt.Errorf("create zstd decoder: %w", err)
	}
	return &Codec{compress: compress, encoder: encoder, decoder: decoder}, nil
}

// Encode serializa v.
func (c *Codec) Encode(v any) ([]byte, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	if !c.compress {
		return raw, nil
	}
	return c.encoder.EncodeAll(raw, nil), nil
}

// Decode deserializa data en dst, descomprimiendo si corresponde.
func (c *Codec) Decode(data []byte, dst any) error {
	if bytes.HasPrefix(data, zstdMagic) {
		raw, err := c.decoder.DecodeAll(data, nil)
		if err != nil {
			return fmt.Errorf("zstd: %w", err)
		}
		data = raw
	}
	return json.Unmarshal(data, dst)
}

// Close libera los recursos del encoder y del decoder.
func (c *Codec) Close() error {
	c.decoder.Close()
	return c.encoder.Close()
}
