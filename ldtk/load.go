package ldtk

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

var (
	ErrIo          = errors.New("ldtk: io")
	ErrDecompress  = errors.New("ldtk: decompress")
	ErrSchema      = errors.New("ldtk: schema")
	ErrDeserialize = errors.New("ldtk: deserialize")
)

// LoadErrorKind classifies why a document could not be loaded.
type LoadErrorKind int

const (
	LoadErrorIo LoadErrorKind = iota
	LoadErrorDecompress
	LoadErrorSchema
	LoadErrorDeserialize
)

func (k LoadErrorKind) sentinel() error {
	switch k {
	case LoadErrorDecompress:
		return ErrDecompress
	case LoadErrorSchema:
		return ErrSchema
	case LoadErrorDeserialize:
		return ErrDeserialize
	default:
		return ErrIo
	}
}

// LoadError is returned for any document that fails to load. No partial
// document is ever produced alongside it.
type LoadError struct {
	Path string
	Kind LoadErrorKind
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("%v %s: %v", e.Kind.sentinel(), e.Path, e.Err)
}

// Unwrap exposes both the kind sentinel and the cause to errors.Is/As.
func (e *LoadError) Unwrap() []error {
	return []error{e.Kind.sentinel(), e.Err}
}

type decodeOptions struct {
	validateSchema bool
}

// Option adjusts how a document is decoded.
type Option func(*decodeOptions)

// WithSchemaValidation checks the raw JSON against the embedded LDtk schema
// before decoding it.
func WithSchemaValidation() Option {
	return func(o *decodeOptions) {
		o.validateSchema = true
	}
}

var (
	gzipMagic = []byte{0x1f, 0x8b}
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
)

// Load reads and decodes the document at path inside fsys.
func Load(fsys fs.FS, path string, opts ...Option) (*Document, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Kind: LoadErrorIo, Err: err}
	}
	defer f.Close()
	return Decode(path, f, opts...)
}

// Decode decodes a document from r. Gzip and zstd compressed input is
// detected by its magic bytes. path is only used in errors.
func Decode(path string, r io.Reader, opts ...Option) (*Document, error) {
	var o decodeOptions
	for _, opt := range opts {
		opt(&o)
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &LoadError{Path: path, Kind: LoadErrorIo, Err: err}
	}

	data, err = decompress(data)
	if err != nil {
		return nil, &LoadError{Path: path, Kind: LoadErrorDecompress, Err: err}
	}

	if o.validateSchema {
		if err := validateSchema(data); err != nil {
			return nil, &LoadError{Path: path, Kind: LoadErrorSchema, Err: err}
		}
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &LoadError{Path: path, Kind: LoadErrorDeserialize, Err: err}
	}
	return &doc, nil
}

func decompress(data []byte) ([]byte, error) {
	switch {
	case bytes.HasPrefix(data, gzipMagic):
		zr, err := gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("gzip: %w", err)
		}
		defer zr.Close()
		out, err := io.ReadAll(zr)
		if err != nil {
			return nil, fmt.Errorf("gzip: %w", err)
		}
		return out, nil
	case bytes.HasPrefix(data, zstdMagic):
		dec, err := zstd.NewReader(nil)
		if err != nil {
			return nil, fmt.Errorf("zstd: %w", err)
		}
		defer dec.Close()
		out, err := dec.DecodeAll(data, nil)
		if err != nil {
			return nil, fmt.Errorf("zstd: %w", err)
		}
		return out, nil
	default:
		return data, nil
	}
}
