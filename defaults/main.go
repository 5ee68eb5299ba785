package defaults

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

type Decoder interface {
	Decode(value any) error
	DisallowUnknownFields()
}

type DecoderFactory func(r io.Reader) Decoder

var decoders = map[string]DecoderFactory{
	".json": NewJSONDecoder,
	".toml": NewTOMLDecoder,
	".yaml": NewYAMLDecoder,
	".yml":  NewYAMLDecoder,
}

// ReadFrom sets the default values of value and then overrides them with
// the contents of the file at path. When path is empty the fallback path is
// read instead, if it exists. The decoder is picked from the extension of
// the file actually read.
func ReadFrom(path, fallbackPath string, value any) error {
	if err := Set(value); err != nil {
		return err
	}

	if path == "" {
		// A missing fallback leaves the defaults in place.
		if _, err := os.Stat(fallbackPath); err != nil && os.IsNotExist(err) {
			return nil
		}
		if err := read(fallbackPath, value); err != nil {
			return fmt.Errorf("failed to read from fallback path %s: %w", fallbackPath, err)
		}
		return nil
	}

	if err := read(path, value); err != nil {
		return fmt.Errorf("failed to read from path %s: %w", path, err)
	}
	return nil
}

func decoderFor(path string) (DecoderFactory, error) {
	ext := strings.ToLower(filepath.Ext(path))
	factory, ok := decoders[ext]
	if !ok {
		return nil, fmt.Errorf("unsupported file format: %q", ext)
	}
	return factory, nil
}

// read decodes the file at path into value, rejecting unknown fields.
func read(path string, value any) error {
	factory, err := decoderFor(path)
	if err != nil {
		return err
	}

	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("could not open file: %w", err)
	}
	defer file.Close()

	dec := factory(file)
	dec.DisallowUnknownFields()
	if err := dec.Decode(value); err != nil && err != io.EOF {
		return fmt.Errorf("could not decode file: %w", err)
	}

	return nil
}
