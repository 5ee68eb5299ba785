package defaults

import (
	"io"

	"gopkg.in/yaml.v3"
)

type YAMLDecoder struct {
	*yaml.Decoder
}

// DisallowUnknownFields maps to yaml.v3's KnownFields so that YAML files
// are as strict as JSON and TOML ones.
func (d *YAMLDecoder) DisallowUnknownFields() {
	d.Decoder.KnownFields(true)
}

func NewYAMLDecoder(r io.Reader) Decoder {
	return &YAMLDecoder{
		yaml.NewDecoder(r),
	}
}
