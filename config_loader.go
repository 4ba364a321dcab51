package epidemicgo

import (
	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// LoadParameters parses a TOML parameter file into a Parameters value:
// decode, then let the caller call Validate().
func LoadParameters(path string) (*Parameters, error) {
	params := new(Parameters)
	if _, err := toml.DecodeFile(path, params); err != nil {
		return nil, errors.Wrap(err, "decoding parameters file")
	}
	return params, nil
}
