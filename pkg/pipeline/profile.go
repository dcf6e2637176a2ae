package pipeline

import (
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/pagen/pkg/errors"
)

// LoadProfile overlays the TOML generation profile at path on opts. Keys
// the profile leaves out keep their current value, so callers usually start
// from [DefaultOptions] and apply command-line flags afterwards.
//
// A profile uses the JSON field names:
//
//	seed = 7
//	max_depth = 6
//	misalign = 0.25
//	format = "opl"
func LoadProfile(path string, opts *Options) error {
	if err := errors.ValidatePath(path); err != nil {
		return err
	}
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return errors.New(errors.ErrCodeFileNotFound, "profile %s not found", path)
	}
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidProfile, err, "open profile %s", path)
	}
	defer f.Close()

	if err := DecodeProfile(f, opts); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidProfile, err, "profile %s", path)
	}
	return nil
}

// DecodeProfile overlays a TOML profile read from r on opts. Unknown keys
// are an error.
func DecodeProfile(r io.Reader, opts *Options) error {
	md, err := toml.NewDecoder(r).Decode(opts)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidProfile, err, "decode profile")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return errors.New(errors.ErrCodeInvalidProfile, "unknown profile keys: %s", strings.Join(keys, ", "))
	}
	return nil
}

// EncodeProfile writes opts as a TOML profile.
func EncodeProfile(w io.Writer, opts Options) error {
	return toml.NewEncoder(w).Encode(opts)
}
