package parser

import (
	"encoding/json"
	"io"
	"io/fs"
	"os"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// LoadResults reads the simulation results file at path.
// A missing file yields *MissingInputError; anything else wrong with the
// file is returned as a wrapped structural error.
func LoadResults(path string) (Dataset, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &MissingInputError{Path: path}
		}
		return nil, errors.Wrapf(err, "failed to open results file %q", path)
	}
	defer file.Close()

	data, err := DecodeResults(file)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse results file %q", path)
	}
	log.Debugf("Loaded %d records from %s", len(data), path)
	return data, nil
}

// DecodeResults decodes a JSON array of result records from r.
func DecodeResults(r io.Reader) (Dataset, error) {
	var data Dataset
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, errors.Wrap(err, "decode results")
	}
	for i, rec := range data {
		if rec.M < 0 {
			return nil, errors.Errorf("record %d: negative code order m=%d", i, rec.M)
		}
	}
	return data, nil
}
