package ingest

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"

	"github.com/pkg/errors"
)

// LoadCommunity reads a CSV file of id,zone rows (no header) into the
// individual-id -> zone-id map the airborne model's Engine requires.
func LoadCommunity(path string) (map[int]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening community file")
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = 2

	community := make(map[int]int)
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "reading community row")
		}
		id, err := strconv.Atoi(rec[0])
		if err != nil {
			return nil, errors.Wrapf(err, "parsing id %q", rec[0])
		}
		zone, err := strconv.Atoi(rec[1])
		if err != nil {
			return nil, errors.Wrapf(err, "parsing zone %q", rec[1])
		}
		community[id] = zone
	}
	return community, nil
}
