// Package ingest loads contact streams and community assignments from
// CSV files into the shapes epidemicgo.Driver consumes. It mirrors
// original_source/backend/data_loader.py's parse-and-sort job for one
// named file (no globbing) but drops the ID-normalization and
// graph-layout concerns that data_loader also handled, since those are
// out of scope here.
package ingest

import (
	"encoding/csv"
	"io"
	"os"
	"sort"
	"strconv"

	"github.com/pkg/errors"

	"github.com/dlantz/epidemicgo"
)

// LoadContacts reads a CSV file of timestamp,u,v rows (no header) and
// returns them sorted non-decreasing by timestamp, ready for
// epidemicgo.NewContactIterator. IDs are assumed already normalized to
// dense non-negative integers; normalizing raw identifiers is an
// ingestion-time concern this package deliberately does not take on.
func LoadContacts(path string) ([]epidemicgo.ContactEvent, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening contact file")
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = 3

	var events []epidemicgo.ContactEvent
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "reading contact row")
		}
		ts, err := strconv.ParseInt(rec[0], 10, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "parsing timestamp %q", rec[0])
		}
		u, err := strconv.Atoi(rec[1])
		if err != nil {
			return nil, errors.Wrapf(err, "parsing u %q", rec[1])
		}
		v, err := strconv.Atoi(rec[2])
		if err != nil {
			return nil, errors.Wrapf(err, "parsing v %q", rec[2])
		}
		events = append(events, epidemicgo.ContactEvent{Timestamp: ts, U: u, V: v})
	}

	sort.SliceStable(events, func(i, j int) bool { return events[i].Timestamp < events[j].Timestamp })
	return events, nil
}
