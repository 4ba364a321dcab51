package epidemicgo

import (
	"bytes"
	"fmt"
	"os"
)

// CSVDeltaLogger is a DeltaSink that writes one comma-delimited file per
// delta kind: a basepath + suffix-per-table layout, with the whole
// row batch for a delta appended to the file in one write.
type CSVDeltaLogger struct {
	runID string

	exposurePath  string
	infectionPath string
	recoveryPath  string
	deathPath     string
	zoneLoadPath  string
}

// NewCSVDeltaLogger creates a logger writing basepath.<table>.csv files,
// tagged with runID so multiple runs can share a directory.
func NewCSVDeltaLogger(basepath, runID string) *CSVDeltaLogger {
	return &CSVDeltaLogger{
		runID:         runID,
		exposurePath:  basepath + ".exposures.csv",
		infectionPath: basepath + ".infections.csv",
		recoveryPath:  basepath + ".recoveries.csv",
		deathPath:     basepath + ".deaths.csv",
		zoneLoadPath:  basepath + ".zone_loads.csv",
	}
}

// Handle appends one row set per nonempty list in d to the corresponding
// table file. A terminating error or done delta is not written as rows.
func (l *CSVDeltaLogger) Handle(d Delta) error {
	if d.Err != "" || d.Done {
		return nil
	}

	if len(d.NewExposed) > 0 {
		var b bytes.Buffer
		for _, id := range d.NewExposed {
			b.WriteString(fmt.Sprintf("%s,%d,%d\n", l.runID, d.Time, id))
		}
		if err := AppendToFile(l.exposurePath, b.Bytes()); err != nil {
			return err
		}
	}

	if len(d.Infections) > 0 {
		var b bytes.Buffer
		for _, rec := range d.Infections {
			source, zone := "", ""
			if rec.Source != nil {
				source = fmt.Sprintf("%d", *rec.Source)
			}
			if rec.Zone != nil {
				zone = fmt.Sprintf("%d", *rec.Zone)
			}
			b.WriteString(fmt.Sprintf("%s,%d,%d,%s,%s,%s\n", l.runID, d.Time, rec.ID, rec.Method, source, zone))
		}
		if err := AppendToFile(l.infectionPath, b.Bytes()); err != nil {
			return err
		}
	}

	if len(d.NewRecovered) > 0 {
		var b bytes.Buffer
		for _, id := range d.NewRecovered {
			b.WriteString(fmt.Sprintf("%s,%d,%d\n", l.runID, d.Time, id))
		}
		if err := AppendToFile(l.recoveryPath, b.Bytes()); err != nil {
			return err
		}
	}

	if len(d.NewDead) > 0 {
		var b bytes.Buffer
		for _, id := range d.NewDead {
			b.WriteString(fmt.Sprintf("%s,%d,%d\n", l.runID, d.Time, id))
		}
		if err := AppendToFile(l.deathPath, b.Bytes()); err != nil {
			return err
		}
	}

	if len(d.ZoneUpdates) > 0 {
		var b bytes.Buffer
		for zone, load := range d.ZoneUpdates {
			b.WriteString(fmt.Sprintf("%s,%d,%d,%f\n", l.runID, d.Time, zone, load))
		}
		if err := AppendToFile(l.zoneLoadPath, b.Bytes()); err != nil {
			return err
		}
	}

	return nil
}

// AppendToFile creates path if it does not exist, or appends to the end
// of the existing file otherwise.
func AppendToFile(path string, b []byte) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := f.Write(b); err != nil {
		return err
	}
	return f.Sync()
}
