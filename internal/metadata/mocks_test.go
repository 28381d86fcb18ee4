package metadata

import (
	"fmt"
	"sync"

	"github.com/stcorp/muninn-geoms/pkg/geoms"
)

type mockProduct struct {
	attrs      map[string]string
	readErr    error
	closeErr   error
	panicValue any
	closed     bool
}

func (p *mockProduct) GlobalAttributes() (map[string]string, error) {
	if p.panicValue != nil {
		panic(p.panicValue)
	}
	return p.attrs, p.readErr
}

func (p *mockProduct) Close() error {
	p.closed = true
	return p.closeErr
}

type mockReader struct {
	product  *mockProduct
	openErr  error
	openedAs string
}

func (r *mockReader) Open(path string) (geoms.Product, error) {
	r.openedAs = path
	if r.openErr != nil {
		return nil, r.openErr
	}
	return r.product, nil
}

type recordingLogger struct {
	mu      sync.Mutex
	verbose []string
	info    []string
	errors  []string
}

func (l *recordingLogger) Verbose(format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.verbose = append(l.verbose, fmt.Sprintf(format, args...))
}

func (l *recordingLogger) Info(format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.info = append(l.info, fmt.Sprintf(format, args...))
}

func (l *recordingLogger) Error(format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.errors = append(l.errors, fmt.Sprintf(format, args...))
}

// validAttributes returns every required GEOMS attribute with well-formed values.
func validAttributes() map[string]string {
	return map[string]string{
		"PI_NAME":              "Doe;John",
		"PI_AFFILIATION":       "Institute of Environmental Physics;IUP",
		"PI_ADDRESS":           "Otto-Hahn-Allee 1;28359 Bremen;Germany",
		"PI_EMAIL":             "john.doe@example.org",
		"DO_NAME":              "Roe;Jane",
		"DO_AFFILIATION":       "IUP",
		"DO_ADDRESS":           "Bremen",
		"DO_EMAIL":             "jane.roe@example.org",
		"DS_NAME":              "Poe;Max",
		"DS_AFFILIATION":       "IUP",
		"DS_ADDRESS":           "Bremen",
		"DS_EMAIL":             "max.poe@example.org",
		"DATA_DISCIPLINE":      "ATMOSPHERIC.CHEMISTRY;REMOTE.SENSING;GROUNDBASED",
		"DATA_GROUP":           "EXPERIMENTAL;PROFILE.STATIONARY",
		"DATA_LOCATION":        "NY.ALESUND",
		"DATA_SOURCE":          "FTIR.O3_IUP.BREMEN001",
		"DATA_VARIABLES":       "DATETIME;ALTITUDE;O3.COLUMN_ABSORPTION.SOLAR",
		"DATA_START_DATE":      "20200101T000000Z",
		"DATA_STOP_DATE":       "20200102T000000Z",
		"DATA_FILE_VERSION":    "001",
		"FILE_NAME":            "groundbased_ftir.o3_iup.bremen001_ny.alesund_20200101t000000z_20200102t000000z_001.hdf",
		"FILE_GENERATION_DATE": "20200315T120000Z",
		"FILE_ACCESS":          "NDACC",
		"FILE_META_VERSION":    "04R035;IDLCR8HDF",
		"FILE_DOI":             "10.1/x",
	}
}
