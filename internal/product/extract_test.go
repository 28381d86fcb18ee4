package product_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stcorp/muninn-geoms/internal/metadata"
	"github.com/stcorp/muninn-geoms/internal/product"
	"github.com/stcorp/muninn-geoms/pkg/geoms"
)

const requiredCDL = `netcdf groundbased_ftir.o3_iup.bremen001_ny.alesund_20200101t000000z_20200102t000000z_001 {
dimensions:
	DATETIME = 1 ;

// global attributes:
		:PI_NAME = "A" ;
		:PI_AFFILIATION = "B\000\000\000" ;
		:PI_ADDRESS = "C" ;
		:PI_EMAIL = "a@example.org" ;
		:DO_NAME = "D" ;
		:DO_AFFILIATION = "E" ;
		:DO_ADDRESS = "F" ;
		:DO_EMAIL = "d@example.org" ;
		:DS_NAME = "G" ;
		:DS_AFFILIATION = "H" ;
		:DS_ADDRESS = "I" ;
		:DS_EMAIL = "g@example.org" ;
		:DATA_DISCIPLINE = "ATMOSPHERIC.CHEMISTRY;REMOTE.SENSING;GROUNDBASED" ;
		:DATA_GROUP = "EXPERIMENTAL;PROFILE.STATIONARY" ;
		:DATA_LOCATION = "NY.ALESUND" ;
		:DATA_SOURCE = "FTIR.O3_IUP.BREMEN001" ;
		:DATA_VARIABLES = "DATETIME;ALTITUDE;",
			"O3.COLUMN_ABSORPTION.SOLAR" ;
		:DATA_START_DATE = "20200101T000000Z" ;
		:DATA_STOP_DATE = "20200102T000000Z" ;
		:DATA_FILE_VERSION = "001" ;
		:FILE_NAME = "groundbased_ftir.o3_iup.bremen001_ny.alesund_20200101t000000z_20200102t000000z_001.hdf" ;
		:FILE_GENERATION_DATE = "20200315T120000Z" ;
		:FILE_ACCESS = "NDACC" ;
		:FILE_META_VERSION = "04R035;IDLCR8HDF" ;
		:FILE_DOI = "10.1/x" ;
		:_NCProperties = "version=2,netcdf=4.7.4" ;
}
`

func TestExtract_FromCDLDump(t *testing.T) {
	path := filepath.Join(t.TempDir(), "product.cdl")
	require.NoError(t, os.WriteFile(path, []byte(requiredCDL), 0644))

	rec, err := metadata.NewExtractor(product.NewAutoReader(), nil).Extract(path)
	require.NoError(t, err)

	assert.Equal(t, "A", rec.PIName)
	assert.Equal(t, "B", rec.PIAffiliation)
	assert.Equal(t, "DATETIME;ALTITUDE;O3.COLUMN_ABSORPTION.SOLAR", rec.DataVariables)
	assert.Equal(t, time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC), rec.DataStartDate)
	assert.Equal(t, time.Date(2020, 1, 2, 0, 0, 0, 0, time.UTC), rec.DataStopDate)
	assert.Equal(t, "10.1/x", rec.FileDOI)
	assert.Nil(t, rec.DataDescription)
	assert.Nil(t, rec.FileProjectID)
}

func TestExtract_MalformedCDLIsExtractionError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "product.cdl")
	require.NoError(t, os.WriteFile(path, []byte("PI_NAME = A\n"), 0644))

	_, err := metadata.NewExtractor(product.NewAutoReader(), nil).Extract(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, geoms.ErrExtraction))
	assert.Contains(t, err.Error(), "not a CDL file")
}

func TestExtract_MemoryReadError(t *testing.T) {
	reader := product.NewMemoryReader(map[string]map[string]string{"a.hdf": {}})
	reader.ReadErrors["a.hdf"] = errors.New("HDF4 SD interface error")

	_, err := metadata.NewExtractor(reader, nil).Extract("a.hdf")
	require.Error(t, err)
	assert.True(t, errors.Is(err, geoms.ErrExtraction))
	assert.Contains(t, err.Error(), "HDF4 SD interface error")
}
