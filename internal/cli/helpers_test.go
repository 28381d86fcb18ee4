package cli

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

const sampleFileName = "groundbased_ftir.o3_iup.bremen001_ny.alesund_20200101t000000z_20200102t000000z_001.hdf"

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
		"FILE_NAME":            sampleFileName,
		"FILE_GENERATION_DATE": "20200315T120000Z",
		"FILE_ACCESS":          "NDACC",
		"FILE_META_VERSION":    "04R035;IDLCR8HDF",
		"FILE_DOI":             "10.1/x",
	}
}

// writeCDL writes attrs as ncdump -h output, padding PI_AFFILIATION with NULs
// and adding an internal attribute the way netCDF-4 files carry them.
func writeCDL(t *testing.T, dir, name string, attrs map[string]string) string {
	t.Helper()

	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	fmt.Fprintf(&b, "netcdf %s {\ndimensions:\n\tDATETIME = 1 ;\n\n// global attributes:\n", strings.TrimSuffix(name, filepath.Ext(name)))
	for _, k := range keys {
		quoted := strconv.Quote(attrs[k])
		if k == "PI_AFFILIATION" {
			quoted = strings.TrimSuffix(quoted, `"`) + `\000\000"`
		}
		fmt.Fprintf(&b, "\t\t:%s = %s ;\n", k, quoted)
	}
	b.WriteString("\t\t:_NCProperties = \"version=2,netcdf=4.7.4\" ;\n}\n")

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(b.String()), 0644))
	return path
}

// resetFlags restores every flag to its default; cobra keeps flag state
// between Execute calls on the package-level commands.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

func executeCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	for _, key := range []string{"GEOMS_READER", "GEOMS_FORMAT", "GEOMS_LOG_FORMAT", "GEOMS_METRICS_TEXTFILE"} {
		if _, ok := os.LookupEnv(key); !ok {
			t.Setenv(key, "")
		}
	}
	t.Setenv("NO_COLOR", "1")

	resetFlags(rootCmd)
	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}
