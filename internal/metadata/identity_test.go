package metadata

import (
	"testing"

	"github.com/google/uuid"
)

// TestProductID_Deterministic tests that the same name always generates the same ID
func TestProductID_Deterministic(t *testing.T) {
	name := "groundbased_ftir.o3_iup.bremen001_ny.alesund_20200101t000000z_20200102t000000z_001.hdf"

	id1 := ProductID(name)
	id2 := ProductID(name)

	if id1 != id2 {
		t.Errorf("Expected deterministic ID generation, got different IDs: %s vs %s", id1, id2)
	}

	if id1 == uuid.Nil {
		t.Error("Expected non-nil UUID")
	}

	if id1.Version() != 5 {
		t.Errorf("Expected UUID v5, got v%d", id1.Version())
	}
}

// TestProductID_DifferentNames tests that different products get different IDs
func TestProductID_DifferentNames(t *testing.T) {
	names := []string{
		"groundbased_ftir.o3_iup.bremen001_ny.alesund_20200101t000000z_20200102t000000z_001.hdf",
		"groundbased_ftir.o3_iup.bremen001_ny.alesund_20200101t000000z_20200102t000000z_002.hdf",
		"groundbased_lidar.o3_rivm001_lauder_20200101t000000z_20200102t000000z_001.hdf",
	}

	ids := make(map[uuid.UUID]string)
	for _, name := range names {
		id := ProductID(name)
		if existing, exists := ids[id]; exists {
			t.Errorf("Collision: names '%s' and '%s' generated same ID: %s", name, existing, id)
		}
		ids[id] = name
	}
}

// TestProductID_Normalization tests that directories and case do not change the identity
func TestProductID_Normalization(t *testing.T) {
	base := ProductID("ftir_001.hdf")

	for _, variant := range []string{
		"/archive/incoming/ftir_001.hdf",
		"FTIR_001.HDF",
		`C:\data\FTIR_001.hdf`,
		"  ftir_001.hdf ",
	} {
		if got := ProductID(variant); got != base {
			t.Errorf("ProductID(%q) = %s, want %s", variant, got, base)
		}
	}
}

// TestProductID_Namespace tests that the namespace is stable across releases
func TestProductID_Namespace(t *testing.T) {
	want := uuid.NewSHA1(uuid.NameSpaceURL, []byte("muninn-geoms/product-identity/v1"))
	if NamespaceProductIdentity != want {
		t.Errorf("NamespaceProductIdentity = %s, want %s", NamespaceProductIdentity, want)
	}
}
