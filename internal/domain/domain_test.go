package domain

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestCanTransition_PipelinePath(t *testing.T) {
	path := []PackageStatus{
		StatusPending,
		StatusValidating,
		StatusValidated,
		StatusDetectingDuplicates,
		StatusReviewingConflicts,
		StatusReadyToCommit,
		StatusCommitting,
		StatusCompleted,
	}
	for i := 0; i < len(path)-1; i++ {
		if !CanTransition(path[i], path[i+1]) {
			t.Errorf("CanTransition(%s, %s) = false, want true", path[i], path[i+1])
		}
	}
}

func TestCanTransition_Table(t *testing.T) {
	tests := []struct {
		name string
		from PackageStatus
		to   PackageStatus
		want bool
	}{
		{"quarantine from pending", StatusPending, StatusQuarantined, true},
		{"quarantine only from pending", StatusValidated, StatusQuarantined, false},
		{"invalid from validating", StatusValidating, StatusInvalid, true},
		{"revalidate after invalid", StatusInvalid, StatusValidating, true},
		{"zero conflict bypass", StatusDetectingDuplicates, StatusReadyToCommit, true},
		{"commit failure", StatusCommitting, StatusCommitFailed, true},
		{"recommit after failure", StatusCommitFailed, StatusCommitting, true},
		{"partial completion", StatusCommitting, StatusPartiallyCompleted, true},
		{"no skip to commit", StatusPending, StatusCommitting, false},
		{"no backwards move", StatusReadyToCommit, StatusValidating, false},
		{"cancel pending", StatusPending, StatusCancelled, true},
		{"cancel reviewing", StatusReviewingConflicts, StatusCancelled, true},
		{"cancel commit failed", StatusCommitFailed, StatusCancelled, true},
		{"no cancel after completion", StatusCompleted, StatusCancelled, false},
		{"no cancel after quarantine", StatusQuarantined, StatusCancelled, false},
		{"terminal stays terminal", StatusPartiallyCompleted, StatusCommitting, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanTransition(tt.from, tt.to); got != tt.want {
				t.Errorf("CanTransition(%s, %s) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestIsTerminal(t *testing.T) {
	terminals := []PackageStatus{StatusCompleted, StatusPartiallyCompleted, StatusCancelled, StatusQuarantined}
	for _, s := range terminals {
		if !s.IsTerminal() {
			t.Errorf("%s.IsTerminal() = false, want true", s)
		}
	}
	for _, s := range []PackageStatus{StatusPending, StatusCommitFailed, StatusReviewingConflicts} {
		if s.IsTerminal() {
			t.Errorf("%s.IsTerminal() = true, want false", s)
		}
	}
}

func TestParseImportMethod(t *testing.T) {
	if got := ParseImportMethod("NETWORK_SYNC"); got != ImportNetworkSync {
		t.Errorf("ParseImportMethod(NETWORK_SYNC) = %s", got)
	}
	if got := ParseImportMethod(""); got != ImportManual {
		t.Errorf("ParseImportMethod(\"\") = %s, want MANUAL", got)
	}
	if got := ParseImportMethod("bogus"); got != ImportManual {
		t.Errorf("ParseImportMethod(bogus) = %s, want MANUAL", got)
	}
}

func TestParseResolution(t *testing.T) {
	for _, valid := range []string{"MERGE", "LINK_TO_EXISTING", "KEEP_SEPARATE", "CREATE_NEW"} {
		if _, ok := ParseResolution(valid); !ok {
			t.Errorf("ParseResolution(%s) not accepted", valid)
		}
	}
	if _, ok := ParseResolution("DISCARD"); ok {
		t.Error("ParseResolution(DISCARD) should be rejected")
	}
}

func TestManifestValidate(t *testing.T) {
	valid := func() *Manifest {
		return &Manifest{
			PackageID:     uuid.New(),
			SchemaVersion: "2.1.0",
			DeviceID:      "TAB-0113",
			EntityCounts: map[EntityType]int{
				EntityBuilding: 2,
				EntityPerson:   3,
			},
			TotalRecordCount: 5,
			Checksum:         "a3f5b8c2d4e6f8a0b2c4d6e8f0a2b4c6d8e0f2a4b6c8d0e2f4a6b8c0d2e4f6a8",
		}
	}

	t.Run("valid", func(t *testing.T) {
		require.NoError(t, valid().Validate())
	})

	t.Run("nil package id", func(t *testing.T) {
		m := valid()
		m.PackageID = uuid.Nil
		require.Error(t, m.Validate())
	})

	t.Run("count mismatch", func(t *testing.T) {
		m := valid()
		m.TotalRecordCount = 9
		require.Error(t, m.Validate())
	})

	t.Run("negative entity count", func(t *testing.T) {
		m := valid()
		m.EntityCounts[EntityClaim] = -1
		require.Error(t, m.Validate())
	})

	t.Run("uppercase checksum rejected", func(t *testing.T) {
		m := valid()
		m.Checksum = "A3F5B8C2D4E6F8A0B2C4D6E8F0A2B4C6D8E0F2A4B6C8D0E2F4A6B8C0D2E4F6A8"
		require.Error(t, m.Validate())
	})

	t.Run("empty checksum allowed", func(t *testing.T) {
		m := valid()
		m.Checksum = ""
		require.NoError(t, m.Validate())
	})
}

func TestEntityOrder(t *testing.T) {
	require.Len(t, EntityOrder, 10)
	require.Equal(t, EntityBuilding, EntityOrder[0])
	require.Equal(t, EntityReferral, EntityOrder[len(EntityOrder)-1])

	// parents precede children
	idx := map[EntityType]int{}
	for i, et := range EntityOrder {
		idx[et] = i
	}
	require.Less(t, idx[EntityBuilding], idx[EntityPropertyUnit])
	require.Less(t, idx[EntityPerson], idx[EntityHousehold])
	require.Less(t, idx[EntityPropertyUnit], idx[EntityPersonPropertyRelation])
	require.Less(t, idx[EntityClaim], idx[EntityDocument])
}

func TestPackageEventPayload_ToJSON(t *testing.T) {
	payload := PackageEventPayload{
		PackageID:     uuid.New(),
		PackageNumber: "PKG-2026-0042",
		Status:        StatusValidated,
		DeviceID:      "TAB-0113",
		Actor:         "reviewer-1",
	}

	data, err := payload.ToJSON()
	require.NoError(t, err)

	var decoded PackageEventPayload
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Equal(t, payload, decoded)
}
