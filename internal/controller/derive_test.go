package controller

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"historycar/internal/models"
)

func sampleRecords() []models.MaintenanceRecord {
	return []models.MaintenanceRecord{
		{ID: "m1", Modelo: "Toyota Corolla", ServiceType: "Oil Change", Date: "2025-05-20"},
		{ID: "m2", Modelo: "Honda Civic", ServiceType: "Tire Rotation", Date: "2025-05-18"},
		{ID: "m3", Modelo: "Ford F-150", ServiceType: "Brake Inspection", Date: "2025-05-15"},
		{ID: "m4", Modelo: "Fiat Uno", ServiceType: "Troca de óleo", Date: "2025-06-01"},
		{ID: "m5", Modelo: "VW Gol", ServiceType: "Alinhamento", Date: "2025-04-30"},
		{ID: "m6", Modelo: "Chevrolet Onix", ServiceType: "Inspeção", Date: "2025-05-01"},
	}
}

func TestFilterRecords_EmptyTermReturnsAll(t *testing.T) {
	records := sampleRecords()
	require.Equal(t, records, FilterRecords(records, ""))
	require.Equal(t, records, FilterRecords(records, "   "))
}

func TestFilterRecords_CaseInsensitive(t *testing.T) {
	records := sampleRecords()

	byLabel := FilterRecords(records, "cOrOlLa")
	require.Len(t, byLabel, 1)
	require.Equal(t, "m1", byLabel[0].ID)

	byService := FilterRecords(records, "TIRE")
	require.Len(t, byService, 1)
	require.Equal(t, "m2", byService[0].ID)
}

func TestFilterRecords_SubstringOnLabelOrServiceType(t *testing.T) {
	records := sampleRecords()

	// "o" appears in almost every label; a narrower substring selects precisely.
	got := FilterRecords(records, "brake")
	require.Len(t, got, 1)
	require.Equal(t, "m3", got[0].ID)

	require.Empty(t, FilterRecords(records, "submarine"))
}

func TestFilterRecords_DoesNotMatchOtherFields(t *testing.T) {
	records := []models.MaintenanceRecord{
		{ID: "m1", Modelo: "Gol", ServiceType: "Freios", Description: "trocar pastilhas", MechanicName: "Carlos"},
	}
	require.Empty(t, FilterRecords(records, "pastilhas"))
	require.Empty(t, FilterRecords(records, "carlos"))
}

func TestRecentRecords_TopNByDescendingDate(t *testing.T) {
	records := sampleRecords()

	recent := RecentRecords(records, 5)
	require.Len(t, recent, 5)
	require.Equal(t, []string{"m4", "m1", "m2", "m3", "m6"}, []string{
		recent[0].ID, recent[1].ID, recent[2].ID, recent[3].ID, recent[4].ID,
	})
}

func TestRecentRecords_ShortListReturnedWhole(t *testing.T) {
	records := sampleRecords()[:2]
	require.Len(t, RecentRecords(records, 5), 2)
}

func TestRecentRecords_DoesNotMutateInput(t *testing.T) {
	records := sampleRecords()
	first := records[0].ID
	RecentRecords(records, 5)
	require.Equal(t, first, records[0].ID)
}

func TestUpcomingCount(t *testing.T) {
	now, err := time.Parse("2006-01-02", "2025-05-21")
	require.NoError(t, err)

	require.Equal(t, 1, UpcomingCount(sampleRecords(), now))
	require.Zero(t, UpcomingCount(nil, now))
}
