package controller

import (
	"sort"
	"strings"
	"time"

	"historycar/internal/models"
)

// FilterRecords applies the dashboard search box: a case-insensitive,
// non-debounced substring match over the vehicle label and the service type.
// An empty term matches everything. Filtering never touches the network.
func FilterRecords(records []models.MaintenanceRecord, term string) []models.MaintenanceRecord {
	if strings.TrimSpace(term) == "" {
		return records
	}
	needle := strings.ToLower(term)
	out := make([]models.MaintenanceRecord, 0, len(records))
	for _, r := range records {
		if strings.Contains(strings.ToLower(r.VehicleLabel()), needle) ||
			strings.Contains(strings.ToLower(r.ServiceType), needle) {
			out = append(out, r)
		}
	}
	return out
}

// RecentRecords returns the top-n records by descending date. The input is not
// mutated; the result is recomputed per render, never persisted.
func RecentRecords(records []models.MaintenanceRecord, n int) []models.MaintenanceRecord {
	sorted := make([]models.MaintenanceRecord, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].When().After(sorted[j].When())
	})
	if n > len(sorted) {
		n = len(sorted)
	}
	return sorted[:n]
}

// UpcomingCount counts records dated after now, the "Upcoming Services" stat.
func UpcomingCount(records []models.MaintenanceRecord, now time.Time) int {
	count := 0
	for _, r := range records {
		if r.When().After(now) {
			count++
		}
	}
	return count
}
