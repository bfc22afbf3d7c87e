package models

import "time"

type MaintenanceRecord struct {
	ID           string    `json:"id"`
	CarFkID      string    `json:"carFkId"`
	ServiceType  string    `json:"serviceType"`
	Description  string    `json:"description"`
	Date         string    `json:"date"`
	Odometer     FlexInt   `json:"odometer"`
	Cost         FlexFloat `json:"cost"`
	MechanicName string    `json:"mechanicName"`
	CreatedAt    string    `json:"createdAt"`
	UpdatedAt    string    `json:"updatedAt"`

	// Denormalized vehicle fields joined server-side for display.
	Placa  string `json:"placa,omitempty"`
	Modelo string `json:"modelo,omitempty"`
}

// VehicleLabel mirrors Vehicle.Label for the denormalized fields carried on a record.
func (r MaintenanceRecord) VehicleLabel() string {
	if r.Modelo == "" {
		return r.Placa
	}
	if r.Placa == "" {
		return r.Modelo
	}
	return r.Modelo + " " + r.Placa
}

// When returns the record date parsed as a timestamp. Records with unparsable
// dates sort last.
func (r MaintenanceRecord) When() time.Time {
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, r.Date); err == nil {
			return t
		}
	}
	return time.Time{}
}

type CreateMaintenanceData struct {
	Date         string  `json:"date"`
	ServiceType  string  `json:"serviceType"`
	Description  string  `json:"description"`
	Cost         float64 `json:"cost"`
	Mileage      int64   `json:"mileage"`
	CarFkID      string  `json:"carFkId"`
	PlaceName    string  `json:"placeName"`
	MechanicName string  `json:"mechanicName"`
}

type UpdateMaintenanceData struct {
	Date         *string  `json:"date,omitempty"`
	ServiceType  *string  `json:"serviceType,omitempty"`
	Description  *string  `json:"description,omitempty"`
	Cost         *float64 `json:"cost,omitempty"`
	Mileage      *int64   `json:"mileage,omitempty"`
	PlaceName    *string  `json:"placeName,omitempty"`
	MechanicName *string  `json:"mechanicName,omitempty"`
}
