package models

type Vehicle struct {
	ID       string `json:"id"`
	Modelo   string `json:"modelo"`
	Placa    string `json:"placa"`
	UserIDFk string `json:"userIdFk"`
}

// Label is the human-readable identity of a vehicle used in lists and search.
func (v Vehicle) Label() string {
	if v.Modelo == "" {
		return v.Placa
	}
	if v.Placa == "" {
		return v.Modelo
	}
	return v.Modelo + " " + v.Placa
}

type CreateVehicleData struct {
	Modelo string `json:"modelo"`
	Placa  string `json:"placa"`
}

type UpdateVehicleData struct {
	Modelo *string `json:"modelo,omitempty"`
	Placa  *string `json:"placa,omitempty"`
}
