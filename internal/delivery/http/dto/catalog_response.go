package dto

type SectorsResponse struct {
	Sectors []string `json:"sectors"`
}

type LocationsResponse struct {
	Locations []string `json:"locations"`
}

type HealthResponse struct {
	Status           string `json:"status"`
	DataLoaded       bool   `json:"data_loaded"`
	TotalInternships int    `json:"total_internships"`
}

type ReloadResponse struct {
	TotalInternships int `json:"total_internships"`
}

type APIInfoResponse struct {
	Message string `json:"message"`
	Version string `json:"version"`
	Health  string `json:"health"`
}
