package models

type RouteResponse struct {
	Institution string   `json:"institution"`
	Stablecoin  string   `json:"stablecoin"`
	Corridors   []string `json:"corridors"`
}

type ReferenceDataResponse struct {
	Institutions []string        `json:"institutions"`
	Stablecoins  []string        `json:"stablecoins"`
	Corridors    []string        `json:"corridors"`
	Priorities   []string        `json:"priorities"`
	Routes       []RouteResponse `json:"routes"`
}
