package models

// Location is a single row of the address table: a decomposed Japanese address and its coordinates.
// Prefecture holds the kanji prefecture name exactly as imported (e.g. "東京都").
type Location struct {
	ID           int     `json:"id"`
	Prefecture   string  `json:"prefecture"`
	Municipality string  `json:"municipality"`
	Address1     string  `json:"address1"`
	Address2     string  `json:"address2"`
	BlockLot     string  `json:"block_lot"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
}

// AdministrativeRegion is what a reverse geocoder reports for a coordinate pair.
// Name is free text: "Tokyo", "Hyōgo Prefecture", "東京都", ...
type AdministrativeRegion struct {
	Name string `json:"name"`
}
