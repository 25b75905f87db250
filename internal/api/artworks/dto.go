package artworks

type AcquireRequest struct {
	Title           string  `json:"title"`
	YearCreated     int     `json:"year_created"`
	Technique       string  `json:"technique"`
	Dimensions      string  `json:"dimensions"`
	Description     string  `json:"description"`
	Genre           string  `json:"genre"`
	ArtistID        uint    `json:"artist_id"`
	ProvenanceEntry string  `json:"provenance_entry"`
	Price           float64 `json:"price"`
}

type MovementRequest struct {
	FromLocation      string `json:"from_location"`
	ToLocation        string `json:"to_location"`
	Purpose           string `json:"purpose"`
	ResponsiblePerson string `json:"responsible_person"`
}

type DocumentRequest struct {
	DocumentType string `json:"document_type"`
	FilePath     string `json:"file_path"`
}
