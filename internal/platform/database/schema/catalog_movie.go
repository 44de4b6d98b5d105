package schema

// CatalogMovieTable represents the 'catalog.movie' table
type CatalogMovieTable struct {
	Table       string
	ID          string
	ExternalID  string
	Genre       string
	ReleaseYear string
	Rating      string
	Overview    string
	PosterURL   string
	BackdropURL string
	CreatedAt   string
}

// CatalogMovie is the schema definition for catalog.movie
var CatalogMovie = CatalogMovieTable{
	Table:       "catalog.movie",
	ID:          "id",
	ExternalID:  "externalid",
	Genre:       "genre",
	ReleaseYear: "releaseyear",
	Rating:      "rating",
	Overview:    "overview",
	PosterURL:   "posterurl",
	BackdropURL: "backdropurl",
	CreatedAt:   "createdat",
}
