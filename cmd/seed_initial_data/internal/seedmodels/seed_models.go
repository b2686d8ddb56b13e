package seedmodels

// SeedAdmin defines an admin entry in the JSON seed file.
type SeedAdmin struct {
	Email       string   `json:"email"`
	Nama        string   `json:"nama"`
	Role        string   `json:"role"`
	Permissions []string `json:"permissions"`
}

// SeedKontributor defines a contributor entry in the JSON seed file.
type SeedKontributor struct {
	NIM   string `json:"nim"`
	Nama  string `json:"nama"`
	Email string `json:"email"`
}

// SeedData is the root of the JSON seed file.
type SeedData struct {
	Admins      []SeedAdmin       `json:"admins"`
	Kontributor []SeedKontributor `json:"kontributor"`
}
