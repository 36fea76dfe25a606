// Package rides holds the candidate driver data shown on the home map
// and the ETA/price enrichment performed once a destination is chosen.
package rides

// Driver is one bookable driver as shown in the choose-driver list.
// Price and ETAMinutes stay nil until a destination is known and
// enrichment has run.
type Driver struct {
	ID              int
	Title           string
	ProfileImageURL string
	CarImageURL     string
	CarSeats        int
	Rating          float64
	Price           *float64
	ETAMinutes      *float64
	Latitude        float64
	Longitude       float64
}

// Catalog returns the bundled driver list. There is no backend
// matching service; these stand in for the drivers an API would
// return.
func Catalog() []Driver {
	return []Driver{
		{
			ID:              1,
			Title:           "James Wilson",
			ProfileImageURL: "https://ucarecdn.com/dae59f69-2c1f-48c3-a883-017bcf0f9950/-/preview/1000x666/",
			CarImageURL:     "https://ucarecdn.com/a2dc52b2-8bf7-4e49-9a36-3ffb5229ed02/-/preview/465x466/",
			CarSeats:        4,
			Rating:          4.80,
		},
		{
			ID:              2,
			Title:           "David Brown",
			ProfileImageURL: "https://ucarecdn.com/6ea6d83d-ef1a-483f-9106-837a3a5b3f67/-/preview/1000x666/",
			CarImageURL:     "https://ucarecdn.com/a3872f80-c094-409c-82f8-c9ff38429327/-/preview/930x932/",
			CarSeats:        5,
			Rating:          4.60,
		},
		{
			ID:              3,
			Title:           "Michael Johnson",
			ProfileImageURL: "https://ucarecdn.com/0330d85c-232e-4c30-bd04-e5e4d0e3d688/-/preview/826x822/",
			CarImageURL:     "https://ucarecdn.com/289764fb-55b6-4427-b1d1-f655987b4a14/-/preview/930x932/",
			CarSeats:        4,
			Rating:          4.70,
		},
		{
			ID:              4,
			Title:           "Robert Green",
			ProfileImageURL: "https://ucarecdn.com/fdfc54df-9d24-40f7-b7d3-6f391561c0db/-/preview/626x417/",
			CarImageURL:     "https://ucarecdn.com/b6fb3b55-7676-4ff3-8484-fb115e268d32/-/preview/930x932/",
			CarSeats:        4,
			Rating:          4.90,
		},
	}
}
