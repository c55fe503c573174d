package schema

// CoreCarTable represents the 'core.car' table
type CoreCarTable struct {
	Table        string
	ID           string
	Slug         string
	Title        string
	Make         string
	Model        string
	Year         string
	Price        string
	Mileage      string
	Tag          string
	Images       string
	Transmission string
	FuelType     string
	DriveType    string
	Color        string
	Seats        string
	Features     string
	Engine       string
	Description  string
	Video        string
	MapURL       string
	DealerID     string
	Status       string
	Views        string
	Favorites    string
	CreatedAt    string
	UpdatedAt    string
}

// CoreCar is the schema definition for core.car
var CoreCar = CoreCarTable{
	Table:        "core.car",
	ID:           "id",
	Slug:         "slug",
	Title:        "title",
	Make:         "make",
	Model:        "model",
	Year:         "year",
	Price:        "price",
	Mileage:      "mileage",
	Tag:          "tag",
	Images:       "images",
	Transmission: "transmission",
	FuelType:     "fueltype",
	DriveType:    "drivetype",
	Color:        "color",
	Seats:        "seats",
	Features:     "features",
	Engine:       "engine",
	Description:  "description",
	Video:        "video",
	MapURL:       "mapurl",
	DealerID:     "dealerid",
	Status:       "status",
	Views:        "views",
	Favorites:    "favorites",
	CreatedAt:    "createdat",
	UpdatedAt:    "updatedat",
}

func (t CoreCarTable) Columns() []string {
	return []string{
		t.ID, t.Slug, t.Title, t.Make, t.Model, t.Year, t.Price, t.Mileage,
		t.Tag, t.Images, t.Transmission, t.FuelType, t.DriveType, t.Color,
		t.Seats, t.Features, t.Engine, t.Description, t.Video, t.MapURL,
		t.DealerID, t.Status, t.Views, t.Favorites, t.CreatedAt, t.UpdatedAt,
	}
}
