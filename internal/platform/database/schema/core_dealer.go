package schema

// CoreDealerTable represents the 'core.dealer' table
type CoreDealerTable struct {
	Table     string
	ID        string
	Name      string
	Email     string
	Phone     string
	Avatar    string
	Location  string
	CreatedAt string
	UpdatedAt string
}

// CoreDealer is the schema definition for core.dealer
var CoreDealer = CoreDealerTable{
	Table:     "core.dealer",
	ID:        "id",
	Name:      "name",
	Email:     "email",
	Phone:     "phone",
	Avatar:    "avatar",
	Location:  "location",
	CreatedAt: "createdat",
	UpdatedAt: "updatedat",
}

func (t CoreDealerTable) Columns() []string {
	return []string{
		t.ID, t.Name, t.Email, t.Phone, t.Avatar, t.Location, t.CreatedAt, t.UpdatedAt,
	}
}
