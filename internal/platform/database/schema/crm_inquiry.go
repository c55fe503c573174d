package schema

// CRMInquiryTable represents the 'crm.inquiry' table
type CRMInquiryTable struct {
	Table     string
	ID        string
	Name      string
	Email     string
	Phone     string
	Message   string
	CarID     string
	CarName   string
	Status    string
	CreatedAt string
	UpdatedAt string
}

// CRMInquiry is the schema definition for crm.inquiry
var CRMInquiry = CRMInquiryTable{
	Table:     "crm.inquiry",
	ID:        "id",
	Name:      "name",
	Email:     "email",
	Phone:     "phone",
	Message:   "message",
	CarID:     "carid",
	CarName:   "carname",
	Status:    "status",
	CreatedAt: "createdat",
	UpdatedAt: "updatedat",
}

func (t CRMInquiryTable) Columns() []string {
	return []string{
		t.ID, t.Name, t.Email, t.Phone, t.Message, t.CarID, t.CarName,
		t.Status, t.CreatedAt, t.UpdatedAt,
	}
}
