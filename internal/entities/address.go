package entities

// Address is a saved delivery address. The recipient fields are snapshotted
// onto the order at creation time, so later edits never rewrite history.
type Address struct {
	ID            int64
	UserID        int64
	Label         string
	RecipientName string
	PhoneNumber   string
	DistrictCode  string
	FullAddress   string
}
