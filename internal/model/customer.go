// internal/model/customer.go
package model

// Customer is a person who makes reservations. ID stays zero until the
// first successful save captures the store-generated key; the repository
// is the only writer of ID.
type Customer struct {
	ID        int    `db:"id" json:"id"`
	FirstName string `db:"first_name" json:"first_name"`
	LastName  string `db:"last_name" json:"last_name"`
	Phone     string `db:"phone" json:"phone"`
	notes     string
}

// NewCustomer builds a customer from a stored row. Row values are trusted,
// so notes is assigned directly instead of going through SetNotes.
func NewCustomer(id int, firstName, lastName, phone, notes string) *Customer {
	return &Customer{
		ID:        id,
		FirstName: firstName,
		LastName:  lastName,
		Phone:     phone,
		notes:     notes,
	}
}

// FullName returns the first and last name joined with a space.
func (c *Customer) FullName() string {
	return c.FirstName + " " + c.LastName
}

// Notes returns the stored notes. Always a string, never unset.
func (c *Customer) Notes() string { return c.notes }

// SetNotes stores val as this customer's notes. Empty-ish input becomes "";
// any other non-string input fails with a BadRequestError.
func (c *Customer) SetNotes(val any) error {
	notes, err := normalizeNotes(val)
	if err != nil {
		return err
	}
	c.notes = notes
	return nil
}
