package model

// Customer is referenced by bookings as an opaque id.
type Customer struct {
	ID   int    `json:"id" bson:"_id"`
	Name string `json:"name" bson:"name" validate:"omitempty,max=100"`
}

func (c *Customer) EntityID() int      { return c.ID }
func (c *Customer) SetEntityID(id int) { c.ID = id }
