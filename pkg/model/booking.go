package model

import "time"

// Booking occupies one room for an inclusive range of dates. Only active
// bookings participate in availability and occupancy computations;
// inactive bookings are kept for history.
//
// RoomID and IsActive are assigned by the booking engine on create; the
// values supplied by a caller are ignored there. StartDate and EndDate are
// day-granular (midnight UTC).
type Booking struct {
	ID         int       `json:"id,omitempty" bson:"_id"`
	RoomID     int       `json:"room_id" bson:"room_id"`
	CustomerID int       `json:"customer_id" bson:"customer_id" validate:"required,gt=0"`
	StartDate  time.Time `json:"start_date" bson:"start_date" validate:"required"`
	EndDate    time.Time `json:"end_date" bson:"end_date" validate:"required,gtfield=StartDate"`
	IsActive   bool      `json:"is_active" bson:"is_active"`
	CreatedAt  time.Time `json:"created_at,omitempty" bson:"created_at"`
}

func (b *Booking) EntityID() int      { return b.ID }
func (b *Booking) SetEntityID(id int) { b.ID = id }

// Overlaps reports whether the booking's inclusive date range intersects
// [start, end]. Ranges that merely touch at a boundary count as
// overlapping: a room freed on day d cannot be re-let from day d.
func (b *Booking) Overlaps(start, end time.Time) bool {
	entirelyBefore := start.Before(b.StartDate) && end.Before(b.StartDate)
	entirelyAfter := start.After(b.EndDate) && end.After(b.EndDate)
	return !(entirelyBefore || entirelyAfter)
}

// Covers reports whether day d falls inside the booking's inclusive range.
func (b *Booking) Covers(d time.Time) bool {
	return !d.Before(b.StartDate) && !d.After(b.EndDate)
}
