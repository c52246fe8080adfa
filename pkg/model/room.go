package model

// Room is a bookable hotel room. The identifier is immutable once the
// room has been added; only the description may change.
type Room struct {
	ID          int    `json:"id" bson:"_id"`
	Description string `json:"description" bson:"description" validate:"omitempty,max=200"`
}

func (r *Room) EntityID() int      { return r.ID }
func (r *Room) SetEntityID(id int) { r.ID = id }
