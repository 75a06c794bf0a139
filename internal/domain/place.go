package domain

// Place is the persisted point-of-interest document owned by the
// places store. The planning core only ever reads these; seeding and
// backfilling are tooling concerns.
type Place struct {
	PlaceID  string      `bson:"placeId" json:"placeId"`
	Name     string      `bson:"name,omitempty" json:"name,omitempty"`
	Types    []string    `bson:"types,omitempty" json:"types,omitempty"`
	Rating   float64     `bson:"rating,omitempty" json:"rating,omitempty"`
	Address  string      `bson:"address,omitempty" json:"address,omitempty"`
	Location *Coordinate `bson:"location,omitempty" json:"location,omitempty"`
	PhotoURL string      `bson:"photoUrl,omitempty" json:"photoUrl,omitempty"`
	Cost     float64     `bson:"cost,omitempty" json:"cost,omitempty"`
	Duration float64     `bson:"duration,omitempty" json:"duration,omitempty"`
}
