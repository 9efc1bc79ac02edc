package models

type Department struct {
	ID          string `bson:"_id,omitempty"`
	Name        string `bson:"name"`
	Description string `bson:"description,omitempty"`
	TimeModel   `bson:",inline"`
}
