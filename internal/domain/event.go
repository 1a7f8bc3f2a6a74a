package domain

import "time"

// Event is an NGO activity volunteers can contribute hours to.
type Event struct {
	ID       int64
	NgoID    int64
	Name     string
	Date     time.Time
	Location string
	NgoName  string
}
