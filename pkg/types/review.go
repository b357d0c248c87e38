package types

import "time"

// AnonymousAuthor is the author recorded for reviews submitted without one.
const AnonymousAuthor = "Anonymous"

// Review is a customer review. Date is assigned at creation and is not
// editable afterwards.
type Review struct {
	ID     string    `json:"id"`
	Author string    `json:"author"`
	Body   string    `json:"body"`
	Date   time.Time `json:"date"`
}
