package entity

type ConsumerType string

const (
	ConsumerTypeRegular   ConsumerType = "regular"
	ConsumerTypeCorporate ConsumerType = "corporate"
	ConsumerTypeNew       ConsumerType = "new"
)

// Consumer is a customer, keyed by phone. The running totals are declared
// but nothing maintains them yet.
type Consumer struct {
	Base              `bson:",inline"`
	Name              string       `bson:"name"`
	Phone             string       `bson:"phone"`
	Email             string       `bson:"email,omitempty"`
	Address           string       `bson:"address"`
	Company           string       `bson:"company"`
	Type              ConsumerType `bson:"type"`
	TotalBookings     int64        `bson:"totalBookings"`
	TotalAmount       float64      `bson:"totalAmount"`
	OutstandingAmount float64      `bson:"outstandingAmount"`
}
