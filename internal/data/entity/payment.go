package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Payment, Expense, Rate and Report are stored shapes with no operations in
// this service yet. Their collections get indexes at startup.

type Payment struct {
	Base          `bson:",inline"`
	InvoiceNumber string               `bson:"invoiceNumber"`
	BookingID     primitive.ObjectID   `bson:"bookingId"`
	ConsumerID    primitive.ObjectID   `bson:"consumerId"`
	Amount        float64              `bson:"amount"`
	Balance       float64              `bson:"balance"`
	Status        PaymentStatus        `bson:"status"`
	DueDate       time.Time            `bson:"dueDate"`
	Transactions  []PaymentTransaction `bson:"transactions"`
}

type PaymentTransaction struct {
	Amount    float64   `bson:"amount"`
	Date      time.Time `bson:"date"`
	Method    string    `bson:"method"`
	Reference string    `bson:"reference"`
}

type ExpenseType string

const (
	ExpenseTypeFuel            ExpenseType = "fuel"
	ExpenseTypeMaintenance     ExpenseType = "maintenance"
	ExpenseTypeDriverAllowance ExpenseType = "driver_allowance"
	ExpenseTypeTollParking     ExpenseType = "toll_parking"
	ExpenseTypeMiscellaneous   ExpenseType = "miscellaneous"
)

type Expense struct {
	Base        `bson:",inline"`
	Type        ExpenseType        `bson:"type"`
	Amount      float64            `bson:"amount"`
	VehicleID   primitive.ObjectID `bson:"vehicleId"`
	Date        time.Time          `bson:"date"`
	Description string             `bson:"description"`
	Receipt     string             `bson:"receipt"`
}

type Rate struct {
	Base        `bson:",inline"`
	VehicleType VehicleType `bson:"vehicleType"`
	RateType    RateType    `bson:"rateType"`
	Value       float64     `bson:"value"`
	Season      string      `bson:"season"`
	ValidFrom   time.Time   `bson:"validFrom"`
	ValidTo     time.Time   `bson:"validTo"`
}

type Report struct {
	Base        `bson:",inline"`
	Type        string             `bson:"type"`
	Data        map[string]any     `bson:"data"`
	DateRange   ReportRange        `bson:"dateRange"`
	GeneratedBy primitive.ObjectID `bson:"generatedBy"`
}

type ReportRange struct {
	Start time.Time `bson:"start"`
	End   time.Time `bson:"end"`
}
