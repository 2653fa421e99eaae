package entity

import "time"

// Vendor supplies vehicles under ownership "vendor". This service only reads
// vendors to expand vehicle references.
type Vendor struct {
	Base              `bson:",inline"`
	Name              string          `bson:"name"`
	ContactPerson     string          `bson:"contactPerson"`
	Phone             string          `bson:"phone"`
	AlternatePhone    string          `bson:"alternatePhone,omitempty"`
	Email             string          `bson:"email"`
	Address           string          `bson:"address"`
	City              string          `bson:"city"`
	State             string          `bson:"state"`
	Pincode           string          `bson:"pincode"`
	GST               string          `bson:"gst,omitempty"`
	PAN               string          `bson:"pan,omitempty"`
	Bank              VendorBank      `bson:"bank"`
	Status            string          `bson:"status"`
	VehicleCount      int             `bson:"vehicleCount"`
	TotalBusiness     float64         `bson:"totalBusiness"`
	OutstandingAmount float64         `bson:"outstandingAmount"`
	LastTransaction   *time.Time      `bson:"lastTransaction,omitempty"`
	Agreement         VendorAgreement `bson:"agreement"`
}

type VendorBank struct {
	Name              string `bson:"name"`
	AccountNumber     string `bson:"accountNumber"`
	IFSC              string `bson:"ifsc"`
	AccountHolderName string `bson:"accountHolderName"`
}

type VendorAgreement struct {
	CommissionType  string  `bson:"commissionType"`
	CommissionValue float64 `bson:"commissionValue"`
	PaymentTerms    int     `bson:"paymentTerms"`
	CreditLimit     float64 `bson:"creditLimit"`
	Notes           string  `bson:"notes,omitempty"`
}
