package models

import "time"

// PassportStatus records whether a pilgrim already holds a valid passport.
type PassportStatus string

const (
	PassportYes     PassportStatus = "YES"
	PassportNo      PassportStatus = "NO"
	PassportExpired PassportStatus = "EXPIRED"
)

// RoomPreference is the chosen hotel room occupancy.
type RoomPreference string

const (
	RoomQuad   RoomPreference = "QUAD"
	RoomTriple RoomPreference = "TRIPLE"
	RoomDouble RoomPreference = "DOUBLE"
)

// LeadStatus is the follow-up pipeline state of a lead.
type LeadStatus string

const (
	LeadPending    LeadStatus = "Pending"
	LeadFollowedUp LeadStatus = "FollowedUp"
	LeadCompleted  LeadStatus = "Completed"
	LeadCancelled  LeadStatus = "Cancelled"
)

// PaymentStatus tracks how much of the package price has been settled.
type PaymentStatus string

const (
	PaymentUnpaid  PaymentStatus = "UNPAID"
	PaymentPartial PaymentStatus = "PARTIAL"
	PaymentPaid    PaymentStatus = "PAID"
)

// Lead is a single booking submission from a jamaah. Created by the checkout
// flow, mutated only through the admin dashboard.
type Lead struct {
	ID             string         `bson:"id" json:"id"`
	CheckoutCode   string         `bson:"checkoutCode" json:"checkoutCode"`
	PackageID      string         `bson:"packageId" json:"packageId"`
	PackageName    string         `bson:"packageName" json:"packageName"`
	FullName       string         `bson:"fullName" json:"fullName"`
	WhatsappNumber string         `bson:"whatsappNumber" json:"whatsappNumber"`
	NumberOfPax    int            `bson:"numberOfPax" json:"numberOfPax"`
	HasPassport    PassportStatus `bson:"hasPassport" json:"hasPassport"`
	IsFirstTime    bool           `bson:"isFirstTime" json:"isFirstTime"`
	RoomPreference RoomPreference `bson:"roomPreference" json:"roomPreference"`
	HealthNotes    string         `bson:"healthNotes,omitempty" json:"healthNotes,omitempty"`
	Status         LeadStatus     `bson:"status" json:"status"`
	PaymentStatus  PaymentStatus  `bson:"paymentStatus" json:"paymentStatus"`
	AmountPaid     int64          `bson:"amountPaid" json:"amountPaid"`
	AdminNotes     string         `bson:"adminNotes,omitempty" json:"adminNotes,omitempty"`
	CreatedAt      time.Time      `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time      `bson:"updatedAt" json:"updatedAt"`
}

// LeadStatusView is the public projection returned by the status checker.
type LeadStatusView struct {
	CheckoutCode string     `json:"checkoutCode"`
	Status       LeadStatus `json:"status"`
	FullName     string     `json:"fullName"`
	PackageName  string     `json:"packageName"`
	NumberOfPax  int        `json:"numberOfPax"`
	CreatedAt    time.Time  `json:"createdAt"`
}

// StatusView builds the public projection of a lead.
func (l *Lead) StatusView() LeadStatusView {
	return LeadStatusView{
		CheckoutCode: l.CheckoutCode,
		Status:       l.Status,
		FullName:     l.FullName,
		PackageName:  l.PackageName,
		NumberOfPax:  l.NumberOfPax,
		CreatedAt:    l.CreatedAt,
	}
}
