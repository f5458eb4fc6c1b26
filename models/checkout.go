package models

// CheckoutStep identifies the current position in the checkout flow.
type CheckoutStep int

const (
	StepIdentity    CheckoutStep = 1
	StepDocuments   CheckoutStep = 2
	StepPreferences CheckoutStep = 3
)

// CheckoutDetails are the pilgrim-entered fields collected across the steps.
type CheckoutDetails struct {
	FullName       string         `json:"fullName"`
	WhatsappNumber string         `json:"whatsappNumber"`
	NumberOfPax    int            `json:"numberOfPax"`
	HasPassport    PassportStatus `json:"hasPassport"`
	IsFirstTime    bool           `json:"isFirstTime"`
	RoomPreference RoomPreference `json:"roomPreference"`
	HealthNotes    string         `json:"healthNotes,omitempty"`
}

// CheckoutSession holds the state of one in-progress checkout between steps.
type CheckoutSession struct {
	SessionID string          `json:"sessionId"`
	PackageID string          `json:"packageId"`
	Step      CheckoutStep    `json:"step"`
	Details   CheckoutDetails `json:"details"`
	Total     int64           `json:"total"`
}

// CheckoutConfirmation is returned when a session is successfully confirmed.
type CheckoutConfirmation struct {
	Lead         *Lead  `json:"lead"`
	WhatsAppLink string `json:"whatsappLink"`
}
