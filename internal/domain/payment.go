package domain

type PaymentMethod string

const (
	PaymentMethodMpesa  PaymentMethod = "MPESA"
	PaymentMethodPaypal PaymentMethod = "PAYPAL"
	PaymentMethodVisa   PaymentMethod = "VISA"
)

// Payment is a value+status record owned 1:1 by a booking. It is created and
// deleted together with its booking; no gateway processing happens here.
// PaymentStatus is free-form on purpose (set by whatever settles the payment).
type Payment struct {
	ID            int32         `json:"id"`
	Amount        float64       `json:"amount"`
	PaymentDate   string        `json:"payment_date"` // set at creation
	PaymentMethod PaymentMethod `json:"payment_method"`
	PaymentStatus string        `json:"payment_status"`
}

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodMpesa, PaymentMethodPaypal, PaymentMethodVisa:
		return true
	}
	return false
}
