package enum

// PaymentMethod represents how an expense was paid
type PaymentMethod string

const (
	PaymentMethodCheque     PaymentMethod = "Cheque"
	PaymentMethodNEFT       PaymentMethod = "NEFT"
	PaymentMethodCreditCard PaymentMethod = "Credit Card"
	PaymentMethodCash       PaymentMethod = "Cash"
)

// PaymentMethods lists every accepted payment method in display order.
func PaymentMethods() []PaymentMethod {
	return []PaymentMethod{
		PaymentMethodCheque,
		PaymentMethodNEFT,
		PaymentMethodCreditCard,
		PaymentMethodCash,
	}
}

func (p PaymentMethod) String() string {
	return string(p)
}

// Valid reports whether p is one of the accepted payment methods.
func (p PaymentMethod) Valid() bool {
	switch p {
	case PaymentMethodCheque, PaymentMethodNEFT, PaymentMethodCreditCard, PaymentMethodCash:
		return true
	}
	return false
}
