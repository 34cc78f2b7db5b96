package event

const CustomerPasswordResetSubject string = "customer.password_reset"

type CustomerPasswordResetMessage struct {
	CustomerID int64  `json:"customer_id,string"`
	Email      string `json:"email"`
	OccurredAt int64  `json:"occurred_at"`
}
