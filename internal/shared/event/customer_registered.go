package event

const CustomerRegisteredSubject string = "customer.registered"

type CustomerRegisteredMessage struct {
	CustomerID int64  `json:"customer_id,string"`
	Username   string `json:"username"`
	Email      string `json:"email"`
	OccurredAt int64  `json:"occurred_at"`
}
