package entity

// User is owned entirely by the Identity Gateway; this service only ever
// sees the uid and email it hands back. Passwords never leave the gateway.
type User struct {
	UID   string `json:"uid"`
	Email string `json:"email"`
}
