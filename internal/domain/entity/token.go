package entity

import "time"

// Token is the identity proof presented as a bearer token. Tokens are
// provisioned out of band; this system only ever reads them.
type Token struct {
	ID        string    `json:"id"`
	ExpiredAt time.Time `json:"expiredAt"`
}
