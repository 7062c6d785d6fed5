package farcaster

// User is the identity metadata resolved for a wallet address.
type User struct {
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
	FID         int    `json:"fid"`
	Avatar      string `json:"avatar,omitempty"`
}
