package domain

// Profile is the identity the provider reports for the connected account.
type Profile struct {
	Username    string `json:"username"`
	DisplayName string `json:"name"`
}
