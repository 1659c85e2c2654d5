package response

type SigninResponse struct {
	Token string `json:"token"`
}

type SessionResponse struct {
	Authenticated bool `json:"authenticated"`
}
