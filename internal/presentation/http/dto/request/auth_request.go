package request

// CredentialsRequest carries login/register credentials. The field casing
// matches what the login screen has always submitted.
type CredentialsRequest struct {
	UserID   string `json:"UserId"`
	Password string `json:"Password"`
}
