package core

// User an authenticated api caller
type User struct {
	UserID      string `json:"user_id"`
	Name        string `json:"name,omitempty"`
	Avatar      string `json:"avatar,omitempty"`
	AccessToken string `json:"-"`
}
