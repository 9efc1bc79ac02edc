package responses

type Login struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type Register struct {
	UserID string `json:"userId"`
}
