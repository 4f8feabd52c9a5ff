package core

type AuthMessage struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type BookRecord struct {
	ID       uint   `json:"id"`
	Title    string `json:"title"`
	Author   string `json:"author"`
	ImageURL string `json:"imageUrl"`
}
