package entity

// User representa un cliente. Email es único.
type User struct {
	ID    int64
	Name  string
	Email string
}
