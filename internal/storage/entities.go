package storage

type Item struct {
	ID      string
	Name    string
	Checked bool
	Editing bool
}
