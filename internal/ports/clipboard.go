package ports

// Clipboard defines the interface for the system clipboard
type Clipboard interface {
	WriteAll(text string) error
	ReadAll() (string, error)
}
