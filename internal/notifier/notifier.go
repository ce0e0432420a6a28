package notifier

// TextNotifier is a minimal text push interface. Kept small so the collector
// can depend on it without importing concrete implementations.
type TextNotifier interface {
	SendText(text string) error
}
