package application

// Fixed user-visible texts. These are part of the persisted transcript
// contract, so changing them changes observable behavior.
const (
	greetingText = "Hello! I am your Indian Constitutional AI assistant. How can I help you today? Please note, I am not a lawyer and this is not legal advice."

	connectivityErrorText = "Sorry, I'm having trouble connecting. Please try again later."

	generationStoppedText = "Generation stopped."

	timestampLayout = "15:04"
)
