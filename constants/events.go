package constants

// Notification channel shared by workers and the notifier relay.
const NotificationChannel = "course_updates"

// Event types published on the notification channel.
const (
	EventProcessingStatus  = "processing_status"
	EventFactCheckComplete = "fact_check:complete"
	EventGradingComplete   = "grading:complete"
	EventUserJoined        = "user_joined"
	EventUserLeft          = "user_left"
)

// OCR provider names recorded on documents for provenance.
const (
	ProviderTesseract = "tesseract"
	ProviderVision    = "vision"
	ProviderDirect    = "direct"
)
