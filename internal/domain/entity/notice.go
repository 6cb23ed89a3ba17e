package entity

// NoticeKind tells why the default location was used.
type NoticeKind string

const (
	NoticeCapabilityUnavailable NoticeKind = "capability_unavailable"
	NoticePermissionDenied      NoticeKind = "permission_denied"
)

// LocationNotice is handed to the composing view when geolocation could not be used.
// How it is shown to the user is up to the caller.
type LocationNotice struct {
	Kind        NoticeKind  `json:"kind"`
	Message     string      `json:"message"`
	Coordinates Coordinates `json:"coordinates"`
}

const (
	NoticeMessagePermissionDenied      = "Location service disabled. Default location will be used for real-time weather."
	NoticeMessageCapabilityUnavailable = "Geolocation not available. Default location will be used for real-time weather."
)

// NewLocationNotice builds the notice for kind at the fallback coordinates.
func NewLocationNotice(kind NoticeKind, coords Coordinates) *LocationNotice {
	message := NoticeMessagePermissionDenied
	if kind == NoticeCapabilityUnavailable {
		message = NoticeMessageCapabilityUnavailable
	}
	return &LocationNotice{Kind: kind, Message: message, Coordinates: coords}
}
