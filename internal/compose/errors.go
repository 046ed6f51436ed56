package compose

import (
	"errors"
	"fmt"
)

// Kind classifies a composition failure.
type Kind int

const (
	// KindTemplateNotFound means the template id is not in the catalog.
	KindTemplateNotFound Kind = iota + 1
	// KindDeviceNotFound means the device id is not in the catalog.
	KindDeviceNotFound
	// KindScreenshotNotFound means the screenshot path does not exist.
	KindScreenshotNotFound
	// KindScreenshotLoadFailed means the screenshot exists but cannot be decoded.
	KindScreenshotLoadFailed
	// KindRenderingFailed means a drawing surface or font could not be set up.
	KindRenderingFailed
	// KindSaveFailed means the frame could not be written to its destination.
	KindSaveFailed
)

func (k Kind) String() string {
	switch k {
	case KindTemplateNotFound:
		return "TemplateNotFound"
	case KindDeviceNotFound:
		return "DeviceNotFound"
	case KindScreenshotNotFound:
		return "ScreenshotNotFound"
	case KindScreenshotLoadFailed:
		return "ScreenshotLoadFailed"
	case KindRenderingFailed:
		return "RenderingFailed"
	case KindSaveFailed:
		return "SaveFailed"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Error is a typed composition or export failure. Subject names the id or
// path the failure is about; Err holds the underlying cause, if any.
type Error struct {
	Kind    Kind
	Subject string
	Err     error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindTemplateNotFound:
		return "Template not found: " + e.Subject
	case KindDeviceNotFound:
		return "Device size not found: " + e.Subject
	case KindScreenshotNotFound:
		return "Screenshot file not found: " + e.Subject
	case KindScreenshotLoadFailed:
		return "Failed to load screenshot: " + e.Subject
	case KindRenderingFailed:
		return "Failed to render frame"
	case KindSaveFailed:
		return "Failed to save frame to: " + e.Subject
	default:
		return fmt.Sprintf("%s: %s", e.Kind, e.Subject)
	}
}

func (e *Error) Unwrap() error { return e.Err }

// KindOf reports the Kind of the first *Error in err's chain.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}

func newError(kind Kind, subject string, err error) *Error {
	return &Error{Kind: kind, Subject: subject, Err: err}
}
