// Package share hands a journal entry to the operating system, either
// through a configured share command or the clipboard.
package share

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
)

// Title accompanies the message for share targets that show one.
const Title = "Daily Gratitude"

// ErrEmpty is returned when there is no content to share.
var ErrEmpty = errors.New("share: nothing to share")

// Message composes the shared text for content.
func Message(content string) (string, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return "", ErrEmpty
	}
	return fmt.Sprintf("Today, I'm grateful for: %s #Gratitude #OpenPlayground", content), nil
}

// Method records how a message was shared.
type Method int

const (
	MethodNone Method = iota
	MethodNative
	MethodClipboard
)

func (m Method) String() string {
	switch m {
	case MethodNative:
		return "native"
	case MethodClipboard:
		return "clipboard"
	default:
		return "none"
	}
}

// Sharer delivers a message somewhere.
type Sharer interface {
	// Available reports whether the target can be used on this system.
	Available() bool
	Share(ctx context.Context, title, text string) error
}

// Result describes a completed share.
type Result struct {
	Method Method `json:"method"`
	Text   string `json:"text"`
	// Failed is set when the native sharer returned an error.
	Failed bool `json:"failed,omitempty"`
}

// Service prefers the native sharer and falls back to the clipboard.
type Service struct {
	Native    Sharer
	Clipboard Sharer
}

// NewService builds the default service. An empty command disables native
// sharing.
func NewService(command string) *Service {
	s := &Service{Clipboard: NewClipboard()}
	if c := NewCommand(command); c != nil {
		s.Native = c
	}
	return s
}

// Share sends the message for content. A failing native share is logged and
// reported as a failed MethodNative result rather than an error; there is no
// retry and no fallback, the same as a user dismissing a share sheet.
func (s *Service) Share(ctx context.Context, content string) (Result, error) {
	msg, err := Message(content)
	if err != nil {
		return Result{}, err
	}

	if s.Native != nil && s.Native.Available() {
		res := Result{Method: MethodNative, Text: msg}
		if err := s.Native.Share(ctx, Title, msg); err != nil {
			log.Printf("share: native share: %v", err)
			res.Failed = true
		}
		return res, nil
	}

	if s.Clipboard == nil || !s.Clipboard.Available() {
		return Result{}, errors.New("share: no clipboard available")
	}
	if err := s.Clipboard.Share(ctx, Title, msg); err != nil {
		return Result{}, fmt.Errorf("share: copy to clipboard: %w", err)
	}
	return Result{Method: MethodClipboard, Text: msg}, nil
}
