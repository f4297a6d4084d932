package domain

import "fmt"

// Warning records input the readers accepted but could not fully honor,
// such as a skipped row or an extra mind-map sheet. Warnings never abort a
// conversion; strict mode in the CLI promotes them to failures.
type Warning struct {
	Location string
	Message  string
}

// Warningf builds a warning with a formatted message.
func Warningf(location, format string, args ...any) Warning {
	return Warning{Location: location, Message: fmt.Sprintf(format, args...)}
}

// String renders the warning for display.
func (w Warning) String() string {
	if w.Location == "" {
		return w.Message
	}
	return fmt.Sprintf("%s (%s)", w.Message, w.Location)
}
