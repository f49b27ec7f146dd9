// Package controlstring builds ECMA-48 control strings: an opening delimiter,
// a command or character string, and STRING TERMINATOR.
package controlstring

import (
	"strings"

	"github.com/hnimtadd/ecma48/control/c1"
)

func delimit(opening, content string) string {
	var b strings.Builder
	b.Grow(len(opening) + len(content) + 2)
	b.WriteString(opening)
	b.WriteString(content)
	b.WriteString(c1.ST.String())
	return b.String()
}

// ApplicationProgramCommand wraps command in APC ... ST.
func ApplicationProgramCommand(command string) string {
	return delimit(c1.APC.String(), command)
}

// DeviceControlString wraps command in DCS ... ST.
func DeviceControlString(command string) string {
	return delimit(c1.DCS.String(), command)
}

// OperatingSystemCommand wraps command in OSC ... ST.
func OperatingSystemCommand(command string) string {
	return delimit(c1.OSC.String(), command)
}

// PrivacyMessage wraps message in PM ... ST.
func PrivacyMessage(message string) string {
	return delimit(c1.PM.String(), message)
}

// ControlString wraps a character string in SOS ... ST.
func ControlString(characters string) string {
	return delimit(c1.SOS.String(), characters)
}

// IsCommandString reports whether s only holds bit combinations allowed in
// a command string: 00/08 to 00/13 and 02/00 to 07/14.
func IsCommandString(s string) bool {
	for i := 0; i < len(s); i++ {
		b := s[i]
		if !(b >= 0x08 && b <= 0x0D) && !(b >= 0x20 && b <= 0x7E) {
			return false
		}
	}
	return true
}

// IsCharacterString reports whether s can be carried by SOS: it must not
// contain SOS or ST.
func IsCharacterString(s string) bool {
	return !strings.Contains(s, c1.SOS.String()) && !strings.Contains(s, c1.ST.String())
}
