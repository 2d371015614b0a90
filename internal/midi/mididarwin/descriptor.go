package mididarwin

import (
	"fmt"
	"strings"
)

// Descriptor strings name one endpoint as
// "<clientID>:<clientName> / <portID>:<portName>". Matching on connect
// parses the name sections and ignores the numeric ids, so a renumbered
// bus does not break a saved selection.

const descriptorSep = " / "

func formatDescriptor(clientID int, clientName string, portID int, portName string) string {
	return fmt.Sprintf("%d:%s%s%d:%s", clientID, clientName, descriptorSep, portID, portName)
}

// matchDescriptor reports whether the descriptor names the given
// client/port pair.
func matchDescriptor(descriptor, clientName, portName string) bool {
	clientItem, portItem, ok := strings.Cut(descriptor, descriptorSep)
	if !ok {
		return false
	}
	if name, ok := cutID(clientItem); !ok || name != clientName {
		return false
	}
	if name, ok := cutID(portItem); !ok || name != portName {
		return false
	}
	return true
}

// cutID strips the leading "<id>:" of a descriptor section.
func cutID(item string) (string, bool) {
	_, name, ok := strings.Cut(item, ":")
	return name, ok
}
