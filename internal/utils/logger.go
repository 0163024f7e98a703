package utils

import (
	"log"
	"strings"
)

// LogEvent writes one line per service action, keyed by module and request id.
// Messages should stay short and never carry card numbers or passwords.
func LogEvent(requestID, module, action, message string) {
	log.Printf("[%s] action=%s request_id=%s msg=%s",
		strings.ToUpper(strings.TrimSpace(module)), action, strings.TrimSpace(requestID), message)
}
