package domain

import (
	"fmt"
	"strings"
)

// TriggerType identifies the external event category that starts a flow.
// Its underlying value is the event name carried by the trigger state's
// matching transition.
type TriggerType string

const (
	TriggerIncomingMessage TriggerType = "incomingMessage"
	TriggerIncomingCall    TriggerType = "incomingCall"
	TriggerRESTAPI         TriggerType = "incomingRequest"
	TriggerSubflow         TriggerType = "incomingParent"
)

// triggerTokens maps CLI tokens to trigger types.
var triggerTokens = map[string]TriggerType{
	"incoming_message": TriggerIncomingMessage,
	"incoming_call":    TriggerIncomingCall,
	"rest_api":         TriggerRESTAPI,
	"subflow":          TriggerSubflow,
}

// ParseTriggerType converts a CLI token (e.g. "incoming_call") into a
// TriggerType. The token is matched case-insensitively.
func ParseTriggerType(s string) (TriggerType, error) {
	if t, ok := triggerTokens[strings.ToLower(s)]; ok {
		return t, nil
	}
	return "", fmt.Errorf("invalid trigger type %q (valid: %s)", s, strings.Join(TriggerTokens(), ", "))
}

// TriggerTokens lists the accepted CLI tokens in stable order.
func TriggerTokens() []string {
	return []string{"incoming_message", "incoming_call", "rest_api", "subflow"}
}

// Event returns the event name a trigger transition must carry to match
// this trigger type.
func (t TriggerType) Event() string {
	return string(t)
}
