package plugin

// CanDo identifies one optional host capability a plugin may support.
type CanDo int

const (
	// CanDoSendMIDIEvent asks whether the plugin emits MIDI events.
	CanDoSendMIDIEvent CanDo = iota
	// CanDoReceiveMIDIEvent asks whether the plugin consumes MIDI events.
	CanDoReceiveMIDIEvent
	// CanDoReceiveTimeInfo asks whether the plugin wants transport info.
	CanDoReceiveTimeInfo
	// CanDoOffline asks whether the plugin supports offline rendering.
	CanDoOffline
	// CanDoBypass asks whether the plugin implements soft bypass.
	CanDoBypass
)

// Supported is a plugin's answer to a capability query. Maybe is the
// permissive default: hosts treat it as "try and see".
type Supported int

const (
	// SupportedMaybe leaves the capability for the host to probe.
	SupportedMaybe Supported = iota
	// SupportedYes declares the capability.
	SupportedYes
	// SupportedNo rules the capability out.
	SupportedNo
)

// String returns the conventional answer text.
func (s Supported) String() string {
	switch s {
	case SupportedYes:
		return "Yes"
	case SupportedNo:
		return "No"
	default:
		return "Maybe"
	}
}
