package carousel

// Effect is a pair of CSS classes for the incoming and outgoing slide.
type Effect struct {
	Enter string `json:"enter"`
	Exit  string `json:"exit"`
}

var Effects = []Effect{
	{Enter: "enter-from-right", Exit: "exit-to-left"},
	{Enter: "enter-from-left", Exit: "exit-to-right"},
	{Enter: "enter-from-bottom", Exit: "exit-to-top"},
	{Enter: "enter-from-top", Exit: "exit-to-bottom"},
	{Enter: "enter-zoom-in", Exit: "exit-zoom-out"},
	{Enter: "enter-fade", Exit: "exit-fade"},
	{Enter: "enter-rotate-scale", Exit: "exit-rotate-scale"},
	{Enter: "enter-flip-right", Exit: "exit-flip-left"},
	{Enter: "enter-flip-down", Exit: "exit-flip-up"},
	{Enter: "enter-from-top-left", Exit: "exit-to-bottom-right"},
	{Enter: "enter-from-bottom-right", Exit: "exit-to-top-left"},
	{Enter: "enter-skew", Exit: "exit-skew"},
	{Enter: "enter-soft-zoom", Exit: "exit-soft-zoom"},
	{Enter: "enter-newspaper", Exit: "exit-newspaper"},
	{Enter: "enter-bounce-right", Exit: "exit-bounce-left"},
}

// EnterClasses lists the entry animation of every effect, for the gallery
// lightbox.
func EnterClasses() []string {
	out := make([]string, len(Effects))
	for i, e := range Effects {
		out[i] = e.Enter
	}
	return out
}
