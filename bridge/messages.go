package bridge

// Messages for driving a Component from outside its update loop, usually
// through tea.Program.Send. An empty Target addresses every Component.

type SetValueMsg struct {
	Target string
	HTML   string
}

type ClearMsg struct {
	Target string
}

type FocusMsg struct {
	Target string
}

type BlurMsg struct {
	Target string
}
