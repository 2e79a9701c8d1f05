package workflow

// Notice is a dismissible warning for the user.
type Notice struct {
	Title   string
	Message string
}

// Presenter is the display surface the Manager pushes updates to. Alive is
// consulted before every push; a surface that has been torn down returns
// false and receives nothing further.
type Presenter interface {
	Alive() bool
	ShowInputSummary(label string)
	ShowOutputSummary(label string)
	SetConvertEnabled(enabled bool)
	ShowNotice(notice Notice)
}
