package views

// ViewState contains common state shared by all view models.
// Embed this struct in view models to get width/height and message handling.
type ViewState struct {
	Width      int
	Height     int
	Message    string
	MessageErr bool
}

// SetSize updates the view dimensions
func (s *ViewState) SetSize(width, height int) {
	s.Width = width
	s.Height = height
}

// SetMessage sets a message to display in the view
func (s *ViewState) SetMessage(msg string, isErr bool) {
	s.Message = msg
	s.MessageErr = isErr
}

// SetError shows err as an error message; a nil err clears the message
func (s *ViewState) SetError(err error) {
	if err == nil {
		s.ClearMessage()
		return
	}
	s.SetMessage(err.Error(), true)
}

// ClearMessage clears the current message
func (s *ViewState) ClearMessage() {
	s.Message = ""
	s.MessageErr = false
}

// Messages for view switching
type SwitchToHelpMsg struct{}

type SwitchToEditorMsg struct{}

// OpenEditorMsg asks the app to open Path in $EDITOR and re-import it after
type OpenEditorMsg struct {
	Path string
}

// ReloadMsg re-imports the project file, e.g. after an external edit
type ReloadMsg struct {
	Path string
	Err  error // set when the external editor failed
}

// savedMsg reports the end of a background export
type savedMsg struct {
	path    string
	message string
	err     error
	auto    bool
}
