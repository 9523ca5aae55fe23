package tuitest

// Key sequences as a VT100-style terminal sends them.
var (
	KeyEnter = []byte{'\r'}
	KeyEsc   = []byte{27}
	KeySpace = []byte{' '}
	KeyTab   = []byte{'\t'}
	KeyCtrlC = []byte{3}
	KeyCtrlL = []byte{12}

	KeyUp    = []byte("\x1b[A")
	KeyDown  = []byte("\x1b[B")
	KeyRight = []byte("\x1b[C")
	KeyLeft  = []byte("\x1b[D")
)
