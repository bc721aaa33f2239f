package printer

// Driver is the ESC/POS command surface receipts are dispatched against.
// Every operation is fallible: paper-out, disconnects and write timeouts
// surface as errors from the underlying transport.
type Driver interface {
	// Init opens the transport if needed and resets the printer state.
	Init() error
	// WriteText prints a line of text followed by a line feed.
	WriteText(text string) error
	// SetFontSize sets the character magnification (width, height in 1..8).
	SetFontSize(width, height int) error
	// SetJustify sets text alignment: AlignLeft, AlignCenter, AlignRight.
	SetJustify(align int) error
	// Feed advances the paper one line.
	Feed() error
	// Cut performs a full paper cut.
	Cut() error
	// Connected reports whether the transport currently reaches a device.
	Connected() bool
}

type escposDriver struct {
	transport Transport
}

// NewDriver creates an ESC/POS driver over the given transport.
func NewDriver(t Transport) Driver {
	return &escposDriver{transport: t}
}

func (d *escposDriver) send(data []byte) error {
	if !d.transport.IsOpen() {
		if err := d.transport.Open(); err != nil {
			return err
		}
	}
	_, err := d.transport.Write(data)
	return err
}

func (d *escposDriver) Init() error {
	if err := d.transport.Open(); err != nil {
		return err
	}
	return d.send(cmdInit())
}

func (d *escposDriver) WriteText(text string) error {
	return d.send(append([]byte(text), LF))
}

func (d *escposDriver) SetFontSize(width, height int) error {
	return d.send(cmdFontSize(width, height))
}

func (d *escposDriver) SetJustify(align int) error {
	return d.send(cmdAlign(align))
}

func (d *escposDriver) Feed() error {
	return d.send([]byte{LF})
}

func (d *escposDriver) Cut() error {
	return d.send(cmdCut())
}

func (d *escposDriver) Connected() bool {
	return d.transport.IsOpen()
}
