package printer

import (
	"encoding/hex"
	"fmt"
	"net"
	"os"
	"time"
)

// Transport is the byte-oriented channel a Driver writes ESC/POS data to.
// Implementations cover the console (debug), USB device files and networked
// printers; the driver never depends on the concrete transport.
type Transport interface {
	// Open opens the connection to the printer device.
	Open() error
	// Write sends raw bytes to the printer.
	Write(data []byte) (int, error)
	// Close releases the connection/handle.
	Close() error
	// IsOpen returns true if the connection is active.
	IsOpen() bool
}

// --- Console transport (hex-dumps output, used for debugging without hardware) ---

type consoleTransport struct {
	open bool
}

// NewConsoleTransport creates a transport that hex-dumps every write to
// stdout instead of talking to a device.
func NewConsoleTransport() Transport {
	return &consoleTransport{}
}

func (t *consoleTransport) Open() error {
	t.open = true
	return nil
}

func (t *consoleTransport) Write(data []byte) (int, error) {
	fmt.Print(hex.Dump(data))
	return len(data), nil
}

func (t *consoleTransport) Close() error {
	t.open = false
	return nil
}

func (t *consoleTransport) IsOpen() bool {
	return t.open
}

// --- USB transport (writes to a device file, e.g. /dev/usb/lp0) ---

type usbTransport struct {
	path string
	file *os.File
}

// NewUSBTransport creates a transport that writes to a USB device file.
func NewUSBTransport(devicePath string) Transport {
	return &usbTransport{path: devicePath}
}

func (t *usbTransport) Open() error {
	if t.file != nil {
		return nil
	}
	f, err := os.OpenFile(t.path, os.O_WRONLY, 0)
	if err != nil {
		return fmt.Errorf("printer: failed to open USB device %s: %w", t.path, err)
	}
	t.file = f
	return nil
}

func (t *usbTransport) Write(data []byte) (int, error) {
	if t.file == nil {
		return 0, fmt.Errorf("printer: USB device %s is not open", t.path)
	}
	n, err := t.file.Write(data)
	if err != nil {
		return n, fmt.Errorf("printer: failed to write to USB device %s: %w", t.path, err)
	}
	return n, nil
}

func (t *usbTransport) Close() error {
	if t.file == nil {
		return nil
	}
	err := t.file.Close()
	t.file = nil
	return err
}

func (t *usbTransport) IsOpen() bool {
	if t.file != nil {
		return true
	}
	_, err := os.Stat(t.path)
	return err == nil
}

// --- Network transport (dials TCP, e.g. 192.168.1.100:9100) ---

type networkTransport struct {
	address string
	timeout time.Duration
	conn    net.Conn
}

// NewNetworkTransport creates a transport that connects via TCP.
// Address should include port, e.g. "192.168.1.100:9100".
func NewNetworkTransport(address string) Transport {
	return &networkTransport{
		address: address,
		timeout: 5 * time.Second,
	}
}

func (t *networkTransport) Open() error {
	if t.conn != nil {
		return nil
	}
	conn, err := net.DialTimeout("tcp", t.address, t.timeout)
	if err != nil {
		return fmt.Errorf("printer: failed to connect to %s: %w", t.address, err)
	}
	t.conn = conn
	return nil
}

func (t *networkTransport) Write(data []byte) (int, error) {
	if t.conn == nil {
		return 0, fmt.Errorf("printer: connection to %s is not open", t.address)
	}
	_ = t.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
	n, err := t.conn.Write(data)
	if err != nil {
		return n, fmt.Errorf("printer: failed to write to %s: %w", t.address, err)
	}
	return n, nil
}

func (t *networkTransport) Close() error {
	if t.conn == nil {
		return nil
	}
	err := t.conn.Close()
	t.conn = nil
	return err
}

func (t *networkTransport) IsOpen() bool {
	if t.conn != nil {
		return true
	}
	conn, err := net.DialTimeout("tcp", t.address, 2*time.Second)
	if err != nil {
		return false
	}
	conn.Close()
	return true
}

// --- Null transport (no-op, used when no printer is configured) ---

type nullTransport struct{}

// NewNullTransport creates a no-op transport for environments without hardware.
func NewNullTransport() Transport {
	return &nullTransport{}
}

func (t *nullTransport) Open() error {
	return nil
}

func (t *nullTransport) Write(data []byte) (int, error) {
	return len(data), nil
}

func (t *nullTransport) Close() error {
	return nil
}

func (t *nullTransport) IsOpen() bool {
	return false
}

// NewTransportFromConfig creates the appropriate Transport based on type.
//
//	transportType: "console", "usb", "network", or "none"
//	usbPath: device path for USB printers (e.g. "/dev/usb/lp0")
//	address: TCP address for network printers (e.g. "192.168.1.100:9100")
func NewTransportFromConfig(transportType, usbPath, address string) (Transport, error) {
	switch transportType {
	case "console":
		return NewConsoleTransport(), nil
	case "usb":
		if usbPath == "" {
			return nil, fmt.Errorf("printer: USB path is required for USB transport")
		}
		return NewUSBTransport(usbPath), nil
	case "network":
		if address == "" {
			return nil, fmt.Errorf("printer: address is required for network transport")
		}
		return NewNetworkTransport(address), nil
	case "none", "":
		return NewNullTransport(), nil
	default:
		return nil, fmt.Errorf("printer: unknown transport type %q (use console, usb, network, or none)", transportType)
	}
}
