package printer

import (
	"fmt"

	"go.bug.st/serial"
)

// NewSerialTransport opens a serial link to the printer (COM port or
// /dev/ttyUSB*) at the given baud rate, 8N1.
func NewSerialTransport(portName string, baudRate int) (Transport, error) {
	ports, err := serial.GetPortsList()
	if err != nil {
		return nil, fmt.Errorf("list serial ports: %w", err)
	}
	if !contains(ports, portName) {
		return nil, fmt.Errorf("serial port %s not found (available: %v)", portName, ports)
	}

	mode := &serial.Mode{
		BaudRate: baudRate,
		Parity:   serial.NoParity,
		DataBits: 8,
		StopBits: serial.OneStopBit,
	}
	port, err := serial.Open(portName, mode)
	if err != nil {
		return nil, fmt.Errorf("open serial port %s: %w", portName, err)
	}
	return &RawTransport{conn: port}, nil
}

func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
