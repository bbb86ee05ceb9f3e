package ec

import (
	"context"
	"strings"

	"github.com/sierrasoftworks/humane-errors-go"

	"github.com/rog-community/rogfanctl/pkg/board"
	"github.com/rog-community/rogfanctl/pkg/curve"
)

// errorPrefix marks a firmware-reported failure in an acpi_call response.
// Any other response, including an empty one, is success.
const errorPrefix = "Error:"

// Transport delivers one command string to the controller and returns the
// textual response. Implementations perform a single blocking round trip;
// serializing concurrent callers is the caller's concern.
type Transport interface {
	Send(ctx context.Context, command string) (string, error)
}

// Controller installs fan curves through a Transport.
type Controller struct {
	transport Transport
}

// NewController returns a Controller that talks through t.
func NewController(t Transport) *Controller {
	return &Controller{transport: t}
}

// Apply installs c as the curve for fan f on board b. Every call is a
// single fire-and-forget request; there are no retries.
func (ctl *Controller) Apply(ctx context.Context, c curve.Curve, b board.Board, f board.Fan) humane.Error {
	addr, ok := b.FanAddress(f)
	if !ok {
		return humane.New("fan "+f.String()+" is not supported on board "+b.Name(),
			"check the supported fans for your board with `rogfanctl show`",
		)
	}

	command := Command(c, b.MethodPath(), addr)

	response, err := ctl.transport.Send(ctx, command)
	if err != nil {
		return humane.Wrap(err, "failed to send fan curve command to the embedded controller",
			"ensure the acpi_call kernel module is loaded (`modprobe acpi_call`)",
			"this command needs root privileges to access "+AcpiCallPath,
		)
	}

	if strings.HasPrefix(response, errorPrefix) {
		return humane.New("the firmware rejected the fan curve command: "+strings.TrimSpace(response),
			"verify the board is a supported model; other boards may expose a different method path",
		)
	}

	return nil
}
