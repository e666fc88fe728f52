package commands

import (
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	"github.com/btmesh-protocol/btmesh-go/pkg/access"
)

// RunDecode decodes a hex-encoded access payload and prints its opcode
// and parameters.
func RunDecode(hexPayload string, w io.Writer) error {
	raw, err := hex.DecodeString(strings.TrimPrefix(hexPayload, "0x"))
	if err != nil {
		return fmt.Errorf("not a hex string: %w", err)
	}

	payload, err := access.DecodePayload(raw)
	if err != nil {
		return fmt.Errorf("failed to decode payload: %w", err)
	}

	op := payload.Opcode()
	fmt.Fprintf(w, "opcode:      %s\n", op)
	fmt.Fprintf(w, "format:      %s (%d octets)\n", op.Format(), op.Length())
	if company, ok := op.CompanyID(); ok {
		fmt.Fprintf(w, "company id:  0x%04X\n", uint16(company))
	}
	params := payload.Parameters()
	if len(params) == 0 {
		fmt.Fprintf(w, "parameters:  (none)\n")
	} else {
		fmt.Fprintf(w, "parameters:  %s (%d bytes)\n", hex.EncodeToString(params), len(params))
	}
	return nil
}
