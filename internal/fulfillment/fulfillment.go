// Package fulfillment renders the ticket document for a committed order and
// mails it to the buyer. Failures here never undo the order.
package fulfillment

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/Domenick1991/airport/internal/domain"
	"github.com/Domenick1991/airport/internal/email"
	"github.com/google/uuid"
)

const (
	DocumentTitle = "Your Ticket"
	Subject       = "Your Ticket Confirmation"
	Body          = "Your ticket is attached."
)

type Request struct {
	OrderID   int64
	Recipient string
	Lines     []string
}

// NewRequest lists every ticket as a flight line followed by a seat line.
// Tickets should carry their Flight so the line shows the flight title.
func NewRequest(order domain.Order, recipient string) Request {
	lines := make([]string, 0, 2*len(order.Tickets))
	for _, t := range order.Tickets {
		flight := fmt.Sprintf("#%d", t.FlightID)
		if t.Flight != nil {
			flight = t.Flight.String()
		}
		lines = append(lines,
			"Flight: "+flight,
			fmt.Sprintf("Row: %d, Seat: %d", t.Row, t.Seat),
		)
	}
	return Request{OrderID: order.ID, Recipient: recipient, Lines: lines}
}

func (r Request) AttachmentName() string {
	return fmt.Sprintf("ticket_order_%d.pdf", r.OrderID)
}

type Renderer interface {
	Render(path, title string, lines []string) error
}

type Fulfiller struct {
	renderer Renderer
	sender   email.Sender
	tempDir  string
}

func NewFulfiller(renderer Renderer, sender email.Sender, tempDir string) *Fulfiller {
	return &Fulfiller{renderer: renderer, sender: sender, tempDir: tempDir}
}

// Fulfill renders the document into a unique temp file, sends it and always
// removes the file afterwards.
func (f *Fulfiller) Fulfill(ctx context.Context, req Request) error {
	if req.Recipient == "" {
		return fmt.Errorf("order %d: no recipient address", req.OrderID)
	}

	path := filepath.Join(f.tempDir, fmt.Sprintf("ticket_order_%d_%s.pdf", req.OrderID, uuid.NewString()))
	defer func() {
		if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
			log.Printf("remove ticket file %s: %v", path, err)
		}
	}()

	if err := f.renderer.Render(path, DocumentTitle, req.Lines); err != nil {
		return fmt.Errorf("render ticket for order %d: %w", req.OrderID, err)
	}

	err := f.sender.Send(ctx, email.Message{
		To:             req.Recipient,
		Subject:        Subject,
		Body:           Body,
		AttachmentPath: path,
		AttachmentName: req.AttachmentName(),
	})
	if err != nil {
		return fmt.Errorf("mail ticket for order %d: %w", req.OrderID, err)
	}
	return nil
}
