package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"
)

func formatStamp(ts time.Time) string {
	return ts.Format("2006-01-02 15:04")
}

func readFlag(readAt *time.Time) string {
	if readAt == nil {
		return "unread"
	}
	return "read " + formatStamp(*readAt)
}

// promptMessageID asks for a message ID and parses it.
func (a *App) promptMessageID() (int64, error) {
	text, err := getSimpleText(a.reader, "Message ID", os.Stdout)
	if err != nil {
		return 0, err
	}
	id, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		fmt.Println("Not a message ID:", text)
		return 0, err
	}
	return id, nil
}

// Send prompts for a recipient and a body and sends the message.
func (a *App) Send(ctx context.Context) error {
	to, err := getSimpleText(a.reader, "To (username)", os.Stdout)
	if err != nil {
		return err
	}
	body, err := GetMultiline(a.reader, "Message body", os.Stdout)
	if err != nil {
		return err
	}

	msg, err := a.api.Send(ctx, to, body)
	if err != nil {
		fmt.Println(err.Error())
		return err
	}

	fmt.Printf("Sent #%d to %s at %s\n", msg.ID, msg.ToUsername, formatStamp(msg.SentAt))
	return nil
}

// Inbox lists the messages sent to the caller.
func (a *App) Inbox(ctx context.Context) error {
	items, err := a.api.Inbox(ctx, a.username)
	if err != nil {
		fmt.Println(err.Error())
		return err
	}

	for _, m := range items {
		fmt.Printf("#%d from %s at %s [%s]: %s\n",
			m.ID, m.From.Username, formatStamp(m.SentAt), readFlag(m.ReadAt), m.Body)
	}
	return nil
}

// Outbox lists the messages the caller sent.
func (a *App) Outbox(ctx context.Context) error {
	items, err := a.api.Outbox(ctx, a.username)
	if err != nil {
		fmt.Println(err.Error())
		return err
	}

	for _, m := range items {
		fmt.Printf("#%d to %s at %s [%s]: %s\n",
			m.ID, m.To.Username, formatStamp(m.SentAt), readFlag(m.ReadAt), m.Body)
	}
	return nil
}

// Show prints a single message in full.
func (a *App) Show(ctx context.Context) error {
	id, err := a.promptMessageID()
	if err != nil {
		return err
	}

	m, err := a.api.Message(ctx, id)
	if err != nil {
		fmt.Println(err.Error())
		return err
	}

	fmt.Printf("#%d %s -> %s at %s [%s]\n",
		m.ID, m.From.Username, m.To.Username, formatStamp(m.SentAt), readFlag(m.ReadAt))
	fmt.Println(m.Body)
	return nil
}

// Read marks a message read. Only the recipient may; the server enforces it.
func (a *App) Read(ctx context.Context) error {
	id, err := a.promptMessageID()
	if err != nil {
		return err
	}

	receipt, err := a.api.MarkRead(ctx, id)
	if err != nil {
		fmt.Println(err.Error())
		return err
	}

	fmt.Printf("#%d read at %s\n", receipt.ID, formatStamp(receipt.ReadAt))
	return nil
}
