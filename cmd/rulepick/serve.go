package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"sync"

	"github.com/fwojciec/rulepick"
	"github.com/fwojciec/rulepick/goquery"
	"github.com/fwojciec/rulepick/selection"
)

// messageError reports a message that could not be handled.
const messageError rulepick.MessageType = "error"

// maxMessageSize bounds one inbound JSON line.
const maxMessageSize = 1 << 20

// Run executes the serve command. Each stdin line is one message envelope;
// replies are written to stdout one JSON object per line.
func (c *ServeCmd) Run(deps *Dependencies) error {
	page, err := deps.Pages.Load(deps.Ctx, c.Source)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", rulepick.ErrorMessage(err))
		return err
	}

	messenger := NewLineMessenger(deps.Stdout)
	ctrl := &selection.Controller{
		State:       selection.NewState(),
		Document:    page.Document,
		Resolver:    deps.Resolver,
		Highlighter: goquery.NewHighlighter(page.Document),
		Attributes:  selection.AttributeExtractor{},
		Messenger:   messenger,
	}
	stop := ctrl.ReportStateChanges()
	defer stop()

	scanner := bufio.NewScanner(deps.Stdin)
	scanner.Buffer(make([]byte, 64*1024), maxMessageSize)
	for scanner.Scan() {
		if err := deps.Ctx.Err(); err != nil {
			return err
		}
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var env selection.Envelope
		if err := json.Unmarshal(line, &env); err != nil {
			err = rulepick.Errorf(rulepick.EINVALID, "malformed message: %v", err)
			if err := messenger.sendError(err); err != nil {
				return err
			}
			continue
		}

		if err := ctrl.Dispatch(env); err != nil {
			deps.Logger.Warn("message failed", "type", env.Type, "err", err)
			if err := messenger.sendError(err); err != nil {
				return err
			}
		}
	}
	return scanner.Err()
}

var _ rulepick.Messenger = (*LineMessenger)(nil)

// LineMessenger writes messages as JSON lines. It is safe for concurrent use.
type LineMessenger struct {
	mu  sync.Mutex
	enc *json.Encoder
}

// NewLineMessenger creates a LineMessenger writing to w.
func NewLineMessenger(w io.Writer) *LineMessenger {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return &LineMessenger{enc: enc}
}

// Send implements rulepick.Messenger.
func (m *LineMessenger) Send(msg rulepick.Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.enc.Encode(msg)
}

func (m *LineMessenger) sendError(err error) error {
	return m.Send(rulepick.Message{
		Type: messageError,
		Payload: map[string]string{
			"code":    rulepick.ErrorCode(err),
			"message": rulepick.ErrorMessage(err),
		},
	})
}
