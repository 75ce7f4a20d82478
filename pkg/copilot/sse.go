package copilot

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

type sseState int

const (
	sseAccumulate sseState = iota // read more bytes from the body
	sseSplit                      // cut the next complete event off the buffer
	sseDispatch                   // hand out data lines of the current event
	sseFinished                   // done event seen, body drained or failed
)

var sseEventBoundary = []byte("\n\n")

const sseDataPrefix = "data: "

// sseDecoder turns a text/event-stream body into content fragments.
// Carriage returns are dropped so CRLF framed streams split the same way.
// An incomplete event left in the buffer when the body ends is discarded.
type sseDecoder struct {
	r       io.Reader
	state   sseState
	buf     []byte
	chunk   []byte
	pending []string
	err     error
	logger  Logger
}

func newSSEDecoder(r io.Reader, logger Logger) *sseDecoder {
	if logger == nil {
		logger = NewLogger(LogLevelError)
	}
	return &sseDecoder{
		r:      r,
		state:  sseAccumulate,
		chunk:  make([]byte, sseReadChunkSize),
		logger: logger,
	}
}

// Next returns the next content fragment, io.EOF at the end of the stream,
// a *StreamError for a server error event or a *BridgeError for data lines
// that are not JSON. Errors are sticky.
func (d *sseDecoder) Next() (string, error) {
	for {
		switch d.state {
		case sseFinished:
			if d.err != nil {
				return "", d.err
			}
			return "", io.EOF

		case sseDispatch:
			if len(d.pending) == 0 {
				d.state = sseSplit
				continue
			}
			line := d.pending[0]
			d.pending = d.pending[1:]
			content, ok, err := d.dispatch(line)
			if err != nil {
				return "", d.finish(err)
			}
			if d.state == sseFinished {
				continue
			}
			if ok {
				return content, nil
			}

		case sseSplit:
			i := bytes.Index(d.buf, sseEventBoundary)
			if i < 0 {
				d.state = sseAccumulate
				continue
			}
			event := string(d.buf[:i])
			d.buf = d.buf[i+len(sseEventBoundary):]
			d.pending = d.pending[:0]
			for _, line := range strings.Split(event, "\n") {
				if strings.HasPrefix(line, sseDataPrefix) {
					d.pending = append(d.pending, line[len(sseDataPrefix):])
				}
			}
			d.state = sseDispatch

		case sseAccumulate:
			n, err := d.r.Read(d.chunk)
			if n > 0 {
				d.append(d.chunk[:n])
				d.state = sseSplit
			}
			if err == io.EOF {
				if n > 0 {
					// complete events may still be buffered
					d.r = eofReader{}
					continue
				}
				if len(d.buf) > 0 {
					d.logger.Debug("Discarding %d bytes of incomplete event at end of stream", len(d.buf))
				}
				return "", d.finish(nil)
			}
			if err != nil {
				return "", d.finish(fmt.Errorf("reading event stream: %w", err))
			}
		}
	}
}

func (d *sseDecoder) append(p []byte) {
	for _, b := range p {
		if b != '\r' {
			d.buf = append(d.buf, b)
		}
	}
}

// dispatch interprets one data payload. Precedence is done, error, content.
func (d *sseDecoder) dispatch(data string) (content string, ok bool, err error) {
	if !json.Valid([]byte(data)) {
		return "", false, &BridgeError{
			Transport: "http",
			Body:      data,
			Err:       fmt.Errorf("event data is not JSON: %q", preview(data, 80)),
		}
	}

	var ev streamEvent
	if err := json.Unmarshal([]byte(data), &ev); err != nil {
		d.logger.Trace("Ignoring event with unexpected shape: %s", data)
		return "", false, nil
	}

	switch {
	case ev.Done:
		d.logger.Trace("Stream done event received")
		d.finish(nil)
		return "", false, nil
	case ev.Error != nil:
		return "", false, &StreamError{Message: *ev.Error}
	case ev.Content != nil:
		return *ev.Content, true, nil
	}

	d.logger.Trace("Ignoring event without content: %s", data)
	return "", false, nil
}

func (d *sseDecoder) finish(err error) error {
	d.state = sseFinished
	d.pending = nil
	d.buf = nil
	d.err = err
	if err == nil {
		return io.EOF
	}
	return err
}

type eofReader struct{}

func (eofReader) Read([]byte) (int, error) { return 0, io.EOF }
