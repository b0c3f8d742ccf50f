package uci

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"sync"
)

// syncWriter serializes protocol output of the session loop and the search
// goroutine and mirrors the traffic into the debug log file.
type syncWriter struct {
	mu          sync.Mutex
	w           io.Writer
	log         io.WriteCloser
	atLineStart bool
}

func (sw *syncWriter) Write(p []byte) (int, error) {
	sw.mu.Lock()
	defer sw.mu.Unlock()
	if sw.log != nil {
		sw.mirror(p)
	}
	return sw.w.Write(p)
}

func (sw *syncWriter) mirror(p []byte) {
	for len(p) != 0 {
		if sw.atLineStart {
			io.WriteString(sw.log, "<< ")
			sw.atLineStart = false
		}
		var i = bytes.IndexByte(p, '\n')
		if i < 0 {
			sw.log.Write(p)
			return
		}
		sw.log.Write(p[:i+1])
		sw.atLineStart = true
		p = p[i+1:]
	}
}

func (sw *syncWriter) logInput(line string) {
	sw.mu.Lock()
	defer sw.mu.Unlock()
	if sw.log != nil {
		fmt.Fprintf(sw.log, ">> %s\n", line)
	}
}

// setLog replaces the debug log; nil closes it.
func (sw *syncWriter) setLog(log io.WriteCloser) {
	sw.mu.Lock()
	defer sw.mu.Unlock()
	if sw.log != nil {
		sw.log.Close()
	}
	sw.log = log
	sw.atLineStart = true
}

// SetDebugLogFile starts appending the protocol traffic to path. An empty
// path or EmptyPath stops logging.
func (uci *Protocol) SetDebugLogFile(path string) error {
	if path == "" || path == EmptyPath {
		uci.out.setLog(nil)
		return nil
	}
	var file, err = os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		uci.out.setLog(nil)
		return fmt.Errorf("open debug log file: %w", err)
	}
	uci.out.setLog(file)
	uci.logger.Debug().Str("path", path).Msg("debug log file opened")
	return nil
}
