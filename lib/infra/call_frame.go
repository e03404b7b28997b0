package infra

import (
	"fmt"
	"io"
	"path"
	"runtime"
	"strconv"
	"strings"
)

// References:
// https://github.com/pkg/errors/blob/master/stack.go

// Frame is a program counter captured at the call site that
// broke a contract of a container.
type Frame uintptr

// CallerFrame captures the frame skip levels above its caller.
// CallerFrame(0) is the caller itself.
//
//go:noinline
func CallerFrame(skip int) Frame {
	var pcs [1]uintptr
	if runtime.Callers(skip+2, pcs[:]) < 1 {
		return 0
	}
	return Frame(pcs[0])
}

func (frame Frame) resolve() (fn, file string, line int) {
	pc := uintptr(frame) - 1
	f := runtime.FuncForPC(pc)
	if frame == 0 || f == nil {
		return "unknownFunc", "unknownFile", 0
	}
	file, line = f.FileLine(pc)
	return f.Name(), file, line
}

// Format characters:
// %s - source file
// %d - source line
// %n - function name
// %v - equivalent to %s:%d
// %+s - function name and full path separated by \n\t
// %+v - equivalent to %+s:%d
func (frame Frame) Format(s fmt.State, verb rune) {
	fn, file, line := frame.resolve()
	switch verb {
	case 's':
		if s.Flag('+') {
			_, _ = io.WriteString(s, fn)
			_, _ = io.WriteString(s, "\n\t")
			_, _ = io.WriteString(s, file)
			return
		}
		_, _ = io.WriteString(s, path.Base(file))
	case 'd':
		_, _ = io.WriteString(s, strconv.Itoa(line))
	case 'n':
		_, _ = io.WriteString(s, shortFuncName(fn))
	case 'v':
		frame.Format(s, 's')
		_, _ = io.WriteString(s, ":")
		frame.Format(s, 'd')
	}
}

// String renders as "func file:line", the form used in log fields.
func (frame Frame) String() string {
	fn, file, line := frame.resolve()
	if frame == 0 || fn == "unknownFunc" {
		return "unknownFrame"
	}
	return shortFuncName(fn) + " " + path.Base(file) + ":" + strconv.Itoa(line)
}

// MarshalText is used by encoders lacking a json.Marshaler hook.
func (frame Frame) MarshalText() ([]byte, error) {
	return []byte(frame.String()), nil
}

func shortFuncName(name string) string {
	i := strings.LastIndex(name, "/")
	name = name[i+1:]
	i = strings.Index(name, ".")
	return name[i+1:]
}
