package openglhelper

import (
	"fmt"
	"log/slog"

	"github.com/go-gl/gl/v4.1-core/gl"
)

var errorNames = map[uint32]string{
	gl.INVALID_ENUM:                  "INVALID_ENUM",
	gl.INVALID_VALUE:                 "INVALID_VALUE",
	gl.INVALID_OPERATION:             "INVALID_OPERATION",
	gl.INVALID_FRAMEBUFFER_OPERATION: "INVALID_FRAMEBUFFER_OPERATION",
	gl.OUT_OF_MEMORY:                 "OUT_OF_MEMORY",
}

// GLError is one or more error codes drained from gl.GetError.
type GLError struct {
	Op    string
	Codes []uint32
}

func (e *GLError) Error() string {
	names := make([]string, len(e.Codes))
	for i, code := range e.Codes {
		if name, ok := errorNames[code]; ok {
			names[i] = name
		} else {
			names[i] = fmt.Sprintf("0x%04x", code)
		}
	}
	return fmt.Sprintf("%s: gl errors %v", e.Op, names)
}

// maxDrain bounds the GetError loop; a lost context can report errors forever
const maxDrain = 16

// CheckError drains pending GL errors, logs them and returns them as a
// *GLError, or nil if there were none.
func CheckError(op string) error {
	var codes []uint32
	for range maxDrain {
		code := gl.GetError()
		if code == gl.NO_ERROR {
			break
		}
		codes = append(codes, code)
	}
	if len(codes) == 0 {
		return nil
	}

	err := &GLError{Op: op, Codes: codes}
	slog.Error("opengl error", "op", op, "err", err)
	return err
}
