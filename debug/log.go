package debug

import (
	"bytes"
	"fmt"
	"os"

	"github.com/localekit/locsync/encode"
	"github.com/localekit/locsync/ir"
)

// Logf writes to stderr, rendering *ir.Node arguments as indented
// JSON so gated dumps of whole documents stay readable.
func Logf(msg string, args ...any) {
	for i := range args {
		x, ok := args[i].(*ir.Node)
		if !ok {
			continue
		}
		buf := bytes.NewBuffer(nil)
		if err := encode.Encode(x, buf); err != nil {
			args[i] = fmt.Sprintf("[raw node] %v", x)
			continue
		}
		args[i] = buf.String()
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
