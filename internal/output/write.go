package output

import (
	"fmt"
	"io"
)

// SerializationError reports a document that could not be encoded. Nothing
// is written when it occurs.
type SerializationError struct {
	Format Format
	Err    error
}

func (e *SerializationError) Error() string {
	return fmt.Sprintf("failed to encode output as %s: %v", e.Format, e.Err)
}

func (e *SerializationError) Unwrap() error {
	return e.Err
}

// Render returns the complete text of doc in the given format. tty text
// ends in a single newline unless it is empty.
func Render(doc Document, format Format) (string, error) {
	switch format {
	case FormatJSON:
		return RenderJSON(doc)
	case FormatTTY, "":
		text := doc.tty()
		if text == "" {
			return "", nil
		}
		return text + "\n", nil
	default:
		return "", &SerializationError{Format: format, Err: fmt.Errorf("unsupported format")}
	}
}

// Write renders doc and writes it to w in a single call.
func Write(w io.Writer, doc Document, format Format) error {
	text, err := Render(doc, format)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(w, text); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
