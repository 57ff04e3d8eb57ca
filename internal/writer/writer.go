// Package writer implements assembly file writing functionality.
package writer

import (
	"fmt"
	"io"
	"strings"

	"github.com/lovesegfault/chirp/internal/program"
)

const dataBytesPerLine = 16

// Writer writes a disassembled program as an assembly listing.
type Writer struct {
	app     *program.Program
	options Options
	writer  io.Writer
}

// Options of the writer.
type Options struct {
	OffsetComments bool
}

// New creates a new writer.
func New(app *program.Program, writer io.Writer, options Options) *Writer {
	return &Writer{
		app:     app,
		options: options,
		writer:  writer,
	}
}

// Write writes all program offsets, labels and their comments.
func (w Writer) Write() error {
	if err := w.writeCommentHeader(); err != nil {
		return err
	}

	var previousLineWasCode bool

	for i := 0; i < len(w.app.Offsets); i++ {
		offset := w.app.Offsets[i]

		if err := w.writeLabel(i, offset); err != nil {
			return err
		}

		// print an empty line in case of data after code and vice versa
		if i > 0 && offset.Label == "" && offset.IsType(program.CodeOffset|program.CodeAsData) != previousLineWasCode {
			if _, err := fmt.Fprintln(w.writer); err != nil {
				return fmt.Errorf("writing line: %w", err)
			}
		}
		previousLineWasCode = offset.IsType(program.CodeOffset | program.CodeAsData)

		adjustment, err := w.writeOffset(i, offset)
		if err != nil {
			return err
		}
		i += adjustment
	}
	return nil
}

// writeCommentHeader writes the ROM identification as comments to the output.
func (w Writer) writeCommentHeader() error {
	if _, err := fmt.Fprintf(w.writer, "; Disassembly of %s\n", w.app.Name); err != nil {
		return fmt.Errorf("writing name: %w", err)
	}
	if _, err := fmt.Fprintf(w.writer, "; CRC32 checksum: %08x\n", w.app.Checksum); err != nil {
		return fmt.Errorf("writing checksum: %w", err)
	}
	if _, err := fmt.Fprintf(w.writer, "; Code base address: $%04x\n\n", w.app.Origin); err != nil {
		return fmt.Errorf("writing code base address: %w", err)
	}
	return nil
}

func (w Writer) writeOffset(index int, offset program.Offset) (int, error) {
	if offset.IsType(program.CodeOffset) && len(offset.Data) == 0 {
		return 0, nil
	}

	if offset.IsType(program.DataOffset) {
		count, err := w.bundleDataWrites(index)
		if err != nil {
			return 0, err
		}
		if count > 0 {
			return count - 1, nil
		}
		return 0, nil
	}

	if err := w.writeCodeLine(offset); err != nil {
		return 0, fmt.Errorf("writing code line: %w", err)
	}
	return len(offset.Data) - 1, nil
}

func (w Writer) writeLabel(index int, offset program.Offset) error {
	if offset.Label == "" {
		return nil
	}

	if index > 0 {
		if _, err := fmt.Fprintln(w.writer); err != nil {
			return fmt.Errorf("writing line: %w", err)
		}
	}

	if offset.LabelComment == "" {
		if _, err := fmt.Fprintf(w.writer, "%s:\n", offset.Label); err != nil {
			return fmt.Errorf("writing label: %w", err)
		}
	} else {
		if _, err := fmt.Fprintf(w.writer, "%-32s ; %s\n", offset.Label+":", offset.LabelComment); err != nil {
			return fmt.Errorf("writing label: %w", err)
		}
	}
	return nil
}

func (w Writer) writeCodeLine(offset program.Offset) error {
	if offset.Comment == "" {
		if _, err := fmt.Fprintf(w.writer, "  %s\n", offset.Code); err != nil {
			return fmt.Errorf("writing line: %w", err)
		}
	} else {
		if _, err := fmt.Fprintf(w.writer, "  %-30s ; %s\n", offset.Code, offset.Comment); err != nil {
			return fmt.Errorf("writing line: %w", err)
		}
	}
	return nil
}

// bundleDataWrites writes a run of data bytes with dataBytesPerLine bytes per line.
// It returns the number of offsets that were written.
func (w Writer) bundleDataWrites(startIndex int) (int, error) {
	data := w.dataRun(startIndex)
	if len(data) == 0 {
		return 0, nil
	}

	currentIndex := startIndex
	remaining := len(data)

	for i := 0; remaining > 0; {
		toWrite := min(remaining, dataBytesPerLine)

		buf := &strings.Builder{}
		buf.WriteString(".byte ")
		for j := range toWrite {
			fmt.Fprintf(buf, "$%02x, ", data[i+j])
		}
		line := strings.TrimRight(buf.String(), ", ")

		comment := w.app.Offsets[currentIndex].Comment
		if w.options.OffsetComments {
			addressComment := fmt.Sprintf("$%04X", w.app.Address(currentIndex))
			if comment == "" {
				comment = addressComment
			} else {
				comment = addressComment + "  " + comment
			}
		}

		var err error
		if comment == "" {
			_, err = fmt.Fprintf(w.writer, "%s\n", line)
		} else {
			_, err = fmt.Fprintf(w.writer, "%-32s ; %s\n", line, comment)
		}
		if err != nil {
			return 0, fmt.Errorf("writing data line: %w", err)
		}

		i += toWrite
		currentIndex += toWrite
		remaining -= toWrite
	}

	return len(data), nil
}

// dataRun collects the contiguous data bytes starting at the given
// index, stopping at the next code offset or label.
func (w Writer) dataRun(startIndex int) []byte {
	data := make([]byte, 0, dataBytesPerLine)

	for i := startIndex; i < len(w.app.Offsets); i++ {
		offset := w.app.Offsets[i]
		if !offset.IsType(program.DataOffset) {
			break
		}
		if i > startIndex && offset.Label != "" {
			break
		}
		data = append(data, offset.Data...)
	}
	return data
}
