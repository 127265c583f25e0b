package fstree

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// DecodeError reports a structural problem in a tree document: a value that
// is neither a directory object nor a byte size, a negative or fractional
// size, or an invalid entry name. Path locates the offending entry, with ""
// meaning the document root.
type DecodeError struct {
	Path   string
	Reason string
}

func (e *DecodeError) Error() string {
	if e.Path == "" {
		return "decoding tree: " + e.Reason
	}

	return fmt.Sprintf("decoding tree at %q: %s", e.Path, e.Reason)
}

// Decode reads a JSON tree document from r. Objects become directories and
// integer values become file sizes, with entry order preserved as it appears
// in the document.
//
// Structural problems are reported as *DecodeError; malformed JSON is
// returned as the underlying syntax error.
func Decode(r io.Reader) (*Dir, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("parsing tree document: %w", err)
	}

	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, &DecodeError{Reason: "document root must be a directory object"}
	}

	root := NewRoot()
	if err := decodeDir(dec, root, ""); err != nil {
		return nil, err
	}

	// Anything after the root object is garbage, not a second document.
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, &DecodeError{Reason: "trailing data after root object"}
	}

	return root, nil
}

// decodeDir consumes an object's members up to and including its closing
// brace, adding each as a child of dir.
func decodeDir(dec *json.Decoder, dir *Dir, path string) error {
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("parsing tree document: %w", err)
		}

		name, ok := tok.(string)
		if !ok {
			return &DecodeError{Path: path, Reason: "expected an entry name"}
		}

		entryPath := Join(path, name)

		if name == "" || strings.Contains(name, "/") {
			return &DecodeError{Path: path, Reason: fmt.Sprintf("invalid entry name %q", name)}
		}

		tok, err = dec.Token()
		if err != nil {
			return fmt.Errorf("parsing tree document: %w", err)
		}

		switch value := tok.(type) {
		case json.Delim:
			if value != '{' {
				return &DecodeError{Path: entryPath, Reason: "value must be a directory object or a size in bytes"}
			}

			child := newDir(name, nil)
			if err := decodeDir(dec, child, entryPath); err != nil {
				return err
			}

			dir.add(child)

		case json.Number:
			size, err := strconv.ParseInt(value.String(), 10, 64)
			if err != nil {
				return &DecodeError{Path: entryPath, Reason: fmt.Sprintf("size must be a non-negative integer, got %s", value)}
			}

			if size < 0 {
				return &DecodeError{Path: entryPath, Reason: fmt.Sprintf("size must be non-negative, got %d", size)}
			}

			dir.add(File{name: name, size: size})

		default:
			return &DecodeError{Path: entryPath, Reason: "value must be a directory object or a size in bytes"}
		}
	}

	// Closing brace. More() returned false, so this cannot fail on a
	// well-formed stream, but the stream may be truncated.
	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("parsing tree document: %w", err)
	}

	return nil
}

// Encode writes root to w as an indented JSON tree document, with entries
// in insertion order. The output round-trips through Decode.
func Encode(w io.Writer, root *Dir) error {
	var buf bytes.Buffer

	encodeDir(&buf, root, "")
	buf.WriteByte('\n')

	_, err := w.Write(buf.Bytes())
	if err != nil {
		return fmt.Errorf("writing tree document: %w", err)
	}

	return nil
}

func encodeDir(buf *bytes.Buffer, d *Dir, indent string) {
	if d.Len() == 0 {
		buf.WriteString("{}")

		return
	}

	buf.WriteString("{\n")

	inner := indent + "  "

	i := 0
	for child := range d.Entries() {
		if i > 0 {
			buf.WriteString(",\n")
		}
		i++

		buf.WriteString(inner)
		name, _ := json.Marshal(child.Name())
		buf.Write(name)
		buf.WriteString(": ")

		switch c := child.(type) {
		case File:
			buf.WriteString(strconv.FormatInt(c.Size(), 10))
		case *Dir:
			encodeDir(buf, c, inner)
		}
	}

	buf.WriteString("\n" + indent + "}")
}
