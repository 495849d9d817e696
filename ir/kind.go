package ir

import "fmt"

// Kind classifies a block of document content.
type Kind string

const (
	Heading   Kind = "heading"
	Paragraph Kind = "paragraph"
	ListItem  Kind = "list-item"
	TableCell Kind = "table-cell"
)

func ParseKind(v string) (Kind, error) {
	switch Kind(v) {
	case Heading, Paragraph, ListItem, TableCell:
		return Kind(v), nil
	}
	return "", fmt.Errorf("%w: %q", ErrBadKind, v)
}

func (k Kind) Valid() bool {
	_, err := ParseKind(string(k))
	return err == nil
}
