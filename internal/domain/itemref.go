package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// ItemKind discriminates what a booking points at.
type ItemKind string

const (
	ItemKindTrip    ItemKind = "trip"
	ItemKindPackage ItemKind = "package"
)

// ItemRef is the parsed form of the "<kind>-<id>" reference stored on a
// booking. All conversion between the wire string and the variant happens
// here; read paths should never split the string themselves.
type ItemRef struct {
	Kind ItemKind
	ID   int64
}

// ParseItemRef validates and parses a reference like "trip-5" or "package-12".
// The split happens at the first '-' only.
func ParseItemRef(s string) (ItemRef, error) {
	s = strings.TrimSpace(s)
	kind, rest, found := strings.Cut(s, "-")
	if !found {
		return ItemRef{}, ValidationError{Field: "item_ref", Msg: fmt.Sprintf("%q is not of the form <kind>-<id>", s)}
	}

	k := ItemKind(kind)
	if k != ItemKindTrip && k != ItemKindPackage {
		return ItemRef{}, ValidationError{Field: "item_ref", Msg: fmt.Sprintf("unknown item kind %q", kind)}
	}

	id, err := strconv.ParseInt(rest, 10, 64)
	if err != nil || id <= 0 {
		return ItemRef{}, ValidationError{Field: "item_ref", Msg: fmt.Sprintf("%q is not a positive item id", rest)}
	}

	return ItemRef{Kind: k, ID: id}, nil
}

// String renders the stored wire form.
func (r ItemRef) String() string {
	return fmt.Sprintf("%s-%d", r.Kind, r.ID)
}
