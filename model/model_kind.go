package model

import "fmt"

// Kind discriminates the two post types. The wire values ("req"/"tes")
// double as API path segments and must stay stable.
type Kind string

const (
	KindRequest   Kind = "req"
	KindTestimony Kind = "tes"
)

// KindInfo carries the presentation attributes for one kind. Rendering
// code reads this table instead of branching on the raw string.
type KindInfo struct {
	Label      string `json:"label"`
	Verb       string `json:"verb"`
	Collection string `json:"-"`
	Color      string `json:"color"`
}

var kindInfo = map[Kind]KindInfo{
	KindRequest:   {Label: "Request", Verb: "Prayed", Collection: "requests", Color: "#60a5fa"},
	KindTestimony: {Label: "Testimony", Verb: "Praised", Collection: "testimonies", Color: "#fbbf24"},
}

// AllKinds in feed merge order.
var AllKinds = []Kind{KindRequest, KindTestimony}

func (k Kind) Valid() bool {
	_, ok := kindInfo[k]
	return ok
}

func (k Kind) Info() KindInfo {
	return kindInfo[k]
}

// Collection returns the backing collection name for this kind.
func (k Kind) Collection() string {
	return kindInfo[k].Collection
}

func ParseKind(s string) (Kind, error) {
	k := Kind(s)
	if !k.Valid() {
		return "", fmt.Errorf("unknown post kind %q", s)
	}
	return k, nil
}
