package models

import "fmt"

// IntentKind discriminates ResolvedIntent.
type IntentKind int

const (
	IntentUnrecognized IntentKind = iota
	IntentHelp
	IntentPrefectureQuery
)

func (k IntentKind) String() string {
	switch k {
	case IntentHelp:
		return "help"
	case IntentPrefectureQuery:
		return "prefecture"
	default:
		return "unrecognized"
	}
}

// ResolvedIntent is the outcome of input resolution. The zero value is Unrecognized.
// Prefecture is set only for IntentPrefectureQuery.
type ResolvedIntent struct {
	Kind       IntentKind
	Prefecture PrefectureID
}

func Help() ResolvedIntent { return ResolvedIntent{Kind: IntentHelp} }

func Unrecognized() ResolvedIntent { return ResolvedIntent{Kind: IntentUnrecognized} }

func PrefectureQuery(id PrefectureID) ResolvedIntent {
	return ResolvedIntent{Kind: IntentPrefectureQuery, Prefecture: id}
}

func (i ResolvedIntent) String() string {
	if i.Kind == IntentPrefectureQuery {
		return fmt.Sprintf("prefecture(%s)", i.Prefecture)
	}
	return i.Kind.String()
}
