package enums

import "strings"

type SortKey string

const (
	SortByCompatibility SortKey = "compatibility"
	SortByRecent        SortKey = "recent"
	SortByDistance      SortKey = "distance"
	SortByAge           SortKey = "age"
)

type SortOrder string

const (
	SortAscending  SortOrder = "asc"
	SortDescending SortOrder = "desc"
)

func ParseSortKey(raw string) (SortKey, bool) {
	switch SortKey(strings.ToLower(strings.TrimSpace(raw))) {
	case SortByCompatibility:
		return SortByCompatibility, true
	case SortByRecent:
		return SortByRecent, true
	case SortByDistance:
		return SortByDistance, true
	case SortByAge:
		return SortByAge, true
	default:
		return "", false
	}
}

func ParseSortOrder(raw string) (SortOrder, bool) {
	switch SortOrder(strings.ToLower(strings.TrimSpace(raw))) {
	case SortAscending:
		return SortAscending, true
	case SortDescending:
		return SortDescending, true
	default:
		return "", false
	}
}
