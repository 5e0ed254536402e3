package enums

import "strings"

type CategoryBucket string

const (
	CategoryNew   CategoryBucket = "new"
	CategoryToday CategoryBucket = "today"
	CategoryMine  CategoryBucket = "mine"
	CategoryNear  CategoryBucket = "near"
	CategoryMore  CategoryBucket = "more"
)

func ParseCategoryBucket(raw string) (CategoryBucket, bool) {
	switch CategoryBucket(strings.ToLower(strings.TrimSpace(raw))) {
	case CategoryNew:
		return CategoryNew, true
	case CategoryToday:
		return CategoryToday, true
	case CategoryMine:
		return CategoryMine, true
	case CategoryNear:
		return CategoryNear, true
	case CategoryMore:
		return CategoryMore, true
	default:
		return "", false
	}
}

func (c CategoryBucket) Title() string {
	switch c {
	case CategoryNew:
		return "New Matches"
	case CategoryToday:
		return "Today's Matches"
	case CategoryMine:
		return "My Matches"
	case CategoryNear:
		return "Near Me"
	case CategoryMore:
		return "More Matches"
	default:
		return ""
	}
}
