package entity

import "strings"

// CreateNewCategoryValue is the form value of the "add new category" option.
// It is parsed into CategorySelection at the HTTP boundary and never stored as an id.
const CreateNewCategoryValue = "__create_new__"

type selectionKind int

const (
	selectNone selectionKind = iota
	selectExisting
	selectCreateNew
)

// CategorySelection is either an existing category id or the intent to create one.
type CategorySelection struct {
	kind selectionKind
	id   string
}

func ExistingCategory(id string) CategorySelection {
	return CategorySelection{kind: selectExisting, id: id}
}

func CreateNewCategory() CategorySelection {
	return CategorySelection{kind: selectCreateNew}
}

func ParseCategorySelection(value string) CategorySelection {
	value = strings.TrimSpace(value)
	switch value {
	case "":
		return CategorySelection{}
	case CreateNewCategoryValue:
		return CreateNewCategory()
	}
	return ExistingCategory(value)
}

// IsNone reports whether nothing was selected.
func (s CategorySelection) IsNone() bool {
	return s.kind == selectNone
}

func (s CategorySelection) IsCreateNew() bool {
	return s.kind == selectCreateNew
}

// ID returns the selected category id, or false for no selection or create-new.
func (s CategorySelection) ID() (string, bool) {
	if s.kind != selectExisting || s.id == "" {
		return "", false
	}
	return s.id, true
}
