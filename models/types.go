package models

import "time"

// User-facing messages carried in the error query parameter
const (
	ErrMsgMissingTitle = "Please provide a task"
	ErrMsgAddFailed    = "An error occurred while adding a new task"
	ErrMsgEditFailed   = "An error occurred while editing a task"
	ErrMsgDeleteFailed = "An error occurred while deleting a task"
	ErrMsgListFailed   = "An error occurred while fetching items"
	ErrMsgRenderFailed = "An error occurred while rendering items"
)

// Form field names posted by the list view
const (
	FieldNewItem          = "newItem"
	FieldUpdatedItemID    = "updatedItemId"
	FieldUpdatedItemTitle = "updatedItemTitle"
	FieldDeleteItemID     = "deleteItemId"
)

// Domain types

type Item struct {
	ID        int64
	Title     string
	CreatedAt time.Time
}

// View types

// ListView is the data context of the index view
type ListView struct {
	ListTitle string
	Items     []Item
	Error     string
	Now       time.Time
}
