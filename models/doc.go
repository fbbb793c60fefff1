// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines domain and view types shared across packages.

# Domain Types

  - Item: a single to-do entry (id, title, created_at)

# View Types

  - ListView: data context for the index view (list title, items,
    optional error banner, render time)

# Constants

Form fields posted by the index view:

	FieldNewItem          = "newItem"
	FieldUpdatedItemID    = "updatedItemId"
	FieldUpdatedItemTitle = "updatedItemTitle"
	FieldDeleteItemID     = "deleteItemId"

Messages carried in the error query parameter:

	ErrMsgMissingTitle = "Please provide a task"
	ErrMsgAddFailed    = "An error occurred while adding a new task"
	ErrMsgEditFailed   = "An error occurred while editing a task"
	ErrMsgDeleteFailed = "An error occurred while deleting a task"
*/
package models
