package project

import "errors"

var (
	ErrProjectNotFound = errors.New("project not found")
	ErrNameTaken       = errors.New("project with this name already exists")
)
