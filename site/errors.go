package site

import "errors"

var (
	// ErrEnumerate signals that the site root could not be listed.
	ErrEnumerate = errors.New("cannot enumerate site root")
	// ErrRender signals that a page could not be turned into a document.
	ErrRender = errors.New("render page")
	// ErrWrite signals that the output tree could not be written.
	ErrWrite = errors.New("write output")
	// ErrDuplicateID signals two pages in one site tree sharing an id.
	ErrDuplicateID = errors.New("duplicate page id")
)
